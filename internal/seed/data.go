package seed

import "lg/lifestyle-tracker-api/internal/model"

func str(s string) *string { return &s }

// SampleDishes is the starter food library. Macros are per 100 g or per
// serving; calories are derived on save.
var SampleDishes = []model.Dish{
	// Meat
	{Name: "Chicken Breast", Category: "meat", Protein: 31, Carbs: 0, Fats: 3.6},
	{Name: "Beef Steak", Category: "meat", Protein: 26, Carbs: 0, Fats: 15},
	{Name: "Ground Turkey", Category: "meat", Protein: 27, Carbs: 0, Fats: 8},
	{Name: "Pork Chop", Category: "meat", Protein: 25, Carbs: 0, Fats: 14},
	{Name: "Bacon", Category: "meat", Protein: 37, Carbs: 1.4, Fats: 42},

	// Fish
	{Name: "Salmon Fillet", Category: "fish", Protein: 25, Carbs: 0, Fats: 13},
	{Name: "Tuna", Category: "fish", Protein: 29, Carbs: 0, Fats: 6},
	{Name: "Cod", Category: "fish", Protein: 18, Carbs: 0, Fats: 0.7},
	{Name: "Shrimp", Category: "fish", Protein: 24, Carbs: 0.2, Fats: 0.3},
	{Name: "Mackerel", Category: "fish", Protein: 19, Carbs: 0, Fats: 14},

	// Dairy
	{Name: "Greek Yogurt", Category: "dairy", Protein: 10, Carbs: 3.6, Fats: 0.4},
	{Name: "Cottage Cheese", Category: "dairy", Protein: 11, Carbs: 3.4, Fats: 4.3},
	{Name: "Whole Milk", Category: "dairy", Protein: 3.4, Carbs: 5, Fats: 3.6},
	{Name: "Cheddar Cheese", Category: "dairy", Protein: 25, Carbs: 1.3, Fats: 33},
	{Name: "Eggs", Category: "dairy", Protein: 13, Carbs: 1.1, Fats: 11},

	// Grains
	{Name: "Brown Rice (cooked)", Category: "grains", Protein: 2.6, Carbs: 23, Fats: 0.9},
	{Name: "Oatmeal", Category: "grains", Protein: 17, Carbs: 66, Fats: 7},
	{Name: "Whole Wheat Bread", Category: "grains", Protein: 13, Carbs: 41, Fats: 3.4},
	{Name: "Quinoa (cooked)", Category: "grains", Protein: 4.4, Carbs: 21, Fats: 1.9},
	{Name: "Whole Wheat Pasta", Category: "grains", Protein: 13, Carbs: 75, Fats: 2.5},

	// Vegetables
	{Name: "Broccoli", Category: "vegetables", Protein: 2.8, Carbs: 7, Fats: 0.4},
	{Name: "Spinach", Category: "vegetables", Protein: 2.9, Carbs: 3.6, Fats: 0.4},
	{Name: "Sweet Potato", Category: "vegetables", Protein: 1.6, Carbs: 20, Fats: 0.1},
	{Name: "Avocado", Category: "vegetables", Protein: 2, Carbs: 8.5, Fats: 15},
	{Name: "Bell Pepper", Category: "vegetables", Protein: 1, Carbs: 6, Fats: 0.3},
	{Name: "Tomato", Category: "vegetables", Protein: 0.9, Carbs: 3.9, Fats: 0.2},

	// Fruits
	{Name: "Banana", Category: "fruits", Protein: 1.1, Carbs: 23, Fats: 0.3},
	{Name: "Apple", Category: "fruits", Protein: 0.3, Carbs: 14, Fats: 0.2},
	{Name: "Orange", Category: "fruits", Protein: 0.9, Carbs: 12, Fats: 0.1},
	{Name: "Blueberries", Category: "fruits", Protein: 0.7, Carbs: 14, Fats: 0.3},
	{Name: "Strawberries", Category: "fruits", Protein: 0.7, Carbs: 8, Fats: 0.3},

	// Pastry
	{Name: "Croissant", Category: "pastry", Protein: 8, Carbs: 46, Fats: 21},
	{Name: "Bagel", Category: "pastry", Protein: 10, Carbs: 53, Fats: 1.5},
	{Name: "Donut", Category: "pastry", Protein: 4.6, Carbs: 51, Fats: 20},
	{Name: "Muffin", Category: "pastry", Protein: 6, Carbs: 51, Fats: 18},
	{Name: "Pancakes", Category: "pastry", Protein: 6, Carbs: 28, Fats: 9},

	// Snacks
	{Name: "Almonds", Category: "snacks", Protein: 21, Carbs: 22, Fats: 49},
	{Name: "Peanut Butter", Category: "snacks", Protein: 25, Carbs: 20, Fats: 50},
	{Name: "Protein Bar", Category: "snacks", Protein: 20, Carbs: 40, Fats: 8},
	{Name: "Dark Chocolate", Category: "snacks", Protein: 7.8, Carbs: 46, Fats: 43},
	{Name: "Granola", Category: "snacks", Protein: 10, Carbs: 68, Fats: 15},

	// Drinks
	{Name: "Protein Shake", Category: "drinks", Protein: 25, Carbs: 5, Fats: 3},
	{Name: "Coffee (black)", Category: "drinks", Protein: 0.3, Carbs: 0, Fats: 0},
	{Name: "Green Tea", Category: "drinks", Protein: 0, Carbs: 0, Fats: 0},
	{Name: "Orange Juice", Category: "drinks", Protein: 0.7, Carbs: 10, Fats: 0.2},
	{Name: "Almond Milk", Category: "drinks", Protein: 0.4, Carbs: 0.3, Fats: 1.1},
}

// SampleExercises is the starter exercise library.
var SampleExercises = []model.Exercise{
	// Strength
	{Name: "Barbell Bench Press", Category: "strength", Equipment: str("barbell"), Notes: str("Keep shoulder blades retracted, control the descent")},
	{Name: "Barbell Squat", Category: "strength", Equipment: str("barbell"), Notes: str("Break at hips first, keep chest up, knees out")},
	{Name: "Deadlift", Category: "strength", Equipment: str("barbell"), Notes: str("Neutral spine, drive through heels, lock out at top")},
	{Name: "Overhead Press", Category: "strength", Equipment: str("barbell"), Notes: str("Brace core, press vertically, full lockout")},
	{Name: "Dumbbell Row", Category: "strength", Equipment: str("dumbbell"), Notes: str("Pull elbow back, squeeze shoulder blade at top")},
	{Name: "Leg Press", Category: "strength", Equipment: str("machine"), Notes: str("Full range of motion, feet shoulder-width")},
	{Name: "Lat Pulldown", Category: "strength", Equipment: str("cable"), Notes: str("Pull to upper chest, control the negative")},

	// Cardio
	{Name: "Running", Category: "cardio", Notes: str("Track distance and time for progression")},
	{Name: "Cycling", Category: "cardio", Notes: str("Adjust resistance for intensity variations")},
	{Name: "Jump Rope", Category: "cardio", Notes: str("Great for HIIT, track rounds and time")},
	{Name: "Rowing Machine", Category: "cardio", Equipment: str("machine"), Notes: str("Focus on form: legs, core, then arms")},
	{Name: "Elliptical", Category: "cardio", Equipment: str("machine"), Notes: str("Low impact option for steady state cardio")},
	{Name: "Stair Climber", Category: "cardio", Equipment: str("machine"), Notes: str("Keep upright posture, avoid leaning forward")},

	// Flexibility
	{Name: "Hamstring Stretch", Category: "flexibility", Notes: str("Hold 30 seconds each side, keep knee straight")},
	{Name: "Hip Flexor Stretch", Category: "flexibility", Notes: str("Lunge position, push hips forward")},
	{Name: "Shoulder Dislocations", Category: "flexibility", Equipment: str("bands"), Notes: str("Use resistance band or PVC pipe")},
	{Name: "Cat-Cow Stretch", Category: "flexibility", Notes: str("Mobilize spine, hold each position 5 seconds")},
	{Name: "Pigeon Pose", Category: "flexibility", Notes: str("Great for hip mobility, hold 1-2 minutes")},
	{Name: "Child's Pose", Category: "flexibility", Notes: str("Recovery position, focus on breathing")},

	// Olympic
	{Name: "Power Clean", Category: "olympic", Equipment: str("barbell"), Notes: str("Explosive triple extension, catch in front rack")},
	{Name: "Snatch", Category: "olympic", Equipment: str("barbell"), Notes: str("Wide grip, overhead catch, requires mobility")},
	{Name: "Clean and Jerk", Category: "olympic", Equipment: str("barbell"), Notes: str("Two-phase lift: clean to rack, jerk overhead")},
	{Name: "Hang Clean", Category: "olympic", Equipment: str("barbell"), Notes: str("Start from hang position, focus on hip drive")},
	{Name: "Push Press", Category: "olympic", Equipment: str("barbell"), Notes: str("Use leg drive to assist overhead press")},

	// Calisthenics
	{Name: "Pull-ups", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Full range: dead hang to chin over bar")},
	{Name: "Push-ups", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Maintain plank position, full range of motion")},
	{Name: "Dips", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Lower until arms at 90 degrees, press up")},
	{Name: "Pistol Squats", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Single leg squat, requires balance and strength")},
	{Name: "Muscle-ups", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Advanced: transition from pull-up to dip")},
	{Name: "Handstand Push-ups", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Can use wall for support initially")},
	{Name: "L-Sit", Category: "calisthenics", Equipment: str("bodyweight"), Notes: str("Core exercise, hold legs parallel to ground")},

	// Sports
	{Name: "Basketball", Category: "sports", Notes: str("Full game or drills, track duration")},
	{Name: "Soccer", Category: "sports", Notes: str("Game or practice, great for cardio and agility")},
	{Name: "Swimming", Category: "sports", Notes: str("Low impact full body workout, track laps")},
	{Name: "Tennis", Category: "sports", Notes: str("Singles or doubles, track sets and time")},
	{Name: "Boxing Training", Category: "sports", Notes: str("Bag work, mitt work, or sparring")},
	{Name: "Volleyball", Category: "sports", Notes: str("Team sport, great for explosiveness")},
}
