package analysis

import (
	"math"
	"strings"
)

// Set is one set of an exercise.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// ExerciseLog is an exercise as performed in a workout.
type ExerciseLog struct {
	ExerciseName string `json:"exercise_name"`
	Sets         []Set  `json:"sets"`
}

// Volume is weight × reps × sets for uniform sets.
func Volume(weight float64, reps, sets int) float64 {
	return weight * float64(reps) * float64(sets)
}

// OneRepMax estimates a one-rep max with the Brzycki formula, rounded to the
// nearest unit. The lifted weight is returned as-is for singles and for sets
// above 10 reps, where the formula is unreliable.
func OneRepMax(weight float64, reps int) float64 {
	if reps == 1 || reps > 10 {
		return weight
	}
	return math.Round(weight * 36 / float64(37-reps))
}

/* ─── Calorie estimate ───────────────────────────────────────────────── */

// Calorie categories and their cost in kcal per kg lifted per rep.
const (
	CategoryCompound  = "compound"
	CategoryMedium    = "medium"
	CategoryIsolation = "isolation"
)

var calorieConstants = map[string]float64{
	CategoryCompound:  0.32,
	CategoryMedium:    0.24,
	CategoryIsolation: 0.12,
}

type calorieRule struct {
	pattern  string
	category string
}

// calorieRules is scanned in order and the first substring hit wins, so
// compound patterns stay ahead of medium ones, and medium ahead of isolation.
// New patterns must be placed with that precedence in mind.
var calorieRules = []calorieRule{
	{"squat", CategoryCompound},
	{"deadlift", CategoryCompound},
	{"bench press", CategoryCompound},
	{"overhead press", CategoryCompound},
	{"military press", CategoryCompound},
	{"push press", CategoryCompound},
	{"clean", CategoryCompound},
	{"snatch", CategoryCompound},
	{"jerk", CategoryCompound},
	{"thruster", CategoryCompound},
	{"pull-up", CategoryCompound},
	{"pullup", CategoryCompound},
	{"chin-up", CategoryCompound},
	{"muscle-up", CategoryCompound},
	{"dip", CategoryCompound},

	{"row", CategoryMedium},
	{"lunge", CategoryMedium},
	{"leg press", CategoryMedium},
	{"pulldown", CategoryMedium},
	{"push-up", CategoryMedium},
	{"hip thrust", CategoryMedium},
	{"press", CategoryMedium},

	{"curl", CategoryIsolation},
	{"extension", CategoryIsolation},
	{"raise", CategoryIsolation},
	{"fly", CategoryIsolation},
	{"flye", CategoryIsolation},
	{"kickback", CategoryIsolation},
	{"shrug", CategoryIsolation},
	{"calf", CategoryIsolation},
	{"crunch", CategoryIsolation},
}

// CalorieCategory resolves an exercise name to its calorie category by
// case-insensitive substring match. Unmatched names are CategoryMedium.
func CalorieCategory(exerciseName string) string {
	name := strings.ToLower(exerciseName)
	for _, r := range calorieRules {
		if strings.Contains(name, r.pattern) {
			return r.category
		}
	}
	return CategoryMedium
}

// CalorieConstant returns the kcal/kg/rep cost for an exercise name.
func CalorieConstant(exerciseName string) float64 {
	return calorieConstants[CalorieCategory(exerciseName)]
}

// SetCalories estimates calories burned in one set.
func SetCalories(exerciseName string, weight float64, reps int) float64 {
	return CalorieConstant(exerciseName) * weight * float64(reps)
}

/* ─── Workout analysis ───────────────────────────────────────────────── */

// Workout duration ratings.
const (
	WorkoutShort    = "short"
	WorkoutOptimal  = "optimal"
	WorkoutLong     = "long"
	WorkoutVeryLong = "very_long"
)

// ExerciseSummary aggregates the sets of one exercise.
type ExerciseSummary struct {
	ExerciseName    string  `json:"exercise_name"`
	CalorieCategory string  `json:"calorie_category"`
	Sets            int     `json:"sets"`
	Volume          float64 `json:"volume"`
	Calories        float64 `json:"calories"`
	Best1RM         float64 `json:"best_1rm"`
}

// SummarizeExercise totals volume and calories and finds the best 1RM estimate.
func SummarizeExercise(ex ExerciseLog) ExerciseSummary {
	s := ExerciseSummary{
		ExerciseName:    ex.ExerciseName,
		CalorieCategory: CalorieCategory(ex.ExerciseName),
		Sets:            len(ex.Sets),
	}
	k := calorieConstants[s.CalorieCategory]
	for _, set := range ex.Sets {
		s.Volume += Volume(set.Weight, set.Reps, 1)
		s.Calories += k * set.Weight * float64(set.Reps)
		if orm := OneRepMax(set.Weight, set.Reps); orm > s.Best1RM {
			s.Best1RM = orm
		}
	}
	return s
}

// WorkoutAnalysis is the summary of one training session.
type WorkoutAnalysis struct {
	DurationMins   int               `json:"duration_mins"`
	Duration       string            `json:"duration"`
	TotalExercises int               `json:"total_exercises"`
	TotalSets      int               `json:"total_sets"`
	TotalVolume    float64           `json:"total_volume"`
	TotalCalories  int               `json:"total_calories"`
	Rating         string            `json:"rating"`
	Feedback       string            `json:"feedback"`
	Exercises      []ExerciseSummary `json:"exercises"`
}

// AnalyzeWorkout totals a session's exercises and rates its duration.
func AnalyzeWorkout(exercises []ExerciseLog, durationMins int) WorkoutAnalysis {
	a := WorkoutAnalysis{
		DurationMins:   durationMins,
		Duration:       FormatWorkoutDuration(durationMins),
		TotalExercises: len(exercises),
		Exercises:      make([]ExerciseSummary, 0, len(exercises)),
	}
	var calories float64
	for _, ex := range exercises {
		s := SummarizeExercise(ex)
		a.TotalSets += s.Sets
		a.TotalVolume += s.Volume
		calories += s.Calories
		a.Exercises = append(a.Exercises, s)
	}
	a.TotalCalories = int(math.Round(calories))
	a.Rating, a.Feedback = RateWorkoutDuration(durationMins)
	return a
}

// RateWorkoutDuration rates a session length with fixed feedback.
func RateWorkoutDuration(durationMins int) (rating, feedback string) {
	switch {
	case durationMins < 20:
		return WorkoutShort, "Quick session. Great for maintenance or active recovery."
	case durationMins <= 45:
		return WorkoutOptimal, "Ideal workout duration for strength and hypertrophy."
	case durationMins <= 75:
		return WorkoutLong, "Extended session. Make sure recovery is adequate."
	default:
		return WorkoutVeryLong, "Very long session. Watch for overtraining signs."
	}
}

/* ─── Exercise library categories ────────────────────────────────────── */

// MuscleGroup describes a library category and the muscles it trains.
type MuscleGroup struct {
	Name    string   `json:"name"`
	Muscles []string `json:"muscles"`
}

// MuscleGroups maps library categories to their primary muscles.
var MuscleGroups = map[string]MuscleGroup{
	"push":   {Name: "Push", Muscles: []string{"Chest", "Shoulders", "Triceps"}},
	"pull":   {Name: "Pull", Muscles: []string{"Back", "Biceps"}},
	"legs":   {Name: "Legs", Muscles: []string{"Quads", "Hamstrings", "Glutes", "Calves"}},
	"core":   {Name: "Core", Muscles: []string{"Abs", "Obliques", "Lower Back"}},
	"cardio": {Name: "Cardio", Muscles: []string{"Cardiovascular System"}},
	"other":  {Name: "Other", Muscles: []string{}},
}
