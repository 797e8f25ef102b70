package analysis

import "math"

// DayInput carries whatever was logged on one day. Nil pointers mean nothing
// was recorded for that area.
type DayInput struct {
	Date     string
	Sleep    *SleepAnalysis
	Meals    map[string]Macros
	Steps    int
	Sessions []GymSession
	Workout  *WorkoutAnalysis
}

// Day is the combined daily summary.
type Day struct {
	Date            string           `json:"date"`
	Sleep           *SleepAnalysis   `json:"sleep"`
	Nutrition       DayNutrition     `json:"nutrition"`
	Activity        ActivitySummary  `json:"activity"`
	StepsRating     StepAnalysis     `json:"steps"`
	Workout         *WorkoutAnalysis `json:"workout"`
	CaloriesIn      int              `json:"calories_in"`
	CaloriesOut     int              `json:"calories_out"`
	NetCalories     int              `json:"net_calories"`
	WorkoutCalories int              `json:"workout_calories"`
	MealsLogged     int              `json:"meals_logged"`
	SleepLogged     bool             `json:"sleep_logged"`
	WorkoutLogged   bool             `json:"workout_logged"`
}

// SummarizeDay composes the sleep, nutrition, activity and training results of
// one day. Calories out are steps plus gym sessions; the logged workout's
// set-based estimate is reported as workout_calories and is not added in.
func SummarizeDay(in DayInput) Day {
	d := Day{
		Date:          in.Date,
		Sleep:         in.Sleep,
		Nutrition:     AnalyzeDay(in.Meals),
		Activity:      SummarizeActivity(in.Steps, in.Sessions),
		StepsRating:   AnalyzeSteps(in.Steps),
		Workout:       in.Workout,
		SleepLogged:   in.Sleep != nil,
		WorkoutLogged: in.Workout != nil,
	}
	d.MealsLogged = d.Nutrition.MealsLogged
	d.CaloriesIn = int(math.Round(d.Nutrition.Calories))
	d.CaloriesOut = d.Activity.TotalCalories
	if in.Workout != nil {
		d.WorkoutCalories = in.Workout.TotalCalories
	}
	d.NetCalories = d.CaloriesIn - d.CaloriesOut
	return d
}
