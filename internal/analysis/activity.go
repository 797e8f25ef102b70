package analysis

import "math"

// DailyStepGoal is the recommended steps per day.
const DailyStepGoal = 10000

// caloriesPerStep is a midpoint of the 0.04-0.05 kcal/step adult average.
const caloriesPerStep = 0.045

// Gym session intensities.
const (
	IntensityLight    = "light"
	IntensityModerate = "moderate"
	IntensityIntense  = "intense"
)

var gymCaloriesPerMinute = map[string]float64{
	IntensityLight:    3.5,
	IntensityModerate: 6,
	IntensityIntense:  10,
}

// IsIntensity reports whether s is a known gym intensity.
func IsIntensity(s string) bool {
	_, ok := gymCaloriesPerMinute[s]
	return ok
}

// StepCalories estimates calories burned walking, rounded.
func StepCalories(steps int) int {
	return int(math.Round(float64(steps) * caloriesPerStep))
}

// GymCalories estimates calories for a gym session at a per-minute rate by
// intensity. Unknown or empty intensities use the moderate rate.
func GymCalories(minutes int, intensity string) int {
	rate, ok := gymCaloriesPerMinute[intensity]
	if !ok {
		rate = gymCaloriesPerMinute[IntensityModerate]
	}
	return int(math.Round(float64(minutes) * rate))
}

// StepAnalysis rates a day's step count against DailyStepGoal.
type StepAnalysis struct {
	Steps      int    `json:"steps"`
	Goal       int    `json:"goal"`
	Percentage int    `json:"percentage"`
	Rating     string `json:"rating"`
	Feedback   string `json:"feedback"`
	Calories   int    `json:"calories"`
}

// AnalyzeSteps rates steps on flat thresholds.
func AnalyzeSteps(steps int) StepAnalysis {
	a := StepAnalysis{
		Steps:      steps,
		Goal:       DailyStepGoal,
		Percentage: int(math.Round(float64(steps) / DailyStepGoal * 100)),
		Calories:   StepCalories(steps),
	}
	switch {
	case steps >= 12000:
		a.Rating, a.Feedback = "excellent", "Outstanding! You exceeded the daily recommendation."
	case steps >= 10000:
		a.Rating, a.Feedback = "great", "Perfect! You hit the 10k steps goal."
	case steps >= 7500:
		a.Rating, a.Feedback = "good", "Good progress! Keep pushing towards 10k."
	case steps >= 5000:
		a.Rating, a.Feedback = "fair", "Decent start, but aim for at least 7,500 steps."
	default:
		a.Rating, a.Feedback = "low", "Try to move more throughout the day."
	}
	return a
}

// GymSession is one logged gym block. Calories are computed when the session
// is saved and read back as stored.
type GymSession struct {
	Minutes   int    `json:"minutes"`
	Calories  int    `json:"calories"`
	Intensity string `json:"intensity"`
}

// ActivitySummary totals a day's movement.
type ActivitySummary struct {
	Steps         int `json:"steps"`
	GymMinutes    int `json:"gym_minutes"`
	TotalCalories int `json:"total_calories"`
	StepCalories  int `json:"step_calories"`
	GymCalories   int `json:"gym_calories"`
}

// SummarizeActivity combines step calories with the stored session calories.
func SummarizeActivity(steps int, sessions []GymSession) ActivitySummary {
	s := ActivitySummary{Steps: steps, StepCalories: StepCalories(steps)}
	for _, g := range sessions {
		s.GymMinutes += g.Minutes
		s.GymCalories += g.Calories
	}
	s.TotalCalories = s.StepCalories + s.GymCalories
	return s
}
