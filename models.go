package main

import (
	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
)

/* ─── Request bodies ─────────────────────────────────────────────────── */

// Missing numeric fields decode as zero.

// sleepRequest is the body for PUT /api/sleep/:date and POST /api/analyze/sleep.
type sleepRequest struct {
	Bedtime  string `json:"bedtime"`
	WakeTime string `json:"wake_time"`
}

// activityRequest is the body for PUT /api/activity/:date. Session calories
// sent by the client are ignored and recomputed.
type activityRequest struct {
	Steps       int                   `json:"steps"`
	GymSessions []analysis.GymSession `json:"gym_sessions"`
}

// nutritionRequest is the body for PUT /api/nutrition/:date.
type nutritionRequest struct {
	Meals map[string]analysis.Macros `json:"meals"`
}

// dishRequest is the body for POST /api/dishes and PUT /api/dishes/:id.
// Calories are derived from macros; a client value is ignored.
type dishRequest struct {
	Name     string  `json:"name"`
	Brand    *string `json:"brand"`
	Category string  `json:"category"`
	Photo    *string `json:"photo"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// exerciseRequest is the body for POST /api/exercises and PUT /api/exercises/:id.
type exerciseRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Equipment *string `json:"equipment"`
	Notes     *string `json:"notes"`
}

// workoutRequest is the body for PUT /api/workouts/:date and
// POST /api/analyze/workout. When both start_time and end_time are given the
// duration is computed from them; otherwise duration_mins is used.
type workoutRequest struct {
	StartTime    string                 `json:"start_time"`
	EndTime      string                 `json:"end_time"`
	DurationMins int                    `json:"duration_mins"`
	Exercises    []analysis.ExerciseLog `json:"exercises"`
	Notes        *string                `json:"notes"`
}

// mealRequest is the body for POST /api/analyze/meal.
type mealRequest struct {
	MealType string `json:"meal_type"`
	analysis.Macros
}

/* ─── Responses ──────────────────────────────────────────────────────── */

// sleepView is a stored sleep entry with its formatted duration.
type sleepView struct {
	model.SleepEntry
	Duration string `json:"duration"`
}

func newSleepView(e model.SleepEntry) sleepView {
	return sleepView{SleepEntry: e, Duration: analysis.FormatDuration(e.DurationMins)}
}

// activityView is a stored activity entry with its totals and step rating.
type activityView struct {
	model.ActivityEntry
	Summary       analysis.ActivitySummary `json:"summary"`
	StepsAnalysis analysis.StepAnalysis    `json:"steps_analysis"`
}

func newActivityView(e model.ActivityEntry) activityView {
	return activityView{ActivityEntry: e, Summary: e.Summary(), StepsAnalysis: analysis.AnalyzeSteps(e.Steps)}
}

// nutritionView is a stored nutrition entry scored on read.
type nutritionView struct {
	model.NutritionEntry
	Analysis analysis.DayNutrition `json:"analysis"`
}

func newNutritionView(e model.NutritionEntry) nutritionView {
	return nutritionView{NutritionEntry: e, Analysis: analysis.AnalyzeDay(e.Meals)}
}

// workoutView is a stored workout analyzed on read.
type workoutView struct {
	model.Workout
	Analysis analysis.WorkoutAnalysis `json:"analysis"`
}

func newWorkoutView(w model.Workout) workoutView {
	return workoutView{Workout: w, Analysis: w.Analyze()}
}

// profileView is the stored profile with computed body metrics. Metrics is
// null until the profile has date of birth, height, weight and activity level.
type profileView struct {
	model.Profile
	Metrics *analysis.Metrics `json:"metrics"`
}
