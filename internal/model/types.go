// Package model holds the records persisted per user. Derived fields are
// filled from internal/analysis; stored values are never trusted over a
// recomputation.
package model

import (
	"fmt"
	"math"
	"time"

	"lg/lifestyle-tracker-api/internal/analysis"
)

// DateLayout is the key format of per-day records.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

/* ─── Sleep ──────────────────────────────────────────────────────────── */

// SleepEntry is one night of sleep keyed by the date it was logged for.
// DurationMins, Rating, AverageScore and Breakdown are recomputed on save.
type SleepEntry struct {
	Date         string                  `json:"date"`
	Bedtime      string                  `json:"bedtime"`
	WakeTime     string                  `json:"wake_time"`
	DurationMins int                     `json:"duration_mins"`
	AverageScore float64                 `json:"average_score"`
	Rating       string                  `json:"rating"`
	Breakdown    analysis.SleepBreakdown `json:"breakdown"`
}

// NewSleepEntry scores bed and wake times and returns the entry to store.
func NewSleepEntry(date, bedtime, wakeTime string) (SleepEntry, error) {
	a, err := analysis.AnalyzeSleep(bedtime, wakeTime)
	if err != nil {
		return SleepEntry{}, err
	}
	return SleepEntry{
		Date:         date,
		Bedtime:      a.Bedtime,
		WakeTime:     a.WakeTime,
		DurationMins: a.DurationMins,
		AverageScore: a.AverageScore,
		Rating:       a.Rating,
		Breakdown:    a.Breakdown,
	}, nil
}

// Analysis returns the stored scores as an analysis result.
func (e SleepEntry) Analysis() analysis.SleepAnalysis {
	return analysis.SleepAnalysis{
		Bedtime:      e.Bedtime,
		WakeTime:     e.WakeTime,
		DurationMins: e.DurationMins,
		Duration:     analysis.FormatDuration(e.DurationMins),
		AverageScore: e.AverageScore,
		Rating:       e.Rating,
		Breakdown:    e.Breakdown,
	}
}

/* ─── Activity ───────────────────────────────────────────────────────── */

// ActivityEntry is a day's step count and gym sessions.
type ActivityEntry struct {
	Date        string                `json:"date"`
	Steps       int                   `json:"steps"`
	GymSessions []analysis.GymSession `json:"gym_sessions"`
}

// NewActivityEntry computes session calories from minutes and intensity.
// Empty intensities are stored as moderate.
func NewActivityEntry(date string, steps int, sessions []analysis.GymSession) ActivityEntry {
	out := make([]analysis.GymSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Intensity == "" {
			s.Intensity = analysis.IntensityModerate
		}
		s.Calories = analysis.GymCalories(s.Minutes, s.Intensity)
		out = append(out, s)
	}
	return ActivityEntry{Date: date, Steps: steps, GymSessions: out}
}

// Summary totals the entry's calories.
func (e ActivityEntry) Summary() analysis.ActivitySummary {
	return analysis.SummarizeActivity(e.Steps, e.GymSessions)
}

/* ─── Nutrition ──────────────────────────────────────────────────────── */

// NutritionEntry is a day's macros per meal slot.
type NutritionEntry struct {
	Date  string                     `json:"date"`
	Meals map[string]analysis.Macros `json:"meals"`
}

// Validate rejects meal slots outside breakfast, lunch, dinner and supper.
func (e NutritionEntry) Validate() error {
	for slot := range e.Meals {
		if !analysis.IsMealSlot(slot) {
			return fmt.Errorf("unknown meal %q", slot)
		}
	}
	return nil
}

/* ─── Libraries ──────────────────────────────────────────────────────── */

// DefaultDishCategory is used when a dish is saved without one.
const DefaultDishCategory = "other"

// Dish is a library food with per-serving macros.
type Dish struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     *string   `json:"brand"`
	Category  string    `json:"category"`
	Photo     *string   `json:"photo"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize fills the category default and derives calories from macros.
func (d *Dish) Normalize() {
	if d.Category == "" {
		d.Category = DefaultDishCategory
	}
	d.Calories = int(math.Round(analysis.CaloriesFromMacros(d.Protein, d.Carbs, d.Fats)))
}

// Exercise is a library movement.
type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Equipment *string   `json:"equipment"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

/* ─── Workouts ───────────────────────────────────────────────────────── */

// Workout is one training session per date. ID stays stable across updates.
type Workout struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	StartTime    string                 `json:"start_time"`
	EndTime      string                 `json:"end_time"`
	DurationMins int                    `json:"duration_mins"`
	Exercises    []analysis.ExerciseLog `json:"exercises"`
	Notes        *string                `json:"notes"`
}

// Analyze summarizes the session's volume, calories and duration.
func (w Workout) Analyze() analysis.WorkoutAnalysis {
	return analysis.AnalyzeWorkout(w.Exercises, w.DurationMins)
}

/* ─── Profile ────────────────────────────────────────────────────────── */

// Profile holds body stats. ActivityLevel is a TDEE multiplier such as 1.55.
// Body composition fields are stored for display only.
type Profile struct {
	Name           string  `json:"name"`
	DateOfBirth    string  `json:"date_of_birth"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	Sex            string  `json:"sex"`
	ActivityLevel  float64 `json:"activity_level"`
	TargetWeight   float64 `json:"target_weight"`
	TargetBodyFat  float64 `json:"target_body_fat"`
	CurrentBodyFat float64 `json:"current_body_fat"`
	CurrentWater   float64 `json:"current_water"`
	CurrentMuscle  float64 `json:"current_muscle"`
	CurrentBone    float64 `json:"current_bone"`
}

// Body converts the profile to calculator input. An unparseable date of
// birth is left zero, which the calculator treats as missing.
func (p Profile) Body() analysis.BodyProfile {
	dob, _ := time.Parse(DateLayout, p.DateOfBirth)
	return analysis.BodyProfile{
		DateOfBirth:   dob,
		HeightCM:      p.Height,
		WeightKG:      p.Weight,
		Sex:           p.Sex,
		ActivityLevel: p.ActivityLevel,
		TargetWeight:  p.TargetWeight,
	}
}
