package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// workoutDuration validates a workout body and resolves its duration. A
// non-empty message means the body was rejected.
func workoutDuration(body *workoutRequest) (int, string) {
	for i := range body.Exercises {
		ex := &body.Exercises[i]
		ex.ExerciseName = strings.TrimSpace(ex.ExerciseName)
		if ex.ExerciseName == "" {
			return 0, "exercise_name is required"
		}
		for _, s := range ex.Sets {
			if s.Weight < 0 || s.Reps < 0 {
				return 0, "weight and reps must not be negative"
			}
		}
	}
	if body.StartTime != "" && body.EndTime != "" {
		mins, err := analysis.ElapsedMinutes(body.StartTime, body.EndTime)
		if errors.Is(err, analysis.ErrInvalidTime) {
			return 0, "start_time and end_time must be HH:MM"
		}
		return mins, ""
	}
	if body.DurationMins < 0 {
		return 0, "duration_mins must not be negative"
	}
	return body.DurationMins, ""
}

// listWorkouts returns workouts with analysis, newest first.
// GET /api/workouts?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params optional.
func (h *Handler) listWorkouts(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	workouts, err := store.ListAs[model.Workout](c, h.store, currentUser(c), store.EntityWorkout, r)
	if err != nil {
		storeError(c, "listWorkouts", err, "")
		return
	}
	views := make([]workoutView, 0, len(workouts))
	for _, w := range workouts {
		views = append(views, newWorkoutView(w))
	}
	c.JSON(http.StatusOK, views)
}

// getWorkout returns the workout for one date.
// GET /api/workouts/:date.
func (h *Handler) getWorkout(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	w, err := store.GetAs[model.Workout](c, h.store, currentUser(c), store.EntityWorkout, date)
	if err != nil {
		storeError(c, "getWorkout", err, "workout not found")
		return
	}
	c.JSON(http.StatusOK, newWorkoutView(w))
}

// putWorkout creates or replaces the workout for a date. The workout id is
// assigned on first save and kept on later saves for the same date.
// PUT /api/workouts/:date.
func (h *Handler) putWorkout(c *gin.Context) {
	userID := currentUser(c)
	date, ok := pathDate(c)
	if !ok {
		return
	}
	var body workoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	mins, msg := workoutDuration(&body)
	if msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	id := uuid.NewString()
	existing, err := store.GetAs[model.Workout](c, h.store, userID, store.EntityWorkout, date)
	switch {
	case err == nil:
		id = existing.ID
	case !errors.Is(err, store.ErrNotFound):
		storeError(c, "putWorkout", err, "")
		return
	}

	exercises := body.Exercises
	if exercises == nil {
		exercises = []analysis.ExerciseLog{}
	}
	w := model.Workout{
		ID:           id,
		Date:         date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		DurationMins: mins,
		Exercises:    exercises,
		Notes:        body.Notes,
	}
	if _, err := store.PutAs(c, h.store, userID, store.EntityWorkout, date, w); err != nil {
		storeError(c, "putWorkout", err, "")
		return
	}
	c.JSON(http.StatusOK, newWorkoutView(w))
}

// deleteWorkout removes the workout for a date.
// DELETE /api/workouts/:date. Returns 204 on success, 404 if not found.
func (h *Handler) deleteWorkout(c *gin.Context) {
	h.deleteDay(c, store.EntityWorkout, "deleteWorkout", "workout not found")
}
