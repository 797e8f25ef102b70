package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// getOptional loads a record, treating ErrNotFound as "nothing logged".
func getOptional[T any](ctx context.Context, s store.Store, userID string, entity store.Entity, key string) (*T, error) {
	v, err := store.GetAs[T](ctx, s, userID, entity, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// loadDay gathers everything logged on date into analysis input.
func (h *Handler) loadDay(ctx context.Context, userID, date string) (analysis.DayInput, error) {
	in := analysis.DayInput{Date: date}

	sleep, err := getOptional[model.SleepEntry](ctx, h.store, userID, store.EntitySleep, date)
	if err != nil {
		return in, err
	}
	if sleep != nil {
		a, err := analysis.AnalyzeSleep(sleep.Bedtime, sleep.WakeTime)
		if err != nil {
			// Fall back to the scores saved with the entry.
			log.Printf("[getDaily] re-analyzing sleep for %s: %v", date, err)
			a = sleep.Analysis()
		}
		in.Sleep = &a
	}

	nutrition, err := getOptional[model.NutritionEntry](ctx, h.store, userID, store.EntityNutrition, date)
	if err != nil {
		return in, err
	}
	if nutrition != nil {
		in.Meals = nutrition.Meals
	}

	activity, err := getOptional[model.ActivityEntry](ctx, h.store, userID, store.EntityActivity, date)
	if err != nil {
		return in, err
	}
	if activity != nil {
		in.Steps = activity.Steps
		in.Sessions = activity.GymSessions
	}

	workout, err := getOptional[model.Workout](ctx, h.store, userID, store.EntityWorkout, date)
	if err != nil {
		return in, err
	}
	if workout != nil {
		a := workout.Analyze()
		in.Workout = &a
	}
	return in, nil
}

// getDaily returns the combined sleep, nutrition, activity and training
// summary for one day.
// GET /api/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDaily(c *gin.Context) {
	date := c.DefaultQuery("date", h.today())
	if !model.ValidDate(date) {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	in, err := h.loadDay(c, currentUser(c), date)
	if err != nil {
		storeError(c, "getDaily", err, "")
		return
	}
	c.JSON(http.StatusOK, analysis.SummarizeDay(in))
}
