package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
)

// The analyze endpoints score unsaved input. Nothing is read from or written
// to the store.

// analyzeSleep scores a bedtime and wake time.
// POST /api/analyze/sleep. Body: { "bedtime": "HH:MM", "wake_time": "HH:MM" }.
func (h *Handler) analyzeSleep(c *gin.Context) {
	var body sleepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := analysis.AnalyzeSleep(body.Bedtime, body.WakeTime)
	if errors.Is(err, analysis.ErrInvalidTime) {
		apiError(c, http.StatusBadRequest, "bedtime and wake_time must be HH:MM")
		return
	}
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, a)
}

// analyzeMeal scores one meal. Unknown meal types score 50.
// POST /api/analyze/meal. Body: { "meal_type": "lunch", "protein": 30, ... }.
func (h *Handler) analyzeMeal(c *gin.Context) {
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	c.JSON(http.StatusOK, analysis.AnalyzeMeal(body.MealType, body.Macros))
}

// analyzeBody computes body metrics for an unsaved profile.
// POST /api/analyze/body. Body: same shape as PUT /api/profile.
func (h *Handler) analyzeBody(c *gin.Context) {
	var p model.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(p); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	m := h.profileMetrics(p)
	if m == nil {
		apiError(c, http.StatusBadRequest, "date_of_birth, height, weight and activity_level are required")
		return
	}
	c.JSON(http.StatusOK, m)
}

// analyzeWorkout summarizes an unsaved workout.
// POST /api/analyze/workout. Body: same shape as PUT /api/workouts/:date.
func (h *Handler) analyzeWorkout(c *gin.Context) {
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
	c.JSON(http.StatusOK, analysis.AnalyzeWorkout(body.Exercises, mins))
}
