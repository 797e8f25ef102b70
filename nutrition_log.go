package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// listNutrition returns nutrition entries scored on read, newest first.
// GET /api/nutrition?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params optional.
func (h *Handler) listNutrition(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	entries, err := store.ListAs[model.NutritionEntry](c, h.store, currentUser(c), store.EntityNutrition, r)
	if err != nil {
		storeError(c, "listNutrition", err, "")
		return
	}
	views := make([]nutritionView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newNutritionView(e))
	}
	c.JSON(http.StatusOK, views)
}

// getNutrition returns one day's meals with per-meal and daily scores.
// GET /api/nutrition/:date.
func (h *Handler) getNutrition(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	e, err := store.GetAs[model.NutritionEntry](c, h.store, currentUser(c), store.EntityNutrition, date)
	if err != nil {
		storeError(c, "getNutrition", err, "nutrition entry not found")
		return
	}
	c.JSON(http.StatusOK, newNutritionView(e))
}

// putNutrition creates or replaces a day's meals. Only breakfast, lunch,
// dinner and supper are accepted.
// PUT /api/nutrition/:date. Body: { "meals": { "breakfast": { "protein": 25, ... } } }.
func (h *Handler) putNutrition(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	var body nutritionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Meals == nil {
		body.Meals = map[string]analysis.Macros{}
	}
	e := model.NutritionEntry{Date: date, Meals: body.Meals}
	if err := e.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, "meals must be breakfast, lunch, dinner or supper")
		return
	}
	for _, m := range e.Meals {
		if m.Protein < 0 || m.Carbs < 0 || m.Fats < 0 || m.Fiber < 0 {
			apiError(c, http.StatusBadRequest, "macros must not be negative")
			return
		}
	}

	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityNutrition, date, e); err != nil {
		storeError(c, "putNutrition", err, "")
		return
	}
	c.JSON(http.StatusOK, newNutritionView(e))
}

// deleteNutrition removes the nutrition entry for a date.
// DELETE /api/nutrition/:date. Returns 204 on success, 404 if not found.
func (h *Handler) deleteNutrition(c *gin.Context) {
	h.deleteDay(c, store.EntityNutrition, "deleteNutrition", "nutrition entry not found")
}
