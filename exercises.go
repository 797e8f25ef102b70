package main

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// exerciseView adds the calorie category used by workout analysis and the
// muscles trained by the library category. MuscleGroup is null for categories
// outside push, pull, legs, core, cardio and other.
type exerciseView struct {
	model.Exercise
	CalorieCategory string                `json:"calorie_category"`
	MuscleGroup     *analysis.MuscleGroup `json:"muscle_group"`
}

func newExerciseView(e model.Exercise) exerciseView {
	v := exerciseView{Exercise: e, CalorieCategory: analysis.CalorieCategory(e.Name)}
	if g, ok := analysis.MuscleGroups[strings.ToLower(e.Category)]; ok {
		v.MuscleGroup = &g
	}
	return v
}

// listExercises returns the exercise library sorted by name.
// GET /api/exercises.
func (h *Handler) listExercises(c *gin.Context) {
	exercises, err := store.ListAs[model.Exercise](c, h.store, currentUser(c), store.EntityExercise, store.All)
	if err != nil {
		storeError(c, "listExercises", err, "")
		return
	}
	slices.SortStableFunc(exercises, func(a, b model.Exercise) int {
		return strings.Compare(a.Name, b.Name)
	})
	views := make([]exerciseView, 0, len(exercises))
	for _, e := range exercises {
		views = append(views, newExerciseView(e))
	}
	c.JSON(http.StatusOK, views)
}

// createExercise adds an exercise to the library.
// POST /api/exercises.
func (h *Handler) createExercise(c *gin.Context) {
	var body exerciseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}

	e := model.Exercise{
		ID:        uuid.NewString(),
		Name:      body.Name,
		Category:  body.Category,
		Equipment: body.Equipment,
		Notes:     body.Notes,
		CreatedAt: h.now().UTC(),
	}
	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityExercise, e.ID, e); err != nil {
		storeError(c, "createExercise", err, "")
		return
	}
	c.JSON(http.StatusCreated, newExerciseView(e))
}

// updateExercise replaces an exercise's fields, keeping its id.
// PUT /api/exercises/:id.
func (h *Handler) updateExercise(c *gin.Context) {
	userID := currentUser(c)
	id := c.Param("id")

	var body exerciseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}

	e, err := store.GetAs[model.Exercise](c, h.store, userID, store.EntityExercise, id)
	if err != nil {
		storeError(c, "updateExercise", err, "exercise not found")
		return
	}
	e.Name, e.Category, e.Equipment, e.Notes = body.Name, body.Category, body.Equipment, body.Notes

	if _, err := store.PutAs(c, h.store, userID, store.EntityExercise, id, e); err != nil {
		storeError(c, "updateExercise", err, "")
		return
	}
	c.JSON(http.StatusOK, newExerciseView(e))
}

// deleteExercise removes an exercise from the library.
// DELETE /api/exercises/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteExercise(c *gin.Context) {
	if err := h.store.Delete(c, currentUser(c), store.EntityExercise, c.Param("id")); err != nil {
		storeError(c, "deleteExercise", err, "exercise not found")
		return
	}
	c.Status(http.StatusNoContent)
}
