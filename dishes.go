package main

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// listDishes returns the dish library, most recently added first.
// GET /api/dishes.
func (h *Handler) listDishes(c *gin.Context) {
	dishes, err := store.ListAs[model.Dish](c, h.store, currentUser(c), store.EntityDish, store.All)
	if err != nil {
		storeError(c, "listDishes", err, "")
		return
	}
	slices.SortStableFunc(dishes, func(a, b model.Dish) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	c.JSON(http.StatusOK, dishes)
}

// validateDish checks a dish body. Writes a 400 and returns false on failure.
func validateDish(c *gin.Context, body *dishRequest) bool {
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return false
	}
	if body.Protein < 0 || body.Carbs < 0 || body.Fats < 0 {
		apiError(c, http.StatusBadRequest, "macros must not be negative")
		return false
	}
	return true
}

// createDish adds a dish to the library. Calories are derived from macros.
// POST /api/dishes.
func (h *Handler) createDish(c *gin.Context) {
	var body dishRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validateDish(c, &body) {
		return
	}

	d := model.Dish{
		ID:        uuid.NewString(),
		Name:      body.Name,
		Brand:     body.Brand,
		Category:  body.Category,
		Photo:     body.Photo,
		Protein:   body.Protein,
		Carbs:     body.Carbs,
		Fats:      body.Fats,
		CreatedAt: h.now().UTC(),
	}
	d.Normalize()
	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityDish, d.ID, d); err != nil {
		storeError(c, "createDish", err, "")
		return
	}
	c.JSON(http.StatusCreated, d)
}

// updateDish replaces a dish's fields, keeping its id and created_at.
// PUT /api/dishes/:id.
func (h *Handler) updateDish(c *gin.Context) {
	userID := currentUser(c)
	id := c.Param("id")

	var body dishRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validateDish(c, &body) {
		return
	}

	d, err := store.GetAs[model.Dish](c, h.store, userID, store.EntityDish, id)
	if err != nil {
		storeError(c, "updateDish", err, "dish not found")
		return
	}
	d.Name, d.Brand, d.Category, d.Photo = body.Name, body.Brand, body.Category, body.Photo
	d.Protein, d.Carbs, d.Fats = body.Protein, body.Carbs, body.Fats
	d.Normalize()

	if _, err := store.PutAs(c, h.store, userID, store.EntityDish, id, d); err != nil {
		storeError(c, "updateDish", err, "")
		return
	}
	c.JSON(http.StatusOK, d)
}

// deleteDish removes a dish from the library.
// DELETE /api/dishes/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteDish(c *gin.Context) {
	if err := h.store.Delete(c, currentUser(c), store.EntityDish, c.Param("id")); err != nil {
		storeError(c, "deleteDish", err, "dish not found")
		return
	}
	c.Status(http.StatusNoContent)
}
