package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/seed"
)

// seedLibrary adds the sample dishes and exercises to the user's libraries.
// POST /api/seed?force=true. Without force, a user who already has library
// data gets 409. A second request while one is running also gets 409.
func (h *Handler) seedLibrary(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	res, err := h.seeder.Seed(c, currentUser(c), force)
	switch {
	case errors.Is(err, seed.ErrInProgress):
		apiError(c, http.StatusConflict, "seeding already in progress")
		return
	case errors.Is(err, seed.ErrAlreadySeeded):
		apiError(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		storeError(c, "seedLibrary", err, "")
		return
	}
	c.JSON(http.StatusCreated, res)
}
