package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// listSleep returns sleep entries, newest first.
// GET /api/sleep?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params optional.
func (h *Handler) listSleep(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	entries, err := store.ListAs[model.SleepEntry](c, h.store, currentUser(c), store.EntitySleep, r)
	if err != nil {
		storeError(c, "listSleep", err, "")
		return
	}
	views := make([]sleepView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newSleepView(e))
	}
	c.JSON(http.StatusOK, views)
}

// getSleep returns the sleep entry for one date.
// GET /api/sleep/:date.
func (h *Handler) getSleep(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	e, err := store.GetAs[model.SleepEntry](c, h.store, currentUser(c), store.EntitySleep, date)
	if err != nil {
		storeError(c, "getSleep", err, "sleep entry not found")
		return
	}
	c.JSON(http.StatusOK, newSleepView(e))
}

// putSleep creates or replaces the sleep entry for a date. Duration, rating
// and breakdown are recomputed from bedtime and wake_time.
// PUT /api/sleep/:date. Body: { "bedtime": "HH:MM", "wake_time": "HH:MM" }.
func (h *Handler) putSleep(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	var body sleepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := model.NewSleepEntry(date, body.Bedtime, body.WakeTime)
	if errors.Is(err, analysis.ErrInvalidTime) {
		apiError(c, http.StatusBadRequest, "bedtime and wake_time must be HH:MM")
		return
	}
	if err != nil {
		storeError(c, "putSleep", err, "")
		return
	}
	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntitySleep, date, e); err != nil {
		storeError(c, "putSleep", err, "")
		return
	}
	c.JSON(http.StatusOK, newSleepView(e))
}

// deleteSleep removes the sleep entry for a date.
// DELETE /api/sleep/:date. Returns 204 on success, 404 if not found.
func (h *Handler) deleteSleep(c *gin.Context) {
	h.deleteDay(c, store.EntitySleep, "deleteSleep", "sleep entry not found")
}

// deleteDay is the shared DELETE for per-day entities.
func (h *Handler) deleteDay(c *gin.Context, entity store.Entity, fn, notFound string) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c, currentUser(c), entity, date); err != nil {
		storeError(c, fn, err, notFound)
		return
	}
	c.Status(http.StatusNoContent)
}
