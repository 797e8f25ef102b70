package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// listActivity returns activity entries with totals, newest first.
// GET /api/activity?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params optional.
func (h *Handler) listActivity(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	entries, err := store.ListAs[model.ActivityEntry](c, h.store, currentUser(c), store.EntityActivity, r)
	if err != nil {
		storeError(c, "listActivity", err, "")
		return
	}
	views := make([]activityView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newActivityView(e))
	}
	c.JSON(http.StatusOK, views)
}

// getActivity returns the activity entry for one date.
// GET /api/activity/:date.
func (h *Handler) getActivity(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	e, err := store.GetAs[model.ActivityEntry](c, h.store, currentUser(c), store.EntityActivity, date)
	if err != nil {
		storeError(c, "getActivity", err, "activity entry not found")
		return
	}
	c.JSON(http.StatusOK, newActivityView(e))
}

// putActivity creates or replaces a day's steps and gym sessions. Session
// calories are computed from minutes and intensity.
// PUT /api/activity/:date. Body: { "steps": 8000, "gym_sessions": [{ "minutes": 30, "intensity": "moderate" }] }.
func (h *Handler) putActivity(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	var body activityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Steps < 0 {
		apiError(c, http.StatusBadRequest, "steps must not be negative")
		return
	}
	for _, s := range body.GymSessions {
		if s.Minutes < 0 {
			apiError(c, http.StatusBadRequest, "gym session minutes must not be negative")
			return
		}
		if s.Intensity != "" && !analysis.IsIntensity(s.Intensity) {
			apiError(c, http.StatusBadRequest, "intensity must be one of: light, moderate, intense")
			return
		}
	}

	e := model.NewActivityEntry(date, body.Steps, body.GymSessions)
	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityActivity, date, e); err != nil {
		storeError(c, "putActivity", err, "")
		return
	}
	c.JSON(http.StatusOK, newActivityView(e))
}

// deleteActivity removes the activity entry for a date.
// DELETE /api/activity/:date. Returns 204 on success, 404 if not found.
func (h *Handler) deleteActivity(c *gin.Context) {
	h.deleteDay(c, store.EntityActivity, "deleteActivity", "activity entry not found")
}
