package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

// profileMetrics computes body metrics for p, or nil when the profile is
// incomplete.
func (h *Handler) profileMetrics(p model.Profile) *analysis.Metrics {
	m, ok := analysis.ComputeMetrics(p.Body(), h.now())
	if !ok {
		return nil
	}
	return &m
}

// validateProfile checks enumerations and ranges. Returns a message when the
// profile is rejected.
func validateProfile(p model.Profile) string {
	if p.DateOfBirth != "" && !model.ValidDate(p.DateOfBirth) {
		return "invalid date_of_birth, expected YYYY-MM-DD"
	}
	if p.Sex != "" && p.Sex != analysis.SexMale && p.Sex != analysis.SexFemale {
		return "sex must be male or female"
	}
	if p.Height < 0 || p.Weight < 0 || p.TargetWeight < 0 || p.ActivityLevel < 0 {
		return "height, weight, target_weight and activity_level must not be negative"
	}
	return ""
}

// getProfile returns the user's profile with computed body metrics. A user
// with no saved profile gets an empty one.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := store.GetAs[model.Profile](c, h.store, currentUser(c), store.EntityProfile, store.ProfileKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeError(c, "getProfile", err, "")
		return
	}
	c.JSON(http.StatusOK, profileView{Profile: p, Metrics: h.profileMetrics(p)})
}

// putProfile replaces the user's profile.
// PUT /api/profile.
func (h *Handler) putProfile(c *gin.Context) {
	var p model.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(p); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityProfile, store.ProfileKey, p); err != nil {
		storeError(c, "putProfile", err, "")
		return
	}
	c.JSON(http.StatusOK, profileView{Profile: p, Metrics: h.profileMetrics(p)})
}
