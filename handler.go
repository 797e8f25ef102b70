package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/config"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/seed"
	"lg/lifestyle-tracker-api/internal/store"
)

// Handler holds shared dependencies (store, token settings, config) for all
// route handlers.
type Handler struct {
	store         store.Store
	seeder        *seed.Seeder
	jwtKey        []byte
	tokenTTL      time.Duration
	openAIBaseURL string           // Base URL for OpenAI API (overridable for tests)
	now           func() time.Time // Clock for "today" defaults and ages
}

// newHandler wires a Handler from config.
func newHandler(s store.Store, cfg config.Config) *Handler {
	return &Handler{
		store:         s,
		seeder:        seed.New(s),
		jwtKey:        cfg.JWTKey,
		tokenTTL:      cfg.TokenTTL,
		openAIBaseURL: cfg.OpenAIBaseURL,
		now:           time.Now,
	}
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// storeError maps a store failure to 404 or 500. 500s are logged with the
// calling handler's name; the server keeps running.
func storeError(c *gin.Context, fn string, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		apiError(c, http.StatusNotFound, notFound)
		return
	}
	log.Printf("[%s] store error: %v", fn, err)
	apiError(c, http.StatusInternalServerError, "storage request failed")
}

// currentUser returns the user_id set by authMiddleware.
func currentUser(c *gin.Context) string {
	return c.GetString("user_id")
}

/* ─── Date helpers ───────────────────────────────────────────────────── */

// pathDate validates the :date path parameter. Writes a 400 and returns false
// when it is not YYYY-MM-DD.
func pathDate(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if !model.ValidDate(date) {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// dateRange reads optional ?start= and ?end= query params into a key range.
// Writes a 400 and returns false on malformed or inverted bounds.
func dateRange(c *gin.Context) (store.KeyRange, bool) {
	start, end := c.Query("start"), c.Query("end")
	if start != "" && !model.ValidDate(start) {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return store.KeyRange{}, false
	}
	if end != "" && !model.ValidDate(end) {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return store.KeyRange{}, false
	}
	if start != "" && end != "" && start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return store.KeyRange{}, false
	}
	return store.KeyRange{From: start, To: end}, true
}

// today returns the handler clock's date as YYYY-MM-DD.
func (h *Handler) today() string {
	return h.now().Format(model.DateLayout)
}

/* ─── Routes ─────────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/healthz", h.healthz)
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())

	api.GET("/sleep", h.listSleep)
	api.GET("/sleep/:date", h.getSleep)
	api.PUT("/sleep/:date", h.putSleep)
	api.DELETE("/sleep/:date", h.deleteSleep)

	api.GET("/activity", h.listActivity)
	api.GET("/activity/:date", h.getActivity)
	api.PUT("/activity/:date", h.putActivity)
	api.DELETE("/activity/:date", h.deleteActivity)

	api.GET("/nutrition", h.listNutrition)
	api.GET("/nutrition/:date", h.getNutrition)
	api.PUT("/nutrition/:date", h.putNutrition)
	api.DELETE("/nutrition/:date", h.deleteNutrition)

	api.GET("/dishes", h.listDishes)
	api.POST("/dishes", h.createDish)
	api.POST("/dishes/suggest", h.suggestDish)
	api.PUT("/dishes/:id", h.updateDish)
	api.DELETE("/dishes/:id", h.deleteDish)

	api.GET("/exercises", h.listExercises)
	api.POST("/exercises", h.createExercise)
	api.PUT("/exercises/:id", h.updateExercise)
	api.DELETE("/exercises/:id", h.deleteExercise)

	api.GET("/workouts", h.listWorkouts)
	api.GET("/workouts/:date", h.getWorkout)
	api.PUT("/workouts/:date", h.putWorkout)
	api.DELETE("/workouts/:date", h.deleteWorkout)

	api.GET("/profile", h.getProfile)
	api.PUT("/profile", h.putProfile)

	api.GET("/daily", h.getDaily)

	api.POST("/analyze/sleep", h.analyzeSleep)
	api.POST("/analyze/meal", h.analyzeMeal)
	api.POST("/analyze/body", h.analyzeBody)
	api.POST("/analyze/workout", h.analyzeWorkout)

	api.POST("/seed", h.seedLibrary)
}

// healthz reports liveness. GET /healthz (public).
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
