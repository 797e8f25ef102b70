package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/seed"
	"lg/lifestyle-tracker-api/internal/store"
)

const (
	testUserID   = "6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"
	testUsername = "jordan"
	testPassword = "correct horse"
)

// testNow is the fixed clock used by handler tests.
var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// newTestHandler returns a Handler backed by an in-memory SQLite store with
// one user (testUserID) and a fixed clock.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()

	s, err := store.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := s.CreateUser(ctx, store.User{ID: testUserID, Username: testUsername, Password: string(hash)}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return &Handler{
		store:    s,
		seeder:   seed.New(s),
		jwtKey:   []byte("test-signing-key"),
		tokenTTL: time.Hour,
		now:      func() time.Time { return testNow },
	}
}

// testAPI is a router with every route registered plus a valid token.
type testAPI struct {
	h      *Handler
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)
	router := gin.New()
	h.registerRoutes(router)

	token, _, err := h.issueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &testAPI{h: h, router: router, token: token}
}

// do sends an authenticated request and returns the recorder.
func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set("Authorization", "Bearer "+a.token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)
	return w
}

// decode unmarshals a response body, failing the test on error.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func listTestDishes(t *testing.T, h *Handler) []model.Dish {
	t.Helper()
	dishes, err := store.ListAs[model.Dish](context.Background(), h.store, testUserID, store.EntityDish, store.All)
	if err != nil {
		t.Fatalf("list dishes: %v", err)
	}
	return dishes
}

/* ─── Auth ───────────────────────────────────────────────────────────── */

func TestLogin(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"valid credentials", `{"username":"jordan","password":"correct horse"}`, http.StatusOK},
		{"wrong password", `{"username":"jordan","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"nobody","password":"correct horse"}`, http.StatusUnauthorized},
		{"malformed body", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/login", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			a.router.ServeHTTP(w, r)
			expectStatus(t, w, tt.wantCode)
		})
	}

	t.Run("token authenticates", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"jordan","password":"correct horse"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.router.ServeHTTP(w, r)

		var resp struct {
			Token  string `json:"token"`
			UserID string `json:"user_id"`
		}
		decode(t, w, &resp)
		if resp.UserID != testUserID {
			t.Errorf("expected user_id %s, got %s", testUserID, resp.UserID)
		}
		a.token = resp.Token
		expectStatus(t, a.do("GET", "/api/sleep", ""), http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	a := newTestAPI(t)

	expired, _, err := (&Handler{
		jwtKey:   a.h.jwtKey,
		tokenTTL: time.Hour,
		now:      func() time.Time { return testNow.Add(-2 * time.Hour) },
	}).issueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	otherKey, _, err := (&Handler{jwtKey: []byte("other"), tokenTTL: time.Hour, now: a.h.now}).issueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	ghost, _, err := a.h.issueToken("0b9e7c1a-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + otherKey},
		{"unknown user", "Bearer " + ghost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/profile", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			a.router.ServeHTTP(w, r)
			expectStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestHealthz(t *testing.T) {
	a := newTestAPI(t)
	r := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)
	expectStatus(t, w, http.StatusOK)
}

/* ─── Sleep ──────────────────────────────────────────────────────────── */

func TestSleepLog(t *testing.T) {
	a := newTestAPI(t)

	t.Run("put recomputes derived fields", func(t *testing.T) {
		w := a.do("PUT", "/api/sleep/2026-10-14", `{"bedtime":"23:00","wake_time":"07:00","duration_mins":1,"rating":"Poor"}`)
		expectStatus(t, w, http.StatusOK)

		var resp sleepView
		decode(t, w, &resp)
		if resp.DurationMins != 480 {
			t.Errorf("expected duration_mins 480, got %d", resp.DurationMins)
		}
		if resp.Duration != "8h" {
			t.Errorf("expected duration '8h', got %q", resp.Duration)
		}
		if resp.Rating == "Poor" || resp.Rating == "" {
			t.Errorf("expected a recomputed rating, got %q", resp.Rating)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		w := a.do("PUT", "/api/sleep/2026-10-14", `{"bedtime":"25:00","wake_time":"07:00"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid date", func(t *testing.T) {
		w := a.do("PUT", "/api/sleep/14-10-2026", `{"bedtime":"23:00","wake_time":"07:00"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("list newest first within range", func(t *testing.T) {
		expectStatus(t, a.do("PUT", "/api/sleep/2026-10-12", `{"bedtime":"22:30","wake_time":"06:30"}`), http.StatusOK)
		expectStatus(t, a.do("PUT", "/api/sleep/2026-10-13", `{"bedtime":"00:30","wake_time":"06:00"}`), http.StatusOK)

		var all []sleepView
		decode(t, a.do("GET", "/api/sleep", ""), &all)
		if len(all) != 3 || all[0].Date != "2026-10-14" || all[2].Date != "2026-10-12" {
			t.Fatalf("expected 3 entries newest first, got %+v", all)
		}

		var ranged []sleepView
		decode(t, a.do("GET", "/api/sleep?start=2026-10-13&end=2026-10-14", ""), &ranged)
		if len(ranged) != 2 {
			t.Errorf("expected 2 entries in range, got %d", len(ranged))
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		expectStatus(t, a.do("GET", "/api/sleep?start=2026-10-14&end=2026-10-01", ""), http.StatusBadRequest)
	})

	t.Run("delete then get", func(t *testing.T) {
		expectStatus(t, a.do("DELETE", "/api/sleep/2026-10-14", ""), http.StatusNoContent)
		expectStatus(t, a.do("GET", "/api/sleep/2026-10-14", ""), http.StatusNotFound)
		expectStatus(t, a.do("DELETE", "/api/sleep/2026-10-14", ""), http.StatusNotFound)
	})
}

func TestSleepLog_EmptyListIsArray(t *testing.T) {
	a := newTestAPI(t)
	w := a.do("GET", "/api/sleep", "")
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected [], got %s", w.Body.String())
	}
}

/* ─── Activity ───────────────────────────────────────────────────────── */

func TestActivityLog(t *testing.T) {
	a := newTestAPI(t)

	t.Run("session calories recomputed", func(t *testing.T) {
		w := a.do("PUT", "/api/activity/2026-10-14",
			`{"steps":7500,"gym_sessions":[{"minutes":30,"intensity":"intense","calories":1},{"minutes":20}]}`)
		expectStatus(t, w, http.StatusOK)

		var resp activityView
		decode(t, w, &resp)
		if len(resp.GymSessions) != 2 {
			t.Fatalf("expected 2 sessions, got %+v", resp.GymSessions)
		}
		if resp.GymSessions[0].Calories != 300 {
			t.Errorf("expected intense session 300 kcal, got %d", resp.GymSessions[0].Calories)
		}
		if resp.GymSessions[1].Intensity != "moderate" || resp.GymSessions[1].Calories != 120 {
			t.Errorf("expected moderate 120 kcal default session, got %+v", resp.GymSessions[1])
		}
		if resp.Summary.TotalCalories != 338+300+120 {
			t.Errorf("expected total 758, got %d", resp.Summary.TotalCalories)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"negative steps", `{"steps":-1}`},
		{"negative minutes", `{"steps":10,"gym_sessions":[{"minutes":-5}]}`},
		{"unknown intensity", `{"steps":10,"gym_sessions":[{"minutes":5,"intensity":"extreme"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, a.do("PUT", "/api/activity/2026-10-14", tt.body), http.StatusBadRequest)
		})
	}
}

/* ─── Nutrition ──────────────────────────────────────────────────────── */

func TestNutritionLog(t *testing.T) {
	a := newTestAPI(t)

	w := a.do("PUT", "/api/nutrition/2026-10-14",
		`{"meals":{"lunch":{"protein":30,"carbs":45,"fats":12,"fiber":8}}}`)
	expectStatus(t, w, http.StatusOK)

	var resp nutritionView
	decode(t, w, &resp)
	if resp.Analysis.MealsLogged != 1 {
		t.Errorf("expected 1 meal logged, got %d", resp.Analysis.MealsLogged)
	}

	tests := []struct {
		name string
		body string
	}{
		{"unknown slot", `{"meals":{"brunch":{"protein":10}}}`},
		{"negative macro", `{"meals":{"lunch":{"protein":-1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, a.do("PUT", "/api/nutrition/2026-10-14", tt.body), http.StatusBadRequest)
		})
	}
}

/* ─── Libraries ──────────────────────────────────────────────────────── */

func TestDishes(t *testing.T) {
	a := newTestAPI(t)

	w := a.do("POST", "/api/dishes", `{"name":"  Oatmeal ","protein":5,"carbs":27,"fats":3,"calories":9999}`)
	expectStatus(t, w, http.StatusCreated)
	var d model.Dish
	decode(t, w, &d)
	if d.Name != "Oatmeal" || d.Calories != 155 || d.Category != "other" {
		t.Errorf("expected Oatmeal/155 kcal/other, got %+v", d)
	}

	w = a.do("PUT", "/api/dishes/"+d.ID, `{"name":"Oatmeal","category":"carbs","protein":10,"carbs":27,"fats":3}`)
	expectStatus(t, w, http.StatusOK)
	var updated model.Dish
	decode(t, w, &updated)
	if updated.Calories != 175 || !updated.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("expected 175 kcal with original created_at, got %+v", updated)
	}

	expectStatus(t, a.do("POST", "/api/dishes", `{"name":""}`), http.StatusBadRequest)
	expectStatus(t, a.do("PUT", "/api/dishes/missing", `{"name":"x"}`), http.StatusNotFound)
	expectStatus(t, a.do("DELETE", "/api/dishes/"+d.ID, ""), http.StatusNoContent)
	expectStatus(t, a.do("DELETE", "/api/dishes/"+d.ID, ""), http.StatusNotFound)
}

func TestExercises(t *testing.T) {
	a := newTestAPI(t)

	expectStatus(t, a.do("POST", "/api/exercises", `{"name":"Squat","category":"legs"}`), http.StatusCreated)
	expectStatus(t, a.do("POST", "/api/exercises", `{"name":"Bicep Curl","category":"arms"}`), http.StatusCreated)

	var list []exerciseView
	decode(t, a.do("GET", "/api/exercises", ""), &list)
	if len(list) != 2 || list[0].Name != "Bicep Curl" {
		t.Fatalf("expected exercises sorted by name, got %+v", list)
	}
	if list[0].CalorieCategory != "isolation" || list[1].CalorieCategory != "compound" {
		t.Errorf("unexpected calorie categories: %+v", list)
	}
	if list[0].MuscleGroup != nil {
		t.Errorf("expected no muscle group for category 'arms', got %+v", list[0].MuscleGroup)
	}
	if list[1].MuscleGroup == nil || list[1].MuscleGroup.Name != "Legs" {
		t.Errorf("expected Legs muscle group for Squat, got %+v", list[1].MuscleGroup)
	}

	expectStatus(t, a.do("POST", "/api/exercises", `{"name":" "}`), http.StatusBadRequest)
}

/* ─── Workouts ───────────────────────────────────────────────────────── */

func TestWorkouts(t *testing.T) {
	a := newTestAPI(t)

	body := `{"start_time":"18:00","end_time":"19:10","exercises":[{"exercise_name":"Bench Press","sets":[{"weight":80,"reps":8}]}]}`
	w := a.do("PUT", "/api/workouts/2026-10-14", body)
	expectStatus(t, w, http.StatusOK)
	var first workoutView
	decode(t, w, &first)
	if first.DurationMins != 70 || first.Analysis.Duration != "1h 10m" {
		t.Errorf("expected 70 minutes, got %d (%s)", first.DurationMins, first.Analysis.Duration)
	}

	w = a.do("PUT", "/api/workouts/2026-10-14", `{"duration_mins":45,"exercises":[]}`)
	expectStatus(t, w, http.StatusOK)
	var second workoutView
	decode(t, w, &second)
	if second.ID != first.ID {
		t.Errorf("expected workout id %s to be kept, got %s", first.ID, second.ID)
	}
	if second.DurationMins != 45 {
		t.Errorf("expected duration_mins 45, got %d", second.DurationMins)
	}

	expectStatus(t, a.do("PUT", "/api/workouts/2026-10-14", `{"exercises":[{"exercise_name":""}]}`), http.StatusBadRequest)
	expectStatus(t, a.do("PUT", "/api/workouts/2026-10-14", `{"start_time":"6pm","end_time":"19:00"}`), http.StatusBadRequest)
}

/* ─── Profile ────────────────────────────────────────────────────────── */

func TestProfile(t *testing.T) {
	a := newTestAPI(t)

	var empty profileView
	decode(t, a.do("GET", "/api/profile", ""), &empty)
	if empty.Metrics != nil {
		t.Errorf("expected null metrics for empty profile, got %+v", empty.Metrics)
	}

	w := a.do("PUT", "/api/profile",
		`{"name":"Jordan","date_of_birth":"1996-01-01","height":175,"weight":70,"sex":"male","activity_level":1.2,"target_weight":70}`)
	expectStatus(t, w, http.StatusOK)
	var p profileView
	decode(t, w, &p)
	if p.Metrics == nil {
		t.Fatal("expected metrics for complete profile")
	}
	if p.Metrics.Age != 30 || p.Metrics.BMR != 1649 {
		t.Errorf("expected age 30 and BMR 1649, got %d and %d", p.Metrics.Age, p.Metrics.BMR)
	}

	expectStatus(t, a.do("PUT", "/api/profile", `{"sex":"other"}`), http.StatusBadRequest)
	expectStatus(t, a.do("PUT", "/api/profile", `{"date_of_birth":"01/01/1996"}`), http.StatusBadRequest)
}

/* ─── Daily ──────────────────────────────────────────────────────────── */

func TestDaily(t *testing.T) {
	a := newTestAPI(t)

	expectStatus(t, a.do("PUT", "/api/sleep/2026-10-15", `{"bedtime":"23:00","wake_time":"07:00"}`), http.StatusOK)
	expectStatus(t, a.do("PUT", "/api/nutrition/2026-10-15",
		`{"meals":{"lunch":{"protein":30,"carbs":45,"fats":12}}}`), http.StatusOK)
	expectStatus(t, a.do("PUT", "/api/activity/2026-10-15", `{"steps":7500}`), http.StatusOK)

	var day struct {
		Date          string `json:"date"`
		CaloriesIn    int    `json:"calories_in"`
		SleepLogged   bool   `json:"sleep_logged"`
		WorkoutLogged bool   `json:"workout_logged"`
	}
	// No ?date= means today per the handler clock.
	decode(t, a.do("GET", "/api/daily", ""), &day)
	if day.Date != "2026-10-15" {
		t.Errorf("expected today's date, got %s", day.Date)
	}
	if day.CaloriesIn != 408 || !day.SleepLogged || day.WorkoutLogged {
		t.Errorf("unexpected daily summary: %+v", day)
	}

	expectStatus(t, a.do("GET", "/api/daily?date=yesterday", ""), http.StatusBadRequest)
}

func TestDaily_StoredSleepWithBadTimes(t *testing.T) {
	a := newTestAPI(t)

	// Written outside the handlers, so the times never went through validation.
	stored := model.SleepEntry{Date: "2026-10-15", Bedtime: "late", WakeTime: "07:00", DurationMins: 420, AverageScore: 85, Rating: "great"}
	if _, err := store.PutAs(context.Background(), a.h.store, testUserID, store.EntitySleep, stored.Date, stored); err != nil {
		t.Fatalf("put sleep: %v", err)
	}

	var day struct {
		SleepLogged bool `json:"sleep_logged"`
		Sleep       *struct {
			Rating   string `json:"rating"`
			Duration string `json:"duration"`
		} `json:"sleep"`
	}
	decode(t, a.do("GET", "/api/daily?date=2026-10-15", ""), &day)
	if !day.SleepLogged || day.Sleep == nil {
		t.Fatalf("expected stored sleep to count as logged, got %+v", day)
	}
	if day.Sleep.Rating != "great" || day.Sleep.Duration != "7h" {
		t.Errorf("expected stored rating and duration, got %+v", *day.Sleep)
	}
}

/* ─── Analyze ────────────────────────────────────────────────────────── */

func TestAnalyzeEndpoints(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{"sleep", "/api/analyze/sleep", `{"bedtime":"23:00","wake_time":"07:00"}`, http.StatusOK},
		{"sleep bad time", "/api/analyze/sleep", `{"bedtime":"x","wake_time":"07:00"}`, http.StatusBadRequest},
		{"meal", "/api/analyze/meal", `{"meal_type":"lunch","protein":30,"carbs":45,"fats":12}`, http.StatusOK},
		{"meal unknown type", "/api/analyze/meal", `{"meal_type":"brunch","protein":30}`, http.StatusOK},
		{"body", "/api/analyze/body", `{"date_of_birth":"1996-01-01","height":175,"weight":70,"sex":"male","activity_level":1.2}`, http.StatusOK},
		{"body incomplete", "/api/analyze/body", `{"height":175}`, http.StatusBadRequest},
		{"workout", "/api/analyze/workout", `{"duration_mins":40,"exercises":[{"exercise_name":"Squat","sets":[{"weight":100,"reps":5}]}]}`, http.StatusOK},
		{"workout bad set", "/api/analyze/workout", `{"exercises":[{"exercise_name":"Squat","sets":[{"weight":-1,"reps":5}]}]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, a.do("POST", tt.path, tt.body), tt.wantCode)
		})
	}

	// Stateless: nothing was stored.
	var workouts []workoutView
	decode(t, a.do("GET", "/api/workouts", ""), &workouts)
	if len(workouts) != 0 {
		t.Errorf("expected no stored workouts, got %d", len(workouts))
	}
}

/* ─── Seed ───────────────────────────────────────────────────────────── */

func TestSeedLibrary(t *testing.T) {
	a := newTestAPI(t)

	w := a.do("POST", "/api/seed", "")
	expectStatus(t, w, http.StatusCreated)
	var res seed.Result
	decode(t, w, &res)
	if res.DishesAdded != len(seed.SampleDishes) || res.ExercisesAdded != len(seed.SampleExercises) {
		t.Errorf("expected full library, got %+v", res)
	}

	expectStatus(t, a.do("POST", "/api/seed", ""), http.StatusConflict)
	expectStatus(t, a.do("POST", "/api/seed?force=true", ""), http.StatusCreated)

	if got := len(listTestDishes(t, a.h)); got != 2*len(seed.SampleDishes) {
		t.Errorf("expected %d dishes after forced reseed, got %d", 2*len(seed.SampleDishes), got)
	}
}
