// Package seed fills a user's dish and exercise libraries with sample data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lg/lifestyle-tracker-api/internal/store"
)

var (
	// ErrInProgress is returned when a seed for the same user is still running.
	ErrInProgress = errors.New("seeding already in progress")
	// ErrAlreadySeeded is returned when the libraries have data and force is off.
	ErrAlreadySeeded = errors.New("library already has data")
)

// Result reports what a seed run added. Per-item failures are collected in
// Errors rather than aborting the run.
type Result struct {
	DishesAdded    int      `json:"dishes_added"`
	ExercisesAdded int      `json:"exercises_added"`
	Errors         []string `json:"errors"`
	Message        string   `json:"message"`
}

// Seeder tracks which users have a seed run in flight.
type Seeder struct {
	store store.Store
	now   func() time.Time

	mu      sync.Mutex
	running map[string]bool
}

// New returns a Seeder writing to s.
func New(s store.Store) *Seeder {
	return &Seeder{store: s, now: time.Now, running: map[string]bool{}}
}

func (s *Seeder) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[userID] {
		return false
	}
	s.running[userID] = true
	return true
}

func (s *Seeder) release(userID string) {
	s.mu.Lock()
	delete(s.running, userID)
	s.mu.Unlock()
}

// Seed adds SampleDishes and SampleExercises to the user's libraries. Unless
// force is set, a user who already has dishes or exercises gets
// ErrAlreadySeeded and nothing is written.
func (s *Seeder) Seed(ctx context.Context, userID string, force bool) (Result, error) {
	if !s.acquire(userID) {
		return Result{}, ErrInProgress
	}
	defer s.release(userID)

	dishes, err := s.store.List(ctx, userID, store.EntityDish, store.All)
	if err != nil {
		return Result{}, fmt.Errorf("listing dishes: %w", err)
	}
	exercises, err := s.store.List(ctx, userID, store.EntityExercise, store.All)
	if err != nil {
		return Result{}, fmt.Errorf("listing exercises: %w", err)
	}
	if !force && (len(dishes) > 0 || len(exercises) > 0) {
		return Result{}, fmt.Errorf("%w: %d dishes and %d exercises", ErrAlreadySeeded, len(dishes), len(exercises))
	}

	res := Result{Errors: []string{}}
	for _, d := range SampleDishes {
		d.ID = uuid.NewString()
		d.CreatedAt = s.now().UTC()
		d.Normalize()
		if _, err := store.PutAs(ctx, s.store, userID, store.EntityDish, d.ID, d); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Error adding dish %s: %v", d.Name, err))
			continue
		}
		res.DishesAdded++
	}
	for _, e := range SampleExercises {
		e.ID = uuid.NewString()
		e.CreatedAt = s.now().UTC()
		if _, err := store.PutAs(ctx, s.store, userID, store.EntityExercise, e.ID, e); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Error adding exercise %s: %v", e.Name, err))
			continue
		}
		res.ExercisesAdded++
	}

	if len(res.Errors) > 0 {
		log.Printf("[seed] %d errors for user %s: %v", len(res.Errors), userID, res.Errors)
	}
	res.Message = fmt.Sprintf("Successfully added %d dishes and %d exercises!", res.DishesAdded, res.ExercisesAdded)
	return res, nil
}
