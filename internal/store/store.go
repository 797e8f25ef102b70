// Package store persists per-user records keyed by (entity, key). Records hold
// JSON documents; the analysis layer derives everything else on read.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a record or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when a username is already taken.
	ErrUserExists = errors.New("user already exists")
)

// Entity names a record family.
type Entity string

const (
	EntitySleep     Entity = "sleep"
	EntityActivity  Entity = "activity"
	EntityNutrition Entity = "nutrition"
	EntityWorkout   Entity = "workout"
	EntityDish      Entity = "dish"
	EntityExercise  Entity = "exercise"
	EntityProfile   Entity = "profile"
)

// ProfileKey is the single key under which a user's profile is stored.
const ProfileKey = "profile"

// KeyRange bounds a List call. Both ends are inclusive; an empty end is open.
type KeyRange struct {
	From string
	To   string
}

// All is the unbounded range.
var All = KeyRange{}

// Record is one stored document.
type Record struct {
	UserID    string          `json:"user_id"`
	Entity    Entity          `json:"entity"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// User is an account that owns records. Password holds the bcrypt hash.
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Store is the keyed record store. Writes are last-write-wins; there are no
// cross-record transactions.
type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, userID string, entity Entity, key string) (Record, error)
	// List returns records in descending key order.
	List(ctx context.Context, userID string, entity Entity, r KeyRange) ([]Record, error)
	// Upsert inserts or replaces the record and keeps its original CreatedAt.
	Upsert(ctx context.Context, userID string, entity Entity, key string, data []byte) (Record, error)
	// Delete returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, userID string, entity Entity, key string) error

	CreateUser(ctx context.Context, u User) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)

	Close() error
}

// Open connects to the store named by dbURL. postgres:// and postgresql://
// URLs use Postgres; sqlite:, file: and bare paths use SQLite.
func Open(ctx context.Context, dbURL string) (Store, error) {
	switch {
	case dbURL == "":
		return nil, errors.New("empty database URL")
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return OpenPostgres(ctx, dbURL)
	default:
		return OpenSQLite(ctx, sqliteDSN(dbURL))
	}
}

// sqliteDSN strips the sqlite: scheme. file: URIs pass through unchanged.
func sqliteDSN(dbURL string) string {
	if rest, ok := strings.CutPrefix(dbURL, "sqlite://"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(dbURL, "sqlite:"); ok {
		return rest
	}
	return dbURL
}

/* ─── Typed helpers ──────────────────────────────────────────────────── */

// GetAs loads one record and decodes it into T.
func GetAs[T any](ctx context.Context, s Store, userID string, entity Entity, key string) (T, error) {
	var v T
	rec, err := s.Get(ctx, userID, entity, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(rec.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s/%s: %w", entity, key, err)
	}
	return v, nil
}

// ListAs loads records in r and decodes each into T. The result is never nil.
func ListAs[T any](ctx context.Context, s Store, userID string, entity Entity, r KeyRange) ([]T, error) {
	recs, err := s.List(ctx, userID, entity, r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := json.Unmarshal(rec.Data, &v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", entity, rec.Key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// PutAs encodes v and upserts it under key.
func PutAs[T any](ctx context.Context, s Store, userID string, entity Entity, key string, v T) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("encode %s/%s: %w", entity, key, err)
	}
	return s.Upsert(ctx, userID, entity, key, data)
}
