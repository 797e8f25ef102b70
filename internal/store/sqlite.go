package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite is an in-process record store for local use and tests. It creates
// its schema on open.
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	email      TEXT NOT NULL DEFAULT '',
	password   TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	entity     TEXT NOT NULL,
	key        TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (user_id, entity, key)
);
`

// OpenSQLite opens (creating if needed) the database at dsn. ":memory:" gives
// a private database that lives as long as the store.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection: every :memory: connection is its own database, and
	// SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Timestamps are stored as RFC 3339 text in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec                  Record
		entity, data         string
		createdAt, updatedAt string
	)
	if err := row.Scan(&rec.UserID, &entity, &rec.Key, &data, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.Entity = Entity(entity)
	rec.Data = []byte(data)
	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return Record{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return Record{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return rec, nil
}

/* ─── Records ────────────────────────────────────────────────────────── */

func (s *SQLite) Get(ctx context.Context, userID string, entity Entity, key string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, entity, key, data, created_at, updated_at FROM records
		 WHERE user_id = ? AND entity = ? AND key = ?`,
		userID, string(entity), key)
	return scanRecord(row)
}

func (s *SQLite) List(ctx context.Context, userID string, entity Entity, r KeyRange) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, entity, key, data, created_at, updated_at FROM records
		 WHERE user_id = ? AND entity = ?
		   AND (? = '' OR key >= ?)
		   AND (? = '' OR key <= ?)
		 ORDER BY key DESC`,
		userID, string(entity), r.From, r.From, r.To, r.To)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entity, err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLite) Upsert(ctx context.Context, userID string, entity Entity, key string, data []byte) (Record, error) {
	now := formatTime(time.Now())
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO records (user_id, entity, key, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, entity, key) DO UPDATE
		   SET data = excluded.data, updated_at = excluded.updated_at
		 RETURNING user_id, entity, key, data, created_at, updated_at`,
		userID, string(entity), key, string(data), now, now)
	return scanRecord(row)
}

func (s *SQLite) Delete(ctx context.Context, userID string, entity Entity, key string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE user_id = ? AND entity = ? AND key = ?",
		userID, string(entity), key)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

/* ─── Users ──────────────────────────────────────────────────────────── */

func (s *SQLite) CreateUser(ctx context.Context, u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, password, created_at) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Username, u.Email, u.Password, formatTime(u.CreatedAt))
	// The low byte is the primary result code whether or not extended codes
	// are enabled; users has no foreign keys, so any constraint hit is a
	// duplicate.
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return User{}, ErrUserExists
	}
	if err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

func (s *SQLite) userBy(ctx context.Context, column, value string) (User, error) {
	var (
		u         User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password, created_at FROM users WHERE "+column+" = ?", value).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return User{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return u, nil
}

func (s *SQLite) UserByUsername(ctx context.Context, username string) (User, error) {
	return s.userBy(ctx, "username", username)
}

func (s *SQLite) UserByID(ctx context.Context, id string) (User, error) {
	return s.userBy(ctx, "id", id)
}
