package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores records as jsonb rows in the records table. The schema is
// created by the db/ migrations.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a connection pool. A pool (not a single conn) survives
// hosted providers closing idle connections.
func OpenPostgres(ctx context.Context, dbURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// schema changes behind a pooler.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// recordRow is the scan shape of records. data is selected as text because
// simple protocol would send a []byte parameter as bytea.
type recordRow struct {
	UserID    string    `db:"user_id"`
	Entity    string    `db:"entity"`
	Key       string    `db:"key"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r recordRow) record() Record {
	return Record{
		UserID:    r.UserID,
		Entity:    Entity(r.Entity),
		Key:       r.Key,
		Data:      []byte(r.Data),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const recordColumns = `user_id::text AS user_id, entity, key, data::text AS data, created_at, updated_at`

const userColumns = `id::text AS id, username, email, password, created_at`

/* ─── Query helpers ──────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// pgx.ErrNoRows is mapped to ErrNotFound.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return result, ErrNotFound
	}
	if err != nil {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

/* ─── Records ────────────────────────────────────────────────────────── */

func (p *Postgres) Get(ctx context.Context, userID string, entity Entity, key string) (Record, error) {
	row, err := queryOne[recordRow](ctx, p.pool,
		`SELECT `+recordColumns+` FROM records
		 WHERE user_id = @userID::uuid AND entity = @entity AND key = @key`,
		pgx.NamedArgs{"userID": userID, "entity": string(entity), "key": key})
	if err != nil {
		return Record{}, err
	}
	return row.record(), nil
}

func (p *Postgres) List(ctx context.Context, userID string, entity Entity, r KeyRange) ([]Record, error) {
	rows, err := queryMany[recordRow](ctx, p.pool,
		`SELECT `+recordColumns+` FROM records
		 WHERE user_id = @userID::uuid AND entity = @entity
		   AND (@from = '' OR key >= @from)
		   AND (@to = '' OR key <= @to)
		 ORDER BY key DESC`,
		pgx.NamedArgs{"userID": userID, "entity": string(entity), "from": r.From, "to": r.To})
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record())
	}
	return out, nil
}

func (p *Postgres) Upsert(ctx context.Context, userID string, entity Entity, key string, data []byte) (Record, error) {
	row, err := queryOne[recordRow](ctx, p.pool,
		`INSERT INTO records (user_id, entity, key, data)
		 VALUES (@userID::uuid, @entity, @key, @data::jsonb)
		 ON CONFLICT (user_id, entity, key) DO UPDATE
		   SET data = EXCLUDED.data, updated_at = now()
		 RETURNING `+recordColumns,
		pgx.NamedArgs{"userID": userID, "entity": string(entity), "key": key, "data": string(data)})
	if err != nil {
		return Record{}, err
	}
	return row.record(), nil
}

func (p *Postgres) Delete(ctx context.Context, userID string, entity Entity, key string) error {
	result, err := p.pool.Exec(ctx,
		"DELETE FROM records WHERE user_id = @userID::uuid AND entity = @entity AND key = @key",
		pgx.NamedArgs{"userID": userID, "entity": string(entity), "key": key})
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ─── Users ──────────────────────────────────────────────────────────── */

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

func (p *Postgres) CreateUser(ctx context.Context, u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	created, err := queryOne[User](ctx, p.pool,
		`INSERT INTO users (id, username, email, password)
		 VALUES (@id::uuid, @username, @email, @password)
		 RETURNING `+userColumns,
		pgx.NamedArgs{"id": u.ID, "username": u.Username, "email": u.Email, "password": u.Password})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrUserExists
	}
	return created, err
}

func (p *Postgres) UserByUsername(ctx context.Context, username string) (User, error) {
	return queryOne[User](ctx, p.pool,
		"SELECT "+userColumns+" FROM users WHERE username = @username",
		pgx.NamedArgs{"username": username})
}

func (p *Postgres) UserByID(ctx context.Context, id string) (User, error) {
	if uuid.Validate(id) != nil {
		return User{}, ErrNotFound
	}
	return queryOne[User](ctx, p.pool,
		"SELECT "+userColumns+" FROM users WHERE id = @id::uuid",
		pgx.NamedArgs{"id": id})
}
