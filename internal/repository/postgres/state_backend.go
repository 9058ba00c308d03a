package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/lib/pq"

	"agtechsummit/internal/domain"
)

// Supported database/sql driver names.
const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

const createStateTable = `
	CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// StateBackend stores snapshots as JSONB rows keyed by storage key.
type StateBackend struct {
	DB *sql.DB
}

var _ domain.StateBackend = (*StateBackend)(nil)

// Open connects with driver (DriverPQ or DriverPGX), pings the server and ensures the
// app_state table exists.
func Open(ctx context.Context, driver, dsn string) (*StateBackend, error) {
	if driver == "" {
		driver = DriverPQ
	}
	if driver != DriverPQ && driver != DriverPGX {
		return nil, fmt.Errorf("unsupported postgres driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	b := NewStateBackend(db)
	if err := b.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

// NewStateBackend wraps an existing connection pool.
func NewStateBackend(db *sql.DB) *StateBackend {
	return &StateBackend{DB: db}
}

func (b *StateBackend) EnsureSchema(ctx context.Context) error {
	if _, err := b.DB.ExecContext(ctx, createStateTable); err != nil {
		return fmt.Errorf("create app_state table: %w", err)
	}
	return nil
}

func (b *StateBackend) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT payload FROM app_state WHERE key = $1`
	var payload string
	err := b.DB.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
		return nil, fmt.Errorf("state %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load state %s: %w", key, err)
	}
	return []byte(payload), nil
}

// Save upserts the payload. If the table was dropped underneath a running process it is
// recreated once and the write retried.
func (b *StateBackend) Save(ctx context.Context, key string, payload []byte) error {
	err := b.upsert(ctx, key, payload)
	if isUndefinedTable(err) {
		if err := b.EnsureSchema(ctx); err != nil {
			return err
		}
		err = b.upsert(ctx, key, payload)
	}
	if err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

func (b *StateBackend) upsert(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO app_state (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	_, err := b.DB.ExecContext(ctx, query, key, string(payload))
	return err
}

func (b *StateBackend) Close() error {
	return b.DB.Close()
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == undefinedTable
}
