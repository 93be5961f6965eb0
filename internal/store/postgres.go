package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresBackend persists snapshots in a single key/payload table. It mirrors
// the keyed-storage contract of the redis backend for deployments that already
// run postgres.
type PostgresBackend struct {
	db *sqlx.DB
}

const snapshotsSchema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// NewPostgresBackend connects to postgres and ensures the snapshots table exists.
func NewPostgresBackend(databaseURL string) (*PostgresBackend, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(snapshotsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshots table: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

// Close closes the database connection
func (p *PostgresBackend) Close() error {
	return p.db.Close()
}

// Get returns the payload stored under key, or ErrNotFound.
func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := p.db.GetContext(ctx, &payload, "SELECT payload FROM snapshots WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Set upserts the payload under key.
func (p *PostgresBackend) Set(ctx context.Context, key string, payload []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`,
		key, payload)
	return err
}
