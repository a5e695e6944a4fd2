package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool.Pool the store needs; satisfied by pgxmock in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store keeps the orders blob in a single-row key-value table.
type Store struct {
	pool   Pool
	key    string
	logger *slog.Logger
}

// New connects to PostgreSQL and ensures the kv table exists.
func New(ctx context.Context, dsn, key string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store := &Store{pool: pool, key: key, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS kv_blobs (
            key TEXT PRIMARY KEY,
            value BYTEA NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Get returns the stored blob for the configured key.
func (s *Store) Get(ctx context.Context) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_blobs WHERE key=$1`
	var data []byte
	err := s.pool.QueryRow(ctx, query, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Put upserts the blob, fully replacing prior content.
func (s *Store) Put(ctx context.Context, data []byte) error {
	const query = `INSERT INTO kv_blobs (key, value, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := s.pool.Exec(ctx, query, s.key, data)
	return err
}
