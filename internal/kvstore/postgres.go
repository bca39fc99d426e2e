package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps the whole store in a single key→jsonb table.
// The storage layout stays the same as the file backend: one row per
// logical collection key.
type PostgresBackend struct {
	db *pgxpool.Pool
}

// NewPostgresBackend ensures the kv table exists and returns the backend
func NewPostgresBackend(ctx context.Context, db *pgxpool.Pool) (*PostgresBackend, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return &PostgresBackend{db: db}, nil
}

// Read returns the raw JSON under key
func (b *PostgresBackend) Read(ctx context.Context, key string) ([]byte, error) {
	query := squirrel.Select("value").
		From("kv_entries").
		Where("key = ?", key).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var data []byte
	err = b.db.QueryRow(ctx, sql, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return data, nil
}

// Write upserts the JSON value under key
func (b *PostgresBackend) Write(ctx context.Context, key string, data []byte) error {
	query := squirrel.Insert("kv_entries").
		Columns("key", "value").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := b.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Delete removes the row under key
func (b *PostgresBackend) Delete(ctx context.Context, key string) error {
	query := squirrel.Delete("kv_entries").
		Where("key = ?", key).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := b.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrKeyNotFound
	}
	return nil
}
