// Package db provides PostgreSQL persistence for candidate profiles and job
// postings.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables the engine needs if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS candidate_profiles (
			id UUID PRIMARY KEY,
			skills JSONB NOT NULL DEFAULT '[]',
			experience JSONB NOT NULL DEFAULT '[]',
			preferences JSONB NOT NULL DEFAULT '{}',
			career_goal JSONB,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS job_postings (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			remote_type TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			salary_min INTEGER NOT NULL DEFAULT 0,
			salary_max INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			requirements JSONB NOT NULL DEFAULT '[]',
			industry TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
