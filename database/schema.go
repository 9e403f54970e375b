package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		project_type TEXT,
		budget TEXT,
		description TEXT,
		timeline TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS leads_created_at_idx ON leads(created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS project_submissions (
		project_id TEXT PRIMARY KEY,
		tasks JSONB NOT NULL DEFAULT '[]'::jsonb,
		messages JSONB NOT NULL DEFAULT '[]'::jsonb,
		language TEXT NOT NULL DEFAULT 'en' CHECK (language IN ('en','hi')),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending','reviewed','in-progress','completed')),
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS project_submissions_submitted_at_idx ON project_submissions(submitted_at DESC)`,
}

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range schema {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
