package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"makeyou-digital/backend/models"
)

type ProjectStore interface {
	Create(ctx context.Context, sub *models.ProjectSubmission) error
	List(ctx context.Context) ([]models.ProjectSubmission, error)
	UpdateStatus(ctx context.Context, projectID, status string) error
}

type PgProjectStore struct {
	pool *pgxpool.Pool
}

func NewPgProjectStore(pool *pgxpool.Pool) *PgProjectStore {
	return &PgProjectStore{pool: pool}
}

var _ ProjectStore = (*PgProjectStore)(nil)

func (s *PgProjectStore) Create(ctx context.Context, sub *models.ProjectSubmission) error {
	tasks, err := json.Marshal(sub.Tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	messages, err := json.Marshal(sub.Messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO project_submissions(project_id, tasks, messages, language, status, submitted_at)
		 VALUES($1, $2::jsonb, $3::jsonb, $4, $5, $6)`,
		sub.ProjectID, string(tasks), string(messages), sub.Language, sub.Status, sub.SubmittedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// List returns every submission, most recently submitted first.
func (s *PgProjectStore) List(ctx context.Context) ([]models.ProjectSubmission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT project_id, tasks::text, messages::text, language, status, submitted_at
		 FROM project_submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	out := []models.ProjectSubmission{}
	for rows.Next() {
		var (
			sub             models.ProjectSubmission
			tasks, messages string
		)
		if err := rows.Scan(&sub.ProjectID, &tasks, &messages, &sub.Language, &sub.Status, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if err := json.Unmarshal([]byte(tasks), &sub.Tasks); err != nil {
			return nil, fmt.Errorf("decode tasks of %s: %w", sub.ProjectID, err)
		}
		if err := json.Unmarshal([]byte(messages), &sub.Messages); err != nil {
			return nil, fmt.Errorf("decode messages of %s: %w", sub.ProjectID, err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *PgProjectStore) UpdateStatus(ctx context.Context, projectID, status string) error {
	var id string
	err := s.pool.QueryRow(ctx,
		`UPDATE project_submissions SET status=$1, updated_at=now() WHERE project_id=$2 RETURNING project_id`,
		status, projectID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}
	return nil
}
