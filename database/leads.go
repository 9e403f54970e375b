package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"makeyou-digital/backend/models"
)

type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context) ([]models.Lead, error)
}

type PgLeadStore struct {
	pool *pgxpool.Pool
}

func NewPgLeadStore(pool *pgxpool.Pool) *PgLeadStore {
	return &PgLeadStore{pool: pool}
}

var _ LeadStore = (*PgLeadStore)(nil)

// Create inserts the lead and fills ID and CreatedAt from the database.
func (s *PgLeadStore) Create(ctx context.Context, lead *models.Lead) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO leads(name, email, phone, project_type, budget, description, timeline)
		 VALUES($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''), NULLIF($7,''))
		 RETURNING id, created_at`,
		lead.Name, lead.Email, lead.Phone, lead.ProjectType, lead.Budget, lead.Description, lead.Timeline,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// List returns every lead, newest first.
func (s *PgLeadStore) List(ctx context.Context) ([]models.Lead, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(phone,''), COALESCE(project_type,''), COALESCE(budget,''),
		        COALESCE(description,''), COALESCE(timeline,''), created_at
		 FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	out := []models.Lead{}
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.ProjectType, &l.Budget,
			&l.Description, &l.Timeline, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
