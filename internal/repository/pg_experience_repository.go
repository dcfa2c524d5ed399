package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ExperienceRepository defines persistence for work experience entries.
type ExperienceRepository interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
}

// PgExperienceRepository is the PostgreSQL implementation of ExperienceRepository.
type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

// NewPgExperienceRepository creates a PgExperienceRepository backed by the given pool.
func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

var _ ExperienceRepository = (*PgExperienceRepository)(nil)

// List returns all experience entries ordered by (order_index, start_date DESC).
func (r *PgExperienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, company_name, role, location, start_date, end_date,
		        is_current, description, order_index
		 FROM experience ORDER BY order_index, start_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.Experience
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.Role, &e.Location, &e.StartDate,
			&e.EndDate, &e.IsCurrent, &e.Description, &e.OrderIndex); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Create inserts an experience entry.
func (r *PgExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO experience (company_name, role, location, start_date, end_date,
		                         is_current, description, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		exp.CompanyName, exp.Role, exp.Location, exp.StartDate, exp.EndDate,
		exp.IsCurrent, exp.Description, exp.OrderIndex,
	).Scan(&exp.ID)
	return mapConstraintError(err)
}
