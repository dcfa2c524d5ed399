package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// EducationRepository defines persistence for education entries.
type EducationRepository interface {
	List(ctx context.Context) ([]*model.Education, error)
	Create(ctx context.Context, edu *model.Education) error
}

// PgEducationRepository is the PostgreSQL implementation of EducationRepository.
type PgEducationRepository struct {
	pool *pgxpool.Pool
}

// NewPgEducationRepository creates a PgEducationRepository backed by the given pool.
func NewPgEducationRepository(pool *pgxpool.Pool) *PgEducationRepository {
	return &PgEducationRepository{pool: pool}
}

var _ EducationRepository = (*PgEducationRepository)(nil)

// List returns all education entries ordered by (order_index, start_date DESC).
func (r *PgEducationRepository) List(ctx context.Context) ([]*model.Education, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, institution, degree, field_of_study, start_date, end_date,
		        is_current, description, order_index
		 FROM education ORDER BY order_index, start_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.Education
	for rows.Next() {
		var e model.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate,
			&e.EndDate, &e.IsCurrent, &e.Description, &e.OrderIndex); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Create inserts an education entry.
func (r *PgEducationRepository) Create(ctx context.Context, edu *model.Education) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO education (institution, degree, field_of_study, start_date, end_date,
		                        is_current, description, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate,
		edu.IsCurrent, edu.Description, edu.OrderIndex,
	).Scan(&edu.ID)
	return mapConstraintError(err)
}
