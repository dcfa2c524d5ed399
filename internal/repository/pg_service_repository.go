package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ServiceRepository defines persistence for offered services.
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
}

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository backed by the given pool.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

// List returns all services ordered by (order_index, title).
func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, short_description, detailed_description,
		        icon_key, highlight, order_index
		 FROM service ORDER BY order_index, title`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.ShortDescription, &s.DetailedDescription,
			&s.IconKey, &s.Highlight, &s.OrderIndex); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// Create inserts a service.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO service (title, short_description, detailed_description,
		                      icon_key, highlight, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		svc.Title, svc.ShortDescription, svc.DetailedDescription,
		svc.IconKey, svc.Highlight, svc.OrderIndex,
	).Scan(&svc.ID)
	return mapConstraintError(err)
}
