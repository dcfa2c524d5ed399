package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// SectionRepository defines persistence for section toggles.
type SectionRepository interface {
	List(ctx context.Context) ([]*model.SectionConfig, error)
	Create(ctx context.Context, section *model.SectionConfig) error
}

// PgSectionRepository is the PostgreSQL implementation of SectionRepository.
type PgSectionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSectionRepository creates a PgSectionRepository backed by the given pool.
func NewPgSectionRepository(pool *pgxpool.Pool) *PgSectionRepository {
	return &PgSectionRepository{pool: pool}
}

var _ SectionRepository = (*PgSectionRepository)(nil)

// List returns all section toggles ordered by order_index.
func (r *PgSectionRepository) List(ctx context.Context) ([]*model.SectionConfig, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, section_key, is_enabled, order_index
		 FROM section_config ORDER BY order_index`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*model.SectionConfig
	for rows.Next() {
		var s model.SectionConfig
		if err := rows.Scan(&s.ID, &s.SectionKey, &s.IsEnabled, &s.OrderIndex); err != nil {
			return nil, err
		}
		sections = append(sections, &s)
	}
	return sections, rows.Err()
}

// Create inserts a section toggle. A duplicate key maps to ErrConflict.
func (r *PgSectionRepository) Create(ctx context.Context, section *model.SectionConfig) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO section_config (section_key, is_enabled, order_index)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		section.SectionKey, section.IsEnabled, section.OrderIndex,
	).Scan(&section.ID)
	return mapConstraintError(err)
}
