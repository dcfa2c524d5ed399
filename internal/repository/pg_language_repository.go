package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// LanguageRepository defines persistence for spoken languages.
type LanguageRepository interface {
	List(ctx context.Context) ([]*model.Language, error)
	Create(ctx context.Context, lang *model.Language) error
}

// PgLanguageRepository is the PostgreSQL implementation of LanguageRepository.
type PgLanguageRepository struct {
	pool *pgxpool.Pool
}

// NewPgLanguageRepository creates a PgLanguageRepository backed by the given pool.
func NewPgLanguageRepository(pool *pgxpool.Pool) *PgLanguageRepository {
	return &PgLanguageRepository{pool: pool}
}

var _ LanguageRepository = (*PgLanguageRepository)(nil)

// List returns all languages ordered by (order_index, name).
func (r *PgLanguageRepository) List(ctx context.Context) ([]*model.Language, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, level, order_index
		 FROM language ORDER BY order_index, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var langs []*model.Language
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Level, &l.OrderIndex); err != nil {
			return nil, err
		}
		langs = append(langs, &l)
	}
	return langs, rows.Err()
}

// Create inserts a language.
func (r *PgLanguageRepository) Create(ctx context.Context, lang *model.Language) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO language (name, level, order_index)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		lang.Name, lang.Level, lang.OrderIndex,
	).Scan(&lang.ID)
	return mapConstraintError(err)
}
