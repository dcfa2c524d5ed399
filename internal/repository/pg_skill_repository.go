package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// SkillRepository defines persistence for skills.
type SkillRepository interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
}

// PgSkillRepository is the PostgreSQL implementation of SkillRepository.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository creates a PgSkillRepository backed by the given pool.
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

// List returns all skills ordered by (order_index, name).
func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, category, level, icon_key, order_index
		 FROM skill ORDER BY order_index, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.IconKey, &s.OrderIndex); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

// Create inserts a skill. A duplicate (name, category) maps to ErrConflict.
func (r *PgSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO skill (name, category, level, icon_key, order_index)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		skill.Name, skill.Category, skill.Level, skill.IconKey, skill.OrderIndex,
	).Scan(&skill.ID)
	return mapConstraintError(err)
}
