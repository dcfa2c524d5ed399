package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ProjectRepository defines persistence for portfolio projects.
type ProjectRepository interface {
	// List returns projects newest-first. When highlightOnly is true only
	// highlighted projects are returned.
	List(ctx context.Context, highlightOnly bool) ([]*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, slug, short_description, long_description,
	repo_url, demo_url, highlight, created_at, updated_at`

// List returns projects ordered by created_at DESC.
func (r *PgProjectRepository) List(ctx context.Context, highlightOnly bool) ([]*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM project`
	if highlightOnly {
		query += ` WHERE highlight`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.ShortDescription, &p.LongDescription,
			&p.RepoURL, &p.DemoURL, &p.Highlight, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetBySlug returns a project by its unique slug, or ErrNotFound.
func (r *PgProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM project WHERE slug = $1`, slug,
	).Scan(&p.ID, &p.Title, &p.Slug, &p.ShortDescription, &p.LongDescription,
		&p.RepoURL, &p.DemoURL, &p.Highlight, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project and populates ID and timestamps from RETURNING.
// A duplicate slug maps to ErrConflict.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO project (title, slug, short_description, long_description,
		                      repo_url, demo_url, highlight)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Slug, project.ShortDescription, project.LongDescription,
		project.RepoURL, project.DemoURL, project.Highlight,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	return mapConstraintError(err)
}
