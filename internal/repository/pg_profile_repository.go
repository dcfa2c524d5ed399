package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ProfileRepository defines persistence for the owner profile.
// GetFirst returns (nil, nil) when no row exists: zero-or-one by design.
type ProfileRepository interface {
	GetFirst(ctx context.Context) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
}

// PgProfileRepository is the PostgreSQL implementation of ProfileRepository.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgProfileRepository creates a PgProfileRepository backed by the given pool.
func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

var _ ProfileRepository = (*PgProfileRepository)(nil)

// GetFirst returns the first profile row, or (nil, nil) when none exists.
func (r *PgProfileRepository) GetFirst(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, job_title, short_bio, location, email, phone,
		        github_url, linkedin_url, portfolio_slug, created_at, updated_at
		 FROM app_user ORDER BY full_name LIMIT 1`,
	).Scan(&p.ID, &p.FullName, &p.JobTitle, &p.ShortBio, &p.Location, &p.Email,
		&p.Phone, &p.GitHubURL, &p.LinkedInURL, &p.PortfolioSlug, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a profile and populates ID and timestamps from RETURNING.
func (r *PgProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO app_user (full_name, job_title, short_bio, location, email, phone,
		                       github_url, linkedin_url, portfolio_slug)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		profile.FullName, profile.JobTitle, profile.ShortBio, profile.Location,
		profile.Email, profile.Phone, profile.GitHubURL, profile.LinkedInURL, profile.PortfolioSlug,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	return mapConstraintError(err)
}
