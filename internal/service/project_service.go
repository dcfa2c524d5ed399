package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	// List returns projects newest-first, optionally restricted to
	// highlighted ones.
	List(ctx context.Context, highlightOnly bool) ([]*model.Project, error)

	// GetBySlug returns one project by its unique slug, or
	// repository.ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)

	// Create validates the project, derives a slug from the title when none
	// was supplied, and persists it.
	Create(ctx context.Context, project *model.Project) error
}
