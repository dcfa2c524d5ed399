package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/slug"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context, highlightOnly bool) ([]*model.Project, error) {
	return s.repo.List(ctx, highlightOnly)
}

func (s *projectServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create derives the slug from the title when none was supplied; an explicit
// slug is kept as-is. Store-level uniqueness still applies.
func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	project.Slug = slug.Derive(project.Slug, project.Title)
	return s.repo.Create(ctx, project)
}
