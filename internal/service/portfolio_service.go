package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// PortfolioService exposes the read side of the portfolio: one ordered list
// per entity type, the zero-or-one owner profile, and the aggregate document.
type PortfolioService interface {
	// Profile returns the first profile row, or (nil, nil) when none exists.
	Profile(ctx context.Context) (*model.Profile, error)
	Sections(ctx context.Context) ([]*model.SectionConfig, error)
	Skills(ctx context.Context) ([]*model.Skill, error)
	Experiences(ctx context.Context) ([]*model.Experience, error)
	Certifications(ctx context.Context) ([]*model.Certification, error)
	Education(ctx context.Context) ([]*model.Education, error)
	Services(ctx context.Context) ([]*model.Service, error)
	Languages(ctx context.Context) ([]*model.Language, error)

	// Portfolio assembles the full document in one call. Any sub-query
	// failure fails the whole aggregate.
	Portfolio(ctx context.Context) (*model.Portfolio, error)
}
