package service

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/pkg/slug"
)

// SeedData is the content document loaded by cmd/seed. Every list is
// optional; absent lists are skipped.
type SeedData struct {
	Profile        *model.Profile         `json:"profile"`
	Sections       []*model.SectionConfig `json:"sections"`
	Skills         []*model.Skill         `json:"skills"`
	Experiences    []*model.Experience    `json:"experiences"`
	Certifications []*model.Certification `json:"certifications"`
	Education      []*model.Education     `json:"education"`
	Services       []*model.Service       `json:"services"`
	Languages      []*model.Language      `json:"languages"`
	Projects       []*model.Project       `json:"projects"`
}

// SeedService validates and inserts portfolio content in bulk. It applies the
// same per-entity rules as the write path: date invariants, slug derivation,
// section-key and skill-category exhaustiveness.
type SeedService struct {
	repos PortfolioRepositories
}

// NewSeedService creates a SeedService over the given repositories.
func NewSeedService(repos PortfolioRepositories) *SeedService {
	return &SeedService{repos: repos}
}

// Load inserts the whole document, failing on the first invalid or
// conflicting record.
func (s *SeedService) Load(ctx context.Context, data *SeedData) error {
	if data.Profile != nil {
		p := data.Profile
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.FullName, err)
		}
		p.PortfolioSlug = slug.Derive(p.PortfolioSlug, p.FullName)
		if err := s.repos.Profiles.Create(ctx, p); err != nil {
			return fmt.Errorf("profile %q: %w", p.FullName, err)
		}
	}

	for _, sec := range data.Sections {
		if !sec.SectionKey.Valid() {
			return fmt.Errorf("section %q: unknown section key", sec.SectionKey)
		}
		if err := s.repos.Sections.Create(ctx, sec); err != nil {
			return fmt.Errorf("section %q: %w", sec.SectionKey, err)
		}
	}

	for _, sk := range data.Skills {
		if sk.Category == "" {
			sk.Category = model.SkillCategoryOther
		}
		if !model.ValidSkillCategory(sk.Category) {
			return fmt.Errorf("skill %q: unknown category %q", sk.Name, sk.Category)
		}
		if err := s.repos.Skills.Create(ctx, sk); err != nil {
			return fmt.Errorf("skill %q: %w", sk.Name, err)
		}
	}

	for _, exp := range data.Experiences {
		if err := exp.Validate(); err != nil {
			return fmt.Errorf("experience %q: %w", exp.CompanyName, err)
		}
		if err := s.repos.Experiences.Create(ctx, exp); err != nil {
			return fmt.Errorf("experience %q: %w", exp.CompanyName, err)
		}
	}

	for _, cert := range data.Certifications {
		if err := cert.Validate(); err != nil {
			return fmt.Errorf("certification %q: %w", cert.Name, err)
		}
		if err := s.repos.Certifications.Create(ctx, cert); err != nil {
			return fmt.Errorf("certification %q: %w", cert.Name, err)
		}
	}

	for _, edu := range data.Education {
		if err := edu.Validate(); err != nil {
			return fmt.Errorf("education %q: %w", edu.Institution, err)
		}
		if err := s.repos.Education.Create(ctx, edu); err != nil {
			return fmt.Errorf("education %q: %w", edu.Institution, err)
		}
	}

	for _, svc := range data.Services {
		if err := s.repos.Services.Create(ctx, svc); err != nil {
			return fmt.Errorf("service %q: %w", svc.Title, err)
		}
	}

	for _, lang := range data.Languages {
		if err := s.repos.Languages.Create(ctx, lang); err != nil {
			return fmt.Errorf("language %q: %w", lang.Name, err)
		}
	}

	for _, p := range data.Projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
		p.Slug = slug.Derive(p.Slug, p.Title)
		if err := s.repos.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
	}

	return nil
}
