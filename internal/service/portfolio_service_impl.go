package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// PortfolioRepositories bundles the per-entity repositories the read side
// fans out over.
type PortfolioRepositories struct {
	Profiles       repository.ProfileRepository
	Sections       repository.SectionRepository
	Skills         repository.SkillRepository
	Experiences    repository.ExperienceRepository
	Certifications repository.CertificationRepository
	Education      repository.EducationRepository
	Services       repository.ServiceRepository
	Languages      repository.LanguageRepository
	Projects       repository.ProjectRepository
}

// portfolioServiceImpl is the production implementation of PortfolioService.
// Content changes out of band and rarely, so reads go through a short-TTL
// cache when one is configured.
type portfolioServiceImpl struct {
	repos PortfolioRepositories
	cache *cache.Cache
}

// NewPortfolioService creates a PortfolioService over the given repositories.
// cacheTTL <= 0 disables caching.
func NewPortfolioService(repos PortfolioRepositories, cacheTTL time.Duration) PortfolioService {
	var c *cache.Cache
	if cacheTTL > 0 {
		c = cache.New(cacheTTL, 2*cacheTTL)
	}
	return &portfolioServiceImpl{repos: repos, cache: c}
}

// cachedFetch returns the cached value under key when present, otherwise runs
// fetch and stores the result.
func cachedFetch[T any](c *cache.Cache, key string, fetch func() (T, error)) (T, error) {
	if c != nil {
		if v, found := c.Get(key); found {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}
	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	if c != nil {
		c.Set(key, v, cache.DefaultExpiration)
	}
	return v, nil
}

func (s *portfolioServiceImpl) Profile(ctx context.Context) (*model.Profile, error) {
	return cachedFetch(s.cache, "profile", func() (*model.Profile, error) {
		return s.repos.Profiles.GetFirst(ctx)
	})
}

func (s *portfolioServiceImpl) Sections(ctx context.Context) ([]*model.SectionConfig, error) {
	return cachedFetch(s.cache, "sections", func() ([]*model.SectionConfig, error) {
		return s.repos.Sections.List(ctx)
	})
}

func (s *portfolioServiceImpl) Skills(ctx context.Context) ([]*model.Skill, error) {
	return cachedFetch(s.cache, "skills", func() ([]*model.Skill, error) {
		return s.repos.Skills.List(ctx)
	})
}

func (s *portfolioServiceImpl) Experiences(ctx context.Context) ([]*model.Experience, error) {
	return cachedFetch(s.cache, "experiences", func() ([]*model.Experience, error) {
		return s.repos.Experiences.List(ctx)
	})
}

func (s *portfolioServiceImpl) Certifications(ctx context.Context) ([]*model.Certification, error) {
	return cachedFetch(s.cache, "certifications", func() ([]*model.Certification, error) {
		return s.repos.Certifications.List(ctx)
	})
}

func (s *portfolioServiceImpl) Education(ctx context.Context) ([]*model.Education, error) {
	return cachedFetch(s.cache, "education", func() ([]*model.Education, error) {
		return s.repos.Education.List(ctx)
	})
}

func (s *portfolioServiceImpl) Services(ctx context.Context) ([]*model.Service, error) {
	return cachedFetch(s.cache, "services", func() ([]*model.Service, error) {
		return s.repos.Services.List(ctx)
	})
}

func (s *portfolioServiceImpl) Languages(ctx context.Context) ([]*model.Language, error) {
	return cachedFetch(s.cache, "languages", func() ([]*model.Language, error) {
		return s.repos.Languages.List(ctx)
	})
}

// Portfolio fans out to every collection and assembles the aggregate
// document. List fields are always non-nil so they serialize as [].
func (s *portfolioServiceImpl) Portfolio(ctx context.Context) (*model.Portfolio, error) {
	return cachedFetch(s.cache, "portfolio", func() (*model.Portfolio, error) {
		profile, err := s.Profile(ctx)
		if err != nil {
			return nil, err
		}
		sections, err := s.Sections(ctx)
		if err != nil {
			return nil, err
		}
		skills, err := s.Skills(ctx)
		if err != nil {
			return nil, err
		}
		experiences, err := s.Experiences(ctx)
		if err != nil {
			return nil, err
		}
		certifications, err := s.Certifications(ctx)
		if err != nil {
			return nil, err
		}
		education, err := s.Education(ctx)
		if err != nil {
			return nil, err
		}
		services, err := s.Services(ctx)
		if err != nil {
			return nil, err
		}
		languages, err := s.Languages(ctx)
		if err != nil {
			return nil, err
		}
		projects, err := s.repos.Projects.List(ctx, false)
		if err != nil {
			return nil, err
		}

		doc := &model.Portfolio{
			Profile:        profile,
			Sections:       sections,
			Skills:         skills,
			Experiences:    experiences,
			Certifications: certifications,
			Education:      education,
			Services:       services,
			Languages:      languages,
			Projects:       projects,
		}
		if doc.Sections == nil {
			doc.Sections = []*model.SectionConfig{}
		}
		if doc.Skills == nil {
			doc.Skills = []*model.Skill{}
		}
		if doc.Experiences == nil {
			doc.Experiences = []*model.Experience{}
		}
		if doc.Certifications == nil {
			doc.Certifications = []*model.Certification{}
		}
		if doc.Education == nil {
			doc.Education = []*model.Education{}
		}
		if doc.Services == nil {
			doc.Services = []*model.Service{}
		}
		if doc.Languages == nil {
			doc.Languages = []*model.Language{}
		}
		if doc.Projects == nil {
			doc.Projects = []*model.Project{}
		}
		return doc, nil
	})
}
