package model

import "time"

// Project is a portfolio project. Projects are deliberately decoupled from
// Skill: there is no relation between the two tables.
type Project struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	LongDescription  *string   `json:"long_description"`
	RepoURL          *string   `json:"repo_url"`
	DemoURL          *string   `json:"demo_url"`
	Highlight        bool      `json:"highlight"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks field presence. Slug derivation happens in the service
// layer.
func (p *Project) Validate() error {
	fields := map[string]string{}
	if p.Title == "" {
		fields["title"] = "title is required"
	}
	if p.ShortDescription == "" {
		fields["short_description"] = "short_description is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
