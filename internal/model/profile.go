package model

import "time"

// Profile represents the portfolio owner. The deployment is single-tenant:
// read endpoints expose the first row and treat zero rows as "no profile yet".
type Profile struct {
	ID            int        `json:"id"`
	FullName      string     `json:"full_name"`
	JobTitle      string     `json:"job_title"`
	ShortBio      string     `json:"short_bio"`
	Location      *string    `json:"location"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	GitHubURL     *string    `json:"github_url"`
	LinkedInURL   *string    `json:"linkedin_url"`
	PortfolioSlug string     `json:"portfolio_slug"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// Validate checks field presence. Slug derivation happens in the service
// layer so an explicitly supplied slug is never overwritten here.
func (p *Profile) Validate() error {
	fields := map[string]string{}
	if p.FullName == "" {
		fields["full_name"] = "full_name is required"
	}
	if p.Email == "" {
		fields["email"] = "email is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
