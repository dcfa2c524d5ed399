package model

// SectionKey identifies one of the fixed front-end sections.
type SectionKey string

const (
	SectionHero           SectionKey = "hero"
	SectionSkills         SectionKey = "skills"
	SectionExperience     SectionKey = "experience"
	SectionCertifications SectionKey = "certifications"
	SectionEducation      SectionKey = "education"
	SectionServices       SectionKey = "services"
	SectionProjects       SectionKey = "projects"
	SectionLanguages      SectionKey = "languages"
	SectionContact        SectionKey = "contact"
)

// SectionKeys is the exhaustive set of section keys. The store mirrors this
// with a CHECK constraint on section_config.section_key.
var SectionKeys = []SectionKey{
	SectionHero,
	SectionSkills,
	SectionExperience,
	SectionCertifications,
	SectionEducation,
	SectionServices,
	SectionProjects,
	SectionLanguages,
	SectionContact,
}

// Valid reports whether k is one of the nine known section keys.
func (k SectionKey) Valid() bool {
	for _, key := range SectionKeys {
		if key == k {
			return true
		}
	}
	return false
}

// SectionConfig toggles visibility and ordering of one front-end section.
// One row per key is expected.
type SectionConfig struct {
	ID         int        `json:"id"`
	SectionKey SectionKey `json:"section_key"`
	IsEnabled  bool       `json:"is_enabled"`
	OrderIndex int        `json:"order_index"`
}
