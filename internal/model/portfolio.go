package model

// Portfolio is the aggregate document returned by GET /api/portfolio/.
// Profile is nil when no profile row exists; the list fields are always
// non-nil so they serialize as [] rather than null.
type Portfolio struct {
	Profile        *Profile         `json:"profile"`
	Sections       []*SectionConfig `json:"sections"`
	Skills         []*Skill         `json:"skills"`
	Experiences    []*Experience    `json:"experiences"`
	Certifications []*Certification `json:"certifications"`
	Education      []*Education     `json:"education"`
	Services       []*Service       `json:"services"`
	Languages      []*Language      `json:"languages"`
	Projects       []*Project       `json:"projects"`
}
