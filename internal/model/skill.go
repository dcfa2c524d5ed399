package model

// Skill categories. The store constrains the column to this set.
const (
	SkillCategoryBackend  = "backend"
	SkillCategoryFrontend = "frontend"
	SkillCategoryDevOps   = "devops"
	SkillCategoryDatabase = "database"
	SkillCategoryOther    = "other"
)

// SkillCategories lists every valid skill category.
var SkillCategories = []string{
	SkillCategoryBackend,
	SkillCategoryFrontend,
	SkillCategoryDevOps,
	SkillCategoryDatabase,
	SkillCategoryOther,
}

// Skill is a technical skill (language, framework, tool).
// (name, category) is unique.
type Skill struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Level      *string `json:"level"`
	IconKey    *string `json:"icon_key"`
	OrderIndex int     `json:"order_index"`
}

// ValidSkillCategory reports whether category is one of the known values.
func ValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}
