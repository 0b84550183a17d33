// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobTemplate is a static target role with its requirement set
type JobTemplate struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Skills      []string `json:"skills" yaml:"skills" validate:"required,min=1,dive,required"`
	Description string   `json:"description" yaml:"description"`
	SalaryRange string   `json:"salary_range" yaml:"salary_range"`
}

// RelatedSkills maps a trigger keyword to the skills suggested alongside it
type RelatedSkills struct {
	Keyword     string   `json:"keyword" yaml:"keyword" validate:"required"`
	Suggestions []string `json:"suggestions" yaml:"suggestions" validate:"required,min=1,dive,required"`
}

// SkillSuggestions is the related-skill suggester output
type SkillSuggestions struct {
	Suggestions []string `json:"suggestions"`
}
