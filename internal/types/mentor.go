// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MentorProfile is one entry of the static mentor roster
type MentorProfile struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	JobTitle     string   `json:"job_title" yaml:"job_title"`
	Company      string   `json:"company" yaml:"company"`
	Industry     string   `json:"industry" yaml:"industry"`
	Experience   string   `json:"experience" yaml:"experience"`
	Location     string   `json:"location" yaml:"location"`
	Expertise    []string `json:"expertise" yaml:"expertise" validate:"required,min=1,dive,required"`
	Availability string   `json:"availability" yaml:"availability" validate:"omitempty,oneof=Available Limited Unavailable"`
	Bio          string   `json:"bio" yaml:"bio"`
	Email        string   `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
	LinkedIn     string   `json:"linkedin,omitempty" yaml:"linkedin" validate:"omitempty,url"`
}

// MentorMatch is a roster entry scored against one role and interest string
type MentorMatch struct {
	MentorProfile
	MatchScore       int      `json:"match_score"`
	MatchedInterests []string `json:"matched_interests"`
	Notes            string   `json:"notes,omitempty"`
}

// RoleNeeds is the slice of a career guide the mentor matcher reads
type RoleNeeds struct {
	JobTitle       string   `json:"job_title"`
	RequiredSkills []string `json:"required_skills"`
	SoftSkills     []string `json:"soft_skills"`
}

// MentorMatches is the ranked mentor list returned for one query
type MentorMatches struct {
	JobTitle string        `json:"job_title"`
	Matches  []MentorMatch `json:"matches"`
}
