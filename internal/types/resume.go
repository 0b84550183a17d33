// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds resume contact details
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Resume is the user-built resume exported by the renderer
type Resume struct {
	ID             string       `json:"id"`
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Summary        string       `json:"summary"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}
