// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SessionResponse is returned when an anonymous session is opened
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SkillGapRequest asks for a gap analysis against a template or an explicit list.
type SkillGapRequest struct {
	JobID        string   `json:"job_id,omitempty" validate:"required_without=Requirements"`
	Requirements []string `json:"requirements,omitempty" validate:"required_without=JobID,dive,required"`
	Skills       string   `json:"skills"`
}

// SuggestSkillsRequest carries the raw skills text
type SuggestSkillsRequest struct {
	Skills string `json:"skills"`
}

// MentorMatchRequest asks for mentors for a role.
type MentorMatchRequest struct {
	JobTitle       string   `json:"job_title"`
	RequiredSkills []string `json:"required_skills" validate:"dive,required"`
	SoftSkills     []string `json:"soft_skills" validate:"dive,required"`
	Interests      string   `json:"interests"`
}

// RoadmapRequest asks for a learning path.
type RoadmapRequest struct {
	JobTitle       string   `json:"job_title" validate:"required"`
	RequiredSkills []string `json:"required_skills"`
	CurrentSkills  []string `json:"current_skills" validate:"required,min=1,dive,required"`
}

// ResumeExportRequest carries a resume and an optional guide for the target-role block
type ResumeExportRequest struct {
	Resume *Resume      `json:"resume" validate:"required"`
	Guide  *CareerGuide `json:"guide,omitempty" validate:"omitempty"`
}

// Validate validates the SkillGapRequest using the validator.
func (r *SkillGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MentorMatchRequest using the validator.
func (r *MentorMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
