// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Skill levels used by the roadmap tables
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// SkillLevel is one tier of the roadmap skill table
type SkillLevel struct {
	Level         string   `json:"level" yaml:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Priority      string   `json:"priority" yaml:"priority" validate:"required,oneof=Essential Recommended Nice-to-have"`
	Skills        []string `json:"skills" yaml:"skills" validate:"required,min=1,dive,required"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
}

// LearningPlatform describes how to build a search URL on a learning site
type LearningPlatform struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	BaseURL      string `json:"base_url" yaml:"base_url" validate:"required,url"`
	SearchParam  string `json:"search_param,omitempty" yaml:"search_param"`
	SearchPath   string `json:"search_path,omitempty" yaml:"search_path"`
	ResourceType string `json:"resource_type" yaml:"resource_type" validate:"required"`
}

// LearningResource is a link suggested for closing one skill gap
type LearningResource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Price    string `json:"price"`
	Skill    string `json:"skill"`
}

// RoadmapGap is a missing skill placed on the learning roadmap
type RoadmapGap struct {
	Skill         string             `json:"skill"`
	Level         string             `json:"level"`
	Priority      string             `json:"priority"`
	Prerequisites []string           `json:"prerequisites"`
	EstimatedTime string             `json:"estimated_time"`
	Resources     []LearningResource `json:"resources"`
	Order         int                `json:"order"`
}

// Milestone is one step of a learning path
type Milestone struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Skills      []string           `json:"skills"`
	Resources   []LearningResource `json:"resources"`
	Duration    string             `json:"duration"`
	Order       int                `json:"order"`
	Completed   bool               `json:"completed"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// LearningPath is the generated roadmap from current skills to a target role
type LearningPath struct {
	ID                 string       `json:"id"`
	JobTitle           string       `json:"job_title"`
	CurrentSkills      []string     `json:"current_skills"`
	TargetSkills       []string     `json:"target_skills"`
	SkillGaps          []RoadmapGap `json:"skill_gaps"`
	Milestones         []Milestone  `json:"milestones"`
	TotalEstimatedTime string       `json:"total_estimated_time"`
	ProgressPercentage int          `json:"progress_percentage"`
	StartedAt          time.Time    `json:"started_at"`
	CompletedAt        *time.Time   `json:"completed_at,omitempty"`
}
