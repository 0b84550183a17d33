// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GapAnalysis partitions a requirement set into matched and missing skills
type GapAnalysis struct {
	Matching  []string `json:"matching"`
	Missing   []string `json:"missing"`
	Readiness int      `json:"readiness"` // 0-100
	Total     int      `json:"total"`
}

// Gap priorities, highest first
const (
	PriorityEssential   = "Essential"
	PriorityRecommended = "Recommended"
	PriorityNiceToHave  = "Nice-to-have"
)

// PrioritizedGap is a missing requirement with learning guidance attached
type PrioritizedGap struct {
	Skill         string `json:"skill"`
	Priority      string `json:"priority"`
	CurrentLevel  string `json:"current_level"`
	TargetLevel   string `json:"target_level"`
	EstimatedTime string `json:"estimated_time"`
	MatchScore    int    `json:"match_score"`
}

// PrioritizedGaps is the prioritized list of missing requirements
type PrioritizedGaps struct {
	Gaps []PrioritizedGap `json:"gaps"`
}
