// Package roadmap builds a learning path from a user's current skills toward a target role.
package roadmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// levelOrderStride separates level tiers in a gap's order value
	levelOrderStride = 10
	// maxMilestones is how many gaps become milestones
	maxMilestones = 6
	// milestoneResources is how many gap resources a milestone carries
	milestoneResources = 2
	// weeksPerMilestone and totalTimeSlack shape the total estimate
	weeksPerMilestone = 3
	totalTimeSlack    = 4
)

// coreSkills are always considered relevant to a role
var coreSkills = map[string]bool{
	"HTML":       true,
	"CSS":        true,
	"JavaScript": true,
	"React":      true,
	"Node.js":    true,
	"Database":   true,
	"API":        true,
}

// Input describes the learner and the role the path leads to
type Input struct {
	JobTitle       string
	RequiredSkills []string
	CurrentSkills  []string
	StartedAt      time.Time
}

// Build creates a learning path: every relevant level skill the user lacks becomes
// a gap, the first gaps become milestones, and progress starts at zero.
func Build(in Input, cat *catalog.Catalog) *types.LearningPath {
	gaps := buildGaps(in.RequiredSkills, in.CurrentSkills, cat)
	milestones := buildMilestones(gaps, cat.MilestoneTitles)

	startedAt := in.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	return &types.LearningPath{
		ID:                 uuid.NewString(),
		JobTitle:           in.JobTitle,
		CurrentSkills:      in.CurrentSkills,
		TargetSkills:       in.RequiredSkills,
		SkillGaps:          gaps,
		Milestones:         milestones,
		TotalEstimatedTime: totalTime(len(milestones)),
		ProgressPercentage: 0,
		StartedAt:          startedAt,
	}
}

// buildGaps walks the level tables in order, keeping skills that are missing and relevant
func buildGaps(requiredSkills, userSkills []string, cat *catalog.Catalog) []types.RoadmapGap {
	gaps := make([]types.RoadmapGap, 0)
	for levelIndex, level := range cat.SkillLevels {
		for skillIndex, skill := range level.Skills {
			if parsing.HasSkill(skill, userSkills) || !isRelevant(skill, requiredSkills) {
				continue
			}
			gaps = append(gaps, types.RoadmapGap{
				Skill:         skill,
				Level:         level.Level,
				Priority:      level.Priority,
				Prerequisites: append([]string{}, level.Prerequisites...),
				EstimatedTime: skills.EstimateLearningTime(level.Priority),
				Resources:     buildResources(skill, cat),
				Order:         levelIndex*levelOrderStride + skillIndex,
			})
		}
	}
	return gaps
}

// isRelevant reports whether a level skill belongs on the path for the required skills.
// Any skill is relevant when no requirements are given.
func isRelevant(skill string, requiredSkills []string) bool {
	if len(requiredSkills) == 0 || coreSkills[skill] {
		return true
	}
	stem := strings.ToLower(skill)
	if i := strings.Index(stem, "."); i >= 0 {
		stem = stem[:i]
	}
	for _, rs := range requiredSkills {
		if strings.Contains(strings.ToLower(rs), stem) {
			return true
		}
	}
	return false
}

func buildMilestones(gaps []types.RoadmapGap, titles []string) []types.Milestone {
	n := len(gaps)
	if n > maxMilestones {
		n = maxMilestones
	}

	milestones := make([]types.Milestone, 0, n)
	for i, gap := range gaps[:n] {
		title := fmt.Sprintf("Skill: %s", gap.Skill)
		if i < len(titles) {
			title = titles[i]
		}
		resources := gap.Resources
		if len(resources) > milestoneResources {
			resources = resources[:milestoneResources]
		}
		milestones = append(milestones, types.Milestone{
			ID:        fmt.Sprintf("milestone-%d", i),
			Title:     title,
			Skills:    []string{gap.Skill},
			Resources: append([]types.LearningResource{}, resources...),
			Duration:  gap.EstimatedTime,
			Order:     i + 1,
		})
	}
	return milestones
}

func totalTime(milestones int) string {
	weeks := milestones * weeksPerMilestone
	return fmt.Sprintf("%d-%d weeks", weeks, weeks+totalTimeSlack)
}

// GapsAtLevel returns the gaps of one level in path order
func GapsAtLevel(path *types.LearningPath, level string) []types.RoadmapGap {
	out := make([]types.RoadmapGap, 0)
	for _, g := range path.SkillGaps {
		if g.Level == level {
			out = append(out, g)
		}
	}
	return out
}
