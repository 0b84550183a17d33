package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

var buildRoadmapCmd = &cobra.Command{
	Use:   "build-roadmap",
	Short: "Build a learning path toward a role",
	Long: `Build a learning path from the user's current skills to a target role: every relevant
skill the user lacks becomes a gap with resources, and the first gaps become milestones.`,
	RunE: runBuildRoadmap,
}

var (
	roadmapJobID      string
	roadmapTitle      string
	roadmapRequired   string
	roadmapCurrent    string
	roadmapOutputFile string
)

func init() {
	buildRoadmapCmd.Flags().StringVarP(&roadmapJobID, "job", "j", "", "Job template ID supplying title and required skills")
	buildRoadmapCmd.Flags().StringVar(&roadmapTitle, "title", "", "Target job title")
	buildRoadmapCmd.Flags().StringVar(&roadmapRequired, "required", "", "Comma-separated required skills")
	buildRoadmapCmd.Flags().StringVarP(&roadmapCurrent, "current", "c", "", "Comma-separated current skills (required)")
	buildRoadmapCmd.Flags().StringVarP(&roadmapOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = buildRoadmapCmd.MarkFlagRequired("current")
	rootCmd.AddCommand(buildRoadmapCmd)
}

func runBuildRoadmap(_ *cobra.Command, _ []string) error {
	req := types.RoadmapRequest{
		JobTitle:       roadmapTitle,
		RequiredSkills: splitList(roadmapRequired),
		CurrentSkills:  splitList(roadmapCurrent),
	}
	if roadmapJobID != "" {
		job, ok := appCatalog.Job(roadmapJobID)
		if !ok {
			return fmt.Errorf("unknown job template %q (see list-jobs)", roadmapJobID)
		}
		if req.JobTitle == "" {
			req.JobTitle = job.Title
		}
		if len(req.RequiredSkills) == 0 {
			req.RequiredSkills = job.Skills
		}
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("a title (--title or --job) and at least one current skill are required: %w", err)
	}

	path := roadmap.Build(roadmap.Input{
		JobTitle:       req.JobTitle,
		RequiredSkills: req.RequiredSkills,
		CurrentSkills:  req.CurrentSkills,
		StartedAt:      time.Now().UTC(),
	}, appCatalog)

	if p := printer(); p != nil {
		p.PrintLearningPath(path)
	}
	return writeJSON(path, roadmapOutputFile, schemas.LearningPathSchema)
}
