package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

var analyzeGapCmd = &cobra.Command{
	Use:   "analyze-gap",
	Short: "Compare a user's skills against a role's requirements",
	Long: `Partition a role's requirements into matching and missing skills and compute a readiness percentage.
The role is a job template (--job) or an explicit comma-separated list (--requirements).
With --prioritize, missing skills are listed with a priority, a learning estimate and a score.`,
	RunE: runAnalyzeGap,
}

var (
	gapJobID        string
	gapRequirements string
	gapSkills       string
	gapPrioritize   bool
	gapPriority     string
	gapOutputFile   string
)

func init() {
	analyzeGapCmd.Flags().StringVarP(&gapJobID, "job", "j", "", "Job template ID (see list-jobs)")
	analyzeGapCmd.Flags().StringVarP(&gapRequirements, "requirements", "r", "", "Comma-separated required skills")
	analyzeGapCmd.Flags().StringVarP(&gapSkills, "skills", "s", "", "The user's skills, comma-separated free text")
	analyzeGapCmd.Flags().BoolVar(&gapPrioritize, "prioritize", false, "Output prioritized gaps instead of the partition")
	analyzeGapCmd.Flags().StringVar(&gapPriority, "priority", "", "With --prioritize, keep one priority (Essential, Recommended, Nice-to-have)")
	analyzeGapCmd.Flags().StringVarP(&gapOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	analyzeGapCmd.MarkFlagsMutuallyExclusive("job", "requirements")
	rootCmd.AddCommand(analyzeGapCmd)
}

func runAnalyzeGap(_ *cobra.Command, _ []string) error {
	req := types.SkillGapRequest{
		JobID:        gapJobID,
		Requirements: splitList(gapRequirements),
		Skills:       gapSkills,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("either --job or --requirements is required: %w", err)
	}

	role, requirements, err := resolveRequirements(req)
	if err != nil {
		return err
	}

	if gapPrioritize {
		gaps, err := skills.PrioritizeGaps(requirements, req.Skills)
		if err != nil {
			return err
		}
		out := types.PrioritizedGaps{Gaps: skills.FilterByPriority(gaps, gapPriority)}
		if p := printer(); p != nil {
			p.PrintPrioritizedGaps(out.Gaps)
		}
		return writeJSON(out, gapOutputFile, schemas.PrioritizedGapsSchema)
	}

	gap, err := skills.AnalyzeSkillGap(requirements, req.Skills)
	if err != nil {
		return err
	}
	if p := printer(); p != nil {
		p.PrintGapAnalysis(role, gap)
	}
	return writeJSON(gap, gapOutputFile, schemas.GapAnalysisSchema)
}

// resolveRequirements returns the role name and requirement set of a request
func resolveRequirements(req types.SkillGapRequest) (string, []string, error) {
	if req.JobID == "" {
		return "Custom role", req.Requirements, nil
	}
	job, ok := appCatalog.Job(req.JobID)
	if !ok {
		return "", nil, fmt.Errorf("unknown job template %q (see list-jobs)", req.JobID)
	}
	return job.Title, job.Skills, nil
}
