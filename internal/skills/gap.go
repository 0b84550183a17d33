// Package skills provides skill gap analysis, related-skill suggestions and gap prioritization.
package skills

import (
	"math"

	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

// AnalyzeSkillGap partitions requirements into matching and missing skills against
// comma-separated user skills. A requirement is matched when any user token contains
// it or is contained by it, case-insensitively. Both partitions keep requirement order
// and original casing.
func AnalyzeSkillGap(requirements []string, userSkillsText string) (*types.GapAnalysis, error) {
	if len(requirements) == 0 {
		return nil, ErrEmptyRequirementSet
	}

	userSkills := parsing.ParseSkillList(userSkillsText)

	matching := make([]string, 0, len(requirements))
	missing := make([]string, 0, len(requirements))
	for _, req := range requirements {
		if parsing.MatchesAny(parsing.NormalizeToken(req), userSkills) {
			matching = append(matching, req)
		} else {
			missing = append(missing, req)
		}
	}

	return &types.GapAnalysis{
		Matching:  matching,
		Missing:   missing,
		Readiness: readiness(len(matching), len(requirements)),
		Total:     len(requirements),
	}, nil
}

// readiness returns round(100 * matched / total), rounding halves up
func readiness(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(matched)/float64(total) + 0.5))
}
