package skills

import (
	"fmt"
	"math"

	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// baseWeeks is the learning time unit every estimate is scaled from
	baseWeeks = 2.0
	// Spreads widen the lower bound of an estimate into its upper bound
	roadmapEstimateSpread = 1.5
	gapEstimateSpread     = 2.0

	// Gap match score starts at topGapScore and drops by gapScoreStep per requirement index
	topGapScore  = 85
	gapScoreStep = 5

	levelNone = "None"
)

var priorityCycle = []string{
	types.PriorityEssential,
	types.PriorityRecommended,
	types.PriorityNiceToHave,
}

// priorityMultiplier scales the base learning time by priority
func priorityMultiplier(priority string) float64 {
	switch priority {
	case types.PriorityEssential:
		return 2
	case types.PriorityRecommended:
		return 1.5
	default:
		return 1
	}
}

// EstimateLearningTime returns the "{low}-{high} weeks" range a roadmap gap of the
// given priority is expected to take
func EstimateLearningTime(priority string) string {
	return estimateWeeks(priority, roadmapEstimateSpread)
}

// estimateWeeks scales the base time by priority; the upper bound is low*spread
func estimateWeeks(priority string, spread float64) string {
	low := baseWeeks * priorityMultiplier(priority)
	return fmt.Sprintf("%d-%d weeks", int(math.Ceil(low)), int(math.Ceil(low*spread)))
}

// PrioritizeGaps returns one entry per missing requirement. Priority cycles through
// Essential, Recommended and Nice-to-have by the requirement's index, and the match
// score falls by requirement index. Estimates use a wider spread than roadmap gaps.
func PrioritizeGaps(requirements []string, userSkillsText string) ([]types.PrioritizedGap, error) {
	if len(requirements) == 0 {
		return nil, ErrEmptyRequirementSet
	}

	userSkills := parsing.ParseSkillList(userSkillsText)
	gaps := make([]types.PrioritizedGap, 0, len(requirements))
	for i, req := range requirements {
		if parsing.MatchesAny(parsing.NormalizeToken(req), userSkills) {
			continue
		}
		priority := priorityCycle[i%len(priorityCycle)]
		score := topGapScore - gapScoreStep*i
		if score < 0 {
			score = 0
		}
		gaps = append(gaps, types.PrioritizedGap{
			Skill:         req,
			Priority:      priority,
			CurrentLevel:  levelNone,
			TargetLevel:   types.LevelIntermediate,
			EstimatedTime: estimateWeeks(priority, gapEstimateSpread),
			MatchScore:    score,
		})
	}
	return gaps, nil
}

// FilterByPriority keeps gaps of one priority; an empty priority keeps all
func FilterByPriority(gaps []types.PrioritizedGap, priority string) []types.PrioritizedGap {
	if priority == "" {
		return gaps
	}
	out := make([]types.PrioritizedGap, 0, len(gaps))
	for _, g := range gaps {
		if g.Priority == priority {
			out = append(out, g)
		}
	}
	return out
}
