package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestEstimateLearningTime(t *testing.T) {
	tests := []struct {
		priority string
		expected string
	}{
		{types.PriorityEssential, "4-6 weeks"},
		{types.PriorityRecommended, "3-5 weeks"},
		{types.PriorityNiceToHave, "2-3 weeks"},
		{"unknown", "2-3 weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.priority, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateLearningTime(tt.priority))
		})
	}
}

func TestPrioritizeGaps(t *testing.T) {
	requirements := []string{"PHP", "Laravel", "MySQL", "REST API", "Git"}

	gaps, err := PrioritizeGaps(requirements, "php, git")
	require.NoError(t, err)
	require.Len(t, gaps, 3)

	assert.Equal(t, "Laravel", gaps[0].Skill)
	assert.Equal(t, types.PriorityRecommended, gaps[0].Priority)
	assert.Equal(t, 80, gaps[0].MatchScore)
	assert.Equal(t, "3-6 weeks", gaps[0].EstimatedTime)
	assert.Equal(t, "None", gaps[0].CurrentLevel)
	assert.Equal(t, types.LevelIntermediate, gaps[0].TargetLevel)

	assert.Equal(t, "MySQL", gaps[1].Skill)
	assert.Equal(t, types.PriorityNiceToHave, gaps[1].Priority)
	assert.Equal(t, 75, gaps[1].MatchScore)
	assert.Equal(t, "2-4 weeks", gaps[1].EstimatedTime)

	assert.Equal(t, "REST API", gaps[2].Skill)
	assert.Equal(t, types.PriorityEssential, gaps[2].Priority)
	assert.Equal(t, 70, gaps[2].MatchScore)
	assert.Equal(t, "4-8 weeks", gaps[2].EstimatedTime)
}

func TestPrioritizeGaps_EstimatesWiderThanRoadmap(t *testing.T) {
	gaps, err := PrioritizeGaps([]string{"React", "Redux", "Jest"}, "")
	require.NoError(t, err)
	require.Len(t, gaps, 3)

	expected := []string{"4-8 weeks", "3-6 weeks", "2-4 weeks"}
	for i, gap := range gaps {
		assert.Equal(t, expected[i], gap.EstimatedTime, gap.Skill)
		assert.NotEqual(t, EstimateLearningTime(gap.Priority), gap.EstimatedTime, gap.Skill)
	}
}

func TestPrioritizeGaps_ScoreFloor(t *testing.T) {
	reqs := make([]string, 20)
	for i := range reqs {
		reqs[i] = string(rune('a'+i)) + "-skill"
	}

	gaps, err := PrioritizeGaps(reqs, "")
	require.NoError(t, err)
	require.Len(t, gaps, 20)
	assert.Equal(t, 85, gaps[0].MatchScore)
	assert.Equal(t, 0, gaps[17].MatchScore)
	assert.Equal(t, 0, gaps[19].MatchScore)
}

func TestPrioritizeGaps_EmptyRequirements(t *testing.T) {
	_, err := PrioritizeGaps(nil, "go")
	assert.ErrorIs(t, err, ErrEmptyRequirementSet)
}

func TestFilterByPriority(t *testing.T) {
	gaps, err := PrioritizeGaps([]string{"A1", "B2", "C3", "D4"}, "")
	require.NoError(t, err)

	assert.Len(t, FilterByPriority(gaps, ""), 4)
	essential := FilterByPriority(gaps, types.PriorityEssential)
	require.Len(t, essential, 2)
	assert.Equal(t, "A1", essential[0].Skill)
	assert.Equal(t, "D4", essential[1].Skill)
	assert.Empty(t, FilterByPriority(gaps, "Urgent"))
}
