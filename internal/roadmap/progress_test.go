package roadmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func pathWithMilestones(n int) *types.LearningPath {
	path := &types.LearningPath{}
	for i := 0; i < n; i++ {
		path.Milestones = append(path.Milestones, types.Milestone{ID: "milestone-" + string(rune('0'+i)), Order: i + 1})
	}
	return path
}

func TestToggleMilestone(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path := pathWithMilestones(3)

	require.NoError(t, ToggleMilestone(path, "milestone-0", now))
	assert.True(t, path.Milestones[0].Completed)
	require.NotNil(t, path.Milestones[0].CompletedAt)
	assert.Equal(t, now, *path.Milestones[0].CompletedAt)
	assert.Equal(t, 33, path.ProgressPercentage)
	assert.Nil(t, path.CompletedAt)

	require.NoError(t, ToggleMilestone(path, "milestone-1", now))
	assert.Equal(t, 67, path.ProgressPercentage)

	require.NoError(t, ToggleMilestone(path, "milestone-2", now))
	assert.Equal(t, 100, path.ProgressPercentage)
	require.NotNil(t, path.CompletedAt)
	assert.Equal(t, now, *path.CompletedAt)

	// un-completing clears both timestamps
	require.NoError(t, ToggleMilestone(path, "milestone-2", now))
	assert.False(t, path.Milestones[2].Completed)
	assert.Nil(t, path.Milestones[2].CompletedAt)
	assert.Equal(t, 67, path.ProgressPercentage)
	assert.Nil(t, path.CompletedAt)
}

func TestToggleMilestone_NotFound(t *testing.T) {
	path := pathWithMilestones(2)

	err := ToggleMilestone(path, "milestone-9", time.Now())
	assert.ErrorIs(t, err, ErrMilestoneNotFound)
	assert.Equal(t, 0, path.ProgressPercentage)
}
