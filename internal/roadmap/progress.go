package roadmap

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// ToggleMilestone flips the completion of one milestone and recomputes the path's
// progress. The path is marked completed when every milestone is done.
func ToggleMilestone(path *types.LearningPath, milestoneID string, now time.Time) error {
	idx := -1
	for i := range path.Milestones {
		if path.Milestones[i].ID == milestoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMilestoneNotFound, milestoneID)
	}

	m := &path.Milestones[idx]
	m.Completed = !m.Completed
	if m.Completed {
		at := now
		m.CompletedAt = &at
	} else {
		m.CompletedAt = nil
	}

	path.ProgressPercentage = progress(path.Milestones)
	if path.ProgressPercentage == 100 {
		at := now
		path.CompletedAt = &at
	} else {
		path.CompletedAt = nil
	}
	return nil
}

func progress(milestones []types.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}
	return int(math.Floor(100*float64(completed)/float64(len(milestones)) + 0.5))
}
