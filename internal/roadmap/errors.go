package roadmap

import "errors"

// ErrMilestoneNotFound is returned when toggling a milestone id that is not on the path
var ErrMilestoneNotFound = errors.New("milestone not found")
