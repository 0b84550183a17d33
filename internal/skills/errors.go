package skills

import "errors"

// ErrEmptyRequirementSet is returned when a gap analysis is asked for a role with no requirements
var ErrEmptyRequirementSet = errors.New("requirement set must not be empty")
