package db

import "errors"

// ErrGuideNotFound is returned when a guide ID belongs to another session
var ErrGuideNotFound = errors.New("guide not found")

// Default and maximum page sizes for list queries
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// clampLimit bounds a caller-provided list limit
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
