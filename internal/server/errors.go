package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/skills"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates a missing or invalid session
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "unauthorized"
}

// ErrUnavailable indicates a feature whose backing service is not configured
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		notFound    *ErrNotFound
		unauth      *ErrUnauthorized
		unavailable *ErrUnavailable
	)
	switch {
	case errors.As(err, &validation), errors.Is(err, skills.ErrEmptyRequirementSet):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, roadmap.ErrMilestoneNotFound):
		return http.StatusNotFound
	case errors.As(err, &unauth):
		return http.StatusUnauthorized
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
