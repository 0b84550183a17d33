package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/skills"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "skills", Message: "bad"}, http.StatusBadRequest},
		{"empty requirements", fmt.Errorf("analyze: %w", skills.ErrEmptyRequirementSet), http.StatusBadRequest},
		{"not found", &ErrNotFound{Resource: "job", ID: "x"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "job", ID: "x"}), http.StatusNotFound},
		{"milestone", fmt.Errorf("%w: m9", roadmap.ErrMilestoneNotFound), http.StatusNotFound},
		{"unauthorized", &ErrUnauthorized{}, http.StatusUnauthorized},
		{"unavailable", &ErrUnavailable{Feature: "sessions"}, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: skills - bad", (&ErrValidation{Field: "skills", Message: "bad"}).Error())
	assert.Equal(t, "validation error: bad", (&ErrValidation{Message: "bad"}).Error())
	assert.Equal(t, "job not found: x", (&ErrNotFound{Resource: "job", ID: "x"}).Error())
	assert.Equal(t, "sessions is not configured", (&ErrUnavailable{Feature: "sessions"}).Error())
}
