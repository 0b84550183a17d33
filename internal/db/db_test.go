package db

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultListLimit},
		{-3, DefaultListLimit},
		{1, 1},
		{MaxListLimit, MaxListLimit},
		{MaxListLimit + 1, MaxListLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampLimit(tt.in), "clampLimit(%d)", tt.in)
	}
}

func TestSchemaStatements(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	assert.Contains(t, joined, "career_guides")
	assert.Contains(t, joined, "learning_paths")
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", "schema statements must be idempotent")
	}
}

func TestEncodePath(t *testing.T) {
	id := uuid.New()
	path := &types.LearningPath{ID: id.String(), JobTitle: "Frontend Developer"}

	gotID, content, err := encodePath(path)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Contains(t, string(content), `"job_title":"Frontend Developer"`)
}

func TestEncodePath_Errors(t *testing.T) {
	_, _, err := encodePath(nil)
	assert.Error(t, err)

	_, _, err = encodePath(&types.LearningPath{ID: "not-a-uuid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid learning path id")
}
