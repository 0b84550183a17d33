package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Mentors, 10)
	assert.Len(t, c.JobTemplates, 16)
	assert.Len(t, c.RelatedSkills, 18)
	assert.Len(t, c.SkillLevels, 3)
	assert.Len(t, c.Platforms, 9)
	assert.Len(t, c.MilestoneTitles, 6)

	// table order is significant for suggestions
	assert.Equal(t, "html", c.RelatedSkills[0].Keyword)
	assert.Equal(t, "financial", c.RelatedSkills[17].Keyword)
	assert.Equal(t, "mentor-001", c.Mentors[0].ID)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestJobLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	job, ok := c.Job("backend")
	require.True(t, ok)
	assert.Equal(t, []string{"PHP", "Laravel", "MySQL", "REST API", "Git", "OOP", "Docker", "Postman", "Authentication"}, job.Skills)

	_, ok = c.Job("astronaut")
	assert.False(t, ok)
}

func TestMentorLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	m, ok := c.Mentor("mentor-002")
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", m.JobTitle)
	assert.Contains(t, m.Expertise, "SQL")

	_, ok = c.Mentor("mentor-999")
	assert.False(t, ok)
}

func TestPlatformFor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		resourceType string
		expected     string
		found        bool
	}{
		{"Course", "Coursera", true},
		{"Video", "YouTube", true},
		{"Tutorial", "FreeCodeCamp", true},
		{"Book", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.resourceType, func(t *testing.T) {
			p, ok := c.PlatformFor(tt.resourceType)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("  ")
	require.NoError(t, err)
	def, _ := Default()
	assert.Same(t, def, c)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	valid := `
mentors:
  - id: m1
    name: Test Mentor
    expertise: ["Go"]
job_templates:
  - id: go_dev
    title: Go Developer
    skills: ["Go", "SQL"]
skill_levels:
  - level: Beginner
    priority: Essential
    skills: ["Go"]
platforms:
  - name: Docs
    base_url: https://go.dev/doc
    resource_type: Tutorial
`
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Mentors, 1)
	assert.Empty(t, c.RelatedSkills)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "mentors: [\n"},
		{"missing mentors", "job_templates:\n  - id: a\n    title: A\n    skills: [x]\n"},
		{"empty job skills", `
mentors:
  - id: m1
    name: M
    expertise: ["Go"]
job_templates:
  - id: a
    title: A
    skills: []
skill_levels:
  - level: Beginner
    priority: Essential
    skills: ["Go"]
platforms:
  - name: Docs
    base_url: https://go.dev/doc
    resource_type: Tutorial
`},
		{"duplicate mentor ids", `
mentors:
  - id: m1
    name: M
    expertise: ["Go"]
  - id: m1
    name: N
    expertise: ["SQL"]
job_templates:
  - id: a
    title: A
    skills: [Go]
skill_levels:
  - level: Beginner
    priority: Essential
    skills: ["Go"]
platforms:
  - name: Docs
    base_url: https://go.dev/doc
    resource_type: Tutorial
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadFile(path)
			require.Error(t, err)
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Source)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}
