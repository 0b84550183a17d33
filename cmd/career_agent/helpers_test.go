package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

func useDefaultCatalog(t *testing.T) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	appCatalog = cat
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Node.js"}, splitList(" Go, SQL ,,Node.js "))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}

func TestWriteJSON_ValidatesAgainstSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gap.json")

	gap := &types.GapAnalysis{Matching: []string{"Go"}, Missing: []string{}, Readiness: 100, Total: 1}
	require.NoError(t, writeJSON(gap, out, schemas.GapAnalysisSchema))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"matching":["Go"],"missing":[],"readiness":100,"total":1}`, string(data))

	bad := &types.GapAnalysis{Matching: []string{}, Missing: []string{}, Readiness: 150, Total: 1}
	err = writeJSON(bad, filepath.Join(t.TempDir(), "bad.json"), schemas.GapAnalysisSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not validate")
}

func TestWriteJSON_MissingSchemaIsSkipped(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.json")
	require.NoError(t, writeJSON(map[string]int{"a": 1}, out, "schemas/does_not_exist.schema.json"))
}

func TestReadJSONFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "guide.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"jobTitle":"Data Analyst","requiredSkills":["SQL"]}`), 0o644))

	var guide types.CareerGuide
	require.NoError(t, readJSONFile(good, &guide))
	assert.Equal(t, "Data Analyst", guide.JobTitle)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))
	assert.Error(t, readJSONFile(bad, &guide))
	assert.Error(t, readJSONFile(filepath.Join(dir, "missing.json"), &guide))
}

func TestResolveRequirements(t *testing.T) {
	useDefaultCatalog(t)

	role, reqs, err := resolveRequirements(types.SkillGapRequest{JobID: "frontend"})
	require.NoError(t, err)
	assert.Equal(t, "Frontend Developer (React)", role)
	assert.Contains(t, reqs, "React")

	role, reqs, err = resolveRequirements(types.SkillGapRequest{Requirements: []string{"Go"}})
	require.NoError(t, err)
	assert.Equal(t, "Custom role", role)
	assert.Equal(t, []string{"Go"}, reqs)

	_, _, err = resolveRequirements(types.SkillGapRequest{JobID: "astronaut"})
	assert.Error(t, err)
}

func TestResolveNeeds(t *testing.T) {
	useDefaultCatalog(t)
	reset := func() {
		mentorGuideFile, mentorJobID, mentorTitle, mentorRequired, mentorSoft = "", "", "", "", ""
	}
	t.Cleanup(reset)

	t.Run("guide file", func(t *testing.T) {
		reset()
		mentorGuideFile = filepath.Join(t.TempDir(), "guide.json")
		require.NoError(t, os.WriteFile(mentorGuideFile,
			[]byte(`{"jobTitle":"Data Analyst","requiredSkills":["SQL"],"softSkills":["Communication"]}`), 0o644))

		needs, err := resolveNeeds()
		require.NoError(t, err)
		assert.Equal(t, types.RoleNeeds{
			JobTitle:       "Data Analyst",
			RequiredSkills: []string{"SQL"},
			SoftSkills:     []string{"Communication"},
		}, needs)
	})

	t.Run("template with override", func(t *testing.T) {
		reset()
		mentorJobID = "backend"
		mentorTitle = "Laravel Developer"

		needs, err := resolveNeeds()
		require.NoError(t, err)
		assert.Equal(t, "Laravel Developer", needs.JobTitle)
		assert.Contains(t, needs.RequiredSkills, "Laravel")
	})

	t.Run("explicit flags", func(t *testing.T) {
		reset()
		mentorRequired = "Python, SQL"
		mentorSoft = "Teamwork"

		needs, err := resolveNeeds()
		require.NoError(t, err)
		assert.Equal(t, []string{"Python", "SQL"}, needs.RequiredSkills)
		assert.Equal(t, []string{"Teamwork"}, needs.SoftSkills)
	})

	t.Run("unknown template", func(t *testing.T) {
		reset()
		mentorJobID = "astronaut"
		_, err := resolveNeeds()
		assert.Error(t, err)
	})
}

func TestLoadSettings(t *testing.T) {
	t.Cleanup(func() { configPath, catalogPath, logLevel, logFormat, verbose = "", "", "", "", false })

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"log_level":"warn","port":9000,"database_url":"postgres://file"}`), 0o644))

	configPath = cfgFile
	logLevel = "debug"
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("CATALOG_PATH", "")

	s, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel, "flag wins over file")
	assert.Equal(t, "postgres://env", s.DatabaseURL, "env wins over file")
	assert.Equal(t, 9000, s.Port, "file fills what env leaves empty")

	logFormat = "xml"
	_, err = loadSettings()
	assert.Error(t, err)
}
