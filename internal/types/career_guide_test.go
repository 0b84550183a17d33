package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerGuide_UnmarshalGeneratorFields(t *testing.T) {
	input := `{
		"id": "g1",
		"jobTitle": "Data Analyst",
		"matchScore": 80,
		"requiredSkills": ["Python", "SQL"],
		"softSkills": ["Communication"],
		"marketDemand": "High",
		"relatedJobs": [{"title": "BI Developer", "summary": "Dashboards"}]
	}`

	var guide CareerGuide
	require.NoError(t, json.Unmarshal([]byte(input), &guide))

	assert.Equal(t, "Data Analyst", guide.JobTitle)
	assert.Equal(t, []string{"Python", "SQL"}, guide.RequiredSkills)
	require.Len(t, guide.RelatedJobs, 1)
	assert.Equal(t, "BI Developer", guide.RelatedJobs[0].Title)
}

func TestCareerGuide_KeepsUnknownFields(t *testing.T) {
	input := `{
		"jobTitle": "Data Analyst",
		"marketDemand": "မြင့်မားသည်",
		"industryOutlook": {"growth": "fast", "regions": ["Yangon"]},
		"notes": ["one", "two"]
	}`

	var guide CareerGuide
	require.NoError(t, json.Unmarshal([]byte(input), &guide))
	assert.Equal(t, "မြင့်မားသည်", guide.MarketDemand)
	require.Len(t, guide.Extra, 2)
	assert.NotContains(t, guide.Extra, "jobTitle")

	guide.ID = "g-42"
	out, err := json.Marshal(&guide)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "g-42", decoded["id"])
	assert.Equal(t, "Data Analyst", decoded["jobTitle"])
	assert.Equal(t, map[string]any{"growth": "fast", "regions": []any{"Yangon"}}, decoded["industryOutlook"])
	assert.Equal(t, []any{"one", "two"}, decoded["notes"])
}

func TestCareerGuide_TypedFieldsWinOverExtra(t *testing.T) {
	guide := CareerGuide{
		JobTitle: "QA Engineer",
		Extra:    map[string]json.RawMessage{"jobTitle": json.RawMessage(`"stale"`)},
	}
	out, err := json.Marshal(guide)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "QA Engineer", decoded["jobTitle"])
}

func TestCareerGuide_NoExtraWhenAllKnown(t *testing.T) {
	var guide CareerGuide
	require.NoError(t, json.Unmarshal([]byte(`{"jobTitle": "Web Developer"}`), &guide))
	assert.Nil(t, guide.Extra)
}

func TestCareerGuide_Needs(t *testing.T) {
	guide := &CareerGuide{
		JobTitle:       "Cloud Engineer",
		RequiredSkills: []string{"AWS"},
		SoftSkills:     []string{"Leadership"},
	}

	needs := guide.Needs()
	assert.Equal(t, "Cloud Engineer", needs.JobTitle)
	assert.Equal(t, []string{"AWS"}, needs.RequiredSkills)
	assert.Equal(t, []string{"Leadership"}, needs.SoftSkills)
}
