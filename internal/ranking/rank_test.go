package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

func mentor(id string, expertise ...string) types.MentorProfile {
	return types.MentorProfile{ID: id, Name: "Mentor " + id, Expertise: expertise}
}

func TestMatchMentors_SingleRequiredMatch(t *testing.T) {
	roster := []types.MentorProfile{mentor("m1", "Python", "SQL")}
	needs := types.RoleNeeds{RequiredSkills: []string{"Python", "Excel"}}

	matches := MatchMentors(needs, "", roster)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].MatchScore)
	assert.Equal(t, []string{"python"}, matches[0].MatchedInterests)
	assert.Contains(t, matches[0].Notes, "Strong expertise match (python)")
}

func TestMatchMentors_Weights(t *testing.T) {
	tests := []struct {
		name      string
		mentor    types.MentorProfile
		needs     types.RoleNeeds
		interests string
		score     int
		matched   []string
	}{
		{
			name:    "Soft skill",
			mentor:  mentor("m1", "Leadership"),
			needs:   types.RoleNeeds{SoftSkills: []string{"Leadership"}},
			score:   2,
			matched: []string{"leadership"},
		},
		{
			name:      "Interest in expertise",
			mentor:    mentor("m1", "Machine Learning"),
			interests: "machine, gardening",
			score:     1,
			matched:   []string{"machine"},
		},
		{
			name:      "Interest inside longer expertise",
			mentor:    mentor("m1", "MySQL"),
			interests: "sql",
			score:     1,
			matched:   []string{"sql"},
		},
		{
			name:      "Interest in bio",
			mentor:    types.MentorProfile{ID: "m1", Expertise: []string{"Figma"}, Bio: "Loves mentoring AI startups"},
			interests: "AI",
			score:     1,
			matched:   []string{"ai"},
		},
		{
			name:    "Industry bonus adds no token",
			mentor:  types.MentorProfile{ID: "m1", Expertise: []string{"Figma"}, Industry: "Fintech"},
			needs:   types.RoleNeeds{JobTitle: "Fintech"},
			score:   2,
			matched: []string{},
		},
		{
			name:    "Industry contained in job title",
			mentor:  types.MentorProfile{ID: "m1", Expertise: []string{"Figma"}, Industry: "Retail"},
			needs:   types.RoleNeeds{JobTitle: "Retail Store Manager"},
			score:   2,
			matched: []string{},
		},
		{
			name:      "Shared token deduplicated",
			mentor:    mentor("m1", "Python"),
			needs:     types.RoleNeeds{RequiredSkills: []string{"Python"}},
			interests: "python",
			score:     4,
			matched:   []string{"python"},
		},
		{
			name:   "All weights combined",
			mentor: types.MentorProfile{ID: "m1", Expertise: []string{"Python", "SQL", "Leadership"}, Industry: "Data", Bio: "cloud person"},
			needs: types.RoleNeeds{
				JobTitle:       "Data Analyst",
				RequiredSkills: []string{"Python", "SQL", "Tableau"},
				SoftSkills:     []string{"Leadership"},
			},
			interests: "cloud, gaming",
			score:     3*2 + 2 + 1 + 2,
			matched:   []string{"python", "sql", "leadership", "cloud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := MatchMentors(tt.needs, tt.interests, []types.MentorProfile{tt.mentor})
			require.Len(t, matches, 1)
			assert.Equal(t, tt.score, matches[0].MatchScore)
			assert.Equal(t, tt.matched, matches[0].MatchedInterests)
		})
	}
}

func TestMatchMentors_EmptyInputsDoNotMatch(t *testing.T) {
	roster := []types.MentorProfile{
		{ID: "m1", Expertise: []string{"Go"}, Industry: "Software", Bio: "writes go"},
	}

	// empty interests, empty job title and blank skills contribute nothing
	matches := MatchMentors(types.RoleNeeds{RequiredSkills: []string{"", "  "}}, "  , ", roster)
	assert.Empty(t, matches)
}

func TestMatchMentors_InterestMustBeInsideExpertise(t *testing.T) {
	roster := []types.MentorProfile{mentor("m1", "SQL")}

	matches := MatchMentors(types.RoleNeeds{}, "mysql", roster)
	assert.Empty(t, matches, "an interest wider than the expertise entry scores nothing")

	matches = MatchMentors(types.RoleNeeds{RequiredSkills: []string{"MySQL"}}, "", roster)
	require.Len(t, matches, 1, "required skills still match both ways")
	assert.Equal(t, 3, matches[0].MatchScore)
}

func TestMatchMentors_ZeroScoresDropped(t *testing.T) {
	roster := []types.MentorProfile{
		mentor("m1", "Figma"),
		mentor("m2", "Go"),
		mentor("m3", "Rust"),
	}

	matches := MatchMentors(types.RoleNeeds{RequiredSkills: []string{"Go"}}, "", roster)
	require.Len(t, matches, 1)
	assert.Equal(t, "m2", matches[0].ID)
}

func TestMatchMentors_TopFiveStableOrder(t *testing.T) {
	roster := make([]types.MentorProfile, 0, 8)
	for i := 0; i < 7; i++ {
		roster = append(roster, mentor(fmt.Sprintf("m%d", i), "Go"))
	}
	roster = append(roster, mentor("m-best", "Go", "SQL"))

	matches := MatchMentors(types.RoleNeeds{RequiredSkills: []string{"Go", "SQL"}}, "", roster)
	require.Len(t, matches, MaxMatches)

	assert.Equal(t, "m-best", matches[0].ID)
	assert.Equal(t, 6, matches[0].MatchScore)
	// ties keep roster order
	for i := 1; i < MaxMatches; i++ {
		assert.Equal(t, fmt.Sprintf("m%d", i-1), matches[i].ID)
		assert.Equal(t, 3, matches[i].MatchScore)
	}
}

func TestMatchMentors_ScoreCapped(t *testing.T) {
	required := make([]string, 40)
	for i := range required {
		required[i] = "Go"
	}

	matches := MatchMentors(types.RoleNeeds{RequiredSkills: required}, "", []types.MentorProfile{mentor("m1", "Go")})
	require.Len(t, matches, 1)
	assert.Equal(t, MaxScore, matches[0].MatchScore)
	assert.Equal(t, []string{"go"}, matches[0].MatchedInterests)
}

func TestMatchMentors_DoesNotMutateRoster(t *testing.T) {
	roster := []types.MentorProfile{mentor("m1", "Go"), mentor("m2", "Go", "SQL")}
	snapshot := append([]types.MentorProfile(nil), roster...)

	_ = MatchMentors(types.RoleNeeds{RequiredSkills: []string{"Go", "SQL"}}, "go", roster)
	assert.Equal(t, snapshot, roster)
}

func TestMatchMentors_CatalogRoster(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	job, ok := cat.Job("data_analyst")
	require.True(t, ok)

	needs := types.RoleNeeds{
		JobTitle:       job.Title,
		RequiredSkills: job.Skills,
		SoftSkills:     []string{"Communication", "Leadership"},
	}
	matches := MatchMentors(needs, "AI, data", cat.Mentors)

	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), MaxMatches)
	assert.Equal(t, "mentor-002", matches[0].ID)
	assert.Subset(t, matches[0].MatchedInterests, []string{"python", "sql", "statistics"})

	for i, m := range matches {
		assert.Greater(t, m.MatchScore, 0)
		assert.LessOrEqual(t, m.MatchScore, MaxScore)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].MatchScore, m.MatchScore)
		}
	}
}

func TestMatchMentors_Properties(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	interests := []string{"", "web development", "AI, cloud, security", "design mobile apps"}
	for _, job := range cat.JobTemplates {
		for _, in := range interests {
			needs := types.RoleNeeds{JobTitle: job.Title, RequiredSkills: job.Skills}
			matches := MatchMentors(needs, in, cat.Mentors)

			assert.LessOrEqual(t, len(matches), MaxMatches)
			for i, m := range matches {
				assert.Greater(t, m.MatchScore, 0, "job %s", job.ID)
				assert.LessOrEqual(t, m.MatchScore, MaxScore)
				if i > 0 {
					assert.GreaterOrEqual(t, matches[i-1].MatchScore, m.MatchScore)
				}
			}
		}
	}
}

func TestGenerateNotes(t *testing.T) {
	tests := []struct {
		name     string
		score    mentorScore
		required int
		contains []string
	}{
		{
			name:     "Partial match",
			score:    mentorScore{requiredMatches: []string{"go"}},
			required: 4,
			contains: []string{"Partial expertise match (go)"},
		},
		{
			name:     "No required match with bonus",
			score:    mentorScore{industryMatch: true, interestMatches: []string{"ai", "ai"}},
			required: 2,
			contains: []string{"No required skill matches", "Shares interests (ai)", "Industry aligned with role"},
		},
		{
			name:     "Soft skills",
			score:    mentorScore{softMatches: []string{"leadership"}},
			required: 0,
			contains: []string{"Soft skills covered (leadership)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := generateNotes(tt.score, tt.required)
			for _, c := range tt.contains {
				assert.Contains(t, notes, c)
			}
		})
	}
}
