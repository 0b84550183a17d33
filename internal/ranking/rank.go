package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

// MaxMatches is the most mentors MatchMentors returns
const MaxMatches = 5

// MatchMentors scores every mentor in roster against the role's skill needs and the
// user's free-text interests. Mentors scoring zero are dropped, the rest are sorted by
// score descending with roster order breaking ties, and at most MaxMatches are returned.
func MatchMentors(needs types.RoleNeeds, interests string, roster []types.MentorProfile) []types.MentorMatch {
	required := parsing.NormalizeAll(needs.RequiredSkills)
	soft := parsing.NormalizeAll(needs.SoftSkills)
	interestWords := parsing.SplitInterests(interests)

	matches := make([]types.MentorMatch, 0, len(roster))
	for i := range roster {
		s := scoreMentor(&roster[i], needs.JobTitle, required, soft, interestWords)
		score := s.total()
		if score <= 0 {
			continue
		}
		matches = append(matches, types.MentorMatch{
			MentorProfile:    roster[i],
			MatchScore:       score,
			MatchedInterests: s.matched(),
			Notes:            generateNotes(s, len(required)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}

// generateNotes creates a brief explanation of a mentor's score
func generateNotes(s mentorScore, requiredCount int) string {
	var parts []string

	if len(s.requiredMatches) > 0 {
		ratio := float64(len(s.requiredMatches)) / float64(requiredCount)
		list := strings.Join(s.requiredMatches, ", ")
		if ratio >= 0.5 {
			parts = append(parts, fmt.Sprintf("Strong expertise match (%s)", list))
		} else {
			parts = append(parts, fmt.Sprintf("Partial expertise match (%s)", list))
		}
	} else {
		parts = append(parts, "No required skill matches")
	}

	if len(s.softMatches) > 0 {
		parts = append(parts, fmt.Sprintf("Soft skills covered (%s)", strings.Join(s.softMatches, ", ")))
	}

	if len(s.interestMatches) > 0 {
		parts = append(parts, fmt.Sprintf("Shares interests (%s)", strings.Join(parsing.Dedupe(s.interestMatches), ", ")))
	}

	if s.industryMatch {
		parts = append(parts, "Industry aligned with role")
	}

	return strings.Join(parts, ". ")
}
