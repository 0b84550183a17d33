// Package ranking scores and ranks mentor profiles against a target role and user interests.
package ranking

import (
	"strings"

	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

// Scoring weights, additive per mentor
const (
	requiredSkillWeight = 3
	softSkillWeight     = 2
	interestWeight      = 1
	industryBonus       = 2

	// MaxScore caps every mentor's match score
	MaxScore = 100
)

// mentorScore is the breakdown of one mentor's score before capping
type mentorScore struct {
	requiredMatches []string
	softMatches     []string
	interestMatches []string
	industryMatch   bool
}

func (s mentorScore) total() int {
	score := len(s.requiredMatches)*requiredSkillWeight +
		len(s.softMatches)*softSkillWeight +
		len(s.interestMatches)*interestWeight
	if s.industryMatch {
		score += industryBonus
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}

// matched returns every contributing token, deduplicated, in contribution order
func (s mentorScore) matched() []string {
	all := make([]string, 0, len(s.requiredMatches)+len(s.softMatches)+len(s.interestMatches))
	all = append(all, s.requiredMatches...)
	all = append(all, s.softMatches...)
	all = append(all, s.interestMatches...)
	return parsing.Dedupe(all)
}

// scoreMentor computes the score breakdown of one mentor. requiredSkills, softSkills
// and interests must already be normalized.
func scoreMentor(mentor *types.MentorProfile, jobTitle string, requiredSkills, softSkills, interests []string) mentorScore {
	expertise := parsing.NormalizeAll(mentor.Expertise)
	bio := strings.ToLower(mentor.Bio)

	var s mentorScore
	s.requiredMatches = computeExpertiseMatches(requiredSkills, expertise)
	s.softMatches = computeExpertiseMatches(softSkills, expertise)

	for _, interest := range interests {
		if interest == "" {
			continue
		}
		if strings.Contains(bio, interest) || expertiseContains(expertise, interest) {
			s.interestMatches = append(s.interestMatches, interest)
		}
	}

	s.industryMatch = parsing.MatchesEither(parsing.NormalizeToken(mentor.Industry), parsing.NormalizeToken(jobTitle))
	return s
}

// expertiseContains reports whether some expertise entry contains word.
// Unlike skills, an interest word longer than the entry does not match it.
func expertiseContains(expertise []string, word string) bool {
	for _, exp := range expertise {
		if strings.Contains(exp, word) {
			return true
		}
	}
	return false
}

// computeExpertiseMatches returns every skill that matches at least one expertise entry.
// Repeated skills count once per occurrence.
func computeExpertiseMatches(skills, expertise []string) []string {
	matches := make([]string, 0)
	for _, skill := range skills {
		if parsing.MatchesAny(skill, expertise) {
			matches = append(matches, skill)
		}
	}
	return matches
}
