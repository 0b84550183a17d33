package skills

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// MaxSuggestions caps the number of related skills returned
const MaxSuggestions = 8

// SuggestRelatedSkills returns skills related to those already mentioned in the
// user's text. Table entries are visited in order; an entry fires when its keyword
// appears anywhere in the lower-cased text, and contributes every suggestion not
// already present in the text. Results are deduplicated and capped at MaxSuggestions.
func SuggestRelatedSkills(userSkillsText string, table []types.RelatedSkills) []string {
	text := strings.ToLower(userSkillsText)
	seen := make(map[string]bool)
	suggestions := make([]string, 0, MaxSuggestions)

	for _, entry := range table {
		keyword := strings.ToLower(entry.Keyword)
		if keyword == "" || !strings.Contains(text, keyword) {
			continue
		}
		for _, s := range entry.Suggestions {
			if seen[s] || strings.Contains(text, strings.ToLower(s)) {
				continue
			}
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
