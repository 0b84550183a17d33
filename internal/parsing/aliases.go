package parsing

import "strings"

// skillAliases lists spellings that also count as knowing a canonical skill.
// Keys and values are lower-case.
var skillAliases = map[string][]string{
	"javascript": {"js", "java script"},
	"node.js":    {"node", "nodejs"},
	"typescript": {"ts", "type script"},
}

// HasSkill reports whether any user skill matches skill under MatchesEither,
// or contains one of the skill's known aliases.
func HasSkill(skill string, userSkills []string) bool {
	target := NormalizeToken(skill)
	aliases := skillAliases[target]
	for _, us := range userSkills {
		userSkill := NormalizeToken(us)
		if MatchesEither(userSkill, target) {
			return true
		}
		for _, alias := range aliases {
			if strings.Contains(userSkill, alias) {
				return true
			}
		}
	}
	return false
}
