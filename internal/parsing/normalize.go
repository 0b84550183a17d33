// Package parsing turns free-text skill and interest input into comparable tokens.
package parsing

import (
	"strings"
	"unicode"
)

// NormalizeToken trims and lower-cases a single skill or keyword
func NormalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// ParseSkillList splits comma-separated input into normalized tokens.
// Empty entries are dropped; duplicates and input order are kept.
func ParseSkillList(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := NormalizeToken(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// SplitInterests splits free-text interests on commas and whitespace into
// lower-case words. Empty words are dropped.
func SplitInterests(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return fields
}

// NormalizeAll normalizes every entry of a list, dropping the ones that end up empty
func NormalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := NormalizeToken(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// MatchesEither reports whether a contains b or b contains a.
// Both inputs must already be normalized. An empty token never matches.
func MatchesEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesAny reports whether token matches at least one candidate under MatchesEither
func MatchesAny(token string, candidates []string) bool {
	for _, c := range candidates {
		if MatchesEither(token, c) {
			return true
		}
	}
	return false
}

// Dedupe removes repeated tokens keeping the first occurrence
func Dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
