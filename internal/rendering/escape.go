package rendering

import "strings"

// latexReplacements maps LaTeX special characters to their escaped form
var latexReplacements = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)
	for _, r := range text {
		if rep, ok := latexReplacements[r]; ok {
			result.WriteString(rep)
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// EscapeAll escapes every non-blank entry of a list, trimming surrounding space
func EscapeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, EscapeLaTeX(v))
	}
	return out
}
