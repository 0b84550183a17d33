package skills

import "strings"

// AddTag appends tag to a comma-separated list unless an entry equal to it
// (trimmed, case-insensitive) is already present.
func AddTag(text, tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return text
	}
	for _, existing := range strings.Split(text, ",") {
		if strings.EqualFold(strings.TrimSpace(existing), tag) {
			return text
		}
	}
	if strings.TrimSpace(text) == "" {
		return tag
	}
	return text + ", " + tag
}
