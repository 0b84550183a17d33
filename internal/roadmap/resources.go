package roadmap

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// resourceTypes are the kinds of resource suggested for every gap, in order
var resourceTypes = []string{"Course", "Tutorial", "Video"}

// freeResources is how many leading resources of a gap are free
const freeResources = 2

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// cleanSkill lower-cases a skill and strips everything but letters, digits and single spaces
func cleanSkill(skill string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(skill), "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// resourceURL builds the platform search link for a skill
func resourceURL(p types.LearningPlatform, skill string) string {
	clean := cleanSkill(skill)
	switch {
	case p.SearchParam != "":
		return fmt.Sprintf("%s?%s=%s", p.BaseURL, p.SearchParam, url.PathEscape(clean))
	case p.SearchPath != "":
		return fmt.Sprintf("%s%s/%s/", p.BaseURL, p.SearchPath, strings.ReplaceAll(clean, " ", "-"))
	default:
		return p.BaseURL
	}
}

func buildResources(skill string, cat *catalog.Catalog) []types.LearningResource {
	resources := make([]types.LearningResource, 0, len(resourceTypes))
	for i, rt := range resourceTypes {
		platform, ok := cat.PlatformFor(rt)
		if !ok {
			if len(cat.Platforms) == 0 {
				continue
			}
			platform = cat.Platforms[i%len(cat.Platforms)]
		}
		price := "Free"
		if i >= freeResources {
			price = "Paid"
		}
		resources = append(resources, types.LearningResource{
			ID:       fmt.Sprintf("%s-%d", skill, i),
			Title:    fmt.Sprintf("%s %s - %s", skill, rt, platform.Name),
			Type:     rt,
			Platform: platform.Name,
			URL:      resourceURL(platform, skill),
			Price:    price,
			Skill:    skill,
		})
	}
	return resources
}
