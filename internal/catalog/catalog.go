// Package catalog provides the static lookup tables (mentor roster, related-skill
// map, job templates and roadmap tables). Tables are YAML, embedded at compile
// time and optionally replaced by a file on disk. A loaded Catalog is read-only.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/career-compass/internal/types"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// EmbeddedSource names the built-in tables in errors and logs
const EmbeddedSource = "embedded"

// Catalog holds every static table the engines read
type Catalog struct {
	Mentors         []types.MentorProfile    `yaml:"mentors" validate:"required,min=1,unique=ID,dive"`
	JobTemplates    []types.JobTemplate      `yaml:"job_templates" validate:"required,min=1,unique=ID,dive"`
	RelatedSkills   []types.RelatedSkills    `yaml:"related_skills" validate:"unique=Keyword,dive"`
	SkillLevels     []types.SkillLevel       `yaml:"skill_levels" validate:"required,min=1,unique=Level,dive"`
	Platforms       []types.LearningPlatform `yaml:"platforms" validate:"required,min=1,dive"`
	MilestoneTitles []string                 `yaml:"milestone_titles" validate:"dive,required"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, parsed once per process
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(embeddedCatalog, EmbeddedSource)
	})
	return defaultCat, defaultErr
}

// Load returns the catalog at path, or the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("failed to read catalog file: %w", err)}
	}
	return Parse(data, path)
}

// Parse decodes YAML catalog data and validates every table
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("failed to parse catalog YAML: %w", err)}
	}
	if err := c.Validate(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return &c, nil
}

// Validate checks the struct tags of every table entry
func (c *Catalog) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Job returns the job template with the given id
func (c *Catalog) Job(id string) (types.JobTemplate, bool) {
	for _, j := range c.JobTemplates {
		if j.ID == id {
			return j, true
		}
	}
	return types.JobTemplate{}, false
}

// Mentor returns the mentor profile with the given id
func (c *Catalog) Mentor(id string) (types.MentorProfile, bool) {
	for _, m := range c.Mentors {
		if m.ID == id {
			return m, true
		}
	}
	return types.MentorProfile{}, false
}

// PlatformFor returns the first platform offering the given resource type
func (c *Catalog) PlatformFor(resourceType string) (types.LearningPlatform, bool) {
	for _, p := range c.Platforms {
		if p.ResourceType == resourceType {
			return p, true
		}
	}
	return types.LearningPlatform{}, false
}
