// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// RoadmapStep is one stage of a generated career roadmap
type RoadmapStep struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	SkillsToAcquire []string   `json:"skillsToAcquire"`
	ToolsToMaster   []string   `json:"toolsToMaster"`
	EstimatedTime   string     `json:"estimatedTime"`
	Difficulty      string     `json:"difficulty"`
	Prerequisites   []string   `json:"prerequisites"`
	ProjectIdea     string     `json:"projectIdea"`
	SuccessMetrics  string     `json:"successMetrics"`
	Resources       []Resource `json:"resources"`
}

// Resource is a titled link inside a roadmap step
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RelatedJob is an alternative role suggested by a guide
type RelatedJob struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// CareerGuide is the externally generated guide. The JSON field names follow the
// generator's output. Fields the struct does not know are kept in Extra and written
// back on marshal, so stored guides round-trip unchanged.
type CareerGuide struct {
	ID                        string        `json:"id"`
	JobTitle                  string        `json:"jobTitle" validate:"required"`
	MatchScore                int           `json:"matchScore"`
	Summary                   string        `json:"summary"`
	RequiredSkills            []string      `json:"requiredSkills"`
	SalaryRange               string        `json:"salaryRange"`
	MarketDemand              string        `json:"marketDemand"`
	RequiredExperience        string        `json:"requiredExperience"`
	SoftSkills                []string      `json:"softSkills"`
	InterviewTips             []string      `json:"interviewTips"`
	PotentialCompanies        []string      `json:"potentialCompanies"`
	RecommendedCertifications []string      `json:"recommendedCertifications"`
	MentorshipAdvice          string        `json:"mentorshipAdvice"`
	LongTermGoal              string        `json:"longTermGoal"`
	Roadmap                   []RoadmapStep `json:"roadmap"`
	RelatedJobs               []RelatedJob  `json:"relatedJobs"`
	GeneratedAt               string        `json:"generatedAt"`

	Extra map[string]json.RawMessage `json:"-"`
}

// careerGuideFields is the decoding view of CareerGuide without its JSON methods
type careerGuideFields CareerGuide

// knownGuideKeys lists the JSON keys CareerGuide decodes into typed fields
var knownGuideKeys = func() map[string]bool {
	keys := map[string]bool{}
	t := reflect.TypeOf(CareerGuide{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}()

// UnmarshalJSON decodes the typed fields and keeps every other key in Extra
func (g *CareerGuide) UnmarshalJSON(data []byte) error {
	var fields careerGuideFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range all {
		if knownGuideKeys[key] {
			delete(all, key)
		}
	}

	*g = CareerGuide(fields)
	g.Extra = nil
	if len(all) > 0 {
		g.Extra = all
	}
	return nil
}

// MarshalJSON writes the typed fields merged with Extra. Typed fields win on a key clash.
func (g CareerGuide) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(careerGuideFields(g))
	if err != nil || len(g.Extra) == 0 {
		return data, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for key, raw := range g.Extra {
		if !knownGuideKeys[key] {
			out[key] = raw
		}
	}
	return json.Marshal(out)
}

// Needs returns the part of the guide used for mentor matching.
func (g *CareerGuide) Needs() RoleNeeds {
	return RoleNeeds{
		JobTitle:       g.JobTitle,
		RequiredSkills: g.RequiredSkills,
		SoftSkills:     g.SoftSkills,
	}
}

// StoredGuide is a guide saved for a session
type StoredGuide struct {
	ID        string       `json:"id"`
	SessionID string       `json:"session_id"`
	JobTitle  string       `json:"job_title"`
	Guide     *CareerGuide `json:"guide"`
	CreatedAt time.Time    `json:"created_at"`
}
