// Package rendering provides functionality to render LaTeX resumes from templates.
package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/career-compass/internal/types"
)

//go:embed templates/resume.tex
var defaultTemplate string

// unnamedCandidate is shown when the resume has no name
const unnamedCandidate = "Unnamed Candidate"

// TemplateData represents the data structure passed to the LaTeX template.
// Every string is already LaTeX-escaped.
type TemplateData struct {
	Name           string
	ContactLine    string
	Summary        string
	Skills         []string
	Certifications []string
	Languages      []string
	Target         *TargetSection
}

// TargetSection is the career guide's target role shown on the resume
type TargetSection struct {
	JobTitle     string
	Summary      string
	SalaryRange  string
	MarketDemand string
}

// RenderResumeLaTeX renders a resume, and optionally the target role of a career
// guide, to LaTeX. The embedded template is used when templatePath is empty.
func RenderResumeLaTeX(resume *types.Resume, guide *types.CareerGuide, templatePath string) (string, error) {
	if resume == nil {
		return "", &RenderError{Message: "resume is required"}
	}

	var (
		tmpl *template.Template
		err  error
	)
	if templatePath == "" {
		tmpl, err = parseTemplateText("resume", defaultTemplate)
	} else {
		tmpl, err = parseTemplate(templatePath)
	}
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(resume, guide)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return parseTemplateText(templatePath, string(content))
}

func parseTemplateText(name, content string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData escapes the resume and guide fields for the template
func buildTemplateData(resume *types.Resume, guide *types.CareerGuide) *TemplateData {
	info := resume.PersonalInfo

	name := strings.TrimSpace(info.FullName)
	if name == "" {
		name = unnamedCandidate
	}

	data := &TemplateData{
		Name:           EscapeLaTeX(name),
		ContactLine:    strings.Join(EscapeAll([]string{info.Email, info.Phone, info.Location}), ` \textbar{} `),
		Summary:        EscapeLaTeX(strings.TrimSpace(resume.Summary)),
		Skills:         EscapeAll(resume.Skills),
		Certifications: EscapeAll(resume.Certifications),
		Languages:      EscapeAll(resume.Languages),
	}

	if guide != nil && strings.TrimSpace(guide.JobTitle) != "" {
		data.Target = &TargetSection{
			JobTitle:     EscapeLaTeX(guide.JobTitle),
			Summary:      EscapeLaTeX(guide.Summary),
			SalaryRange:  EscapeLaTeX(guide.SalaryRange),
			MarketDemand: EscapeLaTeX(guide.MarketDemand),
		}
	}
	return data
}
