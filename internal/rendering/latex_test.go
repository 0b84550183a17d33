package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Aye Aye",
			Email:    "aye@example.com",
			Phone:    "+95 9 123",
			Location: "Yangon",
		},
		Summary:        "Junior developer with 100% focus",
		Skills:         []string{"PHP", "C#", "MySQL"},
		Certifications: []string{"AWS Cloud Practitioner"},
		Languages:      []string{"Myanmar", "English"},
	}
}

func TestRenderResumeLaTeX_DefaultTemplate(t *testing.T) {
	guide := &types.CareerGuide{
		JobTitle:     "Junior Backend Developer (Laravel)",
		Summary:      "Build APIs & services",
		SalaryRange:  "4-8 lakh",
		MarketDemand: "High",
	}

	out, err := RenderResumeLaTeX(sampleResume(), guide, "")
	require.NoError(t, err)

	assert.Contains(t, out, `\documentclass[11pt]{article}`)
	assert.Contains(t, out, `\textbf{Aye Aye}`)
	assert.Contains(t, out, `aye@example.com \textbar{} +95 9 123 \textbar{} Yangon`)
	assert.Contains(t, out, `Junior developer with 100\% focus`)
	assert.Contains(t, out, `PHP, C\#, MySQL`)
	assert.Contains(t, out, `\item AWS Cloud Practitioner`)
	assert.Contains(t, out, "Myanmar, English")
	assert.Contains(t, out, `\section*{Target Role}`)
	assert.Contains(t, out, `\textbf{Junior Backend Developer (Laravel)}`)
	assert.Contains(t, out, `Build APIs \& services`)
	assert.Contains(t, out, "Market demand: High")
	assert.Contains(t, out, `\end{document}`)
}

func TestRenderResumeLaTeX_OmitsEmptySections(t *testing.T) {
	out, err := RenderResumeLaTeX(&types.Resume{}, nil, "")
	require.NoError(t, err)

	assert.Contains(t, out, `\textbf{Unnamed Candidate}`)
	assert.NotContains(t, out, `\section*{Summary}`)
	assert.NotContains(t, out, `\section*{Skills}`)
	assert.NotContains(t, out, `\section*{Certifications}`)
	assert.NotContains(t, out, `\section*{Target Role}`)
}

func TestRenderResumeLaTeX_NilResume(t *testing.T) {
	_, err := RenderResumeLaTeX(nil, nil, "")
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderResumeLaTeX_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.tex")
	require.NoError(t, os.WriteFile(path, []byte(`Name: {{.Name}} Skills: {{len .Skills}}`), 0o600))

	out, err := RenderResumeLaTeX(sampleResume(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Name: Aye Aye Skills: 3", out)
}

func TestRenderResumeLaTeX_TemplateErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.tex")
	require.NoError(t, os.WriteFile(invalid, []byte(`{{.Name{{}}`), 0o600))

	failing := filepath.Join(dir, "failing.tex")
	require.NoError(t, os.WriteFile(failing, []byte(`{{.Missing.Field}}`), 0o600))

	tests := []struct {
		name     string
		path     string
		contains string
	}{
		{"Missing file", filepath.Join(dir, "nope.tex"), "template file not found"},
		{"Invalid syntax", invalid, "failed to parse template"},
		{"Execution failure", failing, "failed to execute template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderResumeLaTeX(sampleResume(), nil, tt.path)
			require.Error(t, err)
			var templateErr *TemplateError
			assert.ErrorAs(t, err, &templateErr)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
