// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// writeList writes up to limit items as bullets, then a "... and N more" line
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintGapAnalysis outputs readiness and the matched and missing skills for a role.
func (p *Printer) PrintGapAnalysis(role string, gap *types.GapAnalysis) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	if role != "" {
		sb.WriteString(fmt.Sprintf("Role:      %s\n", role))
	}
	sb.WriteString(fmt.Sprintf("Readiness: %d%% (%d/%d)\n", gap.Readiness, len(gap.Matching), gap.Total))
	sb.WriteString("\n")

	if len(gap.Matching) > 0 {
		sb.WriteString("Matching:\n")
		writeList(&sb, gap.Matching, maxItemsToShow)
	}
	if len(gap.Missing) > 0 {
		sb.WriteString("Missing:\n")
		writeList(&sb, gap.Missing, maxItemsToShow)
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrioritizedGaps outputs missing requirements with priority and estimate.
func (p *Printer) PrintPrioritizedGaps(gaps []types.PrioritizedGap) {
	if len(gaps) == 0 {
		p.printBox("PRIORITIZED GAPS", "No missing skills")
		return
	}

	var sb strings.Builder
	for _, g := range gaps {
		sb.WriteString(fmt.Sprintf("%-22s %-13s %s\n", g.Skill, g.Priority, g.EstimatedTime))
	}
	p.printBox("PRIORITIZED GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs related skills worth adding.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		p.printBox("RELATED SKILLS", "No suggestions for these skills")
		return
	}
	p.printBox("RELATED SKILLS", strings.Join(suggestions, ", "))
}

// PrintMentorMatches outputs the ranked mentors with scores and matched tokens.
func (p *Printer) PrintMentorMatches(matches []types.MentorMatch) {
	if len(matches) == 0 {
		p.printBox("MENTOR MATCHES", "No mentors matched")
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, m.JobTitle, m.Company))
		sb.WriteString(fmt.Sprintf("    Score: %d  Availability: %s\n", m.MatchScore, m.Availability))
		if len(m.MatchedInterests) > 0 {
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", strings.Join(m.MatchedInterests, ", ")))
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("MENTOR MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPath outputs gaps grouped by level followed by the milestones.
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", path.JobTitle))
	sb.WriteString(fmt.Sprintf("Total:    %s\n", path.TotalEstimatedTime))
	sb.WriteString(fmt.Sprintf("Progress: %d%%\n", path.ProgressPercentage))

	for _, level := range []string{types.LevelBeginner, types.LevelIntermediate, types.LevelAdvanced} {
		gaps := roadmap.GapsAtLevel(path, level)
		if len(gaps) == 0 {
			continue
		}
		names := make([]string, 0, len(gaps))
		for _, g := range gaps {
			names = append(names, fmt.Sprintf("%s (%s)", g.Skill, g.EstimatedTime))
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", level))
		writeList(&sb, names, maxItemsToShow)
	}

	if len(path.Milestones) > 0 {
		sb.WriteString("\nMilestones:\n")
		for _, m := range path.Milestones {
			mark := " "
			if m.Completed {
				mark = "x"
			}
			sb.WriteString(fmt.Sprintf("  [%s] %d. %s: %s\n", mark, m.Order, m.Title, strings.Join(m.Skills, ", ")))
		}
	}

	p.printBox("LEARNING PATH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobTemplates outputs the available target roles.
func (p *Printer) PrintJobTemplates(jobs []types.JobTemplate) {
	var sb strings.Builder
	for _, j := range jobs {
		sb.WriteString(fmt.Sprintf("%-18s %s\n", j.ID, j.Title))
	}
	p.printBox("TARGET JOBS", strings.TrimSuffix(sb.String(), "\n"))
}
