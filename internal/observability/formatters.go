// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/meher4567/intellimatch/internal/ranking"
	"github.com/meher4567/intellimatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidatedSkills outputs a summary of a candidate's validated skills.
func (p *Printer) PrintValidatedSkills(candidateID string, skills []types.ValidatedSkill) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validated: %d skills\n", len(skills)))
	for i, s := range skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%-24s %.1f  (%s)\n", s.CanonicalName, s.Confidence, s.RawText))
	}
	p.printBox(fmt.Sprintf("Skills — %s", candidateID), sb.String())
}

// PrintBreakdown outputs one candidate's score breakdown against a job.
func (p *Printer) PrintBreakdown(candidateID string, breakdown types.ScoreBreakdown, composite float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite:  %6.2f\n", composite))
	sb.WriteString(fmt.Sprintf("Semantic:   %6.2f\n", breakdown.Semantic))
	sb.WriteString(fmt.Sprintf("Skills:     %6.2f\n", breakdown.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %6.2f\n", breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Education:  %6.2f\n", breakdown.Education))
	if breakdown.KnockoutFailed {
		sb.WriteString("KNOCKOUT FAILED:\n")
		for _, reason := range breakdown.KnockoutReasons {
			sb.WriteString("  - " + reason + "\n")
		}
	}
	p.printBox(fmt.Sprintf("Score — %s", candidateID), sb.String())
}

// PrintRankResult outputs a ranked batch as a compact table.
func (p *Printer) PrintRankResult(result *ranking.RankResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-16s %-8s %-5s\n", "#", "Candidate", "Score", "Tier"))
	for i, m := range result.Matches {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Matches)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%-4d %-16s %-8.2f %-5s\n", i+1, m.CandidateID, m.CompositeScore, m.Tier))
	}
	if len(result.Failures) > 0 {
		sb.WriteString(fmt.Sprintf("Failures: %d\n", len(result.Failures)))
		for _, f := range result.Failures {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", f.CandidateID, f.Error))
		}
	}
	p.printBox(fmt.Sprintf("Ranking — job %s", result.JobID), sb.String())
}
