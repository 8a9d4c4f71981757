// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/vkinnnnn/givemejobs-match/internal/ranking"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchScore outputs a human-readable summary of a computed match score.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %.0f / 100\n\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:      %.0f\n", score.Breakdown.SkillMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %.0f\n", score.Breakdown.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Location:    %.0f\n", score.Breakdown.LocationMatch))
	sb.WriteString(fmt.Sprintf("Salary:      %.0f\n", score.Breakdown.SalaryMatch))
	sb.WriteString(fmt.Sprintf("Culture:     %.0f\n", score.Breakdown.CultureFit))

	if len(score.MatchingSkills) > 0 {
		matched := strings.Join(score.MatchingSkills, ", ")
		if len(matched) > 45 {
			matched = matched[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched:  %s\n", matched))
	}
	if len(score.MissingSkills) > 0 {
		missing := strings.Join(score.MissingSkills, ", ")
		if len(missing) > 45 {
			missing = missing[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", missing))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintRecommendations(score.Recommendations)
}

// PrintRecommendations outputs the actionable recommendations for a match.
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", rec))
		if i < len(recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintRankedJobs outputs the top N ranked jobs with scores.
func (p *Printer) PrintRankedJobs(ranked []ranking.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.JobID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f", entry.RankingScore))
		if entry.SemanticSimilarity != nil {
			sb.WriteString(fmt.Sprintf(" (semantic: %.3f)", *entry.SemanticSimilarity))
		}
		sb.WriteString("\n")
		if entry.Match != nil {
			sb.WriteString(fmt.Sprintf("    Overall: %.0f/100\n", entry.Match.OverallScore))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", sb.String())
}
