// Package observability provides structured logging and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
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
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs the best role, the skills to learn next, the
// runner-up roles and the top of the similarity ranking.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Best role: %s\n", result.BestRole))
	sb.WriteString(fmt.Sprintf("Score:     %.3f\n", result.Score))
	sb.WriteString("\n")

	if len(result.RecommendNext) > 0 {
		sb.WriteString("Learn next:\n")
		for _, skill := range result.RecommendNext {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	} else {
		sb.WriteString("Learn next: nothing missing\n")
	}

	if len(result.OtherRoles) > 0 {
		sb.WriteString(fmt.Sprintf("\nAlso consider: %s\n", strings.Join(result.OtherRoles, ", ")))
	}

	if len(result.Ranked) > 0 {
		sb.WriteString("\nTop roles:\n")
		count := min(len(result.Ranked), maxItemsToShow)
		for i := 0; i < count; i++ {
			rs := result.Ranked[i]
			sb.WriteString(fmt.Sprintf("  #%d %-32s %.3f\n", i+1, rs.Role, rs.Score))
		}
		if len(result.Ranked) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Ranked)-maxItemsToShow))
		}
	}

	p.printBox("ROLE MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoles outputs every catalog role with its first skills in learning order.
func (p *Printer) PrintRoles(roles []types.RoleSummary) {
	if len(roles) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Roles: %d\n\n", len(roles)))
	for _, r := range roles {
		skills := r.Skills
		suffix := ""
		if len(skills) > 3 {
			suffix = fmt.Sprintf(" (+%d)", len(skills)-3)
			skills = skills[:3]
		}
		sb.WriteString(fmt.Sprintf("%s: %s%s\n", r.Name, strings.Join(skills, " → "), suffix))
	}

	p.printBox("ROLE CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}
