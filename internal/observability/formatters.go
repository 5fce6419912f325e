// Package observability provides human-readable report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// barWidth is the number of cells in a score bar
	barWidth = 20
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Lines wider than the box
// are wrapped on word boundaries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(wrapped, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs the overall score, the per-dimension breakdown and the
// bucketed feedback.
func (p *Printer) PrintReport(report *scoring.Report) {
	if report == nil {
		return
	}

	p.printBox("RESUME SCORE", fmt.Sprintf("Overall: %5.1f / 100  %s", report.OverallScore,
		bar(int(report.OverallScore+0.5))))

	var sb strings.Builder
	for _, dim := range scoring.Dimensions {
		result := report.Breakdown[dim]
		sb.WriteString(fmt.Sprintf("%-11s %3d  %s\n", dim, result.Score, bar(result.Score)))
	}
	p.printBox("BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))

	sections := []struct {
		title string
		items []string
	}{
		{"CRITICAL ISSUES", report.CriticalIssues},
		{"WARNINGS", report.Warnings},
		{"IMPROVEMENTS", report.Improvements},
	}
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		sb.Reset()
		for _, item := range section.items {
			sb.WriteString(fmt.Sprintf("• %s\n", item))
		}
		p.printBox(fmt.Sprintf("%s (%d)", section.title, len(section.items)), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintText outputs extracted document text with a line count header.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintText(name, text string) {
	lines := strings.Count(text, "\n") + 1
	fmt.Fprintf(p.out, "── %s (%d lines) ──\n", name, lines)
	fmt.Fprintln(p.out, text)
}

func bar(score int) string {
	score = max(0, min(100, score))
	filled := score * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled) + "]"
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap splits line into pieces of at most width runes, breaking on spaces where possible.
// Continuation lines are indented by two spaces.
func wrap(line string, width int) []string {
	var out []string
	runes := []rune(line)
	indent := ""
	for len(runes)+len([]rune(indent)) > width {
		limit := width - len([]rune(indent))
		cut := limit
		for i := limit; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, indent+strings.TrimRight(string(runes[:cut]), " "))
		runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		indent = "  "
	}
	return append(out, indent+string(runes))
}
