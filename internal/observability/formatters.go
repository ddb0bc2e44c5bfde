// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

// PrintRequirements outputs a human-readable summary of the extracted job requirements.
func (p *Printer) PrintRequirements(req types.JobRequirements) {
	var sb strings.Builder

	if len(req.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Required skills: %s\n", strings.Join(req.Skills, ", ")))
	} else {
		sb.WriteString("Required skills: (none detected)\n")
	}
	if req.MinYears > 0 {
		sb.WriteString(fmt.Sprintf("Minimum years:   %d\n", req.MinYears))
	}
	if req.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority:       %s\n", req.Seniority))
	}
	if req.Education != "" {
		sb.WriteString(fmt.Sprintf("Education:       %s\n", req.Education))
	}

	p.printBox("Job Requirements", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs the raw signals extracted from one text.
func (p *Printer) PrintProfile(name string, profile types.Profile) {
	var sb strings.Builder

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s\n", strings.Join(profile.Skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	if profile.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority:  %s\n", profile.Seniority))
	}
	if profile.Education != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.Education))
	}
	if len(profile.Organizations) > 0 {
		count := min(len(profile.Organizations), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Orgs:       %s", strings.Join(profile.Organizations[:count], ", ")))
		if len(profile.Organizations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(profile.Organizations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox(name, strings.TrimRight(sb.String(), "\n"))
}

// PrintRanked outputs the final ranked candidate list.
func (p *Printer) PrintRanked(ranked []types.RankedCandidate) {
	var sb strings.Builder

	for i, c := range ranked {
		sb.WriteString(fmt.Sprintf("%d. %s  (score %.2f, similarity %.2f)\n", i+1, c.Name, c.FinalScore, c.Similarity))
		if len(c.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   matched: %s\n", strings.Join(c.MatchedSkills, ", ")))
		}
		sb.WriteString(fmt.Sprintf("   %s\n", c.Reason))
	}
	if len(ranked) == 0 {
		sb.WriteString("(no candidates)\n")
	}

	p.printBox("Ranked Candidates", strings.TrimRight(sb.String(), "\n"))
}
