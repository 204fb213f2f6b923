// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-pilot/internal/types"
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of the candidate profile
// being ranked against.
func (p *Printer) PrintCandidate(candidate types.CandidateProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %d years\n", candidate.YearsOfExperience))
	location := candidate.Location
	if location == "" {
		location = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Location:   %s\n", location))

	if len(candidate.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(candidate.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", candidate.Skills[i]))
		}
		if len(candidate.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Skills)-maxItemsToShow))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top ranked jobs with their score breakdowns.
func (p *Printer) PrintRankedJobs(ranked []types.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranked[i]
		title := job.Job.Title
		if job.Job.Company != "" {
			title += " @ " + job.Job.Company
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", job.Rank, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", job.RankingScore))
		sb.WriteString(fmt.Sprintf("    Skills %d | Experience %d | Location %d | Recency %d\n",
			job.Breakdown.SkillMatch, job.Breakdown.ExperienceFit,
			job.Breakdown.Location, job.Breakdown.Recency))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanations outputs the tiered explanation line of each ranked job.
func (p *Printer) PrintExplanations(ranked []types.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d %s\n", ranked[i].Rank, ranked[i].Job.Title))
		// Explanations join their parts with " • "; one part per line fits
		// the box better.
		for _, part := range strings.Split(ranked[i].Explanation, " • ") {
			sb.WriteString(fmt.Sprintf("    %s\n", part))
		}
	}

	p.printBox("WHY THIS ORDER", strings.TrimSuffix(sb.String(), "\n"))
}
