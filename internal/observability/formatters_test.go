package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-pilot/internal/types"
)

func TestPrintCandidate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidate(types.CandidateProfile{
		Skills:            []string{"go", "postgresql", "docker"},
		YearsOfExperience: 5,
		Location:          "Berlin, Germany",
	})
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "5 years")
	assert.Contains(t, output, "Berlin, Germany")
	assert.Contains(t, output, "go")
}

func TestPrintCandidate_TruncatesSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidate(types.CandidateProfile{
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintRankedJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedJobs([]types.RankedJob{
		{
			Job:          types.Job{Title: "Go Backend", Company: "Acme"},
			Breakdown:    types.ScoreBreakdown{SkillMatch: 100, ExperienceFit: 75, Location: 50, Recency: 50},
			RankingScore: 76,
			Rank:         1,
		},
		{
			Job:          types.Job{Title: "Data Engineer", Company: "Initech"},
			RankingScore: 40,
			Rank:         2,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "RANKED JOBS")
	assert.Contains(t, output, "Go Backend @ Acme")
	assert.Contains(t, output, "Score: 76")
	assert.Contains(t, output, "#2")
}

func TestPrintRankedJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedJobs(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExplanations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExplanations([]types.RankedJob{
		{
			Job:         types.Job{Title: "Go Backend"},
			Rank:        1,
			Explanation: "Strong skill match (100% of required skills) • Posted recently",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "WHY THIS ORDER")
	assert.Contains(t, output, "Strong skill match")
	assert.Contains(t, output, "Posted recently")
}
