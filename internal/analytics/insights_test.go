package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(Stats{})

	assert.Equal(t, 0, summary.ResponseRate)
	assert.Equal(t, 0, summary.InterviewRate)
	require.Len(t, summary.Insights, 1)
	assert.Contains(t, summary.Insights[0], "No applications tracked yet")
}

func TestBuildSummary_Rates(t *testing.T) {
	summary := BuildSummary(Stats{
		Total: 12,
		ByStatus: map[string]int{
			StatusSaved:        2,
			StatusApplied:      5,
			StatusInterviewing: 2,
			StatusOffered:      1,
			StatusRejected:     2,
		},
	})

	// 10 submitted, 5 responses -> 50%; 3 interviews -> 30%.
	assert.Equal(t, 50, summary.ResponseRate)
	assert.Equal(t, 30, summary.InterviewRate)
}

func TestBuildSummary_SavedOnly(t *testing.T) {
	summary := BuildSummary(Stats{
		Total:    3,
		ByStatus: map[string]int{StatusSaved: 3},
	})

	assert.Equal(t, 0, summary.ResponseRate)
	require.NotEmpty(t, summary.Insights)
	assert.Contains(t, summary.Insights[0], "saved 3 jobs but not applied")
}

func TestBuildSummary_InsightTiers(t *testing.T) {
	strong := BuildSummary(Stats{
		Total: 10,
		ByStatus: map[string]int{
			StatusApplied:      4,
			StatusInterviewing: 4,
			StatusOffered:      2,
		},
		AverageMatchScore: 82,
		AppliedLast30Days: 3,
	})
	assert.Contains(t, strong.Insights[0], "Strong response rate")
	assertContainsSubstring(t, strong.Insights, "well-matched jobs")
	assertContainsSubstring(t, strong.Insights, "offers received")

	weak := BuildSummary(Stats{
		Total:             10,
		ByStatus:          map[string]int{StatusApplied: 9, StatusRejected: 1},
		AverageMatchScore: 35,
		AppliedLast30Days: 0,
	})
	assert.Contains(t, weak.Insights[0], "Low response rate")
	assertContainsSubstring(t, weak.Insights, "No applications in the last 30 days")
}

func TestBuildSummary_NilStatusMap(t *testing.T) {
	summary := BuildSummary(Stats{Total: 1})

	require.NotNil(t, summary.ByStatus)
	assert.Equal(t, 0, summary.ResponseRate)
}

func assertContainsSubstring(t *testing.T, haystack []string, substring string) {
	t.Helper()
	for _, s := range haystack {
		if strings.Contains(s, substring) {
			return
		}
	}
	t.Errorf("no insight contains %q in %v", substring, haystack)
}
