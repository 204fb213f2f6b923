package remodel

import (
	"sort"
	"testing"

	"github.com/jonathan/job-pilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSections = types.ResumeSections{
	Summary:    "Seasoned engineer.",
	Skills:     "See skill list.",
	Experience: "Ten years of shipping software.",
}

func TestRemodel_ReordersJobRelevantSkillsFirst(t *testing.T) {
	candidateSkills := []string{"photoshop", "python", "react"}
	// Vocabulary order puts python before react, so the job mentions
	// react-then-python via extraction order python first. Use a description
	// mentioning only react to keep the expectation simple.
	result := Remodel(candidateSkills, testSections, "We want a react expert")

	require.Equal(t, []string{"react", "photoshop", "python"}, result.Skills)
	assert.True(t, result.Diff.Reordered)
	assert.Equal(t, []string{"react"}, result.Diff.Highlighted)
}

func TestRemodel_PermutationInvariant(t *testing.T) {
	cases := []struct {
		skills      []string
		description string
	}{
		{[]string{"go", "python", "react", "sql"}, "python and sql shop"},
		{[]string{"cooking", "gardening"}, "kubernetes platform team"},
		{nil, "react"},
		{[]string{"react"}, ""},
	}

	for _, c := range cases {
		result := Remodel(c.skills, testSections, c.description)

		original := append([]string(nil), c.skills...)
		remodeled := append([]string(nil), result.Skills...)
		sort.Strings(original)
		sort.Strings(remodeled)
		assert.Equal(t, original, remodeled, "remodel must only permute, never add or drop")
	}
}

func TestRemodel_NoJobSkillsKeepsOrder(t *testing.T) {
	candidateSkills := []string{"go", "react", "sql"}
	result := Remodel(candidateSkills, testSections, "We make artisanal cheese.")

	assert.Equal(t, candidateSkills, result.Skills)
	assert.False(t, result.Diff.Reordered)
	assert.Empty(t, result.Diff.Highlighted)
	assert.Equal(t, "No changes needed.", result.Diff.Summary)
}

func TestRemodel_UnmatchedSkillsStayStable(t *testing.T) {
	candidateSkills := []string{"cooking", "go", "gardening", "surfing"}
	result := Remodel(candidateSkills, testSections, "go developers wanted")

	require.Equal(t, "go", result.Skills[0])
	// Unmatched skills keep their relative order.
	assert.Equal(t, []string{"cooking", "gardening", "surfing"}, result.Skills[1:])
}

func TestRemodel_HighlightedInJobMentionOrder(t *testing.T) {
	// Extraction follows vocabulary order, so highlighted does too.
	result := Remodel([]string{"sql", "python"}, testSections, "python scripts against a sql warehouse")

	assert.Equal(t, []string{"python", "sql"}, result.Diff.Highlighted)
}

func TestRemodel_SectionOrderFixed(t *testing.T) {
	result := Remodel([]string{"go"}, testSections, "go role")

	expected := []string{"summary", "skills", "experience"}
	assert.Equal(t, expected, result.Diff.SectionsOriginalOrder)
	// Section reordering is descriptive only; the physical order list is unchanged.
	assert.Equal(t, expected, result.Diff.SectionsRemodeledOrder)
	assert.Equal(t, testSections, result.Sections)
}

func TestRemodel_SummaryMentionsChanges(t *testing.T) {
	result := Remodel([]string{"photoshop", "react"}, testSections, "react shop")

	assert.Contains(t, result.Diff.Summary, "Prioritized 1 job-relevant skills")
	assert.Contains(t, result.Diff.Summary, "Reordered sections for ATS optimization")
}

func TestRemodel_DoesNotMutateInput(t *testing.T) {
	candidateSkills := []string{"photoshop", "react", "go"}
	original := append([]string(nil), candidateSkills...)

	Remodel(candidateSkills, testSections, "react and go")

	assert.Equal(t, original, candidateSkills)
}
