package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSkillMatchScore_BidirectionalContainment(t *testing.T) {
	// "node" (extracted from the description) should match candidate "Node.js"
	// because either side containing the other counts as a match.
	score := computeSkillMatchScore("Looking for node developers", []string{"Node.js"})
	assert.Greater(t, score, 0)
}

func TestComputeSkillMatchScore_NoJobSkills(t *testing.T) {
	score := computeSkillMatchScore("We sell furniture.", []string{"go", "python"})
	assert.Equal(t, 0, score)
}

func TestComputeSkillMatchScore_NoCandidateSkills(t *testing.T) {
	score := computeSkillMatchScore("python and go required", nil)
	assert.Equal(t, 0, score)
}

func TestComputeExperienceFitScore_NoRequirement(t *testing.T) {
	assert.Equal(t, 75, computeExperienceFitScore("Great team, flexible hours.", 3))
}

func TestComputeExperienceFitScore_ExplicitZero(t *testing.T) {
	assert.Equal(t, 75, computeExperienceFitScore("0 years of experience needed", 0))
}

func TestComputeExperienceFitScore_MeetsRequirement(t *testing.T) {
	assert.Equal(t, 100, computeExperienceFitScore("5+ years of experience required", 5))
	assert.Equal(t, 100, computeExperienceFitScore("5+ years of experience required", 8))
}

func TestComputeExperienceFitScore_OneYearShort(t *testing.T) {
	assert.Equal(t, 85, computeExperienceFitScore("5 years of experience", 4))
}

func TestComputeExperienceFitScore_TwoYearsShort(t *testing.T) {
	assert.Equal(t, 70, computeExperienceFitScore("5+ years of experience required", 3))
}

func TestComputeExperienceFitScore_LargeGap(t *testing.T) {
	// gap of 4 -> 100 - 15*4 = 40
	assert.Equal(t, 40, computeExperienceFitScore("6 years of experience", 2))
	// gap of 10 -> floor at 30
	assert.Equal(t, 30, computeExperienceFitScore("12 years of experience", 2))
}

func TestParseRequiredYears(t *testing.T) {
	assert.Equal(t, 5, parseRequiredYears("We need 5+ years of experience in Go"))
	assert.Equal(t, 3, parseRequiredYears("3 years of experience"))
	assert.Equal(t, 0, parseRequiredYears("experienced engineers welcome"))
	assert.Equal(t, 10, parseRequiredYears("10 Years of Experience"))
}

func TestComputeLocationScore_MissingLocations(t *testing.T) {
	assert.Equal(t, 50, computeLocationScore("", "Berlin"))
	assert.Equal(t, 50, computeLocationScore("Berlin", ""))
}

func TestComputeLocationScore_Remote(t *testing.T) {
	assert.Equal(t, 80, computeLocationScore("Remote (US)", "Austin, TX"))
	assert.Equal(t, 80, computeLocationScore("Austin, TX", "remote"))
}

func TestComputeLocationScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 100, computeLocationScore("Berlin, Germany", "berlin, germany"))
}

func TestComputeLocationScore_SameCity(t *testing.T) {
	// Same city before the comma matches even when the region differs.
	assert.Equal(t, 100, computeLocationScore("San Francisco, CA", "San Francisco, NY"))
}

func TestComputeLocationScore_SameRegion(t *testing.T) {
	assert.Equal(t, 70, computeLocationScore("Oakland, CA", "San Jose, CA"))
}

func TestComputeLocationScore_Different(t *testing.T) {
	assert.Equal(t, 40, computeLocationScore("London, UK", "Tokyo, Japan"))
}

func TestComputeRecencyScore_NoDate(t *testing.T) {
	assert.Equal(t, 50, computeRecencyScore(nil, time.Now()))
}

func TestComputeRecencyScore_Tiers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(daysAgo int) *time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return &d
	}

	assert.Equal(t, 100, computeRecencyScore(at(0), now))
	assert.Equal(t, 100, computeRecencyScore(at(7), now))
	assert.Equal(t, 85, computeRecencyScore(at(8), now))
	assert.Equal(t, 85, computeRecencyScore(at(30), now))
	assert.Equal(t, 70, computeRecencyScore(at(45), now))
	assert.Equal(t, 50, computeRecencyScore(at(90), now))
	// 120 days -> 100 - 120/3 = 60
	assert.Equal(t, 60, computeRecencyScore(at(120), now))
	// Very old postings floor at 20.
	assert.Equal(t, 20, computeRecencyScore(at(400), now))
}

func TestComputeRecencyScore_FutureDate(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 3)
	assert.Equal(t, 100, computeRecencyScore(&future, now))
}

func TestSkillsOverlap(t *testing.T) {
	assert.True(t, skillsOverlap("node", "Node.js"))
	assert.True(t, skillsOverlap("Node.js", "node"))
	assert.True(t, skillsOverlap("react", "react"))
	assert.False(t, skillsOverlap("go", "python"))
	assert.False(t, skillsOverlap("", "python"))
}
