// Package matching computes skill-overlap match scores between jobs and candidates.
package matching

import (
	"math"
	"strings"
)

// ComputeScore returns a 0-100 overlap score between a job's skill list and a
// candidate's skill list. The denominator is the count of distinct job skills
// (case-insensitive), not total occurrences. Either list being empty scores 0.
func ComputeScore(jobSkills, candidateSkills []string) int {
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return 0
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[normalize(skill)] = true
	}

	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[normalize(skill)] = true
	}

	matched := 0
	for skill := range jobSet {
		if candidateSet[skill] {
			matched++
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(jobSet))))
	return Clamp(score)
}

// Clamp bounds a score to [0,100]. The scoring formulas cannot leave that
// range on their own; this is defensive.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
