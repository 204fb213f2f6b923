// Package remodel reorders existing resume content to foreground
// job-relevant skills. It never fabricates and never deletes: the remodeled
// skill list is always a permutation of the input.
package remodel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/job-pilot/internal/skills"
	"github.com/jonathan/job-pilot/internal/types"
)

// sectionOrder is the fixed resume section layout. Section reordering is
// recorded in the diff as descriptive metadata only; the physical order does
// not change.
var sectionOrder = []string{"summary", "skills", "experience"}

// Result holds the remodeled view of a resume together with the diff that
// explains what changed.
type Result struct {
	Skills   []string             `json:"skills"`
	Sections types.ResumeSections `json:"sections"`
	Diff     types.RemodelDiff    `json:"diff"`
}

// Remodel reorders candidateSkills so skills relevant to the job description
// come first, in the order the job mentions them. Skills with no job match
// keep their relative order at the end. When the description yields no known
// skills, the order is unchanged.
func Remodel(candidateSkills []string, sections types.ResumeSections, jobDescription string) Result {
	jobSkills := skills.Extract(jobDescription)

	remodeled := reorderSkills(candidateSkills, jobSkills)
	highlighted := highlightedSkills(candidateSkills, jobSkills)
	reordered := !equalOrder(candidateSkills, remodeled)

	diff := types.RemodelDiff{
		SkillsOriginal:         append([]string(nil), candidateSkills...),
		SkillsRemodeled:        remodeled,
		Reordered:              reordered,
		Highlighted:            highlighted,
		SectionsOriginalOrder:  append([]string(nil), sectionOrder...),
		SectionsRemodeledOrder: append([]string(nil), sectionOrder...),
	}
	diff.Summary = changeSummary(reordered, len(highlighted), len(jobSkills) > 0)

	return Result{
		Skills:   remodeled,
		Sections: sections,
		Diff:     diff,
	}
}

// reorderSkills sorts candidate skills by ascending index of their first
// match in jobSkills. Unmatched skills sort last and stay stable among
// themselves.
func reorderSkills(candidateSkills, jobSkills []string) []string {
	remodeled := append([]string(nil), candidateSkills...)
	if len(jobSkills) == 0 {
		return remodeled
	}

	sort.SliceStable(remodeled, func(i, j int) bool {
		return matchIndex(remodeled[i], jobSkills) < matchIndex(remodeled[j], jobSkills)
	})

	return remodeled
}

// matchIndex returns the index of the first job skill the candidate skill
// matches, or len(jobSkills) when nothing matches (sorts last).
func matchIndex(candidateSkill string, jobSkills []string) int {
	normalized := strings.ToLower(strings.TrimSpace(candidateSkill))
	for i, jobSkill := range jobSkills {
		if strings.Contains(normalized, jobSkill) || strings.Contains(jobSkill, normalized) {
			return i
		}
	}
	return len(jobSkills)
}

// highlightedSkills returns the job skills that appear among the candidate's
// skills, preserving job-mention order.
func highlightedSkills(candidateSkills, jobSkills []string) []string {
	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	var highlighted []string
	for _, jobSkill := range jobSkills {
		if candidateSet[jobSkill] {
			highlighted = append(highlighted, jobSkill)
		}
	}
	return highlighted
}

func equalOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// changeSummary builds the human-readable description of what the remodel did.
func changeSummary(reordered bool, highlightedCount int, jobSkillsFound bool) string {
	var changes []string
	if reordered && highlightedCount > 0 {
		changes = append(changes, fmt.Sprintf("Prioritized %d job-relevant skills", highlightedCount))
	}
	if jobSkillsFound {
		changes = append(changes, "Reordered sections for ATS optimization")
	}
	if len(changes) == 0 {
		return "No changes needed."
	}
	return strings.Join(changes, "; ")
}
