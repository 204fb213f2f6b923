package ranking

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/job-pilot/internal/matching"
	"github.com/jonathan/job-pilot/internal/skills"
)

// yearsPattern matches requirements like "5 years of experience" or
// "3+ years of experience" in job description text.
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?\s+of\s+experience`)

// computeSkillMatchScore scores skill overlap between the job description and
// the candidate's skills. A skill counts as matched when either string
// contains the other after normalization, which tolerates naming variants
// like "Node" vs "Node.js". Denominator is the distinct extracted job-skill
// count, as in matching.ComputeScore.
func computeSkillMatchScore(jobDescription string, candidateSkills []string) int {
	jobSkills := skills.Extract(jobDescription)
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return 0
	}

	matched := 0
	for _, jobSkill := range jobSkills {
		for _, candidateSkill := range candidateSkills {
			if skillsOverlap(jobSkill, candidateSkill) {
				matched++
				break
			}
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(jobSkills))))
	return matching.Clamp(score)
}

// skillsOverlap reports bidirectional substring containment between two
// normalized skill names.
func skillsOverlap(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// computeExperienceFitScore scores the candidate's years of experience
// against a "N years of experience" requirement parsed from the description.
// No requirement (or an explicit zero) is neutral-positive.
func computeExperienceFitScore(jobDescription string, candidateYears int) int {
	required := parseRequiredYears(jobDescription)
	if required == 0 {
		return 75
	}

	if candidateYears >= required {
		return 100
	}

	switch required - candidateYears {
	case 1:
		return 85
	case 2:
		return 70
	default:
		score := 100 - 15*(required-candidateYears)
		if score < 30 {
			score = 30
		}
		return score
	}
}

// parseRequiredYears extracts the required years of experience from job
// description text. Returns 0 when no requirement is stated.
func parseRequiredYears(description string) int {
	match := yearsPattern.FindStringSubmatch(strings.ToLower(description))
	if match == nil {
		return 0
	}

	years := 0
	for _, c := range match[1] {
		years = years*10 + int(c-'0')
	}
	return years
}

// computeLocationScore scores how well the job location fits the candidate's.
// Comparison is on the comma-separated city/region convention of posting
// locations ("San Francisco, CA").
func computeLocationScore(jobLocation, candidateLocation string) int {
	job := strings.ToLower(strings.TrimSpace(jobLocation))
	cand := strings.ToLower(strings.TrimSpace(candidateLocation))

	if job == "" || cand == "" {
		return 50
	}

	if strings.Contains(job, "remote") || strings.Contains(cand, "remote") {
		return 80
	}

	if job == cand {
		return 100
	}

	jobCity, jobRegion := splitLocation(job)
	candCity, candRegion := splitLocation(cand)

	if jobCity != "" && jobCity == candCity {
		return 100
	}
	if jobRegion != "" && jobRegion == candRegion {
		return 70
	}

	return 40
}

// splitLocation splits "city, region" into its trimmed parts. The region is
// everything after the first comma.
func splitLocation(location string) (city, region string) {
	city, region, found := strings.Cut(location, ",")
	city = strings.TrimSpace(city)
	if !found {
		return city, ""
	}
	return city, strings.TrimSpace(region)
}

// computeRecencyScore scores how fresh the posting is. A missing posted date
// is neutral.
func computeRecencyScore(postedDate *time.Time, now time.Time) int {
	if postedDate == nil {
		return 50
	}

	days := int(now.Sub(*postedDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	switch {
	case days <= 7:
		return 100
	case days <= 30:
		return 85
	case days <= 60:
		return 70
	case days <= 90:
		return 50
	default:
		score := 100 - days/3
		if score < 20 {
			score = 20
		}
		return score
	}
}
