package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-pilot/internal/types"
)

// explainBreakdown builds the advisory explanation string for a score
// breakdown: one threshold-keyed phrase per factor, joined by " • ".
// The text is never used for sorting.
func explainBreakdown(b types.ScoreBreakdown) string {
	parts := []string{
		explainSkillMatch(b.SkillMatch),
		explainExperienceFit(b.ExperienceFit),
		explainLocation(b.Location),
		explainRecency(b.Recency),
	}
	return strings.Join(parts, " • ")
}

func explainSkillMatch(score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Strong skill match (%d%% of required skills)", score)
	case score >= 60:
		return fmt.Sprintf("Good skill match (%d%% of required skills)", score)
	case score >= 40:
		return fmt.Sprintf("Some skill overlap (%d%% of required skills)", score)
	default:
		return fmt.Sprintf("Limited skill match (%d%% of required skills)", score)
	}
}

func explainExperienceFit(score int) string {
	switch {
	case score >= 95:
		return "Meets experience requirements"
	case score >= 75:
		return "Close to experience requirements"
	case score >= 50:
		return "Somewhat below experience requirements"
	default:
		return "Below experience requirements"
	}
}

func explainLocation(score int) string {
	switch {
	case score >= 90:
		return "Location matches"
	case score >= 75:
		return "Remote-friendly location"
	case score >= 60:
		return "Same region"
	default:
		return "Different location"
	}
}

func explainRecency(score int) string {
	switch {
	case score >= 90:
		return "Posted within the last week"
	case score >= 75:
		return "Posted within the last month"
	case score >= 45:
		return "Posted in the last few months"
	default:
		return "Older posting"
	}
}
