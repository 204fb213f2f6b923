// Package analytics turns application-tracking aggregates into a summary
// with templated insight strings.
package analytics

import (
	"fmt"
	"math"
)

// Application status values tracked by the store.
const (
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffered      = "offered"
	StatusRejected     = "rejected"
	StatusAccepted     = "accepted"
)

// Stats holds raw aggregates computed by the store for one candidate.
type Stats struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	AverageMatchScore float64        `json:"average_match_score"`
	AppliedLast30Days int            `json:"applied_last_30_days"`
}

// Summary is the analytics payload returned to callers: the raw aggregates
// plus derived rates and advisory insight strings.
type Summary struct {
	Stats
	ResponseRate  int      `json:"response_rate"`
	InterviewRate int      `json:"interview_rate"`
	Insights      []string `json:"insights"`
}

// BuildSummary derives rates and insight strings from raw aggregates.
// It is total over its input: zero activity produces a summary that says so
// rather than an error.
func BuildSummary(stats Stats) Summary {
	summary := Summary{Stats: stats}
	if stats.ByStatus == nil {
		summary.ByStatus = map[string]int{}
	}

	submitted := stats.Total - summary.ByStatus[StatusSaved]
	responses := summary.ByStatus[StatusInterviewing] +
		summary.ByStatus[StatusOffered] +
		summary.ByStatus[StatusRejected] +
		summary.ByStatus[StatusAccepted]
	interviews := summary.ByStatus[StatusInterviewing] +
		summary.ByStatus[StatusOffered] +
		summary.ByStatus[StatusAccepted]

	summary.ResponseRate = percentage(responses, submitted)
	summary.InterviewRate = percentage(interviews, submitted)
	summary.Insights = buildInsights(summary, submitted)

	return summary
}

// percentage returns round(100*part/whole), or 0 for an empty denominator.
func percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// buildInsights produces threshold-keyed advisory strings for the summary.
func buildInsights(s Summary, submitted int) []string {
	if s.Total == 0 {
		return []string{"No applications tracked yet. Save or apply to a job to start seeing trends."}
	}

	var insights []string

	switch {
	case submitted == 0:
		insights = append(insights, fmt.Sprintf("You have saved %d jobs but not applied yet.", s.ByStatus[StatusSaved]))
	case s.ResponseRate >= 40:
		insights = append(insights, fmt.Sprintf("Strong response rate (%d%%). Your applications are landing well.", s.ResponseRate))
	case s.ResponseRate >= 15:
		insights = append(insights, fmt.Sprintf("Average response rate (%d%%). Consider tailoring resumes to each posting.", s.ResponseRate))
	default:
		insights = append(insights, fmt.Sprintf("Low response rate (%d%%). Focus on jobs with higher match scores.", s.ResponseRate))
	}

	if submitted > 0 {
		switch {
		case s.InterviewRate >= 25:
			insights = append(insights, fmt.Sprintf("Good interview conversion (%d%%).", s.InterviewRate))
		case s.InterviewRate > 0:
			insights = append(insights, fmt.Sprintf("Interview conversion is %d%%. Keep refining your answers.", s.InterviewRate))
		}
	}

	switch {
	case s.AverageMatchScore >= 70:
		insights = append(insights, fmt.Sprintf("You target well-matched jobs (average match %.0f).", s.AverageMatchScore))
	case s.AverageMatchScore > 0:
		insights = append(insights, fmt.Sprintf("Average match score is %.0f. Ranking jobs before applying may help.", s.AverageMatchScore))
	}

	if s.AppliedLast30Days == 0 && submitted > 0 {
		insights = append(insights, "No applications in the last 30 days.")
	}

	if s.ByStatus[StatusOffered] > 0 || s.ByStatus[StatusAccepted] > 0 {
		insights = append(insights, fmt.Sprintf("%d offers received.", s.ByStatus[StatusOffered]+s.ByStatus[StatusAccepted]))
	}

	return insights
}
