package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/job-pilot/internal/matching"
	"github.com/jonathan/job-pilot/internal/types"
)

// RankJobs scores every job against the candidate and returns the list sorted
// descending by ranking score. Ties keep original input order (stable sort)
// and ranks are 1-based. An empty input returns an empty slice.
func RankJobs(jobs []types.Job, candidate types.CandidateProfile, candidateLocation string, overrides Weights) []types.RankedJob {
	return rankJobsAt(jobs, candidate, candidateLocation, overrides, time.Now())
}

// rankJobsAt is RankJobs with an injectable clock for recency scoring.
func rankJobsAt(jobs []types.Job, candidate types.CandidateProfile, candidateLocation string, overrides Weights, now time.Time) []types.RankedJob {
	ranked := make([]types.RankedJob, 0, len(jobs))
	weights := resolveWeights(overrides)

	for _, job := range jobs {
		breakdown := types.ScoreBreakdown{
			SkillMatch:    computeSkillMatchScore(job.Description, candidate.Skills),
			ExperienceFit: computeExperienceFitScore(job.Description, candidate.YearsOfExperience),
			Location:      computeLocationScore(job.Location, candidateLocation),
			Recency:       computeRecencyScore(job.PostedDate, now),
		}

		score := float64(breakdown.SkillMatch)*weights.skillMatch +
			float64(breakdown.ExperienceFit)*weights.experienceFit +
			float64(breakdown.Location)*weights.location +
			float64(breakdown.Recency)*weights.recency

		ranked = append(ranked, types.RankedJob{
			Job:          job,
			Breakdown:    breakdown,
			RankingScore: matching.Clamp(int(math.Round(score))),
			Explanation:  explainBreakdown(breakdown),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankingScore > ranked[j].RankingScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}
