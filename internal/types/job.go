// Package types provides type definitions for structured data used throughout the job-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Job represents a job posting to be scored against a candidate profile
type Job struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	PostedDate  *time.Time `json:"posted_date,omitempty"`
}

// ScoreBreakdown holds the four sub-scores behind a ranking score.
// Every score is an integer in [0,100].
type ScoreBreakdown struct {
	SkillMatch    int `json:"skill_match"`
	ExperienceFit int `json:"experience_fit"`
	Location      int `json:"location"`
	Recency       int `json:"recency"`
}

// RankedJob is a job with its composite ranking score and 1-based rank position
type RankedJob struct {
	Job          Job            `json:"job"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	RankingScore int            `json:"ranking_score"`
	Rank         int            `json:"rank"`
	Explanation  string         `json:"explanation"`
}
