package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/matching"
	"github.com/jonathan/job-pilot/internal/ranking"
	"github.com/jonathan/job-pilot/internal/skills"
	"github.com/jonathan/job-pilot/internal/types"
)

// ScoreMatchRequest scores a candidate against one job. Job skills may be
// given explicitly or extracted from the description.
type ScoreMatchRequest struct {
	JobDescription  string   `json:"job_description"`
	JobSkills       []string `json:"job_skills"`
	CandidateSkills []string `json:"candidate_skills"`
}

// ScoreMatchResponse is the match score with the skill lists it was based on.
type ScoreMatchResponse struct {
	Score           int      `json:"score"`
	JobSkills       []string `json:"job_skills"`
	CandidateSkills []string `json:"candidate_skills"`
}

// handleScoreMatch computes a 0-100 match score between job and candidate
// skills. An empty skill list on either side scores 0.
func (s *Server) handleScoreMatch(w http.ResponseWriter, r *http.Request) {
	var req ScoreMatchRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobSkills := req.JobSkills
	if len(jobSkills) == 0 && req.JobDescription != "" {
		jobSkills = skills.Extract(req.JobDescription)
	}

	writeJSON(w, http.StatusOK, ScoreMatchResponse{
		Score:           matching.ComputeScore(jobSkills, req.CandidateSkills),
		JobSkills:       jobSkills,
		CandidateSkills: req.CandidateSkills,
	})
}

// RankJobsRequest ranks a list of jobs for one candidate. Weights are
// optional; omitted factors keep their default weight.
type RankJobsRequest struct {
	Jobs      []types.Job            `json:"jobs" validate:"max=500,dive"`
	Candidate types.CandidateProfile `json:"candidate"`
	Weights   ranking.Weights        `json:"weights"`
}

// RankJobsResponse is the ranked list, best match first.
type RankJobsResponse struct {
	Jobs []types.RankedJob `json:"jobs"`
}

func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	var req RankJobsRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ranked := ranking.RankJobs(req.Jobs, req.Candidate, req.Candidate.Location, req.Weights)
	writeJSON(w, http.StatusOK, RankJobsResponse{Jobs: ranked})
}
