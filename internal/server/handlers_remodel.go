package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/remodel"
	"github.com/jonathan/job-pilot/internal/types"
)

// RemodelRequest reorders a candidate's skills toward one job description.
type RemodelRequest struct {
	CandidateSkills []string             `json:"candidate_skills" validate:"max=200"`
	Sections        types.ResumeSections `json:"sections"`
	JobDescription  string               `json:"job_description" validate:"required"`
}

// handleRemodelResume returns the remodeled skill order plus a diff of what
// changed. The result is always a permutation of the input skills.
func (s *Server) handleRemodelResume(w http.ResponseWriter, r *http.Request) {
	var req RemodelRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := remodel.Remodel(req.CandidateSkills, req.Sections, req.JobDescription)
	writeJSON(w, http.StatusOK, result)
}
