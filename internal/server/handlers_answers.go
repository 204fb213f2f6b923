package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/answers"
)

// ImproveAnswerRequest runs a stored answer through the answer improver.
type ImproveAnswerRequest struct {
	Answer         string `json:"answer"`
	JobDescription string `json:"job_description" validate:"required"`
}

func (s *Server) handleImproveAnswer(w http.ResponseWriter, r *http.Request) {
	var req ImproveAnswerRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, answers.Improve(req.Answer, req.JobDescription))
}
