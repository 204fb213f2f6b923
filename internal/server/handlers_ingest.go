package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/fetch"
	"github.com/jonathan/job-pilot/internal/ingestion"
	"github.com/jonathan/job-pilot/internal/skills"
	"github.com/jonathan/job-pilot/internal/types"
)

// IngestJobRequest turns a posting URL or raw posting text into a structured
// job. Exactly one of URL or Text should be set; Text wins when both are.
type IngestJobRequest struct {
	URL  string `json:"url" validate:"omitempty,url"`
	Text string `json:"text"`
}

// IngestJobResponse is the extracted job plus the skills found in its
// description.
type IngestJobResponse struct {
	Job    types.Job `json:"job"`
	Skills []string  `json:"skills"`
}

func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.URL == "" && req.Text == "" {
		writeError(w, http.StatusBadRequest, "either url or text is required")
		return
	}

	var job types.Job
	if req.Text != "" {
		job = ingestion.PostingFromText(req.Text)
	} else {
		result, err := fetch.URL(r.Context(), req.URL, nil)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		job, err = ingestion.PostingFromHTML(result.HTML)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		// SPA pages render little static content; retry with a headless
		// browser when enabled.
		if s.useBrowser && fetch.ShouldUseBrowser(job.Description) {
			if rendered, berr := fetch.BrowserSimple(r.Context(), req.URL, false); berr == nil {
				if renderedJob, perr := ingestion.PostingFromHTML(rendered); perr == nil &&
					len(renderedJob.Description) > len(job.Description) {
					job = renderedJob
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, IngestJobResponse{
		Job:    job,
		Skills: skills.Extract(job.Description),
	})
}
