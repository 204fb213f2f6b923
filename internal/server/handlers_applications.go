package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/analytics"
	"github.com/jonathan/job-pilot/internal/db"
	"github.com/jonathan/job-pilot/internal/server/middleware"
)

// CreateApplicationRequest tracks a new job application.
type CreateApplicationRequest struct {
	JobTitle   string `json:"job_title" validate:"required,min=1,max=300"`
	Company    string `json:"company" validate:"required,min=1,max=300"`
	Location   string `json:"location" validate:"max=300"`
	JobURL     string `json:"job_url" validate:"omitempty,url"`
	Status     string `json:"status"`
	MatchScore *int   `json:"match_score" validate:"omitempty,min=0,max=100"`
}

// UpdateStatusRequest moves an application to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	opts := db.ListApplicationsOptions{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !db.ValidStatus(status) {
			writeError(w, http.StatusBadRequest, "invalid status filter: "+status)
			return
		}
		opts.Status = &status
	}

	apps, total, err := s.db.ListApplications(r.Context(), userID, opts)
	if err != nil {
		serviceError(w, err)
		return
	}
	if apps == nil {
		apps = []db.Application{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"applications": apps,
		"total":        total,
		"limit":        opts.Limit,
		"offset":       opts.Offset,
	})
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	var req CreateApplicationRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = analytics.StatusSaved
	}
	if !db.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid status: "+status)
		return
	}

	app := &db.Application{
		UserID:     userID,
		JobTitle:   req.JobTitle,
		Company:    req.Company,
		Location:   req.Location,
		JobURL:     req.JobURL,
		Status:     status,
		MatchScore: req.MatchScore,
	}
	id, err := s.db.CreateApplication(r.Context(), app)
	if err != nil {
		serviceError(w, err)
		return
	}

	created, err := s.db.GetApplication(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := s.ownedApplication(r)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	app, err := s.ownedApplication(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !db.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status: "+req.Status)
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), app.ID, req.Status); err != nil {
		serviceError(w, err)
		return
	}

	updated, err := s.db.GetApplication(r.Context(), app.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	app, err := s.ownedApplication(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	if err := s.db.DeleteApplication(r.Context(), app.ID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedApplication loads the application named by the {id} path value and
// verifies the authenticated user owns it.
func (s *Server) ownedApplication(r *http.Request) (*db.Application, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: err.Error()}
	}

	app, err := s.db.GetApplication(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &ErrNotFound{Resource: "application", ID: id}
	}

	authenticated, err := middleware.GetUserID(r)
	if err != nil || authenticated != app.UserID {
		return nil, &ErrForbidden{}
	}
	return app, nil
}
