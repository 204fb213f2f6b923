package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/job-pilot/internal/db"
	"github.com/jonathan/job-pilot/internal/schemas"
	"github.com/jonathan/job-pilot/internal/server/middleware"
	"github.com/jonathan/job-pilot/internal/types"
)

// ResumeRequest creates or updates a stored resume.
type ResumeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// resumeDocument mirrors the resume import schema.
type resumeDocument struct {
	Name     string               `json:"name"`
	Skills   []string             `json:"skills"`
	Sections types.ResumeSections `json:"sections"`
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"resumes": resumes})
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	var req ResumeRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resume := &db.Resume{
		UserID:     userID,
		Name:       req.Name,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
	}
	id, err := s.db.CreateResume(r.Context(), resume)
	if err != nil {
		serviceError(w, err)
		return
	}

	created, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleImportResume accepts a resume document, validates it against the
// JSON schema and stores it as a new resume.
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateResumeDocument(body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "resume document failed schema validation",
				"fields": validationErr.Errors,
			})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var doc resumeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume document")
		return
	}

	resume := &db.Resume{
		UserID:     userID,
		Name:       doc.Name,
		Summary:    doc.Sections.Summary,
		Skills:     doc.Sections.Skills,
		Experience: doc.Sections.Experience,
	}
	id, err := s.db.CreateResume(r.Context(), resume)
	if err != nil {
		serviceError(w, err)
		return
	}

	created, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.ownedResume(r)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.ownedResume(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	var req ResumeRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resume.Name = req.Name
	resume.Summary = req.Summary
	resume.Skills = req.Skills
	resume.Experience = req.Experience
	if err := s.db.UpdateResume(r.Context(), resume); err != nil {
		serviceError(w, err)
		return
	}

	updated, err := s.db.GetResume(r.Context(), resume.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.ownedResume(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedResume loads the resume named by the {id} path value and verifies the
// authenticated user owns it.
func (s *Server) ownedResume(r *http.Request) (*db.Resume, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: err.Error()}
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, &ErrNotFound{Resource: "resume", ID: id}
	}

	authenticated, err := middleware.GetUserID(r)
	if err != nil || authenticated != resume.UserID {
		return nil, &ErrForbidden{}
	}
	return resume, nil
}
