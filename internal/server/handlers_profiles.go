package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/db"
)

// UpsertProfileRequest creates or replaces a candidate's scoring profile.
type UpsertProfileRequest struct {
	Skills            []string `json:"skills" validate:"max=200,dive,min=1,max=100"`
	YearsOfExperience int      `json:"years_of_experience" validate:"min=0,max=80"`
	Location          string   `json:"location" validate:"max=200"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	if profile == nil {
		serviceError(w, &ErrNotFound{Resource: "profile", ID: userID})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	var req UpsertProfileRequest
	if err := decodeValidated(r, &req, s.validate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := &db.Profile{
		UserID:            userID,
		Skills:            req.Skills,
		YearsOfExperience: req.YearsOfExperience,
		Location:          req.Location,
	}
	if err := s.db.UpsertProfile(r.Context(), profile); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
