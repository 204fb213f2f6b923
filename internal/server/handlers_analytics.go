package server

import (
	"net/http"

	"github.com/jonathan/job-pilot/internal/analytics"
)

// handleAnalytics returns the application funnel summary for a user:
// aggregates, derived rates and advisory insight strings.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authorizePathUser(r)
	if err != nil {
		serviceError(w, err)
		return
	}

	stats, err := s.db.ApplicationStats(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildSummary(stats))
}
