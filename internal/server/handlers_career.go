package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/gamify"
	"github.com/atlasai/atlas-backend/internal/scamshield"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
)

// ---------------------------------------------------------------
// Career tool endpoints
// ---------------------------------------------------------------

// handleVerifyJob runs the scam analysis on a single job posting.
// Checking a posting awards XP.
func (s *Server) handleVerifyJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var posting scamshield.Posting
	if err := json.NewDecoder(r.Body).Decode(&posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	action := "verify_job"
	if _, err := s.store.AwardXP(r.Context(), userID, action, gamify.XPForAction(action)); err != nil {
		s.logger.Warn("failed to award verify xp", zap.Error(err), zap.String("user_id", userID.String()))
	}

	s.jsonResponse(w, http.StatusOK, scamshield.Analyze(posting))
}

// verifyJobsRequest wraps a batch of postings for analysis.
type verifyJobsRequest struct {
	Postings []scamshield.Posting `json:"postings" validate:"required,min=1,max=50,dive"`
}

// handleVerifyJobs analyzes a batch of postings, most trustworthy
// first.
func (s *Server) handleVerifyJobs(w http.ResponseWriter, r *http.Request) {
	var req verifyJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reports, err := scamshield.AnalyzeBatch(r.Context(), req.Postings)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to analyze postings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"total_analyzed": len(reports),
		"results":        reports,
	})
}
