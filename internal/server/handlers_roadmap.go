package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/roadmap"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
)

// handleGenerateRoadmap builds a personalized learning roadmap and
// persists it on the caller's profile.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req roadmap.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	plan := s.roadmaps.Generate(r.Context(), req)

	if err := s.store.SaveRoadmap(r.Context(), userID, plan); err != nil {
		s.logger.Warn("failed to persist roadmap", zap.String("user_id", userID.String()), zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, plan)
}
