package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/gamify"
	"github.com/atlasai/atlas-backend/internal/originstory"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
)

// ---------------------------------------------------------------
// Origin Story endpoints
// ---------------------------------------------------------------

// handleQuestions returns the full quiz question bank.
func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, originstory.Questions())
}

// handleRecommend scores the quiz answers and returns ranked stream
// recommendations. Taking the quiz awards XP.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var resp originstory.UserResponse
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := s.engine.Recommend(&resp)

	if s.store != nil {
		action := "take_career_quiz"
		if _, err := s.store.AwardXP(r.Context(), userID, action, gamify.XPForAction(action)); err != nil {
			s.logger.Warn("failed to award quiz xp", zap.Error(err), zap.String("user_id", userID.String()))
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetStream returns the full catalog entry for one stream.
func (s *Server) handleGetStream(w http.ResponseWriter, r *http.Request) {
	streamID := r.PathValue("stream_id")
	stream, ok := s.engine.Catalog().Get(streamID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "stream not found: "+streamID)
		return
	}
	s.jsonResponse(w, http.StatusOK, stream)
}
