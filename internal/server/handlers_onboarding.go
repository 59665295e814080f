package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/db"
	"github.com/atlasai/atlas-backend/internal/gamify"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
	"github.com/atlasai/atlas-backend/internal/types"
)

// ---------------------------------------------------------------
// Onboarding endpoints
// ---------------------------------------------------------------

// handleOnboardingStatus reports how far the user got through setup.
// Step 1 is a name, step 2 interests, step 3 skills; three steps means
// onboarding is complete.
func (s *Server) handleOnboardingStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}
	if profile == nil {
		s.jsonResponse(w, http.StatusOK, types.OnboardingStatus{Completed: false, Step: 0})
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	step := 0
	if user != nil && user.Name != "" {
		step = 1
	}
	if len(profile.Interests) > 0 {
		step = 2
	}
	skills, err := s.store.ListUserSkills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list skills")
		return
	}
	if len(skills) > 0 {
		step = 3
	}

	s.jsonResponse(w, http.StatusOK, types.OnboardingStatus{Completed: step >= 3, Step: step})
}

// handleCompleteOnboarding applies the full onboarding payload in one
// shot and awards the onboarding XP.
func (s *Server) handleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.CompleteOnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.store.UpdateUserName(r.Context(), userID, req.FullName); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	if _, err := s.store.EnsureProfile(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	update := db.ProfileUpdate{
		Interests:   req.Interests,
		TargetRoles: req.TargetRoles,
	}
	if req.Major != "" {
		update.Major = &req.Major
	}
	if req.University != "" {
		update.University = &req.University
	}
	if req.GraduationYear != 0 {
		update.GraduationYear = &req.GraduationYear
	}
	if req.Bio != "" {
		update.Bio = &req.Bio
	}
	if req.GitHubURL != "" {
		update.GitHubURL = &req.GitHubURL
	}
	if req.LinkedInURL != "" {
		update.LinkedInURL = &req.LinkedInURL
	}
	if _, err := s.store.UpdateProfile(r.Context(), userID, update); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	for _, name := range req.Skills {
		skillID, err := s.store.EnsureSkill(r.Context(), name, "technical")
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to create skill")
			return
		}
		if err := s.store.AddUserSkill(r.Context(), userID, skillID, 0.5, "onboarding"); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to add skill")
			return
		}
	}

	action := "complete_onboarding"
	earned := gamify.XPForAction(action)
	totalXP, err := s.store.AwardXP(r.Context(), userID, action, earned)
	if err != nil {
		s.logger.Warn("failed to award onboarding xp", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":   "Onboarding complete! Welcome to Atlas.",
		"xp_earned": earned,
		"level":     gamify.Level(totalXP).Level,
	})
}
