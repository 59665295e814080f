package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/db"
	"github.com/atlasai/atlas-backend/internal/gamify"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
	"github.com/atlasai/atlas-backend/internal/types"
)

// ---------------------------------------------------------------
// Profile endpoints
// ---------------------------------------------------------------

// handleGetProfile returns the authenticated user's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
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
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile applies partial profile changes.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.store.UpdateProfile(r.Context(), userID, db.ProfileUpdate{
		Bio:            req.Bio,
		Location:       req.Location,
		Phone:          req.Phone,
		LinkedInURL:    req.LinkedInURL,
		GitHubURL:      req.GitHubURL,
		PortfolioURL:   req.PortfolioURL,
		Major:          req.Major,
		University:     req.University,
		GraduationYear: req.GraduationYear,
		GPA:            req.GPA,
		Interests:      req.Interests,
		TargetRoles:    req.TargetRoles,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGamification returns the level, badge, and XP summary.
func (s *Server) handleGamification(w http.ResponseWriter, r *http.Request) {
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
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, gamify.Summarize(profile.XP, profile.Actions))
}

// ---------------------------------------------------------------
// Skill endpoints
// ---------------------------------------------------------------

// handleListSkills returns the user's skills.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	skills, err := s.store.ListUserSkills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list skills")
		return
	}
	if skills == nil {
		skills = []db.UserSkill{}
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

// handleAddSkill attaches a skill to the user, creating the global
// skill record if needed.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.AddSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	category := req.Category
	if category == "" {
		category = "technical"
	}
	proficiency := req.Proficiency
	if proficiency == 0 {
		proficiency = 0.5
	}

	skillID, err := s.store.EnsureSkill(r.Context(), req.Name, category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}
	if err := s.store.AddUserSkill(r.Context(), userID, skillID, proficiency, "self"); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add skill")
		return
	}

	s.jsonResponse(w, http.StatusCreated, db.UserSkill{
		Skill:       db.Skill{ID: skillID, Name: req.Name, Category: category},
		Proficiency: proficiency,
		Source:      "self",
	})
}

// handleRemoveSkill unlinks a skill from the user.
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	skillID, err := uuid.Parse(r.PathValue("skill_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	if err := s.store.RemoveUserSkill(r.Context(), userID, skillID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Skill removed successfully"})
}

// ---------------------------------------------------------------
// Project endpoints
// ---------------------------------------------------------------

// handleListProjects returns the user's portfolio projects.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	if projects == nil {
		projects = []db.Project{}
	}
	s.jsonResponse(w, http.StatusOK, projects)
}

// handleCreateProject adds a portfolio project and awards XP.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	project, err := s.store.CreateProject(r.Context(), userID, req.Title, req.Description, req.GitHubURL, req.LiveURL, req.TechStack, req.IsFeatured)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	action := "add_project"
	if _, err := s.store.AwardXP(r.Context(), userID, action, gamify.XPForAction(action)); err != nil {
		s.logger.Warn("failed to award project xp", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusCreated, project)
}

// handleDeleteProject removes a project owned by the user.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projectID, err := uuid.Parse(r.PathValue("project_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	if err := s.store.DeleteProject(r.Context(), userID, projectID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
