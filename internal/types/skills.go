package types

import (
	"github.com/go-playground/validator/v10"
)

// AddSkillRequest adds a skill to the user's profile. Category defaults
// to technical; proficiency is on a 0-1 scale.
type AddSkillRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Category    string  `json:"category,omitempty" validate:"omitempty,oneof=technical soft domain"`
	Proficiency float64 `json:"proficiency,omitempty" validate:"omitempty,min=0,max=1"`
}

// Validate validates the AddSkillRequest using the validator.
func (r *AddSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateProjectRequest adds a portfolio project.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	GitHubURL   string   `json:"github_url,omitempty" validate:"omitempty,url"`
	LiveURL     string   `json:"live_url,omitempty" validate:"omitempty,url"`
	TechStack   []string `json:"tech_stack,omitempty"`
	IsFeatured  bool     `json:"is_featured,omitempty"`
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
