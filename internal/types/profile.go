package types

import (
	"github.com/go-playground/validator/v10"
)

// UpdateProfileRequest carries the editable profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileRequest struct {
	Bio            *string  `json:"bio,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	LinkedInURL    *string  `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GitHubURL      *string  `json:"github_url,omitempty" validate:"omitempty,url"`
	PortfolioURL   *string  `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	Major          *string  `json:"major,omitempty"`
	University     *string  `json:"university,omitempty"`
	GraduationYear *int     `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	GPA            *float64 `json:"gpa,omitempty" validate:"omitempty,min=0,max=10"`
	Interests      []string `json:"interests,omitempty"`
	TargetRoles    []string `json:"target_roles,omitempty"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CompleteOnboardingRequest is the single-shot onboarding payload.
type CompleteOnboardingRequest struct {
	FullName       string   `json:"full_name" validate:"required,min=1"`
	Major          string   `json:"major,omitempty"`
	University     string   `json:"university,omitempty"`
	GraduationYear int      `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	Interests      []string `json:"interests,omitempty"`
	TargetRoles    []string `json:"target_roles,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	GitHubURL      string   `json:"github_url,omitempty" validate:"omitempty,url"`
	LinkedInURL    string   `json:"linkedin_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the CompleteOnboardingRequest using the validator.
func (r *CompleteOnboardingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// OnboardingStatus reports how far a user has progressed through setup.
type OnboardingStatus struct {
	Completed bool `json:"completed"`
	Step      int  `json:"step"`
}
