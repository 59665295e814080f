package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents an account with password authentication.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the career profile attached to a user. XP and actions
// back the gamification summary; the roadmap column stores the last
// generated learning path.
type Profile struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Bio            string          `json:"bio,omitempty"`
	Location       string          `json:"location,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	LinkedInURL    string          `json:"linkedin_url,omitempty"`
	GitHubURL      string          `json:"github_url,omitempty"`
	PortfolioURL   string          `json:"portfolio_url,omitempty"`
	Major          string          `json:"major,omitempty"`
	University     string          `json:"university,omitempty"`
	GraduationYear int             `json:"graduation_year,omitempty"`
	GPA            float64         `json:"gpa,omitempty"`
	Interests      StringArray     `json:"interests"`
	TargetRoles    StringArray     `json:"target_roles"`
	XP             int             `json:"xp"`
	Actions        ActionSet       `json:"actions"`
	Roadmap        json.RawMessage `json:"roadmap,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Skill is a global skill record shared across users.
type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"` // technical, soft, domain
}

// UserSkill is a skill attached to a user with proficiency and origin.
type UserSkill struct {
	Skill
	Proficiency float64 `json:"proficiency"` // 0-1 scale
	Source      string  `json:"source"`      // self, onboarding, github
}

// Project is a portfolio entry.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	GitHubURL   string      `json:"github_url,omitempty"`
	LiveURL     string      `json:"live_url,omitempty"`
	TechStack   StringArray `json:"tech_stack"`
	IsFeatured  bool        `json:"is_featured"`
	CreatedAt   time.Time   `json:"created_at"`
}

// StringArray handles JSONB string arrays.
type StringArray []string

// Scan implements the Scanner interface for StringArray.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// ActionSet handles a JSONB map of completed gamification actions.
type ActionSet map[string]bool

// Scan implements the Scanner interface for ActionSet.
func (s *ActionSet) Scan(src interface{}) error {
	if src == nil {
		*s = ActionSet{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, s)
}

// Value implements the Valuer interface for ActionSet.
func (s ActionSet) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}
