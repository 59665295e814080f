package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, user_id, COALESCE(bio, ''), COALESCE(location, ''), COALESCE(phone, ''),
	COALESCE(linkedin_url, ''), COALESCE(github_url, ''), COALESCE(portfolio_url, ''),
	COALESCE(major, ''), COALESCE(university, ''), COALESCE(graduation_year, 0), COALESCE(gpa, 0),
	interests, target_roles, xp, actions, roadmap, created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Bio, &p.Location, &p.Phone,
		&p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL,
		&p.Major, &p.University, &p.GraduationYear, &p.GPA,
		&p.Interests, &p.TargetRoles, &p.XP, &p.Actions, &p.Roadmap, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Interests == nil {
		p.Interests = StringArray{}
	}
	if p.TargetRoles == nil {
		p.TargetRoles = StringArray{}
	}
	if p.Actions == nil {
		p.Actions = ActionSet{}
	}
	return &p, nil
}

// GetProfile retrieves the profile for a user. Returns nil when the
// user has no profile yet.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// EnsureProfile creates an empty profile for the user if none exists
// and returns it.
func (db *DB) EnsureProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, interests, target_roles, actions)
		 VALUES ($1, '[]', '[]', '{}')
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	return db.GetProfile(ctx, userID)
}

// ProfileUpdate holds optional field changes for UpdateProfile. Nil
// pointers leave the column untouched.
type ProfileUpdate struct {
	Bio            *string
	Location       *string
	Phone          *string
	LinkedInURL    *string
	GitHubURL      *string
	PortfolioURL   *string
	Major          *string
	University     *string
	GraduationYear *int
	GPA            *float64
	Interests      []string
	TargetRoles    []string
}

// UpdateProfile applies the non-nil fields to the user's profile and
// returns the updated row.
func (db *DB) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*Profile, error) {
	query := `UPDATE profiles SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, value)
		argNum++
	}

	if update.Bio != nil {
		set("bio", *update.Bio)
	}
	if update.Location != nil {
		set("location", *update.Location)
	}
	if update.Phone != nil {
		set("phone", *update.Phone)
	}
	if update.LinkedInURL != nil {
		set("linkedin_url", *update.LinkedInURL)
	}
	if update.GitHubURL != nil {
		set("github_url", *update.GitHubURL)
	}
	if update.PortfolioURL != nil {
		set("portfolio_url", *update.PortfolioURL)
	}
	if update.Major != nil {
		set("major", *update.Major)
	}
	if update.University != nil {
		set("university", *update.University)
	}
	if update.GraduationYear != nil {
		set("graduation_year", *update.GraduationYear)
	}
	if update.GPA != nil {
		set("gpa", *update.GPA)
	}
	if update.Interests != nil {
		set("interests", StringArray(update.Interests))
	}
	if update.TargetRoles != nil {
		set("target_roles", StringArray(update.TargetRoles))
	}

	query += fmt.Sprintf(" WHERE user_id = $%d RETURNING ", argNum) + profileColumns
	args = append(args, userID)

	profile, err := scanProfile(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// AwardXP adds XP for an action and marks the action done. Returns the
// new XP total.
func (db *DB) AwardXP(ctx context.Context, userID uuid.UUID, action string, amount int) (int, error) {
	var xp int
	err := db.pool.QueryRow(ctx,
		`UPDATE profiles
		 SET xp = xp + $1,
		     actions = actions || jsonb_build_object($2::text, true),
		     updated_at = NOW()
		 WHERE user_id = $3
		 RETURNING xp`,
		amount, action, userID,
	).Scan(&xp)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, fmt.Errorf("profile not found for user: %s", userID)
		}
		return 0, fmt.Errorf("failed to award xp: %w", err)
	}
	return xp, nil
}

// SaveRoadmap stores the generated roadmap JSON on the profile.
func (db *DB) SaveRoadmap(ctx context.Context, userID uuid.UUID, roadmap any) error {
	data, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET roadmap = $1, updated_at = NOW() WHERE user_id = $2`,
		data, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to save roadmap: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found for user: %s", userID)
	}
	return nil
}
