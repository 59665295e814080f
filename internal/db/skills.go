package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// EnsureSkill inserts the skill if new and returns its ID either way.
func (db *DB) EnsureSkill(ctx context.Context, name, category string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name, category,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to ensure skill %s: %w", name, err)
	}
	return id, nil
}

// AddUserSkill links a skill to a user. Re-adding an existing link
// updates proficiency and source.
func (db *DB) AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, proficiency float64, source string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id, proficiency, source)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET proficiency = $3, source = $4`,
		userID, skillID, proficiency, source,
	)
	if err != nil {
		return fmt.Errorf("failed to add user skill: %w", err)
	}
	return nil
}

// ListUserSkills retrieves all skills attached to a user.
func (db *DB) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.name, COALESCE(s.category, ''), us.proficiency, us.source
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}
	defer rows.Close()

	var skills []UserSkill
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.Name, &us.Category, &us.Proficiency, &us.Source); err != nil {
			return nil, fmt.Errorf("failed to scan user skill: %w", err)
		}
		skills = append(skills, us)
	}
	return skills, nil
}

// RemoveUserSkill unlinks a skill from a user.
func (db *DB) RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove user skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not linked to user: %s", skillID)
	}
	return nil
}
