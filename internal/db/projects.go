package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateProject inserts a portfolio project and returns the full row.
func (db *DB) CreateProject(ctx context.Context, userID uuid.UUID, title, description, githubURL, liveURL string, techStack []string, featured bool) (*Project, error) {
	var p Project
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (user_id, title, description, github_url, live_url, tech_stack, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, title, COALESCE(description, ''), COALESCE(github_url, ''), COALESCE(live_url, ''), tech_stack, is_featured, created_at`,
		userID, title, description, githubURL, liveURL, StringArray(techStack), featured,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.GitHubURL, &p.LiveURL, &p.TechStack, &p.IsFeatured, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if p.TechStack == nil {
		p.TechStack = StringArray{}
	}
	return &p, nil
}

// ListProjects retrieves a user's projects, newest first.
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), COALESCE(github_url, ''), COALESCE(live_url, ''), tech_stack, is_featured, created_at
		 FROM projects WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.GitHubURL, &p.LiveURL, &p.TechStack, &p.IsFeatured, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if p.TechStack == nil {
			p.TechStack = StringArray{}
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// DeleteProject removes a project owned by the user.
func (db *DB) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}
