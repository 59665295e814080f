// Package gamify awards experience points, resolves levels, and tracks
// badges for user engagement.
package gamify

import "math"

// XP awarded per action.
var xpActions = map[string]int{
	"complete_profile":       100,
	"upload_resume":          150,
	"take_career_quiz":       200,
	"run_skill_gap":          150,
	"verify_job":             100,
	"add_project":            120,
	"complete_learning_step": 80,
	"github_import":          200,
	"complete_onboarding":    300,
	"daily_login":            25,
	"chat_with_atlas":        50,
	"mock_interview":         250,
	"translate_experience":   150,
}

// LevelInfo describes the level a user currently sits at.
type LevelInfo struct {
	Level          int     `json:"level"`
	Name           string  `json:"name"`
	MinXP          int     `json:"min_xp"`
	TotalXP        int     `json:"total_xp"`
	ProgressToNext float64 `json:"progress_to_next"`
	XPToNextLevel  int     `json:"xp_to_next_level"`
}

type levelThreshold struct {
	level int
	name  string
	minXP int
}

// Thresholds must stay sorted by minXP ascending.
var levels = []levelThreshold{
	{1, "Explorer", 0},
	{2, "Learner", 200},
	{3, "Builder", 500},
	{4, "Achiever", 1000},
	{5, "Expert", 2000},
	{6, "Master", 3500},
	{7, "Legend", 5000},
}

// Badge is a single achievement with its earned status for a user.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

type badgeDef struct {
	id          string
	name        string
	description string
	icon        string
	condition   string
}

var badges = []badgeDef{
	{"profile_complete", "Profile Pro", "Completed your full profile", "👤", "complete_profile"},
	{"first_quiz", "Quiz Starter", "Took your first career quiz", "🧠", "take_career_quiz"},
	{"skill_scanner", "Skill Scanner", "Ran your first skill gap analysis", "🔍", "run_skill_gap"},
	{"ghost_buster", "Ghost Buster", "Verified a job posting", "👻", "verify_job"},
	{"builder", "Builder", "Added 3 projects to your portfolio", "🏗️", "projects_3"},
	{"github_connected", "Connected", "Imported skills from GitHub", "🔗", "github_import"},
	{"level_5", "Expert Status", "Reached Level 5", "⭐", "reach_level_5"},
	{"interview_ready", "Interview Ready", "Completed a mock interview", "🎤", "mock_interview"},
}

// Summary is the full gamification state returned to the client.
type Summary struct {
	Level        LevelInfo `json:"level"`
	Badges       []Badge   `json:"badges"`
	BadgesEarned int       `json:"badges_earned"`
	BadgesTotal  int       `json:"badges_total"`
	Stats        Stats     `json:"stats"`
}

// Stats are aggregate counters shown alongside the level.
type Stats struct {
	TotalXP          int `json:"total_xp"`
	ActionsCompleted int `json:"actions_completed"`
}

// XPForAction returns the XP reward for an action, zero when unknown.
func XPForAction(action string) int {
	return xpActions[action]
}

// Level resolves the level for a total XP amount. Progress toward the
// next level is rounded to two decimals; the final level reports full
// progress and zero XP remaining.
func Level(totalXP int) LevelInfo {
	idx := 0
	for i, lvl := range levels {
		if totalXP >= lvl.minXP {
			idx = i
		} else {
			break
		}
	}
	current := levels[idx]

	progress := 1.0
	xpToNext := 0
	if idx < len(levels)-1 {
		next := levels[idx+1]
		progress = float64(totalXP-current.minXP) / float64(next.minXP-current.minXP)
		if progress > 1.0 {
			progress = 1.0
		}
		xpToNext = next.minXP - totalXP
		if xpToNext < 0 {
			xpToNext = 0
		}
	}

	return LevelInfo{
		Level:          current.level,
		Name:           current.name,
		MinXP:          current.minXP,
		TotalXP:        totalXP,
		ProgressToNext: math.Round(progress*100) / 100,
		XPToNextLevel:  xpToNext,
	}
}

// EarnedBadges returns only the badges whose condition the user has met.
func EarnedBadges(actions map[string]bool) []Badge {
	var earned []Badge
	for _, def := range badges {
		if actions[def.condition] {
			earned = append(earned, toBadge(def, true))
		}
	}
	return earned
}

// AllBadges returns every badge with its earned flag.
func AllBadges(actions map[string]bool) []Badge {
	all := make([]Badge, 0, len(badges))
	for _, def := range badges {
		all = append(all, toBadge(def, actions[def.condition]))
	}
	return all
}

// Summarize builds the complete gamification view for a user.
func Summarize(totalXP int, actions map[string]bool) Summary {
	all := AllBadges(actions)
	earned := 0
	for _, b := range all {
		if b.Earned {
			earned++
		}
	}
	completed := 0
	for _, done := range actions {
		if done {
			completed++
		}
	}

	return Summary{
		Level:        Level(totalXP),
		Badges:       all,
		BadgesEarned: earned,
		BadgesTotal:  len(badges),
		Stats: Stats{
			TotalXP:          totalXP,
			ActionsCompleted: completed,
		},
	}
}

func toBadge(def badgeDef, earned bool) Badge {
	return Badge{
		ID:          def.id,
		Name:        def.name,
		Description: def.description,
		Icon:        def.icon,
		Earned:      earned,
	}
}
