// Package roadmap generates personalized learning roadmaps with phases,
// milestones, resources, and timelines. Phase structure can come from an
// LLM when a client is configured; a static structure is used otherwise,
// so generation never fails outright.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/llm"
)

// Learning time in weeks per domain, keyed by starting level.
var learningWeeks = map[string]map[string]int{
	"beginner": {
		"programming": 12, "data_science": 16, "design": 8, "marketing": 6,
		"business": 8, "cloud": 10, "devops": 14, "ai_ml": 20, "web_dev": 12,
		"mobile_dev": 14, "cybersecurity": 16, "blockchain": 18, "game_dev": 16,
		"default": 12,
	},
	"intermediate": {
		"programming": 8, "data_science": 12, "design": 6, "marketing": 4,
		"business": 6, "cloud": 8, "devops": 10, "ai_ml": 16, "web_dev": 8,
		"mobile_dev": 10, "cybersecurity": 12, "blockchain": 14, "game_dev": 12,
		"default": 8,
	},
	"advanced": {
		"programming": 6, "data_science": 8, "design": 4, "marketing": 3,
		"business": 4, "cloud": 6, "devops": 8, "ai_ml": 12, "web_dev": 6,
		"mobile_dev": 8, "cybersecurity": 10, "blockchain": 12, "game_dev": 10,
		"default": 6,
	},
}

var careerDomains = map[string]string{
	"software_engineer": "programming",
	"data_scientist":    "data_science",
	"data_analyst":      "data_science",
	"ui_ux_designer":    "design",
	"product_manager":   "business",
	"digital_marketer":  "marketing",
	"cloud_engineer":    "cloud",
	"devops_engineer":   "devops",
	"ml_engineer":       "ai_ml",
	"web_developer":     "web_dev",
	"mobile_developer":  "mobile_dev",
	"cybersecurity":     "cybersecurity",
	"blockchain_dev":    "blockchain",
	"game_developer":    "game_dev",
}

var youtubeChannels = map[string][]string{
	"programming":   {"freeCodeCamp", "Traversy Media", "Programming with Mosh", "The Net Ninja"},
	"data_science":  {"StatQuest", "Krish Naik", "Ken Jee", "Data Science Dojo"},
	"design":        {"Flux Academy", "The Futur", "Figma", "AJ&Smart"},
	"marketing":     {"Neil Patel", "HubSpot", "Google Ads", "Think Media"},
	"business":      {"Harvard Business Review", "Simon Sinek", "Gary Vaynerchuk"},
	"cloud":         {"A Cloud Guru", "TechWorld with Nana", "freeCodeCamp AWS"},
	"devops":        {"TechWorld with Nana", "DevOps Toolkit", "KodeKloud"},
	"ai_ml":         {"Sentdex", "Two Minute Papers", "3Blue1Brown", "Yannic Kilcher"},
	"web_dev":       {"Traversy Media", "Web Dev Simplified", "Fireship", "Kevin Powell"},
	"mobile_dev":    {"Philipp Lackner", "Coding with Mitch", "Code with Chris"},
	"cybersecurity": {"NetworkChuck", "John Hammond", "The Cyber Mentor"},
	"blockchain":    {"Dapp University", "EatTheBlocks", "Smart Contract Programmer"},
	"game_dev":      {"Brackeys", "GameMaker", "Sebastian Lague", "Code Monkey"},
	"default":       {"freeCodeCamp", "Traversy Media", "Fireship", "Programming with Mosh"},
}

// Request describes what kind of roadmap to generate.
type Request struct {
	CareerGoal     string `json:"career_goal" validate:"required,min=2"`
	CurrentLevel   string `json:"current_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	TimeCommitment string `json:"time_commitment,omitempty" validate:"omitempty,oneof=light moderate intensive"`
	LearningStyle  string `json:"learning_style,omitempty"`
	Budget         string `json:"budget,omitempty"`
}

// Milestone is a single checkpoint within a phase.
type Milestone struct {
	Week        int    `json:"week"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Resource is a learning material suggestion within a phase.
type Resource struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Cost     string `json:"cost"`
	Priority string `json:"priority"`
}

// Phase is one stage of the roadmap.
type Phase struct {
	PhaseNumber   int         `json:"phase_number"`
	Title         string      `json:"title"`
	DurationWeeks int         `json:"duration_weeks"`
	Skills        []string    `json:"skills"`
	Outcomes      []string    `json:"outcomes"`
	Prerequisites []string    `json:"prerequisites"`
	Milestones    []Milestone `json:"milestones"`
	Resources     []Resource  `json:"resources"`
}

// Metadata carries generation details for the client.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Domain      string    `json:"domain"`
	TotalPhases int       `json:"total_phases"`
	TotalSkills int       `json:"total_skills"`
}

// Roadmap is the complete generated learning path.
type Roadmap struct {
	CareerGoal          string   `json:"career_goal"`
	CurrentLevel        string   `json:"current_level"`
	TimeCommitment      string   `json:"time_commitment"`
	TotalDurationWeeks  int      `json:"total_duration_weeks"`
	EstimatedCompletion string   `json:"estimated_completion"`
	Phases              []Phase  `json:"phases"`
	Metadata            Metadata `json:"metadata"`
}

// structure is the phase skeleton, either LLM-produced or static.
type structure struct {
	Phases []structurePhase `json:"phases"`
}

type structurePhase struct {
	Title         string   `json:"title"`
	DurationWeeks int      `json:"duration_weeks"`
	Skills        []string `json:"skills"`
	Outcomes      []string `json:"outcomes"`
	Prerequisites []string `json:"prerequisites"`
}

// Generator builds roadmaps. The LLM client is optional.
type Generator struct {
	llm    llm.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator. Pass a nil client to always use the
// static phase structure.
func NewGenerator(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{llm: client, logger: logger, now: time.Now}
}

// Generate produces a complete roadmap for the request. Level defaults
// to beginner and commitment to moderate when omitted.
func (g *Generator) Generate(ctx context.Context, req Request) Roadmap {
	level := req.CurrentLevel
	if level == "" {
		level = "beginner"
	}
	commitment := req.TimeCommitment
	if commitment == "" {
		commitment = "moderate"
	}
	style := req.LearningStyle
	if style == "" {
		style = "mixed"
	}
	budget := req.Budget
	if budget == "" {
		budget = "free"
	}

	domain := domainFor(req.CareerGoal)
	totalWeeks := timelineWeeks(domain, level, commitment)

	skeleton := g.structureFor(ctx, req.CareerGoal, level, style)
	phases := buildPhases(skeleton, totalWeeks)
	for i := range phases {
		phases[i].Resources = buildResources(phases[i].Title, phases[i].Skills, style, budget, domain)
	}

	totalSkills := 0
	for _, p := range phases {
		totalSkills += len(p.Skills)
	}

	return Roadmap{
		CareerGoal:          req.CareerGoal,
		CurrentLevel:        level,
		TimeCommitment:      commitment,
		TotalDurationWeeks:  totalWeeks,
		EstimatedCompletion: g.now().AddDate(0, 0, totalWeeks*7).Format("January 2006"),
		Phases:              phases,
		Metadata: Metadata{
			GeneratedAt: g.now().UTC(),
			Domain:      domain,
			TotalPhases: len(phases),
			TotalSkills: totalSkills,
		},
	}
}

// structureFor asks the LLM for a phase skeleton and falls back to the
// static one on any failure.
func (g *Generator) structureFor(ctx context.Context, careerGoal, level, style string) structure {
	if g.llm == nil {
		return staticStructure(level)
	}

	prompt := fmt.Sprintf(`Generate a learning roadmap structure for someone who wants to become a %s.

Current Level: %s
Learning Preferences: %s

Create a structured learning path with 4-6 phases. Each phase should have:
1. A descriptive title
2. Core skills to learn in that phase
3. Key outcomes/competencies
4. Prerequisites (if any)

Return ONLY a JSON object with this structure:
{
  "phases": [
    {
      "title": "Foundation Phase",
      "duration_weeks": 4,
      "skills": ["skill1", "skill2"],
      "outcomes": ["outcome1", "outcome2"],
      "prerequisites": []
    }
  ]
}`, careerGoal, level, style)

	raw, err := g.llm.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		g.logger.Warn("roadmap structure generation failed, using static structure", zap.Error(err))
		return staticStructure(level)
	}

	var s structure
	if err := json.Unmarshal([]byte(raw), &s); err != nil || len(s.Phases) == 0 {
		g.logger.Warn("roadmap structure response unusable, using static structure", zap.Error(err))
		return staticStructure(level)
	}
	return s
}

func staticStructure(level string) structure {
	if level == "beginner" {
		return structure{Phases: []structurePhase{
			{
				Title:         "Foundation & Basics",
				DurationWeeks: 4,
				Skills:        []string{"Core concepts", "Basic tools", "Development environment"},
				Outcomes:      []string{"Understand fundamentals", "Setup workspace"},
				Prerequisites: []string{},
			},
			{
				Title:         "Intermediate Skills",
				DurationWeeks: 6,
				Skills:        []string{"Advanced concepts", "Best practices", "Real projects"},
				Outcomes:      []string{"Build projects", "Write clean code"},
				Prerequisites: []string{"Foundation & Basics"},
			},
			{
				Title:         "Advanced & Specialization",
				DurationWeeks: 8,
				Skills:        []string{"Specialization", "System design", "Portfolio"},
				Outcomes:      []string{"Expert-level skills", "Job-ready portfolio"},
				Prerequisites: []string{"Intermediate Skills"},
			},
		}}
	}
	return structure{Phases: []structurePhase{
		{
			Title:         "Skill Enhancement",
			DurationWeeks: 6,
			Skills:        []string{"Advanced techniques", "Industry tools"},
			Outcomes:      []string{"Professional proficiency"},
			Prerequisites: []string{},
		},
		{
			Title:         "Specialization",
			DurationWeeks: 8,
			Skills:        []string{"Domain expertise", "Advanced projects"},
			Outcomes:      []string{"Expert status", "Portfolio"},
			Prerequisites: []string{"Skill Enhancement"},
		},
	}}
}

// domainFor maps a career goal to a domain category.
func domainFor(careerGoal string) string {
	career := strings.ReplaceAll(strings.ToLower(careerGoal), " ", "_")

	if domain, ok := careerDomains[career]; ok {
		return domain
	}
	for key, domain := range careerDomains {
		if strings.Contains(career, key) || strings.Contains(key, career) {
			return domain
		}
	}

	switch {
	case containsAny(career, "data", "analyst", "scientist", "ml", "machine"):
		return "data_science"
	case containsAny(career, "web", "frontend", "backend", "fullstack"):
		return "web_dev"
	case containsAny(career, "design", "ui", "ux", "graphic"):
		return "design"
	case containsAny(career, "cloud", "aws", "azure", "gcp"):
		return "cloud"
	case containsAny(career, "devops", "sre", "infrastructure"):
		return "devops"
	}
	return "default"
}

// timelineWeeks computes the total learning time. Light commitment
// stretches the timeline, intensive compresses it.
func timelineWeeks(domain, level, commitment string) int {
	base := 12
	if byDomain, ok := learningWeeks[level]; ok {
		if weeks, ok := byDomain[domain]; ok {
			base = weeks
		} else if weeks, ok := byDomain["default"]; ok {
			base = weeks
		}
	}

	switch commitment {
	case "light":
		return int(float64(base) * 1.5)
	case "intensive":
		return int(float64(base) * 0.7)
	default:
		return base
	}
}

// buildPhases distributes the total weeks across the skeleton phases
// and attaches milestones. Leftover weeks go to the earliest phases.
func buildPhases(skeleton structure, totalWeeks int) []Phase {
	n := len(skeleton.Phases)
	if n == 0 {
		return nil
	}

	weeksPerPhase := totalWeeks / n
	remaining := totalWeeks % n

	phases := make([]Phase, 0, n)
	for idx, sp := range skeleton.Phases {
		duration := weeksPerPhase
		if idx < remaining {
			duration++
		}

		title := sp.Title
		if title == "" {
			title = fmt.Sprintf("Phase %d", idx+1)
		}

		skills := sp.Skills
		if skills == nil {
			skills = []string{}
		}
		outcomes := sp.Outcomes
		if outcomes == nil {
			outcomes = []string{}
		}
		prereqs := sp.Prerequisites
		if prereqs == nil {
			prereqs = []string{}
		}

		phases = append(phases, Phase{
			PhaseNumber:   idx + 1,
			Title:         title,
			DurationWeeks: duration,
			Skills:        skills,
			Outcomes:      outcomes,
			Prerequisites: prereqs,
			Milestones:    buildMilestones(skills, duration),
			Resources:     []Resource{},
		})
	}
	return phases
}

// buildMilestones alternates Learn and Practice checkpoints across the
// phase, denser for longer phases.
func buildMilestones(skills []string, weeks int) []Milestone {
	if len(skills) == 0 {
		return []Milestone{}
	}

	var count int
	switch {
	case weeks <= 2:
		count = len(skills)
	case weeks <= 6:
		count = min(len(skills)*2, 8)
	default:
		count = min(len(skills)*3, 12)
	}
	count = min(count, len(skills)*2)

	weeksPer := float64(weeks) / float64(max(count, 1))

	milestones := make([]Milestone, 0, count)
	for i := 0; i < count; i++ {
		skill := skills[(i/2)%len(skills)]
		week := min(int(float64(i+1)*weeksPer), weeks)

		kind, description := "Learn", fmt.Sprintf("Complete learning materials for %s", skill)
		if i%2 == 1 {
			kind, description = "Practice", fmt.Sprintf("Build project demonstrating %s", skill)
		}

		milestones = append(milestones, Milestone{
			Week:        week,
			Type:        kind,
			Title:       fmt.Sprintf("%s: %s", kind, skill),
			Description: description,
		})
	}
	return milestones
}

func buildResources(phaseTitle string, skills []string, style, budget, domain string) []Resource {
	firstSkill := "Core Topics"
	if len(skills) > 0 {
		firstSkill = skills[0]
	}

	resources := []Resource{
		{
			Type:     "Documentation",
			Title:    fmt.Sprintf("Official Documentation - %s", firstSkill),
			Platform: "Official Docs",
			URL:      "#",
			Cost:     "Free",
			Priority: "High",
		},
		{
			Type:     "Practice",
			Title:    "Hands-on Exercises & Challenges",
			Platform: "GitHub",
			URL:      "#",
			Cost:     "Free",
			Priority: "High",
		},
	}

	if style == "visual" || style == "mixed" {
		resources = append(resources, Resource{
			Type:     "Video Tutorial",
			Title:    fmt.Sprintf("%s - Free YouTube Playlist", phaseTitle),
			Platform: "YouTube",
			URL:      "#",
			Cost:     "Free",
			Priority: "High",
		})
		if budget == "paid" {
			resources = append(resources, Resource{
				Type:     "Premium Course",
				Title:    fmt.Sprintf("%s - Complete Certification", phaseTitle),
				Platform: "Coursera",
				URL:      "#",
				Cost:     "Paid",
				Priority: "Medium",
			})
		}
	}

	if containsAny(strings.ToLower(phaseTitle), "coding", "programming", "development") {
		practicePlatform := "Exercism"
		if budget == "paid" {
			practicePlatform = "LeetCode"
		}
		resources = append(resources, Resource{
			Type:     "Interactive Practice",
			Title:    "Coding Challenges & Projects",
			Platform: practicePlatform,
			URL:      "#",
			Cost:     "Free",
			Priority: "High",
		})
	}

	if style == "reading" || style == "mixed" {
		if budget == "paid" {
			resources = append(resources, Resource{
				Type:     "Book",
				Title:    fmt.Sprintf("Mastering %s", firstSkill),
				Platform: "O'Reilly",
				URL:      "#",
				Cost:     "Paid",
				Priority: "Medium",
			})
		}
	}

	resources = append(resources, Resource{
		Type:     "Community",
		Title:    "Discussion Forum & Support",
		Platform: "Reddit",
		URL:      "#",
		Cost:     "Free",
		Priority: "Low",
	})

	channels := youtubeChannels[domain]
	if channels == nil {
		channels = youtubeChannels["default"]
	}
	if len(channels) > 3 {
		channels = channels[:3]
	}
	resources = append(resources, Resource{
		Type:     "YouTube Channels",
		Title:    fmt.Sprintf("Recommended: %s", strings.Join(channels, ", ")),
		Platform: "YouTube",
		URL:      "#",
		Cost:     "Free",
		Priority: "High",
	})

	return resources
}

// Progress summarizes milestone completion across a roadmap.
type Progress struct {
	TotalMilestones     int     `json:"total_milestones"`
	CompletedMilestones int     `json:"completed_milestones"`
	ProgressPercent     float64 `json:"progress_percent"`
	PhasesCompleted     int     `json:"phases_completed"`
	CurrentPhase        int     `json:"current_phase"`
}

// ComputeProgress tallies completed milestones. The current phase is
// the first with unfinished milestones, or the last phase when done.
func ComputeProgress(r Roadmap) Progress {
	total, completed := 0, 0
	phasesDone := 0
	currentPhase := len(r.Phases)
	currentSet := false

	for _, phase := range r.Phases {
		allDone := true
		for _, m := range phase.Milestones {
			total++
			if m.Completed {
				completed++
			} else {
				allDone = false
			}
		}
		if allDone && len(phase.Milestones) > 0 {
			phasesDone++
		} else if !currentSet {
			currentPhase = phase.PhaseNumber
			currentSet = true
		}
	}

	percent := 0.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
		percent = float64(int(percent*10+0.5)) / 10
	}

	return Progress{
		TotalMilestones:     total,
		CompletedMilestones: completed,
		ProgressPercent:     percent,
		PhasesCompleted:     phasesDone,
		CurrentPhase:        currentPhase,
	}
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
