package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasai/atlas-backend/internal/llm"
)

// stubLLM returns a canned JSON response or an error.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GetModel(tier llm.ModelTier) string { return "stub" }
func (s *stubLLM) Close() error                       { return nil }

func TestGenerate_StaticBeginnerStructure(t *testing.T) {
	g := NewGenerator(nil, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Data Scientist"})

	assert.Equal(t, "beginner", r.CurrentLevel)
	assert.Equal(t, "moderate", r.TimeCommitment)
	assert.Equal(t, "data_science", r.Metadata.Domain)
	assert.Equal(t, 16, r.TotalDurationWeeks)
	require.Len(t, r.Phases, 3)
	assert.Equal(t, "Foundation & Basics", r.Phases[0].Title)
	assert.NotEmpty(t, r.EstimatedCompletion)
}

func TestGenerate_WeeksDistributedAcrossPhases(t *testing.T) {
	g := NewGenerator(nil, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Data Scientist"})

	sum := 0
	for i, phase := range r.Phases {
		assert.Equal(t, i+1, phase.PhaseNumber)
		sum += phase.DurationWeeks
	}
	assert.Equal(t, r.TotalDurationWeeks, sum)
}

func TestGenerate_CommitmentScalesTimeline(t *testing.T) {
	g := NewGenerator(nil, nil)

	light := g.Generate(context.Background(), Request{CareerGoal: "Web Developer", TimeCommitment: "light"})
	moderate := g.Generate(context.Background(), Request{CareerGoal: "Web Developer"})
	intensive := g.Generate(context.Background(), Request{CareerGoal: "Web Developer", TimeCommitment: "intensive"})

	assert.Equal(t, 12, moderate.TotalDurationWeeks)
	assert.Equal(t, 18, light.TotalDurationWeeks)
	assert.Equal(t, 8, intensive.TotalDurationWeeks)
}

func TestGenerate_AdvancedLevelUsesShorterStructure(t *testing.T) {
	g := NewGenerator(nil, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Cloud Engineer", CurrentLevel: "advanced"})

	assert.Equal(t, "cloud", r.Metadata.Domain)
	assert.Equal(t, 6, r.TotalDurationWeeks)
	require.Len(t, r.Phases, 2)
	assert.Equal(t, "Skill Enhancement", r.Phases[0].Title)
}

func TestGenerate_UnknownGoalFallsBackToDefaultDomain(t *testing.T) {
	g := NewGenerator(nil, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Astronaut"})

	assert.Equal(t, "default", r.Metadata.Domain)
	assert.Equal(t, 12, r.TotalDurationWeeks)
}

func TestGenerate_MilestonesAlternateLearnAndPractice(t *testing.T) {
	g := NewGenerator(nil, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Software Engineer"})

	require.NotEmpty(t, r.Phases)
	milestones := r.Phases[0].Milestones
	require.NotEmpty(t, milestones)
	assert.Equal(t, "Learn", milestones[0].Type)
	if len(milestones) > 1 {
		assert.Equal(t, "Practice", milestones[1].Type)
	}
	for _, m := range milestones {
		assert.LessOrEqual(t, m.Week, r.Phases[0].DurationWeeks)
		assert.False(t, m.Completed)
	}
}

func TestGenerate_ResourcesRespectBudget(t *testing.T) {
	g := NewGenerator(nil, nil)

	free := g.Generate(context.Background(), Request{CareerGoal: "UI UX Designer"})
	for _, res := range free.Phases[0].Resources {
		assert.Equal(t, "Free", res.Cost)
	}

	paid := g.Generate(context.Background(), Request{CareerGoal: "UI UX Designer", Budget: "paid"})
	hasPaid := false
	for _, res := range paid.Phases[0].Resources {
		if res.Cost == "Paid" {
			hasPaid = true
		}
	}
	assert.True(t, hasPaid, "paid budget should add premium resources")
}

func TestGenerate_LLMStructureUsedWhenValid(t *testing.T) {
	stub := &stubLLM{response: `{"phases":[
		{"title":"Python Basics","skills":["Python"],"outcomes":["Write scripts"],"prerequisites":[]},
		{"title":"ML Fundamentals","skills":["scikit-learn","pandas"],"outcomes":["Train models"],"prerequisites":["Python Basics"]}
	]}`}
	g := NewGenerator(stub, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "ML Engineer"})

	require.Len(t, r.Phases, 2)
	assert.Equal(t, "Python Basics", r.Phases[0].Title)
	assert.Equal(t, "ML Fundamentals", r.Phases[1].Title)
	assert.Equal(t, 20, r.TotalDurationWeeks)
}

func TestGenerate_LLMFailureFallsBackToStatic(t *testing.T) {
	stub := &stubLLM{err: errors.New("quota exceeded")}
	g := NewGenerator(stub, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Game Developer"})

	require.Len(t, r.Phases, 3)
	assert.Equal(t, "Foundation & Basics", r.Phases[0].Title)
}

func TestGenerate_LLMGarbageFallsBackToStatic(t *testing.T) {
	stub := &stubLLM{response: "not json at all"}
	g := NewGenerator(stub, nil)
	r := g.Generate(context.Background(), Request{CareerGoal: "Game Developer"})

	require.Len(t, r.Phases, 3)
}

func TestComputeProgress(t *testing.T) {
	r := Roadmap{Phases: []Phase{
		{PhaseNumber: 1, Milestones: []Milestone{{Completed: true}, {Completed: true}}},
		{PhaseNumber: 2, Milestones: []Milestone{{Completed: true}, {Completed: false}}},
	}}

	p := ComputeProgress(r)
	assert.Equal(t, 4, p.TotalMilestones)
	assert.Equal(t, 3, p.CompletedMilestones)
	assert.Equal(t, 75.0, p.ProgressPercent)
	assert.Equal(t, 1, p.PhasesCompleted)
	assert.Equal(t, 2, p.CurrentPhase)
}

func TestComputeProgress_Empty(t *testing.T) {
	p := ComputeProgress(Roadmap{})
	assert.Equal(t, 0, p.TotalMilestones)
	assert.Equal(t, 0.0, p.ProgressPercent)
	assert.Equal(t, 0, p.CurrentPhase)
}
