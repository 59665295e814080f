package originstory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags_UnknownEverythingDegradesGracefully(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		AntiChoices:         []string{"nonexistent_id"},
		PsychometricAnswers: map[string]int{"999": 0},
		StrongSubjects:      []string{"klingon"},
		Interests:           []string{"#zzz"},
	})

	// Unknown anti-choice and question ids contribute nothing; unmapped
	// subjects and interests fall back to their cleaned literal.
	assert.Empty(t, profile.AntiTags)
	assert.ElementsMatch(t, []string{"klingon", "zzz"}, profile.Tags)
}

func TestExtractTags_NonNumericQuestionKeyIgnored(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		PsychometricAnswers: map[string]int{"abc": 1, "-3": 0},
	})
	assert.Empty(t, profile.Tags)
	assert.Empty(t, profile.AntiTags)
}

func TestExtractTags_OutOfRangeOptionIgnored(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		PsychometricAnswers: map[string]int{"1": 17, "3": -1},
	})
	assert.Empty(t, profile.Tags)
}

func TestExtractTags_AntiChoices(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		AntiChoices: []string{"ac1", "ac4"},
	})
	assert.ElementsMatch(t,
		[]string{"blood", "blood_phobia", "math", "math_heavy", "hate_math"},
		profile.AntiTags)
	assert.Empty(t, profile.Tags)
}

func TestExtractTags_StressQuestionFeedsAntiTags(t *testing.T) {
	// Question 2 is the stress question: the chosen option's anti-tags
	// land in the anti set, not the positive set.
	profile := ExtractTags(&UserResponse{
		PsychometricAnswers: map[string]int{"2": 3},
	})
	assert.ElementsMatch(t, []string{"blood", "blood_phobia"}, profile.AntiTags)
	assert.Empty(t, profile.Tags)
}

func TestExtractTags_SubjectAndInterestMappings(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		StrongSubjects: []string{"Math", "ART"},
		Interests:      []string{"  #Robots ", "#ai"},
	})

	assert.ElementsMatch(t, []string{
		"math", "logic", "statistics",
		"creativity", "visual_thinking", "aesthetics",
		"technology", "building", "hands_on",
	}, profile.Tags)
}

func TestExtractTags_Deduplicates(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		StrongSubjects: []string{"math", "math"},
		Interests:      []string{"#AI"}, // ai maps onto math + logic again
	})

	counts := map[string]int{}
	for _, tag := range profile.Tags {
		counts[tag]++
	}
	for tag, n := range counts {
		assert.Equal(t, 1, n, "tag %s duplicated", tag)
	}
}

func TestExtractTags_ArchetypeCounters(t *testing.T) {
	profile := ExtractTags(&UserResponse{
		PsychometricAnswers: map[string]int{"1": 0, "3": 1, "4": 2},
	})

	// Only the four archetype labels are tallied; "mission" and
	// "environment" option types are not.
	assert.Equal(t, 1, profile.Archetypes[ArchetypeBuilder])
	assert.Equal(t, 0, profile.Archetypes[ArchetypeThinker])
	assert.Equal(t, 0, profile.Archetypes[ArchetypeCommunicator])
	assert.Equal(t, 0, profile.Archetypes[ArchetypeCreator])
	assert.Len(t, profile.Archetypes, 4)
}
