package originstory

import (
	"strconv"
	"strings"
)

// UserResponse is the raw intake payload for one recommendation request.
// Budget and LocationPref are accepted but not consumed by scoring;
// they are reserved for future constraint filtering.
type UserResponse struct {
	AntiChoices         []string       `json:"anti_choices"`
	PsychometricAnswers map[string]int `json:"psychometric_answers"`
	StrongSubjects      []string       `json:"strong_subjects"`
	Interests           []string       `json:"interests"`
	Budget              string         `json:"budget,omitempty"`
	LocationPref        string         `json:"location_pref,omitempty"`
}

// TagProfile is the flattened signal set extracted from a UserResponse.
type TagProfile struct {
	Tags       []string       `json:"tags"`
	AntiTags   []string       `json:"anti_tags"`
	Archetypes map[string]int `json:"archetypes"`
}

// ExtractTags converts a raw response into deduplicated positive and
// negative tag sets. It is total: unknown question ids, out-of-range
// option indices, and unmapped subject/interest strings degrade to
// no-ops or literal fallback tags, never an error.
func ExtractTags(resp *UserResponse) TagProfile {
	var tags, antiTags []string

	for _, acID := range resp.AntiChoices {
		if q := findAntiChoiceQuestion(acID); q != nil {
			antiTags = append(antiTags, q.AntiTags...)
		}
	}

	archetypes := map[string]int{
		ArchetypeBuilder:      0,
		ArchetypeThinker:      0,
		ArchetypeCommunicator: 0,
		ArchetypeCreator:      0,
	}
	for qIDStr, optionIdx := range resp.PsychometricAnswers {
		// Non-numeric keys coerce to 0, which matches no question.
		qID, err := strconv.Atoi(qIDStr)
		if err != nil || qID < 0 {
			qID = 0
		}
		question := findPsychometricQuestion(qID)
		if question == nil || optionIdx < 0 || optionIdx >= len(question.Options) {
			continue
		}
		option := question.Options[optionIdx]
		tags = append(tags, option.Tags...)
		if option.Type == optionTypeAnti {
			antiTags = append(antiTags, option.AntiTags...)
		}
		if _, tracked := archetypes[option.Type]; tracked {
			archetypes[option.Type]++
		}
	}

	for _, subject := range resp.StrongSubjects {
		key := strings.ToLower(subject)
		if mapped, ok := subjectTags[key]; ok {
			tags = append(tags, mapped...)
		} else {
			tags = append(tags, key)
		}
	}

	for _, interest := range resp.Interests {
		key := cleanInterest(interest)
		if mapped, ok := interestTags[key]; ok {
			tags = append(tags, mapped...)
		} else {
			tags = append(tags, key)
		}
	}

	return TagProfile{
		Tags:       dedupe(tags),
		AntiTags:   dedupe(antiTags),
		Archetypes: archetypes,
	}
}

// cleanInterest strips the display prefix and normalizes case, so
// "#Robots" and "robots" resolve identically.
func cleanInterest(interest string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.ToLower(strings.TrimSpace(interest)), "#"))
}

// dedupe removes duplicates preserving first-seen order, keeping
// extraction deterministic for identical inputs.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
