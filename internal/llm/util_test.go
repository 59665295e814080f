package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"goal\": \"Data Scientist\"}\n```",
			expected: `{"goal": "Data Scientist"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"goal\": \"Data Scientist\"}\n```",
			expected: `{"goal": "Data Scientist"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"goal\": \"Data Scientist\"}\n```",
			expected: `{"goal": "Data Scientist"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"goal": "Data Scientist"}`,
			expected: `{"goal": "Data Scientist"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_SurroundingText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "Here is your learning plan:\n{\"phase\": \"Foundations\"}",
			expected: `{"phase": "Foundations"}`,
		},
		{
			name:     "conversational preamble",
			input:    "Based on your goal and time commitment, I've structured the roadmap. Here's the output:\n\n{\"phase\": \"Foundations\", \"weeks\": 6}",
			expected: `{"phase": "Foundations", "weeks": 6}`,
		},
		{
			name:     "preamble with multiple sentences",
			input:    "I reviewed your profile. Your fundamentals look solid. Here is the result: {\"skills\": [\"sql\"]}",
			expected: `{"skills": ["sql"]}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Recommended milestones:\n[\"first model\", \"first deployment\"]",
			expected: `["first model", "first deployment"]`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"phase\": \"Foundations\"}\n\nGood luck with your studies!",
			expected: `{"phase": "Foundations"}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"roadmap\": {\"phase\": \"Foundations\"}}",
			expected: `{"roadmap": {"phase": "Foundations"}}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"pitch\": \"They call it \\\"the hard way\\\"\"}",
			expected: `{"pitch": "They call it \"the hard way\""}`,
		},
		{
			name:     "deeply nested",
			input:    "Here: {\"a\": {\"b\": {\"c\": {\"d\": \"deep\"}}}}",
			expected: `{"a": {"b": {"c": {"d": "deep"}}}}`,
		},
		{
			name:     "no JSON at all",
			input:    "I could not produce a plan for that goal.",
			expected: "I could not produce a plan for that goal.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"goal": "Data Scientist"}`,
			expected: `{"goal": "Data Scientist"}`,
		},
		{
			name:     "nested objects",
			input:    `{"roadmap": {"phase": "Foundations"}}`,
			expected: `{"roadmap": {"phase": "Foundations"}}`,
		},
		{
			name:     "object with array",
			input:    `{"weeks": [1, 2, 3]}`,
			expected: `{"weeks": [1, 2, 3]}`,
		},
		{
			name:     "object with trailing text",
			input:    `{"goal": "Data Scientist"} and some more text`,
			expected: `{"goal": "Data Scientist"}`,
		},
		{
			name:     "string with braces inside",
			input:    `{"template": "Hello {name}!"}`,
			expected: `{"template": "Hello {name}!"}`,
		},
		{
			name:     "unbalanced object",
			input:    `{"goal": "Data Sci`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONObject(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["python", "sql", "statistics"]`,
			expected: `["python", "sql", "statistics"]`,
		},
		{
			name:     "nested arrays",
			input:    `[[1, 2], [3, 4]]`,
			expected: `[[1, 2], [3, 4]]`,
		},
		{
			name:     "array of objects",
			input:    `[{"week": 1}, {"week": 2}]`,
			expected: `[{"week": 1}, {"week": 2}]`,
		},
		{
			name:     "array with trailing text",
			input:    `[1, 2, 3] extra stuff`,
			expected: `[1, 2, 3]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with bracket",
			input:    "not array",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONArray(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONArray() = %q, want %q", result, tt.expected)
			}
		})
	}
}
