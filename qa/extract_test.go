package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuestion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "simple question",
			input:    "What is the capital of X?",
			expected: "What is the capital of X?",
			ok:       true,
		},
		{
			name:     "question inside noisy OCR text",
			input:    "EVENT QUIZ\n Which hero is best? answer below 12:34",
			expected: "Which hero is best?",
			ok:       true,
		},
		{
			name:     "leftmost question wins",
			input:    "Who founded Rome? And when did it fall?",
			expected: "Who founded Rome?",
			ok:       true,
		},
		{
			name:  "no interrogative keyword",
			input: "the quick brown fox?",
			ok:    false,
		},
		{
			name:  "keyword but no question mark",
			input: "what a lovely day",
			ok:    false,
		},
		{
			name:     "keyword is case-insensitive",
			input:    "WHICH commander leads cavalry?",
			expected: "WHICH commander leads cavalry?",
			ok:       true,
		},
		{
			name:  "empty text",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractQuestion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
