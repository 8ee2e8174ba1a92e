package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary avoids short words to prevent partial collisions ("he" inside "The").
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"idiot", "scam", "refund"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "No refund for late checkout",
			expected: "No ****** for late checkout",
			words:    []string{"refund"},
		},
		{
			name:     "Multiple occurrences",
			input:    "scam scam",
			expected: "**** ****",
			words:    []string{"scam", "scam"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Call it a $.c.4.m today",
			expected: "Call it a ******* today",
			words:    []string{"scam"},
		},
		{
			name:     "Accents are kept outside of matches",
			input:    "Un séjour sans refund",
			expected: "Un séjour sans ******",
			words:    []string{"refund"},
		},
		{
			name:     "Nothing to censor",
			input:    "Breakfast is served at 7",
			expected: "Breakfast is served at 7",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given noise-only entries next to a real word
	mod, err := NewModerator([]string{"...", ",,,", "", "refund"}, replacementChar, log)
	req.NoError(err)

	content, words := mod.Censor("The refund is pending")
	req.Equal("The ****** is pending", content)
	req.Equal([]string{"refund"}, words)

	// Then real noise is left untouched
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_EmptyDictionary(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	content, words := mod.Censor("Anything goes")
	req.Equal("Anything goes", content)
	req.Nil(words)
}
