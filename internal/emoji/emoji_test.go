package emoji

import (
	"testing"

	"github.com/samzong/commitx/internal/commit"
	"github.com/stretchr/testify/assert"
)

func TestEveryCommitTypeHasEmoji(t *testing.T) {
	for _, typ := range commit.Types {
		assert.NotEmpty(t, GetEmojiForType(typ.Name), typ.Name)
	}
	assert.Len(t, emojiMap, len(commit.Types))
}

func TestGetEmojiForType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "feat type", input: "feat", expected: "✨"},
		{name: "fix type", input: "fix", expected: "🐛"},
		{name: "case insensitive", input: "FiX", expected: "🐛"},
		{name: "unknown type", input: "unknown", expected: ""},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetEmojiForType(tt.input))
		})
	}
}

func TestAddEmojiToMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain header",
			input:    "feat: add login",
			expected: "✨ feat: add login",
		},
		{
			name:     "scope and breaking marker",
			input:    "fix(api)!: drop v1\n\nBREAKING CHANGE: v1 removed",
			expected: "🐛 fix(api)!: drop v1\n\nBREAKING CHANGE: v1 removed",
		},
		{
			name:     "already has emoji",
			input:    "✨ feat: add login",
			expected: "✨ feat: add login",
		},
		{
			name:     "unknown type",
			input:    "wip: stuff",
			expected: "wip: stuff",
		},
		{
			name:     "no type",
			input:    "just a message",
			expected: "just a message",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddEmojiToMessage(tt.input))
		})
	}
}
