package emoji

import (
	"regexp"
	"strings"
)

// emojiMap maps commit types to their corresponding emojis
var emojiMap = map[string]string{
	"feat":     "✨",  // sparkles - new feature
	"fix":      "🐛",  // bug - bug fix
	"docs":     "📝",  // memo - documentation
	"style":    "💄",  // lipstick - code style
	"refactor": "♻️", // recycle - refactoring
	"perf":     "⚡",  // zap - performance
	"test":     "✅",  // white_check_mark - tests
	"chore":    "🔧",  // wrench - maintenance
	"build":    "🏗️", // building construction - build system
	"ci":       "🤖",  // robot - continuous integration
	"revert":   "🔙",  // back - revert a commit
}

// Matches "type:", "type(scope):", "type!:" and "type(scope)!:".
var commitTypeRegex = regexp.MustCompile(`^([a-zA-Z]+)(?:\([^)]+\))?!?:`)

// GetEmojiForType returns the emoji for a given commit type.
// Returns empty string if type is not recognized.
func GetEmojiForType(commitType string) string {
	if emoji, ok := emojiMap[strings.ToLower(commitType)]; ok {
		return emoji
	}
	return ""
}

// AddEmojiToMessage prefixes the header of a commit message with the emoji of
// its type. Messages that already start with an emoji, or whose type is not
// recognized, are returned unchanged. Only the first line is inspected.
func AddEmojiToMessage(message string) string {
	if message == "" {
		return message
	}

	firstRune := []rune(message)[0]
	if isEmoji(firstRune) {
		return message
	}

	commitType := extractCommitType(message)
	if commitType == "" {
		return message
	}

	emoji := GetEmojiForType(commitType)
	if emoji == "" {
		return message
	}

	return emoji + " " + message
}

func extractCommitType(message string) string {
	matches := commitTypeRegex.FindStringSubmatch(message)
	if len(matches) >= 2 {
		return strings.ToLower(matches[1])
	}
	return ""
}

// isEmoji checks if a rune is likely an emoji character.
func isEmoji(r rune) bool {
	return (r >= 0x1F000 && r <= 0x1F9FF) ||
		(r >= 0x2600 && r <= 0x26FF) ||
		(r >= 0x2700 && r <= 0x27BF) ||
		(r >= 0xFE00 && r <= 0xFE0F) ||
		(r == 0x200D) ||
		(r >= 0x203C && r <= 0x3299)
}
