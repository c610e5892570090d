package formatter

import (
	"strings"
	"unicode/utf8"

	"github.com/samzong/commitx/internal/git"
)

// FormatFiles lays entries out as a grid of "<status> <path>" cells.
//
// Entries fill each column top to bottom before moving to the next one
// (entry index = col*rows + row). Every cell is padded to the longest path
// plus two characters; the result has no trailing whitespace.
func FormatFiles(entries []git.ChangeEntry, columns int) string {
	if len(entries) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := (len(entries) + columns - 1) / columns
	width := MaxPathLength(entries) + 2

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			index := col*rows + row
			if index >= len(entries) {
				continue
			}
			b.WriteString(padRight(entries[index].Status+" "+entries[index].Path, width))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), " \t\n")
}

// MaxPathLength returns the length in characters of the longest entry path.
func MaxPathLength(entries []git.ChangeEntry) int {
	longest := 0
	for _, entry := range entries {
		longest = max(longest, utf8.RuneCountInString(entry.Path))
	}
	return longest
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
