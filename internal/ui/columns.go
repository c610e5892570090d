package ui

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the width of stdout, or 0 when it is not a terminal.
var TerminalWidth = func() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

const (
	// panelIndent is the width of the "│  " prefix on every panel line.
	panelIndent = 3
	// cellGap is reserved after every fitted cell. The longest cell fills its
	// padded width exactly, so without it neighbouring columns touch.
	cellGap = 2
)

// Columns resolves the grid column count. A positive configured value is used
// as-is; zero fits as many cells of cellWidth, plus a gap, as the terminal
// allows.
func Columns(configured, cellWidth int) int {
	if configured > 0 {
		return configured
	}
	width := TerminalWidth() - panelIndent
	if width <= 0 || cellWidth <= 0 {
		return 1
	}
	return max(1, (width+cellGap)/(cellWidth+cellGap))
}
