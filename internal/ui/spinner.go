package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// RunWithSpinner calls fn while a spinner labelled message animates on out.
// Nothing is drawn when out is nil or not a terminal.
func RunWithSpinner(out *os.File, message string, fn func() bool) bool {
	if !isTerminal(out) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(out),
		spinner.WithHiddenCursor(true),
		spinner.WithSuffix(" "+message),
	)
	s.Start()
	defer s.Stop()
	return fn()
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
