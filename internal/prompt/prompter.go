// Package prompt asks the user the questions a commit is built from.
package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned by every question once the user aborts. Callers
// must stop asking and unwind.
var ErrCancelled = errors.New("operation cancelled")

// Option is one choice of a Select or MultiSelect question.
type Option struct {
	Label string
	Value string
}

// Question is a free-text question.
type Question struct {
	Title       string
	Description string
	Validate    func(string) error
}

// Prompter renders questions and returns typed answers. Implementations
// return ErrCancelled when the user aborts.
type Prompter interface {
	Select(ctx context.Context, title string, options []Option, initial string) (string, error)
	MultiSelect(ctx context.Context, title, description string, options []Option) ([]string, error)
	Input(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, title string, initial bool) (bool, error)
}
