package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// HuhPrompter renders questions with charmbracelet/huh.
type HuhPrompter struct {
	In         io.Reader
	Output     io.Writer
	Accessible bool
}

// NewHuhPrompter returns a prompter on the process terminal. Accessible mode
// (plain line prompts) is used when stdin is not a terminal.
func NewHuhPrompter() *HuhPrompter {
	fd := os.Stdin.Fd()
	return &HuhPrompter{
		Accessible: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
	}
}

func (p *HuhPrompter) Select(ctx context.Context, title string, options []Option, initial string) (string, error) {
	value := initial
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) MultiSelect(ctx context.Context, title, description string, options []Option) ([]string, error) {
	var values []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions(options)...).
		Validate(func(selected []string) error {
			if len(selected) == 0 {
				return errors.New("Please select at least one option.")
			}
			return nil
		}).
		Value(&values)
	if err := p.run(ctx, field); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *HuhPrompter) Input(ctx context.Context, q Question) (string, error) {
	var value string
	field := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Validate != nil {
		field = field.Validate(q.Validate)
	}
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) Confirm(ctx context.Context, title string, initial bool) (bool, error) {
	value := initial
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(false).
		WithAccessible(p.Accessible)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		return translateError(ctx, err)
	}
	return nil
}

// translateError maps every way a form can be abandoned to ErrCancelled.
func translateError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, huh.ErrTimeout),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		ctx.Err() != nil:
		return ErrCancelled
	}
	return err
}

func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		out = append(out, huh.NewOption(o.Label, o.Value))
	}
	return out
}
