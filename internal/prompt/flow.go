package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/samzong/commitx/internal/commit"
)

// Gate is a yes/no question guarding an optional detail question.
type Gate struct {
	Title  string
	Detail Question
}

var (
	typeTitle = "Select the type of change:"

	scopeGate = Gate{
		Title:  "Do you need to fill out the scope of change?",
		Detail: Question{Title: "Fill in the scope of change:"},
	}
	subjectQuestion = Question{
		Title:    "Fill in the description subject of change:",
		Validate: Subject,
	}
	bodyGate = Gate{
		Title: "Do you need to fill out the description body of change?",
		Detail: Question{
			Title:       "Fill in the description body of change:",
			Description: `Use "|" to break new line`,
		},
	}
	breakingGate = Gate{
		Title:  "Does this commit introduce any breaking changes?",
		Detail: Question{Title: "Fill in the breaking changes:"},
	}
	closedIssueGate = Gate{
		Title: "Does this commit address any issues that need to be closed?",
		Detail: Question{
			Title:       "Fill in #ISSUE:",
			Description: "For example: #31, #34",
		},
	}
)

// TypeOptions returns the change types as select options.
func TypeOptions() []Option {
	options := make([]Option, 0, len(commit.Types))
	for _, t := range commit.Types {
		options = append(options, Option{Label: fmt.Sprintf("%-9s %s", t.Name, t.Hint), Value: t.Name})
	}
	return options
}

// AskCommit runs the commit questions in order and returns the collected
// intent. It stops at the first cancelled question and returns ErrCancelled.
func AskCommit(ctx context.Context, p Prompter) (commit.Intent, error) {
	var (
		intent commit.Intent
		err    error
	)

	if intent.Type, err = AskType(ctx, p); err != nil {
		return commit.Intent{}, err
	}
	if intent.Scope, err = AskGated(ctx, p, scopeGate); err != nil {
		return commit.Intent{}, err
	}
	if intent.Subject, err = AskText(ctx, p, subjectQuestion); err != nil {
		return commit.Intent{}, err
	}
	if intent.Body, err = AskGated(ctx, p, bodyGate); err != nil {
		return commit.Intent{}, err
	}
	if intent.Breaking, err = AskGated(ctx, p, breakingGate); err != nil {
		return commit.Intent{}, err
	}
	if intent.ClosedIssue, err = AskGated(ctx, p, closedIssueGate); err != nil {
		return commit.Intent{}, err
	}

	return intent, nil
}

// AskType asks for one of commit.Types until a known type is chosen.
func AskType(ctx context.Context, p Prompter) (string, error) {
	for {
		value, err := p.Select(ctx, typeTitle, TypeOptions(), "")
		if err != nil {
			return "", err
		}
		if commit.IsType(value) {
			return value, nil
		}
	}
}

// AskGated asks the gate question (default "no"). A "no" resolves to the empty
// string without asking the detail; a "yes" asks the detail, which must not
// be empty.
func AskGated(ctx context.Context, p Prompter, gate Gate) (string, error) {
	ok, err := p.Confirm(ctx, gate.Title, false)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	detail := gate.Detail
	detail.Validate = chain(Required, detail.Validate)
	return AskText(ctx, p, detail)
}

// AskText asks q until the answer passes q.Validate.
func AskText(ctx context.Context, p Prompter, q Question) (string, error) {
	for {
		value, err := p.Input(ctx, q)
		if err != nil {
			return "", err
		}
		if q.Validate == nil || q.Validate(value) == nil {
			return value, nil
		}
	}
}

// AskMany asks a multi-select question until at least one option is chosen.
func AskMany(ctx context.Context, p Prompter, title, description string, options []Option) ([]string, error) {
	for {
		values, err := p.MultiSelect(ctx, title, description, options)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			return values, nil
		}
	}
}

// IsCancelled reports whether err means the user aborted.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func chain(validators ...func(string) error) func(string) error {
	return func(value string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}
