// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"fmt"

	"github.com/samzong/commitx/internal/prompt"
)

// Kind identifies a question type.
type Kind string

const (
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindInput       Kind = "input"
	KindConfirm     Kind = "confirm"
)

// Answer is the scripted reply to one question.
type Answer struct {
	Kind   Kind
	Value  string
	Values []string
	Yes    bool
	Cancel bool
}

func Select(value string) Answer     { return Answer{Kind: KindSelect, Value: value} }
func MultiSelect(v ...string) Answer { return Answer{Kind: KindMultiSelect, Values: v} }
func Input(value string) Answer      { return Answer{Kind: KindInput, Value: value} }
func Confirm(yes bool) Answer        { return Answer{Kind: KindConfirm, Yes: yes} }
func Cancel(kind Kind) Answer        { return Answer{Kind: kind, Cancel: true} }

// Asked records a question that was put to the scripted prompter.
type Asked struct {
	Kind    Kind
	Title   string
	Options []prompt.Option
	Initial any
}

// Scripted answers questions from Answers in order. A question of the wrong
// kind, or one asked after the script ran out, fails with an error.
type Scripted struct {
	Answers []Answer
	Asked   []Asked
}

func New(answers ...Answer) *Scripted {
	return &Scripted{Answers: answers}
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	return len(s.Answers) - len(s.Asked)
}

// Titles returns the titles of every question asked so far.
func (s *Scripted) Titles() []string {
	titles := make([]string, 0, len(s.Asked))
	for _, a := range s.Asked {
		titles = append(titles, a.Title)
	}
	return titles
}

func (s *Scripted) next(asked Asked) (Answer, error) {
	idx := len(s.Asked)
	s.Asked = append(s.Asked, asked)
	if idx >= len(s.Answers) {
		return Answer{}, fmt.Errorf("unexpected %s question %q: script exhausted", asked.Kind, asked.Title)
	}
	answer := s.Answers[idx]
	if answer.Kind != asked.Kind {
		return Answer{}, fmt.Errorf("question %q is a %s, script expected %s", asked.Title, asked.Kind, answer.Kind)
	}
	if answer.Cancel {
		return Answer{}, prompt.ErrCancelled
	}
	return answer, nil
}

func (s *Scripted) Select(_ context.Context, title string, options []prompt.Option, initial string) (string, error) {
	a, err := s.next(Asked{Kind: KindSelect, Title: title, Options: options, Initial: initial})
	return a.Value, err
}

func (s *Scripted) MultiSelect(_ context.Context, title, _ string, options []prompt.Option) ([]string, error) {
	a, err := s.next(Asked{Kind: KindMultiSelect, Title: title, Options: options})
	return a.Values, err
}

func (s *Scripted) Input(_ context.Context, q prompt.Question) (string, error) {
	a, err := s.next(Asked{Kind: KindInput, Title: q.Title})
	return a.Value, err
}

func (s *Scripted) Confirm(_ context.Context, title string, initial bool) (bool, error) {
	a, err := s.next(Asked{Kind: KindConfirm, Title: title, Initial: initial})
	return a.Yes, err
}
