package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.EqualError(t, Subject(""), "Value is required")
	assert.NoError(t, Subject("a"))
	assert.NoError(t, Subject(strings.Repeat("a", 50)))
	assert.NoError(t, Subject(strings.Repeat("é", 50)))

	err := Subject(strings.Repeat("a", 51))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "51 characters")
}

func TestRequired(t *testing.T) {
	assert.EqualError(t, Required(""), "Value is required!")
	assert.NoError(t, Required(" "))
	assert.NoError(t, Required("x"))
}

func TestChain(t *testing.T) {
	boom := errors.New("boom")
	v := chain(Required, nil, func(s string) error {
		if s == "bad" {
			return boom
		}
		return nil
	})

	assert.Error(t, v(""))
	assert.ErrorIs(t, v("bad"), boom)
	assert.NoError(t, v("good"))
}

func TestTranslateError(t *testing.T) {
	ctx := context.Background()
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	other := errors.New("tty unavailable")

	assert.ErrorIs(t, translateError(ctx, huh.ErrUserAborted), ErrCancelled)
	assert.ErrorIs(t, translateError(ctx, huh.ErrTimeout), ErrCancelled)
	assert.ErrorIs(t, translateError(ctx, context.Canceled), ErrCancelled)
	assert.ErrorIs(t, translateError(canceled, other), ErrCancelled)
	assert.Equal(t, other, translateError(ctx, other))
}
