package prompt

import (
	"errors"
	"fmt"

	"github.com/samzong/commitx/internal/commit"
)

// Required rejects empty answers.
func Required(value string) error {
	if value == "" {
		return errors.New("Value is required!")
	}
	return nil
}

// Subject accepts 1 to commit.MaxSubjectLength characters.
func Subject(value string) error {
	n := commit.SubjectLength(value)
	if n == 0 {
		return errors.New("Value is required")
	}
	if n > commit.MaxSubjectLength {
		return fmt.Errorf("Please make sure it does not exceed %d characters, currently %d characters",
			commit.MaxSubjectLength, n)
	}
	return nil
}
