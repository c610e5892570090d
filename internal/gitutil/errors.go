package gitutil

import (
	"fmt"
	"strings"

	"github.com/samzong/commitx/internal/gitcmd"
)

// GitError is a failed git invocation. Stderr holds git's own explanation,
// which is usually more useful than the process error.
type GitError struct {
	Action   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s (exit %d): %s: %v", e.Action, e.ExitCode, e.Stderr, e.Err)
	}
	return fmt.Sprintf("%s (exit %d): %v", e.Action, e.ExitCode, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// WrapGitError describes the failed action with the exit code and trimmed
// stderr of result.
func WrapGitError(action string, result gitcmd.Result, err error) error {
	return &GitError{
		Action:   action,
		ExitCode: result.ExitCode,
		Stderr:   strings.TrimSpace(string(result.Stderr)),
		Err:      err,
	}
}
