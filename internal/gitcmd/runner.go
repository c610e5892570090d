package gitcmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Binary is the executable every Runner invokes.
var Binary = "git"

// Runner executes git commands with shared logging and output handling.
type Runner struct {
	Verbose bool
	Dir     string
	Env     []string
	Logger  io.Writer
}

// Result contains captured stdout/stderr and the exit status of a git command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = os.Stderr
	}
	return r
}

func (r Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(Binary, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

// Logf writes a diagnostic line when verbose.
func (r Runner) Logf(format string, a ...any) {
	if !r.Verbose {
		return
	}
	r = r.withDefaults()
	fmt.Fprintf(r.Logger, format+"\n", a...)
}

// Run executes a git command, logs when verbose, and captures stdout/stderr.
func (r Runner) Run(args ...string) (Result, error) {
	return r.RunInput(nil, args...)
}

// RunInput is Run with stdin fed from input.
func (r Runner) RunInput(input io.Reader, args ...string) (Result, error) {
	r.Logf("Running: %s %s", Binary, strings.Join(args, " "))

	cmd := r.command(args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdin = input
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	} else if err != nil {
		result.ExitCode = -1
	}
	return result, err
}
