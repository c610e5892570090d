package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime/debug"
	"strings"
)

// Fault is an unexpected failure with the stack where it was caught.
type Fault struct {
	Err   error
	Stack string
}

func (f *Fault) Error() string {
	return f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// NewFault wraps err with the current stack. A nil err yields nil and an
// existing Fault is returned unchanged.
func NewFault(err error) error {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return err
	}
	return &Fault{Err: err, Stack: string(debug.Stack())}
}

// RecoverFault converts a recovered panic value into a Fault.
func RecoverFault(v any) *Fault {
	err, ok := v.(error)
	if !ok {
		err = &PanicError{Value: v}
	}
	return &Fault{Err: err, Stack: string(debug.Stack())}
}

// PanicError carries a non-error panic value.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprint(p.Value)
}

var fileScheme = regexp.MustCompile(`file://`)

// ParseStack drops the header line of a goroutine dump and makes every frame
// relative to cwd, stripping file-scheme prefixes.
func ParseStack(stack, cwd string) []string {
	lines := strings.Split(stack, "\n")
	if len(lines) <= 1 {
		return []string{}
	}

	prefix := ""
	if cwd != "" {
		prefix = strings.TrimSuffix(cwd, string(filepath.Separator)) + string(filepath.Separator)
	}

	frames := make([]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		l = fileScheme.ReplaceAllString(l, "")
		if prefix != "" {
			l = strings.Replace(l, prefix, "", 1)
		}
		frames = append(frames, l)
	}
	return frames
}

// Kind names the error's dynamic type without package or pointer decoration.
// Plain errors created by errors.New or fmt.Errorf are reported as "Error".
func Kind(err error) string {
	if err == nil {
		return "Error"
	}
	var f *Fault
	if errors.As(err, &f) {
		err = f.Err
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch name := t.Name(); {
	case name == "", strings.HasPrefix(name, "error"), strings.HasPrefix(name, "wrap"):
		return "Error"
	default:
		return name
	}
}

// PrettyError renders err as "<Kind>: <message>" followed by its cleaned
// stack frames, one per line.
func PrettyError(err error) []string {
	header := Kind(err)
	if msg := err.Error(); msg != "" {
		header += ": " + msg
	}
	lines := []string{header}

	var f *Fault
	if errors.As(err, &f) && f.Stack != "" {
		cwd, _ := os.Getwd()
		for _, frame := range ParseStack(f.Stack, cwd) {
			lines = append(lines, "  "+frame)
		}
	}
	return lines
}
