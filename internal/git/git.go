// Package git queries and mutates a repository through the git executable.
//
// Every operation runs exactly one git invocation. Failures are never returned
// to callers: they collapse to the operation's "unavailable" value (false, an
// empty string with ok == false, zero or an empty list). With Verbose set the
// underlying error is logged.
package git

import (
	"strconv"
	"strings"

	"github.com/samzong/commitx/internal/gitcmd"
	"github.com/samzong/commitx/internal/gitutil"
	"github.com/samzong/commitx/internal/stringsutil"
)

// Status codes reported by name-status diffs and ls-files.
const (
	StatusAdded      = "A"
	StatusCopied     = "C"
	StatusDeleted    = "D"
	StatusModified   = "M"
	StatusRenamed    = "R"
	StatusTypeChange = "T"
	StatusUnmerged   = "U"
	StatusUnknown    = "X"
	StatusUntracked  = "?"
)

// ChangeEntry is one changed path and its single-character status code.
type ChangeEntry struct {
	Path   string
	Status string
}

// Options configures a Client. Dir is the directory git runs in; empty means
// the process working directory.
type Options struct {
	Verbose bool
	Dir     string
}

// Client runs repository queries and mutations for one working directory.
// Change lists and staging always run from the top of the work tree, so every
// path it returns or accepts is relative to the repository root.
type Client struct {
	runner gitcmd.Runner
	top    string
}

// NewClient returns a Client for opts.Dir.
func NewClient(opts Options) *Client {
	return &Client{
		runner: gitcmd.Runner{Verbose: opts.Verbose, Dir: opts.Dir},
	}
}

// output runs git and returns trimmed stdout, or ok == false on any failure.
func (c *Client) output(args ...string) (string, bool) {
	return run(c.runner, true, args...)
}

func (c *Client) succeeds(args ...string) bool {
	_, ok := c.output(args...)
	return ok
}

// worktree returns a runner rooted at the top of the work tree. Until the
// root is known it falls back to the configured directory.
func (c *Client) worktree() gitcmd.Runner {
	if c.top == "" {
		if root, ok := c.RootPath(); ok {
			c.top = root
		}
	}
	r := c.runner
	if c.top != "" {
		r.Dir = c.top
	}
	return r
}

// nulOutput runs git from the work tree root and returns its untrimmed
// NUL-separated output.
func (c *Client) nulOutput(args ...string) (string, bool) {
	return run(c.worktree(), false, args...)
}

func run(r gitcmd.Runner, trim bool, args ...string) (string, bool) {
	result, err := r.Run(args...)
	if err != nil {
		r.Logf("%v", gitutil.WrapGitError("git "+strings.Join(args, " "), result, err))
		return "", false
	}
	return result.StdoutString(trim), true
}

// IsInstalled reports whether the git executable answers a version query.
func (c *Client) IsInstalled() bool {
	return c.succeeds("--version")
}

// IsInsideRepository reports whether the working directory is inside a work tree.
func (c *Client) IsInsideRepository() bool {
	out, ok := c.output("rev-parse", "--is-inside-work-tree")
	return ok && out == "true"
}

// InitializeRepository creates a repository whose initial branch is branchName.
func (c *Client) InitializeRepository(branchName string) bool {
	if err := gitutil.ValidateBranchName(branchName); err != nil {
		c.runner.Logf("git init: %v", err)
		return false
	}
	return c.succeeds("init", "-b", branchName)
}

// StageFiles adds the given paths to the index. An empty list stages nothing
// and succeeds.
func (c *Client) StageFiles(paths []string) bool {
	if len(paths) == 0 {
		return true
	}
	args := append([]string{"add", "--"}, stringsutil.UniqueStrings(paths)...)
	_, ok := run(c.worktree(), false, args...)
	return ok
}

// StageAll adds every change in the work tree to the index.
func (c *Client) StageAll() bool {
	_, ok := run(c.worktree(), false, "add", "--all")
	return ok
}

// Commit records the index with message, which is passed on stdin.
// Success is decided by the exit status alone.
func (c *Client) Commit(message string, args ...string) bool {
	commitArgs := append([]string{"commit", "-F", "-"}, args...)
	result, err := c.runner.RunInput(strings.NewReader(message), commitArgs...)
	if err != nil {
		c.runner.Logf("%v", gitutil.WrapGitError("git commit", result, err))
		return false
	}
	return result.ExitCode == 0
}

// CurrentBranch returns the checked-out branch. ok is false on a detached HEAD.
func (c *Client) CurrentBranch() (string, bool) {
	out, ok := c.output("symbolic-ref", "--short", "HEAD")
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// UntrackedFiles lists paths git does not track, honouring standard excludes.
func (c *Client) UntrackedFiles() []ChangeEntry {
	out, ok := c.nulOutput("ls-files", "-z", "--others", "--exclude-standard")
	if !ok {
		return []ChangeEntry{}
	}
	paths := stringsutil.SplitNonEmpty(out, "\x00")
	entries := make([]ChangeEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, ChangeEntry{Path: path, Status: StatusUntracked})
	}
	return entries
}

// UnstagedFiles lists work tree changes not yet in the index.
func (c *Client) UnstagedFiles() []ChangeEntry {
	out, ok := c.nulOutput("diff", "--no-ext-diff", "--name-status", "-z")
	if !ok {
		return []ChangeEntry{}
	}
	return ParseNameStatus(out)
}

// StagedFiles lists changes recorded in the index.
func (c *Client) StagedFiles() []ChangeEntry {
	out, ok := c.nulOutput("diff", "--no-ext-diff", "--name-status", "-z", "--cached")
	if !ok {
		return []ChangeEntry{}
	}
	return ParseNameStatus(out)
}

// CommitCount returns the number of commits reachable from HEAD, or 0.
func (c *Client) CommitCount() int {
	out, ok := c.output("rev-list", "--count", "HEAD")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0
	}
	return n
}

// Tags returns the repository's tag refs.
func (c *Client) Tags() []string {
	out, ok := c.output("rev-parse", "--symbolic", "--tags")
	if !ok {
		return []string{}
	}
	return stringsutil.NonEmptyLines(out)
}

// RootPath returns the top-level directory of the work tree.
func (c *Client) RootPath() (string, bool) {
	return c.nonEmptyOutput("rev-parse", "--show-toplevel")
}

// GitDirPath returns the absolute path of the .git directory.
func (c *Client) GitDirPath() (string, bool) {
	return c.nonEmptyOutput("rev-parse", "--absolute-git-dir")
}

func (c *Client) nonEmptyOutput(args ...string) (string, bool) {
	out, ok := c.output(args...)
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// ParseNameStatus parses `git diff --name-status -z` output: a status field
// followed by one path, or by source and destination paths for renames and
// copies. The status keeps only its letter and the entry takes the
// destination path.
func ParseNameStatus(output string) []ChangeEntry {
	fields := strings.Split(output, "\x00")
	entries := make([]ChangeEntry, 0, len(fields)/2)
	for i := 0; i < len(fields); {
		status := strings.TrimSpace(fields[i])
		i++
		if status == "" {
			continue
		}
		paths := 1
		if status[0] == StatusRenamed[0] || status[0] == StatusCopied[0] {
			paths = 2
		}
		if i+paths > len(fields) {
			break
		}
		path := fields[i+paths-1]
		i += paths
		if path == "" {
			continue
		}
		entries = append(entries, ChangeEntry{Path: path, Status: status[:1]})
	}
	return entries
}
