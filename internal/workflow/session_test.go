package workflow

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/samzong/commitx/internal/git"
	"github.com/samzong/commitx/internal/prompt/prompttest"
	"github.com/samzong/commitx/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalCommit answers the commit questions with type fix and subject
// "stop crash", skipping every optional field.
func minimalCommit() []prompttest.Answer {
	return []prompttest.Answer{
		prompttest.Select("fix"),
		prompttest.Confirm(false),
		prompttest.Input("stop crash"),
		prompttest.Confirm(false),
		prompttest.Confirm(false),
		prompttest.Confirm(false),
	}
}

func script(parts ...[]prompttest.Answer) *prompttest.Scripted {
	var answers []prompttest.Answer
	for _, p := range parts {
		answers = append(answers, p...)
	}
	return prompttest.New(answers...)
}

func one(a prompttest.Answer) []prompttest.Answer { return []prompttest.Answer{a} }

func runSession(t *testing.T, g *fakeGit, p *prompttest.Scripted, opts SessionOptions) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	opts.OutWriter = &out
	result, err := NewSession(g, p, opts).Run(context.Background())
	require.NoError(t, err)
	return result, out.String()
}

func TestSessionGitNotInstalled(t *testing.T) {
	g := newFakeGit()
	g.installed = false
	p := prompttest.New()

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Equal(t, msgNotInstalled, result.Messages)
	assert.Empty(t, p.Asked)
}

func TestSessionNothingToCommit(t *testing.T) {
	g := newFakeGit()
	p := prompttest.New()

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	require.Len(t, result.Messages, 2)
	assert.Equal(t, `No changes on branch "main", no need to commit`, result.Messages[0])
	assert.Empty(t, p.Asked)
	assert.False(t, g.mutated())
}

func TestSessionNothingToCommitDetached(t *testing.T) {
	g := newFakeGit()
	g.branch = ""

	result, _ := runSession(t, g, prompttest.New(), SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Equal(t, "No changes detected, no need to commit", result.Messages[0])
}

func TestSessionDeclineInitialize(t *testing.T) {
	g := newFakeGit()
	g.inRepo = false
	p := prompttest.New(prompttest.Confirm(false))

	result, out := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Empty(t, result.Messages)
	assert.Contains(t, out, msgNoRepository)
	assert.Empty(t, g.initBranch)
}

func TestSessionInitializeRepository(t *testing.T) {
	g := newFakeGit()
	g.inRepo = false
	p := script(
		one(prompttest.Confirm(true)),
		one(prompttest.Select("master")),
	)

	result, out := runSession(t, g, p, SessionOptions{DefaultBranch: "main", BranchChoices: []string{"main", "master"}})
	assert.Equal(t, "master", g.initBranch)
	assert.Contains(t, out, "Git repository initialized successfully")

	// A fresh repository has no changes.
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Equal(t, `No changes on branch "master", no need to commit`, result.Messages[0])

	require.Len(t, p.Asked, 2)
	assert.Equal(t, true, p.Asked[0].Initial)
	assert.Equal(t, "main", p.Asked[1].Initial)
	assert.Len(t, p.Asked[1].Options, 2)
}

func TestSessionInitializeFailure(t *testing.T) {
	g := newFakeGit()
	g.inRepo = false
	g.initOK = false
	p := script(one(prompttest.Confirm(true)), one(prompttest.Select("main")))

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0], "Failed to initialize")
}

func TestSessionStagedOnlyCommit(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(true)))

	result, out := runSession(t, g, p, SessionOptions{CommitArgs: []string{"-s"}})
	assert.Equal(t, OutcomeCommitted, result.Outcome)
	assert.Equal(t, []string{"fix: stop crash"}, g.commitMsgs)
	assert.Equal(t, [][]string{{"-s"}}, g.commitArgs)
	assert.Equal(t, [][]string{{}}, g.stageCalls)
	assert.Equal(t, 0, p.Remaining())

	assertOrder(t, out, "Branch", "Staged Files", "Commit Files", "Commit Message", "fix: stop crash")
	assert.NotContains(t, out, "Unstaged Files")
}

func TestSessionSelectUnstagedFiles(t *testing.T) {
	g := newFakeGit()
	g.untracked = []git.ChangeEntry{{Path: "new.go", Status: "?"}}
	g.unstaged = []git.ChangeEntry{{Path: "old.go", Status: "M"}}
	p := script(
		one(prompttest.Confirm(true)),
		one(prompttest.MultiSelect("old.go")),
		minimalCommit(),
		one(prompttest.Confirm(true)),
	)

	result, out := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeCommitted, result.Outcome)
	assert.Equal(t, [][]string{{"old.go"}}, g.stageCalls)
	assert.Len(t, g.commitMsgs, 1)

	multi := p.Asked[1]
	assert.Equal(t, prompttest.KindMultiSelect, multi.Kind)
	require.Len(t, multi.Options, 2)
	assert.Equal(t, "? new.go", multi.Options[0].Label)
	assert.Equal(t, "M old.go", multi.Options[1].Label)

	assert.Contains(t, out, "Staged files are empty, but unstaged files present")
	assertOrder(t, out, "Branch", "Unstaged Files", "Commit Files", "M old.go", "Commit Message")
}

func TestSessionDeclineUnstagedWithoutStaged(t *testing.T) {
	g := newFakeGit()
	g.unstaged = []git.ChangeEntry{{Path: "old.go", Status: "M"}}
	p := prompttest.New(prompttest.Confirm(false))

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Equal(t, []string{"No files to commit", "Please stage the files before committing"}, result.Messages)
	assert.Len(t, p.Asked, 1)
	assert.False(t, g.mutated())
}

func TestSessionDeclineUnstagedWithStaged(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "A"}}
	g.unstaged = []git.ChangeEntry{{Path: "b.go", Status: "M"}}
	p := script(one(prompttest.Confirm(false)), minimalCommit(), one(prompttest.Confirm(true)))

	result, out := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeCommitted, result.Outcome)
	assert.Contains(t, out, "Unstaged files detected")
	assert.Contains(t, out, "Please make sure you haven't forgotten them before committing")
	assert.Equal(t, [][]string{{}}, g.stageCalls)
}

func TestSessionDeclineConfirmation(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(false)))

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeTerminated, result.Outcome)
	assert.Empty(t, result.Messages)
	assert.False(t, g.mutated())
}

func TestSessionCancelled(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(
		one(prompttest.Select("feat")),
		one(prompttest.Cancel(prompttest.KindConfirm)),
	)

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Len(t, p.Asked, 2)
	assert.False(t, g.mutated())
}

func TestSessionStageFailureSkipsCommit(t *testing.T) {
	g := newFakeGit()
	g.stageOK = false
	g.unstaged = []git.ChangeEntry{{Path: "b.go", Status: "M"}}
	p := script(
		one(prompttest.Confirm(true)),
		one(prompttest.MultiSelect("b.go")),
		minimalCommit(),
		one(prompttest.Confirm(true)),
	)

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Empty(t, g.commitMsgs)
}

func TestSessionCommitFailure(t *testing.T) {
	g := newFakeGit()
	g.commitOK = false
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(true)))

	result, _ := runSession(t, g, p, SessionOptions{})
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Len(t, g.commitMsgs, 1)
}

func TestSessionDryRun(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(true)))

	result, _ := runSession(t, g, p, SessionOptions{DryRun: true})
	assert.Equal(t, OutcomeDryRun, result.Outcome)
	assert.False(t, g.mutated())
}

func TestSessionEmoji(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(true)))

	_, _ = runSession(t, g, p, SessionOptions{Emoji: true})
	assert.Equal(t, []string{"🐛 fix: stop crash"}, g.commitMsgs)
}

func TestSessionClearScreen(t *testing.T) {
	g := newFakeGit()
	_, out := runSession(t, g, prompttest.New(), SessionOptions{ClearScreen: true})
	assert.True(t, strings.HasPrefix(out, "\x1b[2J"))
}

func TestSessionUnexpectedPromptError(t *testing.T) {
	g := newFakeGit()
	g.staged = []git.ChangeEntry{{Path: "a.go", Status: "M"}}
	// The script expects a confirm, the session asks a select first.
	p := prompttest.New(prompttest.Confirm(true))

	var out bytes.Buffer
	_, err := NewSession(g, p, SessionOptions{OutWriter: &out}).Run(context.Background())
	var fault *ui.Fault
	require.ErrorAs(t, err, &fault)
	assert.NotEmpty(t, fault.Stack)
	assert.False(t, g.mutated())
}

func assertOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	pos := 0
	for _, part := range parts {
		idx := strings.Index(out[pos:], part)
		if !assert.GreaterOrEqual(t, idx, 0, "expected %q after offset %d in:\n%s", part, pos, out) {
			return
		}
		pos += idx + len(part)
	}
}

func TestSessionStageAll(t *testing.T) {
	g := newFakeGit()
	g.untracked = []git.ChangeEntry{{Path: "new.go", Status: "?"}}
	g.unstaged = []git.ChangeEntry{{Path: "old.go", Status: "M"}}
	p := script(minimalCommit(), one(prompttest.Confirm(true)))

	result, out := runSession(t, g, p, SessionOptions{StageAll: true})
	assert.Equal(t, OutcomeCommitted, result.Outcome)
	assert.Equal(t, 1, g.stageAll)
	assert.Empty(t, g.stageCalls)
	assert.NotContains(t, p.Titles(), "Do you want to select unstaged files to include them in what will be committed?")
	assertOrder(t, out, "Commit Files", "? new.go", "M old.go", "Commit Message")
}
