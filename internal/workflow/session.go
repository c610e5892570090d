package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samzong/commitx/internal/commit"
	"github.com/samzong/commitx/internal/emoji"
	"github.com/samzong/commitx/internal/formatter"
	"github.com/samzong/commitx/internal/git"
	"github.com/samzong/commitx/internal/prompt"
	"github.com/samzong/commitx/internal/ui"
)

const introTitle = "Commit-X"

var msgNotInstalled = []string{
	"Git is not installed, Please download and install it before trying again",
	"You can download it from here: https://git-scm.com",
}

const msgNoRepository = "There is no Git repository in the current directory (or any of the parent directories)"

// SessionOptions configures a commit session.
type SessionOptions struct {
	// Columns of the file grids; 0 fits the terminal width.
	Columns       int
	DefaultBranch string
	BranchChoices []string
	Emoji         bool
	ClearScreen   bool
	DryRun        bool
	// StageAll includes every unstaged file without asking.
	StageAll   bool
	CommitArgs []string
	OutWriter  io.Writer
	// SpinnerOut shows a spinner while staging and committing; nil disables it.
	SpinnerOut *os.File
}

// Session walks the user from repository checks to a commit. It never
// mutates the repository before the final confirmation.
type Session struct {
	git      GitClient
	prompter prompt.Prompter
	opts     SessionOptions
	printer  *ui.Printer
}

// sessionState is what change discovery found and what the user picked.
type sessionState struct {
	branch    string
	hasBranch bool
	staged    []git.ChangeEntry
	unstaged  []git.ChangeEntry
	selected  []git.ChangeEntry
}

func (s *sessionState) changeCount() int {
	return len(s.staged) + len(s.unstaged)
}

// NewSession returns a session that writes to opts.OutWriter, or stdout when
// it is nil.
func NewSession(gitClient GitClient, prompter prompt.Prompter, opts SessionOptions) *Session {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	return &Session{
		git:      gitClient,
		prompter: prompter,
		opts:     opts,
		printer:  ui.NewPrinter(opts.OutWriter),
	}
}

// Printer returns the printer the session writes its panels with.
func (s *Session) Printer() *ui.Printer {
	return s.printer
}

// Run executes the session. A user abort yields OutcomeCancelled; an error is
// returned only for unexpected failures.
func (s *Session) Run(ctx context.Context) (Result, error) {
	result, err := s.run(ctx)
	if errors.Is(err, prompt.ErrCancelled) {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	if err != nil {
		return Result{}, ui.NewFault(err)
	}
	return result, nil
}

func (s *Session) run(ctx context.Context) (Result, error) {
	if s.opts.ClearScreen {
		s.printer.Clear()
	}
	s.printer.Intro(introTitle)

	if !s.git.IsInstalled() {
		return terminated(msgNotInstalled...), nil
	}

	if stop, err := s.ensureRepository(ctx); stop != nil || err != nil {
		return deref(stop), err
	}

	state := s.discoverChanges()
	if state.changeCount() == 0 {
		return terminated(noChangesMessage(state), "Please make sure you are on the correct branch before making any commits"), nil
	}
	s.showChanges(state)

	if stop, err := s.selectUnstaged(ctx, state); stop != nil || err != nil {
		return deref(stop), err
	}

	intent, err := prompt.AskCommit(ctx, s.prompter)
	if err != nil {
		return Result{}, err
	}
	message := s.buildMessage(intent)

	commitFiles := make([]git.ChangeEntry, 0, len(state.staged)+len(state.selected))
	commitFiles = append(commitFiles, state.staged...)
	commitFiles = append(commitFiles, state.selected...)
	s.showFiles("Commit Files", commitFiles)
	s.printer.Section("Commit Message", message)

	ok, err := s.prompter.Confirm(ctx, "Are you sure you want to proceed with the commit above?", true)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return terminated(), nil
	}

	return s.execute(state, message), nil
}

func deref(r *Result) Result {
	if r == nil {
		return Result{}
	}
	return *r
}

// ensureRepository offers to initialize a repository when none is found.
func (s *Session) ensureRepository(ctx context.Context) (*Result, error) {
	if s.git.IsInsideRepository() {
		return nil, nil
	}

	s.printer.Warn(msgNoRepository)

	ok, err := s.prompter.Confirm(ctx, "Do you want to initialize a Git repository?", true)
	if err != nil {
		return nil, err
	}
	if !ok {
		stop := terminated()
		return &stop, nil
	}

	branch, err := s.prompter.Select(ctx, "Pick a branch name:", branchOptions(s.opts.BranchChoices), s.opts.DefaultBranch)
	if err != nil {
		return nil, err
	}
	if !s.git.InitializeRepository(branch) {
		stop := terminated(fmt.Sprintf("Failed to initialize a Git repository on branch %q", branch))
		return &stop, nil
	}

	s.printer.Success("Git repository initialized successfully")
	return nil, nil
}

func branchOptions(choices []string) []prompt.Option {
	if len(choices) == 0 {
		choices = []string{"main", "master"}
	}
	options := make([]prompt.Option, 0, len(choices))
	for _, c := range choices {
		options = append(options, prompt.Option{Label: c, Value: c})
	}
	return options
}

func (s *Session) discoverChanges() *sessionState {
	state := &sessionState{}
	state.branch, state.hasBranch = s.git.CurrentBranch()
	state.staged = s.git.StagedFiles()
	state.unstaged = append(s.git.UntrackedFiles(), s.git.UnstagedFiles()...)
	return state
}

func noChangesMessage(state *sessionState) string {
	if !state.hasBranch {
		return "No changes detected, no need to commit"
	}
	return fmt.Sprintf("No changes on branch %q, no need to commit", state.branch)
}

func (s *Session) showChanges(state *sessionState) {
	if state.hasBranch {
		s.printer.Section("Branch", state.branch)
	}
	if len(state.unstaged) > 0 {
		s.showFiles("Unstaged Files", state.unstaged)
	}
	if len(state.staged) > 0 {
		s.showFiles("Staged Files", state.staged)
	}
}

func (s *Session) showFiles(title string, entries []git.ChangeEntry) {
	showGrid(s.printer, title, entries, s.opts.Columns)
}

// selectUnstaged lets the user pull unstaged files into the commit. Declining
// with nothing staged ends the session.
func (s *Session) selectUnstaged(ctx context.Context, state *sessionState) (*Result, error) {
	if len(state.unstaged) == 0 {
		return nil, nil
	}
	if s.opts.StageAll {
		state.selected = state.unstaged
		return nil, nil
	}

	if len(state.staged) == 0 {
		s.printer.Warn("Staged files are empty, but unstaged files present")
	} else {
		s.printer.Warn("Unstaged files detected")
		s.printer.Message("Please make sure you haven't forgotten them before committing")
	}

	ok, err := s.prompter.Confirm(ctx, "Do you want to select unstaged files to include them in what will be committed?", true)
	if err != nil {
		return nil, err
	}
	if !ok {
		if len(state.staged) == 0 {
			stop := terminated("No files to commit", "Please stage the files before committing")
			return &stop, nil
		}
		return nil, nil
	}

	options := make([]prompt.Option, 0, len(state.unstaged))
	byPath := make(map[string]git.ChangeEntry, len(state.unstaged))
	for _, entry := range state.unstaged {
		options = append(options, prompt.Option{Label: entry.Status + " " + entry.Path, Value: entry.Path})
		byPath[entry.Path] = entry
	}

	paths, err := prompt.AskMany(ctx, s.prompter, "Select unstaged files:", `Press "ctrl+a" to select/deselect all`, options)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if entry, ok := byPath[path]; ok {
			state.selected = append(state.selected, entry)
		}
	}
	return nil, nil
}

func (s *Session) buildMessage(intent commit.Intent) string {
	message := formatter.AssembleMessage(intent)
	if s.opts.Emoji {
		message = emoji.AddEmojiToMessage(message)
	}
	return message
}

// execute stages the selected files and commits. A staging failure skips the
// commit.
func (s *Session) execute(state *sessionState, message string) Result {
	if s.opts.DryRun {
		return Result{Outcome: OutcomeDryRun}
	}

	ok := ui.RunWithSpinner(s.opts.SpinnerOut, "Committing...", func() bool {
		return s.stage(state) && s.git.Commit(message, s.opts.CommitArgs...)
	})

	if !ok {
		return Result{Outcome: OutcomeFailed}
	}
	return Result{Outcome: OutcomeCommitted}
}

func (s *Session) stage(state *sessionState) bool {
	if s.opts.StageAll {
		return s.git.StageAll()
	}
	paths := make([]string, 0, len(state.selected))
	for _, entry := range state.selected {
		paths = append(paths, entry.Path)
	}
	return s.git.StageFiles(paths)
}
