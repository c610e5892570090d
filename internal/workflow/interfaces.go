// Package workflow provides the commit session orchestration logic.
package workflow

import "github.com/samzong/commitx/internal/git"

// GitClient abstracts the repository operations a commit session needs.
// Implementations report failure through their return values, never panics.
type GitClient interface {
	IsInstalled() bool
	IsInsideRepository() bool
	InitializeRepository(branchName string) bool
	StageFiles(paths []string) bool
	StageAll() bool
	Commit(message string, args ...string) bool
	CurrentBranch() (string, bool)
	UntrackedFiles() []git.ChangeEntry
	UnstagedFiles() []git.ChangeEntry
	StagedFiles() []git.ChangeEntry
}

// Inspector adds the read-only queries used by the status report.
type Inspector interface {
	GitClient
	CommitCount() int
	Tags() []string
	RootPath() (string, bool)
	GitDirPath() (string, bool)
}

var _ Inspector = (*git.Client)(nil)
