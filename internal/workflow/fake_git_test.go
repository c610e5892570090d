package workflow

import "github.com/samzong/commitx/internal/git"

type fakeGit struct {
	installed  bool
	inRepo     bool
	initOK     bool
	stageOK    bool
	commitOK   bool
	branch     string
	untracked  []git.ChangeEntry
	unstaged   []git.ChangeEntry
	staged     []git.ChangeEntry
	commits    int
	tags       []string
	root       string
	gitDir     string
	initBranch string
	stageCalls [][]string
	stageAll   int
	commitMsgs []string
	commitArgs [][]string
}

func newFakeGit() *fakeGit {
	return &fakeGit{installed: true, inRepo: true, initOK: true, stageOK: true, commitOK: true, branch: "main"}
}

func (f *fakeGit) IsInstalled() bool        { return f.installed }
func (f *fakeGit) IsInsideRepository() bool { return f.inRepo }

func (f *fakeGit) InitializeRepository(branchName string) bool {
	f.initBranch = branchName
	if f.initOK {
		f.inRepo = true
		f.branch = branchName
	}
	return f.initOK
}

func (f *fakeGit) StageFiles(paths []string) bool {
	f.stageCalls = append(f.stageCalls, paths)
	return f.stageOK
}

func (f *fakeGit) StageAll() bool {
	f.stageAll++
	return f.stageOK
}

func (f *fakeGit) Commit(message string, args ...string) bool {
	f.commitMsgs = append(f.commitMsgs, message)
	f.commitArgs = append(f.commitArgs, args)
	return f.commitOK
}

func (f *fakeGit) CurrentBranch() (string, bool) {
	return f.branch, f.branch != ""
}

func (f *fakeGit) UntrackedFiles() []git.ChangeEntry { return f.untracked }
func (f *fakeGit) UnstagedFiles() []git.ChangeEntry  { return f.unstaged }
func (f *fakeGit) StagedFiles() []git.ChangeEntry    { return f.staged }
func (f *fakeGit) CommitCount() int                  { return f.commits }
func (f *fakeGit) Tags() []string                    { return f.tags }

func (f *fakeGit) RootPath() (string, bool)   { return f.root, f.root != "" }
func (f *fakeGit) GitDirPath() (string, bool) { return f.gitDir, f.gitDir != "" }

func (f *fakeGit) mutated() bool {
	return len(f.stageCalls) > 0 || f.stageAll > 0 || len(f.commitMsgs) > 0
}
