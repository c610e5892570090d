package workflow

import (
	"strconv"
	"strings"

	"github.com/samzong/commitx/internal/formatter"
	"github.com/samzong/commitx/internal/git"
	"github.com/samzong/commitx/internal/ui"
	"github.com/samzong/commitx/internal/version"
)

const notAvailable = "(unavailable)"

// ShowStatus prints a read-only report of the repository. It never prompts
// and never mutates. A non-nil Result means git is missing or the directory
// is not a repository.
func ShowStatus(p *ui.Printer, client Inspector, columns int) *Result {
	if !client.IsInstalled() {
		stop := terminated(msgNotInstalled...)
		return &stop
	}
	if !client.IsInsideRepository() {
		stop := terminated(msgNoRepository)
		return &stop
	}

	root, ok := client.RootPath()
	p.Section("Repository", orUnavailable(root, ok))

	gitDir, ok := client.GitDirPath()
	p.Section("Git Directory", orUnavailable(gitDir, ok))

	branch, ok := client.CurrentBranch()
	if !ok {
		branch = "(detached HEAD)"
	}
	p.Section("Branch", branch)
	p.Section("Commits", strconv.Itoa(client.CommitCount()))

	tags := client.Tags()
	if len(tags) > 0 {
		short := make([]string, 0, len(tags))
		for _, t := range tags {
			short = append(short, version.ShortTag(t))
		}
		p.Section("Tags", strings.Join(short, ", "))
		if _, tag, found := version.Latest(tags); found {
			p.Section("Latest Version", tag)
		}
	}

	unstaged := append(client.UntrackedFiles(), client.UnstagedFiles()...)
	staged := client.StagedFiles()
	if len(unstaged) > 0 {
		showGrid(p, "Unstaged Files", unstaged, columns)
	}
	if len(staged) > 0 {
		showGrid(p, "Staged Files", staged, columns)
	}
	if len(unstaged)+len(staged) == 0 {
		p.Message("Working tree clean")
	}

	return nil
}

func showGrid(p *ui.Printer, title string, entries []git.ChangeEntry, columns int) {
	columns = ui.Columns(columns, formatter.MaxPathLength(entries)+2)
	p.Section(title, formatter.FormatFiles(entries, columns))
}

func orUnavailable(value string, ok bool) string {
	if !ok {
		return notAvailable
	}
	return value
}
