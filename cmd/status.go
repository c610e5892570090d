package cmd

import (
	"github.com/samzong/commitx/internal/git"
	"github.com/samzong/commitx/internal/ui"
	"github.com/samzong/commitx/internal/workflow"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the repository and its pending changes",
	Long: `Show the repository root, branch, commit count, tags and the staged
and unstaged files. Nothing is asked and nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(outWriter())
	p.Intro("commitx status")
	client := git.NewClient(git.Options{Verbose: cfg.Verbose})
	if stop := workflow.ShowStatus(p, client, cfg.Columns); stop != nil {
		workflow.Report(p, *stop)
		return nil
	}
	p.Outro("Done")
	return nil
}
