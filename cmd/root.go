package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samzong/commitx/internal/config"
	"github.com/samzong/commitx/internal/git"
	"github.com/samzong/commitx/internal/prompt"
	"github.com/samzong/commitx/internal/ui"
	"github.com/samzong/commitx/internal/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "commitx",
	Short: "commitx - interactive Conventional Commits",
	Long: `commitx walks you through writing a Conventional Commits message, ` +
		`lets you pick the files to include and commits them.`,
	Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
	Args:          cobra.NoArgs,
	RunE:          runCommit,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// RootCmd returns the root command for documentation generators.
func RootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the command line with ctx as the cancellation context of every
// command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	flags := rootCmd.PersistentFlags()
	flags.Int("columns", config.DefaultColumns, "Number of columns in file lists, 0 fits the terminal width")
	flags.String("default-branch", config.DefaultBranch, "Branch preselected when initializing a repository")
	flags.Bool("emoji", false, "Prefix the commit header with the emoji of its type")
	flags.Bool("clear", config.DefaultClearScreen, "Clear the screen before starting")
	flags.Bool("no-verify", false, "Skip pre-commit hooks")
	flags.BoolP("signoff", "s", false, "Add a Signed-off-by trailer")
	flags.Bool("dry-run", false, "Build the message only, do not commit")
	flags.BoolP("all", "a", false, "Include every unstaged file without asking")
	flags.BoolP("verbose", "V", false, "Show git commands and their failures")

	bindFlag(config.KeyColumns, "columns")
	bindFlag(config.KeyDefaultBranch, "default-branch")
	bindFlag(config.KeyEmoji, "emoji")
	bindFlag(config.KeyClearScreen, "clear")
	bindFlag(config.KeyNoVerify, "no-verify")
	bindFlag(config.KeySignoff, "signoff")
	bindFlag(config.KeyDryRun, "dry-run")
	bindFlag(config.KeyAll, "all")
	bindFlag(config.KeyVerbose, "verbose")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func runCommit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := git.NewClient(git.Options{Verbose: cfg.Verbose})
	session := workflow.NewSession(client, prompt.NewHuhPrompter(), sessionOptions(cfg, outWriter()))
	return runSession(cmd.Context(), session)
}

func sessionOptions(cfg *config.Config, out io.Writer) workflow.SessionOptions {
	return workflow.SessionOptions{
		Columns:       cfg.Columns,
		DefaultBranch: cfg.DefaultBranch,
		BranchChoices: cfg.BranchChoices(),
		Emoji:         cfg.Emoji,
		ClearScreen:   cfg.ClearScreen,
		DryRun:        cfg.DryRun,
		StageAll:      cfg.All,
		CommitArgs:    cfg.CommitArgs(),
		OutWriter:     out,
		SpinnerOut:    os.Stderr,
	}
}

// runSession runs one session and prints how it ended. Panics and unexpected
// errors are printed with their stack and returned wrapped in ErrFault.
func runSession(ctx context.Context, session *workflow.Session) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = reportFault(session.Printer(), ui.RecoverFault(v))
		}
	}()

	result, err := session.Run(ctx)
	if err != nil {
		return reportFault(session.Printer(), err)
	}
	workflow.Report(session.Printer(), result)
	return nil
}
