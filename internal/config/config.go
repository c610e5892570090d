// Package config resolves commitx settings from flags and COMMITX_* variables.
package config

import (
	"fmt"
	"strings"

	"github.com/samzong/commitx/internal/gitutil"
	"github.com/spf13/viper"
)

// Config holds the effective settings for one run.
type Config struct {
	Columns       int    `mapstructure:"columns" yaml:"columns"`
	DefaultBranch string `mapstructure:"default_branch" yaml:"default_branch"`
	Emoji         bool   `mapstructure:"emoji" yaml:"emoji"`
	ClearScreen   bool   `mapstructure:"clear_screen" yaml:"clear_screen"`
	NoVerify      bool   `mapstructure:"no_verify" yaml:"no_verify"`
	Signoff       bool   `mapstructure:"signoff" yaml:"signoff"`
	DryRun        bool   `mapstructure:"dry_run" yaml:"dry_run"`
	Verbose       bool   `mapstructure:"verbose" yaml:"verbose"`
	All           bool   `mapstructure:"all" yaml:"all"`
}

const (
	DefaultColumns       = 1
	DefaultBranch        = "main"
	DefaultClearScreen   = true
	EnvPrefix            = "COMMITX"
	KeyColumns           = "columns"
	KeyDefaultBranch     = "default_branch"
	KeyEmoji             = "emoji"
	KeyClearScreen       = "clear_screen"
	KeyNoVerify          = "no_verify"
	KeySignoff           = "signoff"
	KeyDryRun            = "dry_run"
	KeyVerbose           = "verbose"
	KeyAll               = "all"
	suggestedBranchMain  = "main"
	suggestedBranchOther = "master"
)

// InitConfig registers defaults and environment lookups on the global viper
// instance. No configuration file is read.
func InitConfig() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyColumns, DefaultColumns)
	viper.SetDefault(KeyDefaultBranch, DefaultBranch)
	viper.SetDefault(KeyEmoji, false)
	viper.SetDefault(KeyClearScreen, DefaultClearScreen)
	viper.SetDefault(KeyNoVerify, false)
	viper.SetDefault(KeySignoff, false)
	viper.SetDefault(KeyDryRun, false)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyAll, false)
}

// GetConfig decodes and validates the current settings.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed by their types.
func (c *Config) Validate() error {
	if c.Columns < 0 {
		return fmt.Errorf("invalid %s %d: must be 0 (auto) or greater", KeyColumns, c.Columns)
	}
	if err := gitutil.ValidateBranchName(c.DefaultBranch); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyDefaultBranch, err)
	}
	return nil
}

// BranchChoices returns the branch names offered when initializing a
// repository: main and master, plus the configured default when it differs.
func (c *Config) BranchChoices() []string {
	choices := []string{suggestedBranchMain, suggestedBranchOther}
	if c.DefaultBranch != suggestedBranchMain && c.DefaultBranch != suggestedBranchOther {
		choices = append(choices, c.DefaultBranch)
	}
	return choices
}

// CommitArgs returns the extra git commit flags these settings ask for.
func (c *Config) CommitArgs() []string {
	var args []string
	if c.NoVerify {
		args = append(args, "--no-verify")
	}
	if c.Signoff {
		args = append(args, "-s")
	}
	return args
}
