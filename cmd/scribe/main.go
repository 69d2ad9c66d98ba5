// Package main provides the entry point for the scribe CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gorewood/scribe/internal/config"
	"github.com/gorewood/scribe/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the scribe CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scribe",
		Short: "Draft commit messages and PR descriptions with AI",
		Long: `Scribe drafts git commit messages and pull-request descriptions
from your repository state using Claude.

  scribe commit   draft a message for staged changes and commit
  scribe pr       draft a PR for the current branch and open it

Drafts are always shown for review before anything is applied.
Requires ANTHROPIC_API_KEY; set SCRIBE_MODEL to override the model.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Load .env files for API keys that can't be exported to env.
	// Environment variables already set take precedence.
	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		loadEnvFiles()
	}

	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	cmd.AddCommand(newCommitCmd())
	cmd.AddCommand(newPRCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. Variables already set in
// the environment always win.
//
// Resolution order:
//  1. $CWD/.env.local  (per-repo override, gitignored)
//  2. $CWD/.env        (per-repo)
//  3. <config dir>/env (global fallback, usually ~/.config/scribe/env)
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
	if dir := config.Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}

// useColor resolves the effective color setting from the --color flag and
// TTY detection on the command's output.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}
