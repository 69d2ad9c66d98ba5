package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/scribe/internal/changeset"
	"github.com/gorewood/scribe/internal/clarify"
	"github.com/gorewood/scribe/internal/git"
	"github.com/gorewood/scribe/internal/llm"
	"github.com/gorewood/scribe/internal/output"
	"github.com/gorewood/scribe/internal/prompt"
)

type commitFlags struct {
	yes    bool
	dryRun bool
}

// commitDeps are the collaborators of the commit flow, injectable for
// tests: change collection, the generation client, the asker, and the
// final git commit.
type commitDeps struct {
	collect  func() (*changeset.ChangeSet, error)
	generate func(ctx context.Context, prompt string) (string, error)
	commit   func(ctx context.Context, message string) (string, error)
	asker    clarify.Asker
}

// newCommitCmd creates the commit command.
func newCommitCmd() *cobra.Command {
	var flags commitFlags

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Draft a commit message for staged changes and commit",
		Long: `Draft a commit message from the staged diff and commit with it.

The staged diff and file list (lock files excluded) are sent to the
drafting engine, which answers with a single conventional-commit line.
The message is shown before committing unless --yes is set.

Examples:
  scribe commit             # draft, confirm, commit
  scribe commit --dry-run   # draft only, commit nothing
  scribe commit --yes       # draft and commit without confirmation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			cfg, err := llm.ConfigFromEnv()
			if err != nil {
				printer.Error(err)
				return err
			}
			client := llm.NewClient(cfg)

			deps := commitDeps{
				collect:  changeset.CollectStaged,
				generate: client.GenerateCommitMessage,
				commit:   git.Commit,
				asker:    newStdinAsker(cmd.InOrStdin(), cmd.ErrOrStderr()),
			}
			return runCommit(cmd, flags, deps)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Commit without confirmation")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Generate the message but do not commit")

	return cmd
}

// runCommit executes the commit flow with the given collaborators.
func runCommit(cmd *cobra.Command, flags commitFlags, deps commitDeps) error {
	printer := newPrinter(cmd)
	ctx := cmd.Context()

	cs, err := deps.collect()
	if err != nil {
		printer.Error(err)
		return err
	}

	printer.Stderr("Staged files:\n")
	for _, file := range cs.Files {
		printer.Stderr("  %s\n", file)
	}

	diff, truncated := prompt.Truncate(cs.Diff, prompt.MaxDiffChars)
	if truncated {
		printer.Warn("diff truncated (%d chars -> %d chars)", len(cs.Diff), prompt.MaxDiffChars)
	}

	printer.Stderr("\nGenerating commit message...\n")
	message, err := deps.generate(ctx, prompt.Commit(diff))
	if err != nil {
		printer.Error(err)
		return err
	}

	printer.Section("Commit message")
	printer.Println("%s", message)

	if flags.dryRun {
		printer.Stderr("\n[dry-run] Would commit with the above message.\n")
		return nil
	}

	if !flags.yes {
		answer, err := deps.asker.Ask("\nCommit with this message? (Y/n)")
		if err != nil {
			userErr := output.NewUserError("failed to read input: " + err.Error())
			printer.Error(userErr)
			return userErr
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
		default:
			printer.Stderr("Commit cancelled.\n")
			return nil
		}
	}

	out, err := deps.commit(ctx, message)
	if err != nil {
		printer.Error(err)
		return err
	}
	printer.Success("%s", out)

	return nil
}
