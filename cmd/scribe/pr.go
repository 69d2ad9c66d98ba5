package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/scribe/internal/changeset"
	"github.com/gorewood/scribe/internal/clarify"
	"github.com/gorewood/scribe/internal/gh"
	"github.com/gorewood/scribe/internal/git"
	"github.com/gorewood/scribe/internal/llm"
	"github.com/gorewood/scribe/internal/output"
	"github.com/gorewood/scribe/internal/prompt"
)

type prFlags struct {
	yes    bool
	dryRun bool
}

// prDeps are the collaborators of the PR flow, injectable for tests.
type prDeps struct {
	currentBranch func() (string, error)
	defaultBranch func() string
	existingPR    func(ctx context.Context) string
	remoteExists  func(branch string) bool
	hasUnpushed   func() bool
	push          func(ctx context.Context, branch string) error
	collect       func(base string) (*changeset.ChangeSet, error)
	loadTemplate  func() string
	draft         func(ctx context.Context, prompt string) (*llm.PRDraft, error)
	createPR      func(ctx context.Context, title, body, base, head string) (string, error)
	asker         clarify.Asker
}

// newPRCmd creates the pr command.
func newPRCmd() *cobra.Command {
	var flags prFlags

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Draft a pull request for the current branch and open it",
		Long: `Draft a PR title and description from the branch's changes and open it.

The branch-relative diff, file list, and commit log (compared against the
detected default branch) are sent to the drafting engine. When the engine
needs more context it asks a clarification question; answer it to refine
the draft, or press enter to proceed with the draft as-is. The repository's
pull-request template is honored when present.

Examples:
  scribe pr             # draft, preview, confirm, create
  scribe pr --dry-run   # draft and preview only
  scribe pr --yes       # create without the ready prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			cfg, err := llm.ConfigFromEnv()
			if err != nil {
				printer.Error(err)
				return err
			}
			client := llm.NewClient(cfg)

			deps := prDeps{
				currentBranch: git.CurrentBranch,
				defaultBranch: git.DefaultBranch,
				existingPR:    gh.ExistingPRURL,
				remoteExists:  git.RemoteBranchExists,
				hasUnpushed:   git.HasUnpushedCommits,
				push:          git.Push,
				collect:       changeset.CollectBranch,
				loadTemplate:  prompt.LoadPRTemplate,
				draft:         client.GeneratePRDraft,
				createPR:      gh.CreatePR,
				asker:         newStdinAsker(cmd.InOrStdin(), cmd.ErrOrStderr()),
			}
			return runPR(cmd, flags, deps)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Create the PR without the ready prompt")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Generate the PR content but do not create it")

	return cmd
}

// runPR executes the PR flow with the given collaborators.
func runPR(cmd *cobra.Command, flags prFlags, deps prDeps) error {
	printer := newPrinter(cmd)
	ctx := cmd.Context()

	branch, err := deps.currentBranch()
	if err != nil {
		printer.Error(err)
		return err
	}
	if branch == "" {
		userErr := output.NewUserError("not on a branch. Checkout a branch first")
		printer.Error(userErr)
		return userErr
	}

	base := deps.defaultBranch()
	printer.Stderr("Current branch: %s\n", branch)
	printer.Stderr("Base branch: %s\n", base)

	if branch == base {
		userErr := output.NewUserError(fmt.Sprintf("you are on the base branch (%s). Create a feature branch first", base))
		printer.Error(userErr)
		return userErr
	}

	if url := deps.existingPR(ctx); url != "" {
		printer.Success("A PR already exists for this branch: %s", url)
		return nil
	}

	if !flags.dryRun {
		if !deps.remoteExists(branch) || deps.hasUnpushed() {
			printer.Stderr("Pushing branch %s...\n", branch)
			if err := deps.push(ctx, branch); err != nil {
				printer.Error(err)
				return err
			}
		}
	}

	printer.Stderr("\nGathering commit information...\n")
	cs, err := deps.collect(base)
	if err != nil {
		printer.Error(err)
		return err
	}

	printer.Stderr("\nChanged files (%d):\n", len(cs.Files))
	for i, file := range cs.Files {
		if i == 10 {
			printer.Stderr("  ... and %d more\n", len(cs.Files)-10)
			break
		}
		printer.Stderr("  %s\n", file)
	}

	diff, truncated := prompt.Truncate(cs.Diff, prompt.MaxDiffChars)
	if truncated {
		printer.Warn("diff truncated (%d chars -> %d chars)", len(cs.Diff), prompt.MaxDiffChars)
	}

	template := deps.loadTemplate()

	// Each engine call resends the original change context plus at most
	// the latest clarification answer.
	buildPrompt := func(extraContext string) string {
		return prompt.PR(cs.Files, cs.Commits, diff, template, extraContext)
	}

	printer.Stderr("\nGenerating PR description...\n")
	draft, err := deps.draft(ctx, buildPrompt(""))
	if err != nil {
		printer.Error(err)
		return err
	}

	draft, err = clarify.Refine(ctx, draft, func(ctx context.Context, answer string) (*llm.PRDraft, error) {
		printer.Stderr("Refining draft...\n")
		return deps.draft(ctx, buildPrompt(answer))
	}, deps.asker)
	if err != nil {
		printer.Error(err)
		return err
	}

	previewDraft(printer, "PR preview", draft)

	if flags.dryRun {
		printer.Stderr("\n[dry-run] Would create PR with the above content.\n")
		return nil
	}

	if !flags.yes {
		accepted, final, err := confirmDraft(ctx, printer, draft, deps)
		if err != nil {
			printer.Error(err)
			return err
		}
		if !accepted {
			printer.Stderr("PR creation cancelled.\n")
			return nil
		}
		draft = final
	}

	printer.Stderr("\nCreating PR...\n")
	url, err := deps.createPR(ctx, draft.Title, draft.Body, base, branch)
	if err != nil {
		printer.Error(err)
		return err
	}
	printer.Success("%s", url)

	return nil
}

// confirmDraft runs the ready prompt: accept, cancel, or treat any other
// input as feedback that revises the draft before asking again.
func confirmDraft(ctx context.Context, printer *output.Printer, draft *llm.PRDraft, deps prDeps) (bool, *llm.PRDraft, error) {
	for {
		answer, err := deps.asker.Ask("\nIs this PR ready to create? (Y/n/comment)")
		if err != nil {
			return false, nil, output.NewUserError("failed to read input: " + err.Error())
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
			return true, draft, nil
		case "n", "no":
			return false, nil, nil
		}

		printer.Stderr("\nAdjusting PR based on your feedback...\n")
		draft, err = deps.draft(ctx, prompt.Revise(draft.Title, draft.Body, answer))
		if err != nil {
			return false, nil, err
		}
		previewDraft(printer, "Updated PR preview", draft)
	}
}

// previewDraft renders the draft between horizontal rules.
func previewDraft(printer *output.Printer, title string, draft *llm.PRDraft) {
	printer.Section(title)
	printer.KeyValue("Title", draft.Title)
	printer.Println("")
	printer.Println("%s", draft.Body)
	printer.Rule(60)
}
