// Package gh wraps the GitHub CLI for pull-request operations.
package gh

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/scribe/internal/output"
)

// Run executes a gh command and returns its trimmed stdout.
// Returns an *output.Error carrying the command and stderr on failure.
func Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewUserError("gh not found: install the GitHub CLI and authenticate with 'gh auth login'")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewToolError("gh "+strings.Join(args, " "), errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ExistingPRURL returns the URL of an open PR for the current branch,
// or an empty string when none exists. Lookup failures are treated as
// "no PR" so a fresh branch can proceed to creation.
func ExistingPRURL(ctx context.Context) string {
	url, err := Run(ctx, "pr", "view", "--json", "url", "--jq", ".url")
	if err != nil {
		return ""
	}
	return url
}

// CreatePR creates a pull request and returns its URL.
func CreatePR(ctx context.Context, title, body, base, head string) (string, error) {
	return Run(ctx, "pr", "create",
		"--title", title,
		"--body", body,
		"--base", base,
		"--head", head,
	)
}
