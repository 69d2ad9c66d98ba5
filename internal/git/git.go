// Package git provides Git operations via exec for the scribe CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gorewood/scribe/internal/output"
)

// Run executes a git command with the given arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.Error carrying the command and stderr on failure.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext executes a git command with the given context and arguments.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewUserError("git not found: ensure git is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewToolError("git "+strings.Join(args, " "), errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if the current directory is inside a git repository.
func IsRepo() bool {
	_, err := Run("rev-parse", "--git-dir")
	return err == nil
}

// CurrentBranch returns the name of the current branch.
// Returns an empty string in detached HEAD state.
func CurrentBranch() (string, error) {
	return Run("branch", "--show-current")
}

var headBranchRe = regexp.MustCompile(`HEAD branch: (.+)`)

// DefaultBranch returns the default branch advertised by the origin remote.
// Falls back to "main" when the remote is unreachable or advertises nothing.
// Never fails.
func DefaultBranch() string {
	out, err := Run("remote", "show", "origin")
	if err != nil {
		return "main"
	}
	return ParseDefaultBranch(out)
}

// ParseDefaultBranch extracts the HEAD branch from `git remote show origin`
// output, defaulting to "main".
func ParseDefaultBranch(remoteInfo string) string {
	if m := headBranchRe.FindStringSubmatch(remoteInfo); m != nil {
		if branch := strings.TrimSpace(m[1]); branch != "" {
			return branch
		}
	}
	return "main"
}

// RemoteBranchExists reports whether the given branch exists on origin.
func RemoteBranchExists(branch string) bool {
	_, err := Run("ls-remote", "--exit-code", "--heads", "origin", branch)
	return err == nil
}

// HasUnpushedCommits reports whether the current branch is ahead of its
// upstream. Returns false when tracking info is unavailable.
func HasUnpushedCommits() bool {
	out, err := Run("status", "-sb")
	if err != nil {
		return false
	}
	return strings.Contains(out, "ahead")
}

// Push pushes the given branch to origin with upstream tracking.
func Push(ctx context.Context, branch string) error {
	_, err := RunContext(ctx, "push", "-u", "origin", branch)
	return err
}

// Commit commits staged changes with the given message and returns
// git's summary output.
func Commit(ctx context.Context, message string) (string, error) {
	return RunContext(ctx, "commit", "-m", message)
}

// StagedDiff returns the index-vs-HEAD diff, honoring pathspec exclusions.
func StagedDiff(exclusions []string) (string, error) {
	args := append([]string{"diff", "--staged", "--", "."}, exclusions...)
	return Run(args...)
}

// StagedFiles returns the paths of staged files, one per element.
func StagedFiles() ([]string, error) {
	out, err := Run("diff", "--staged", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// Fallback depths for branch-relative collection when merge-base
// comparison against the base branch fails.
const (
	fallbackRef      = "HEAD~5"
	logFallbackCount = "-10"
)

// DiffRange returns the three-dot (merge-base) diff from base to HEAD,
// honoring pathspec exclusions. When the comparison fails (no merge base,
// unknown ref), it falls back to diffing the last few commits on HEAD.
func DiffRange(base string, exclusions []string) (string, error) {
	args := append([]string{"diff", base + "...HEAD", "--", "."}, exclusions...)
	out, err := Run(args...)
	if err == nil {
		return out, nil
	}

	fallback := append([]string{"diff", fallbackRef, "HEAD", "--", "."}, exclusions...)
	return Run(fallback...)
}

// FilesChanged returns the paths changed between base and HEAD using
// merge-base comparison, with the same fallback as DiffRange.
func FilesChanged(base string) ([]string, error) {
	out, err := Run("diff", "--name-only", base+"...HEAD")
	if err != nil {
		out, err = Run("diff", "--name-only", fallbackRef, "HEAD")
		if err != nil {
			return nil, err
		}
	}
	return splitLines(out), nil
}

// CommitLog returns commit subjects and bodies from base to HEAD,
// oldest first. Falls back to the last commits on HEAD when the base
// comparison fails.
func CommitLog(base string) (string, error) {
	out, err := Run("log", base+"..HEAD", "--pretty=format:%s%n%b", "--reverse")
	if err == nil {
		return out, nil
	}
	return Run("log", logFallbackCount, "--pretty=format:%s%n%b", "--reverse")
}

// splitLines splits command output into non-empty lines.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}
