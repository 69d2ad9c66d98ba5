//go:build integration

// Package integration provides integration tests for the scribe CLI.
// These tests build the binary and exercise precondition handling in real
// git repositories. None of them reach the drafting engine: every scenario
// fails a precondition before any network call would happen.
//
// Run with: go test -tags=integration ./internal/integration/...
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testRepo is a helper for creating and managing test git repositories.
type testRepo struct {
	t      *testing.T
	dir    string
	binary string
}

// newTestRepo builds the scribe binary and initializes a git repo in a
// temp directory.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()

	binary := filepath.Join(dir, "scribe")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/scribe")
	buildCmd.Dir = findProjectRoot(t)
	buildCmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build scribe: %v\n%s", err, output)
	}

	repo := &testRepo{t: t, dir: dir, binary: binary}

	repo.git("init", "--initial-branch=main")
	repo.git("config", "user.email", "test@example.com")
	repo.git("config", "user.name", "Test User")
	repo.git("config", "commit.gpgsign", "false")

	return repo
}

// findProjectRoot locates the project root by finding go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// git runs a git command in the test repo.
func (r *testRepo) git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}

// createFile creates a file with the given content.
func (r *testRepo) createFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatalf("failed to write file %s: %v", name, err)
	}
}

// commit stages everything and commits.
func (r *testRepo) commit(msg string) {
	r.t.Helper()
	r.git("add", "-A")
	r.git("commit", "-m", msg)
}

// scribe runs the scribe binary with the given args and a dummy API key
// so scenarios stop at their precondition instead of the credential check.
// Returns stdout, stderr, and the exit code.
func (r *testRepo) scribe(args ...string) (string, string, int) {
	r.t.Helper()

	cmd := exec.Command(r.binary, args...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(), "ANTHROPIC_API_KEY=dummy-key-for-tests")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		r.t.Fatalf("failed to run scribe: %v", err)
	}
	return stdout.String(), stderr.String(), code
}

func TestCommitWithoutStagedChanges(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.txt", "hello\n")
	repo.commit("initial")

	_, stderr, code := repo.scribe("commit")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "no staged changes") {
		t.Errorf("stderr = %q, want no-staged-changes message", stderr)
	}
}

func TestCommitWithOnlyLockFilesStaged(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.txt", "hello\n")
	repo.commit("initial")

	repo.createFile("package-lock.json", "{}\n")
	repo.git("add", "package-lock.json")

	_, stderr, code := repo.scribe("commit")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "no staged changes") {
		t.Errorf("stderr = %q, want no-staged-changes message", stderr)
	}
}

func TestCommitWithoutAPIKey(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.txt", "hello\n")
	repo.git("add", "a.txt")

	cmd := exec.Command(repo.binary, "commit")
	cmd.Dir = repo.dir
	cmd.Env = []string{"PATH=" + os.Getenv("PATH"), "HOME=" + repo.dir}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit 1 without API key, got %v", err)
	}
	if !strings.Contains(stderr.String(), "ANTHROPIC_API_KEY") {
		t.Errorf("stderr = %q, want credential message", stderr.String())
	}
}

func TestPROnBaseBranch(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.txt", "hello\n")
	repo.commit("initial")

	// No remote: default branch detection falls back to "main", which is
	// exactly where we are standing.
	_, stderr, code := repo.scribe("pr")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "base branch") {
		t.Errorf("stderr = %q, want on-base-branch message", stderr)
	}
}

func TestVersionFlag(t *testing.T) {
	repo := newTestRepo(t)

	stdout, _, code := repo.scribe("--version")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "dev") {
		t.Errorf("stdout = %q, want dev version string", stdout)
	}
}
