package changeset

import (
	"strings"

	"github.com/gorewood/scribe/internal/git"
	"github.com/gorewood/scribe/internal/output"
)

// CollectStaged gathers the staged diff and file list from the index.
// Fails with a user error when nothing meaningful is staged after
// lock-file exclusion.
func CollectStaged() (*ChangeSet, error) {
	files, err := git.StagedFiles()
	if err != nil {
		return nil, err
	}
	files = FilterLockFiles(files)
	if len(files) == 0 {
		return nil, output.NewUserError("no staged changes found. Stage your changes with 'git add' first")
	}

	diff, err := git.StagedDiff(PathspecExclusions())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(diff) == "" {
		return nil, output.NewUserError("no diff content found in staged changes")
	}

	return &ChangeSet{Files: files, Diff: diff}, nil
}

// CollectBranch gathers the branch-relative diff, file list, and commit
// log against the given base branch using merge-base comparison. Branches
// without a usable relationship to the base fall back to a fixed-depth
// comparison against recent commits on HEAD (handled in the git layer),
// so orphan and out-of-sync branches still produce usable context.
func CollectBranch(base string) (*ChangeSet, error) {
	files, err := git.FilesChanged(base)
	if err != nil {
		return nil, err
	}
	files = FilterLockFiles(files)
	if len(files) == 0 {
		return nil, output.NewUserError("no changes found compared to base branch")
	}

	diff, err := git.DiffRange(base, PathspecExclusions())
	if err != nil {
		return nil, err
	}

	commits, err := git.CommitLog(base)
	if err != nil {
		return nil, err
	}

	return &ChangeSet{Files: files, Diff: diff, Commits: commits}, nil
}
