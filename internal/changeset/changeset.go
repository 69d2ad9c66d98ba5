// Package changeset gathers the change context drafts are generated from:
// changed file paths, the textual diff, and (for branch-relative collection)
// the commit log, with dependency lock files excluded throughout.
package changeset

import "strings"

// ChangeSet is the change context for one drafting invocation.
// Files and Diff are always derived from the same ref pair within a
// single collect call. Commits is empty for staged collection.
type ChangeSet struct {
	Files   []string
	Diff    string
	Commits string
}

// lockFiles are dependency lock files excluded from diffs and file lists.
// They are large, auto-generated, and never useful context for a summary.
// Matched by basename, not full path.
var lockFiles = []string{
	"package-lock.json",
	"bun.lock",
	"bun.lockb",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Gemfile.lock",
	"Cargo.lock",
	"poetry.lock",
	"composer.lock",
	"go.sum",
	"Pipfile.lock",
	"npm-shrinkwrap.json",
	"deno.lock",
	"flake.lock",
	"pdm.lock",
	"uv.lock",
}

// PathspecExclusions returns git pathspec magic (":!name") for every lock
// file, suitable for appending to diff commands.
func PathspecExclusions() []string {
	exclusions := make([]string, len(lockFiles))
	for i, name := range lockFiles {
		exclusions[i] = ":!" + name
	}
	return exclusions
}

// FilterLockFiles removes paths whose basename matches a lock file.
// Paths with non-matching basenames are retained regardless of directory.
func FilterLockFiles(files []string) []string {
	result := make([]string, 0, len(files))
	for _, file := range files {
		if !isLockFile(file) {
			result = append(result, file)
		}
	}
	return result
}

func isLockFile(path string) bool {
	basename := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		basename = path[idx+1:]
	}
	for _, name := range lockFiles {
		if basename == name {
			return true
		}
	}
	return false
}
