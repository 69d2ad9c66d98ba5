package prompt

import "fmt"

// Commit builds the commit-message instructions for a staged diff.
// The constraints (type prefix, imperative mood, single line, 72 chars)
// are framing for the engine; the response is trusted beyond trimming.
func Commit(diff string) string {
	return fmt.Sprintf(`Generate a concise git commit message for the following diff. The message should:
- Start with a type prefix (feat, fix, docs, style, refactor, test, chore)
- Be written in imperative mood
- Be a single line, max 72 characters
- Not include any explanation, just the commit message

Diff:
%s`, diff)
}
