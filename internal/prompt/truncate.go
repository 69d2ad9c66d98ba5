// Package prompt shapes change context into bounded instruction payloads
// for the drafting engine.
package prompt

import "fmt"

// MaxDiffChars is the diff budget: diffs longer than this are truncated
// before being sent to the engine.
const MaxDiffChars = 8000

// Truncate bounds a diff to maxChars. Oversized diffs keep their prefix
// and gain a marker reporting how many characters were omitted. Pure
// prefix truncation, no summarization; predictable over clever.
// The second return reports whether truncation occurred.
func Truncate(diff string, maxChars int) (string, bool) {
	if len(diff) <= maxChars {
		return diff, false
	}
	truncated := fmt.Sprintf("%s\n\n... (diff truncated, %d characters omitted)",
		diff[:maxChars], len(diff)-maxChars)
	return truncated, true
}
