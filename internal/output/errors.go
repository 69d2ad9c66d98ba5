// Package output provides structured output and error handling for the scribe CLI.
package output

import (
	"errors"
	"strings"
)

// Exit codes: 0 = success or user cancellation, 1 = any failure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind classifies an Error into the closed failure taxonomy.
type Kind int

const (
	// KindUser marks precondition failures caused by repository state
	// (no staged changes, on the base branch, etc.).
	KindUser Kind = iota
	// KindTool marks external command failures (git, gh).
	KindTool
	// KindGeneration marks drafting-engine failures: missing credentials,
	// unexpected response shapes, unparsable structured responses.
	KindGeneration
	// KindUnexpected marks anything uncategorized.
	KindUnexpected
)

// Error is the single error type surfaced by scribe operations.
// Tool failures carry the invoked command and its captured stderr;
// generation parse failures carry the raw response text.
type Error struct {
	Kind    Kind
	Message string
	Command string // failing external command, for KindTool
	Stderr  string // captured stderr, for KindTool
	Raw     string // raw engine response, for KindGeneration parse failures
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Command != "" {
		b.WriteString(": ")
		b.WriteString(e.Command)
	}
	if e.Stderr != "" {
		b.WriteString("\n")
		b.WriteString(e.Stderr)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for unmet preconditions.
func NewUserError(message string) *Error {
	return &Error{Kind: KindUser, Message: message}
}

// NewToolError creates an error for a failed external command,
// carrying the command line and its stderr.
func NewToolError(command, stderr string) *Error {
	return &Error{
		Kind:    KindTool,
		Message: "command failed",
		Command: command,
		Stderr:  stderr,
	}
}

// NewGenerationError creates an error for drafting-engine failures.
func NewGenerationError(message string) *Error {
	return &Error{Kind: KindGeneration, Message: message}
}

// NewGenerationErrorRaw creates a generation error that keeps the raw
// response text for diagnostics.
func NewGenerationErrorRaw(message, raw string, cause error) *Error {
	return &Error{Kind: KindGeneration, Message: message, Raw: raw, Cause: cause}
}

// NewUnexpectedError wraps an uncategorized failure.
func NewUnexpectedError(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: "unexpected error", Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// nil maps to ExitSuccess; every failure maps to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// KindOf returns the taxonomy kind for an error, defaulting to
// KindUnexpected for untyped errors.
func KindOf(err error) Kind {
	var scribeErr *Error
	if errors.As(err, &scribeErr) {
		return scribeErr.Kind
	}
	return KindUnexpected
}
