package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "user error", err: NewUserError("no staged changes"), want: ExitFailure},
		{name: "tool error", err: NewToolError("git diff", "fatal: bad revision"), want: ExitFailure},
		{name: "generation error", err: NewGenerationError("missing API key"), want: ExitFailure},
		{name: "untyped error", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "user", err: NewUserError("x"), want: KindUser},
		{name: "tool", err: NewToolError("git log", "err"), want: KindTool},
		{name: "generation", err: NewGenerationError("x"), want: KindGeneration},
		{name: "unexpected wrap", err: NewUnexpectedError(errors.New("x")), want: KindUnexpected},
		{name: "untyped defaults to unexpected", err: errors.New("x"), want: KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := NewToolError("git diff --staged", "fatal: not a git repository")
	msg := err.Error()
	if !strings.Contains(msg, "git diff --staged") {
		t.Errorf("tool error message missing command: %q", msg)
	}
	if !strings.Contains(msg, "fatal: not a git repository") {
		t.Errorf("tool error message missing stderr: %q", msg)
	}
}

func TestGenerationErrorRawKeepsResponse(t *testing.T) {
	cause := errors.New("invalid character '<'")
	err := NewGenerationErrorRaw("failed to parse response as JSON", "<html>oops</html>", cause)
	if err.Raw != "<html>oops</html>" {
		t.Errorf("Raw = %q, want original response text", err.Raw)
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to reach the cause")
	}
}

func TestPrinterError(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false).WithStderr(&errOut)

	p.Error(NewToolError("gh pr create", "auth required"))

	if out.Len() != 0 {
		t.Errorf("error output leaked to stdout: %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "Error: command failed") {
		t.Errorf("missing error prefix: %q", got)
	}
	if !strings.Contains(got, "gh pr create") || !strings.Contains(got, "auth required") {
		t.Errorf("missing command or stderr detail: %q", got)
	}
}

func TestPrinterSeparatesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false).WithStderr(&errOut)

	p.Println("result")
	p.Stderr("working...\n")
	p.Warn("diff truncated")

	if !strings.Contains(out.String(), "result") {
		t.Errorf("stdout missing result: %q", out.String())
	}
	if strings.Contains(out.String(), "working") || strings.Contains(out.String(), "truncated") {
		t.Errorf("status leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "working...") {
		t.Errorf("stderr missing status: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Warning: diff truncated") {
		t.Errorf("stderr missing warning: %q", errOut.String())
	}
}
