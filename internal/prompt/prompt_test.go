package prompt

import (
	"strings"
	"testing"
)

func TestCommitPromptConstraints(t *testing.T) {
	p := Commit("+added line")

	for _, want := range []string{
		"type prefix",
		"imperative mood",
		"max 72 characters",
		"+added line",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("commit prompt missing %q", want)
		}
	}
}

func TestPRPromptDefaultSections(t *testing.T) {
	p := PR([]string{"src/a.go", "src/b.go"}, "feat: add a\n", "+diff content", "", "")

	for _, want := range []string{
		"## Summary",
		"## Changes",
		"## Testing",
		"src/a.go\nsrc/b.go",
		"feat: add a",
		"+diff content",
		"needsClarification",
		"Only output valid JSON",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("PR prompt missing %q", want)
		}
	}
}

func TestPRPromptWithTemplate(t *testing.T) {
	template := "## Motivation\n## Breaking changes\n"
	p := PR([]string{"src/a.go"}, "feat: x", "+d", template, "")

	if !strings.Contains(p, template) {
		t.Error("PR prompt missing template content")
	}
	if !strings.Contains(p, "Remove any sections from the template that are not relevant") {
		t.Error("PR prompt missing drop-irrelevant-sections directive")
	}
	if strings.Contains(p, "## Summary\nBrief description") {
		t.Error("PR prompt falls back to default sections despite template")
	}
}

func TestPRPromptExtraContext(t *testing.T) {
	p := PR([]string{"src/a.go"}, "feat: x", "+d", "", "It fixes ticket ABC-42")

	if !strings.Contains(p, "Additional context from user: It fixes ticket ABC-42") {
		t.Error("PR prompt missing user-supplied context")
	}
}

func TestRevisePrompt(t *testing.T) {
	p := Revise("Old title", "Old body", "mention the migration")

	for _, want := range []string{
		"Old title",
		"Old body",
		"User feedback: mention the migration",
		"Only output valid JSON",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("revise prompt missing %q", want)
		}
	}
}
