package prompt

import (
	"fmt"
	"strings"
)

// defaultSections is the PR body layout used when the repository has no
// pull-request template.
const defaultSections = `Structure the PR body with these sections (only include sections relevant to the changes):
## Summary
Brief description of changes

## Changes
- Bullet points of specific changes

## Testing
How to test these changes
`

// responseContract is the JSON shape the engine must answer with on the
// PR path.
const responseContract = `Respond in JSON format:
{
  "title": "PR title (concise, max 72 chars)",
  "body": "PR description following the template",
  "needsClarification": false,
  "clarificationQuestion": null
}

If the changes are unclear or you need more context to write a good PR description, set needsClarification to true and provide a specific clarificationQuestion.

Only output valid JSON, no markdown code blocks.`

// PR builds the pull-request drafting instructions from branch-relative
// change context. The diff must already be bounded by Truncate. template
// and extraContext may be empty; extraContext carries the latest
// clarification answer only, never the full exchange history.
func PR(files []string, commits, diff, template, extraContext string) string {
	var templateInstructions string
	if template != "" {
		templateInstructions = fmt.Sprintf(
			"Use this PR template as a guide for the body structure. IMPORTANT: Remove any sections from the template that are not relevant to the changes (e.g., if there are no breaking changes, remove the breaking changes section; if there are no migrations, remove the migration section).\n\nTemplate:\n%s\n\n",
			template)
	} else {
		templateInstructions = defaultSections
	}

	var contextInfo string
	if extraContext != "" {
		contextInfo = fmt.Sprintf("\nAdditional context from user: %s\n", extraContext)
	}

	return fmt.Sprintf(`Generate a GitHub Pull Request title and description based on the following information.
%s
%s
Changed files:
%s

Commits:
%s

Diff (truncated if too long):
%s

%s`, contextInfo, templateInstructions, strings.Join(files, "\n"), commits, diff, responseContract)
}

// Revise builds instructions to update an existing draft from user
// feedback given at the confirmation step.
func Revise(title, body, feedback string) string {
	return fmt.Sprintf(`Update the following GitHub Pull Request based on the user's feedback.

Current PR:
Title: %s
Body:
%s

User feedback: %s

Respond in JSON format:
{
  "title": "Updated PR title (concise, max 72 chars)",
  "body": "Updated PR description",
  "needsClarification": false,
  "clarificationQuestion": null
}

Only output valid JSON, no markdown code blocks.`, title, body, feedback)
}
