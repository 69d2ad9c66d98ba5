package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gorewood/scribe/internal/output"
)

// PRDraft is the structured result of the pull-request path.
// When NeedsClarification is set the draft is provisional and
// ClarificationQuestion carries the engine's follow-up.
type PRDraft struct {
	Title                 string `json:"title"`
	Body                  string `json:"body"`
	NeedsClarification    bool   `json:"needsClarification"`
	ClarificationQuestion string `json:"clarificationQuestion"`
}

// GenerateCommitMessage sends the commit prompt and returns the drafted
// message as a trimmed single string. The response is trusted as-is
// beyond trimming; length and format are framing constraints in the
// prompt, not locally enforced.
func (c *Client) GenerateCommitMessage(ctx context.Context, prompt string) (string, error) {
	text, err := c.complete(ctx, prompt, commitMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GeneratePRDraft sends the PR prompt and parses the response as a
// PRDraft JSON object. A parse failure is fatal for the call and keeps
// the raw response text for diagnostics; there is no repair or retry.
func (c *Client) GeneratePRDraft(ctx context.Context, prompt string) (*PRDraft, error) {
	text, err := c.complete(ctx, prompt, prMaxTokens)
	if err != nil {
		return nil, err
	}

	var draft PRDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, output.NewGenerationErrorRaw("failed to parse engine response as JSON", text, err)
	}

	return &draft, nil
}
