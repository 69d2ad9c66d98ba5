// Package clarify runs the user-in-the-loop refinement cycle for
// pull-request drafts: while the engine asks for clarification, the
// user's answer is fed back as additional context for a redraft.
package clarify

import (
	"context"
	"strings"

	"github.com/gorewood/scribe/internal/llm"
	"github.com/gorewood/scribe/internal/output"
)

// MaxRounds caps the number of question/answer rounds. When the engine is
// still asking after this many rounds, the latest draft is accepted with
// the clarification flag cleared.
const MaxRounds = 3

// Asker obtains one answer from the user for one question. An empty
// answer means "skip": the current draft is accepted without another
// engine call. Implementations block until input is available.
type Asker interface {
	Ask(question string) (string, error)
}

// AskerFunc adapts a function to the Asker interface.
type AskerFunc func(question string) (string, error)

// Ask calls f.
func (f AskerFunc) Ask(question string) (string, error) {
	return f(question)
}

// RedraftFunc re-invokes the generation client with the latest answer as
// additional context. Only the latest answer is resent alongside the
// original change context; earlier rounds are not replayed.
type RedraftFunc func(ctx context.Context, answer string) (*llm.PRDraft, error)

// Refine drives the clarification loop to a final accepted draft.
// The returned draft never carries NeedsClarification=true.
func Refine(ctx context.Context, draft *llm.PRDraft, redraft RedraftFunc, asker Asker) (*llm.PRDraft, error) {
	for round := 0; round < MaxRounds; round++ {
		if !draft.NeedsClarification {
			return draft, nil
		}

		question := strings.TrimSpace(draft.ClarificationQuestion)
		if question == "" {
			// Malformed draft: the flag is set without a question.
			// Clear it locally and accept what we have.
			draft.NeedsClarification = false
			return draft, nil
		}

		answer, err := asker.Ask(question)
		if err != nil {
			return nil, output.NewUserError("failed to read input: " + err.Error())
		}

		if strings.TrimSpace(answer) == "" {
			// User opted out: accept the current draft as final
			// without a further engine call.
			draft.NeedsClarification = false
			return draft, nil
		}

		draft, err = redraft(ctx, answer)
		if err != nil {
			return nil, err
		}
	}

	// Round cap reached: force acceptance of the latest draft.
	draft.NeedsClarification = false
	return draft, nil
}
