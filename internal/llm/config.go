package llm

import (
	"os"

	"github.com/gorewood/scribe/internal/output"
)

// DefaultModel is the model used when SCRIBE_MODEL is not set.
const DefaultModel = "claude-sonnet-4-20250514"

// Config holds the drafting-engine settings resolved once per process.
type Config struct {
	APIKey string
	Model  string
}

// ConfigFromEnv resolves configuration from the environment:
// ANTHROPIC_API_KEY (required) and SCRIBE_MODEL (optional, defaults to
// DefaultModel). A missing key fails before any network attempt.
func ConfigFromEnv() (Config, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return Config{}, output.NewGenerationError(
			"ANTHROPIC_API_KEY environment variable is required. Set it in your .env file or environment")
	}

	model := os.Getenv("SCRIBE_MODEL")
	if model == "" {
		model = DefaultModel
	}

	return Config{APIKey: apiKey, Model: model}, nil
}
