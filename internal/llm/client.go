// Package llm provides the Anthropic messages client that turns shaped
// change context into commit messages and pull-request drafts.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorewood/scribe/internal/output"
)

const (
	apiURL           = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"

	// Token budgets per path: a commit message is a single line,
	// a PR draft needs room for a structured body.
	commitMaxTokens = 256
	prMaxTokens     = 1024
)

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client sends one request per call to the drafting engine.
// Calls are strictly sequential; the client holds no mutable state.
type Client struct {
	config     Config
	httpClient HTTPDoer
}

// NewClient creates a client with the given configuration.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// WithHTTPDoer replaces the HTTP transport, for tests.
// Returns the client for chaining.
func (c *Client) WithHTTPDoer(doer HTTPDoer) *Client {
	c.httpClient = doer
	return c
}

// Model returns the resolved model identifier.
func (c *Client) Model() string {
	return c.config.Model
}

// Anthropic messages API types.
type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends a single user message and returns the concatenated text
// content of the response, trimmed.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := messageRequest{
		Model:     c.config.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	respBody, err := c.doRequest(ctx, body)
	if err != nil {
		return "", err
	}

	var result messageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", output.NewGenerationErrorRaw("failed to parse engine response", string(respBody), err)
	}

	if result.Error != nil {
		return "", output.NewGenerationError("API error: " + result.Error.Message)
	}

	var content strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	if content.Len() == 0 {
		return "", output.NewGenerationError("engine response contained no text content")
	}

	return strings.TrimSpace(content.String()), nil
}

func (c *Client) doRequest(ctx context.Context, body any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewUnexpectedError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewUnexpectedError(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.config.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewGenerationErrorRaw("engine request failed", "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewGenerationErrorRaw("failed to read engine response", "", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate error body to keep terminal output readable
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewGenerationError(fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, errBody))
	}

	return respBody, nil
}
