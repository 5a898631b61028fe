// Package llm wraps the Anthropic API for the two generation features:
// journal entry summaries and the situation brief.
package llm

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client sends single-turn completion requests to the Anthropic API.
// One configured model serves every request.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// New creates a Client for the given API key and model ID.
func New(apiKey, model string) *Client {
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Complete sends one system+user message pair and returns the text of the
// response. An empty completion is a valid empty string, not an error.
// No retries and no client-side timeout; cancellation comes from ctx.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return text, nil
}
