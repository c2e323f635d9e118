// Package anthropic implements inference.Client on the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/at-ishikawa/genki-tutor/internal/inference"
)

const (
	providerName = "anthropic"
	maxTokens    = 2048
	// The Messages API accepts temperatures in [0, 1].
	maxTemperature = 1.0
)

type Client struct {
	client anthropic.Client
	apiKey string
	model  string
}

var _ inference.Client = (*Client)(nil)

// NewClient creates an Anthropic client with SDK retries disabled.
// An empty baseURL keeps the SDK default.
func NewClient(apiKey, model, baseURL string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		client: anthropic.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, req inference.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", inference.NewProviderError(providerName, fmt.Errorf("ANTHROPIC_API_KEY is not set: %w", inference.ErrMissingCredential))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Sampling.Temperature > 0 {
		params.Temperature = anthropic.Float(min(float64(req.Sampling.Temperature), maxTemperature))
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", inference.NewProviderError(providerName, fmt.Errorf("Messages.New > %w", err))
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	slog.Default().Debug("anthropic response content",
		"model", c.model,
		"stop_reason", msg.StopReason,
		"content", content.String(),
	)
	return content.String(), nil
}
