// Package gemini implements inference.Client on the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/at-ishikawa/genki-tutor/internal/inference"
)

const providerName = "gemini"

type Client struct {
	client *genai.Client
	model  string
}

var _ inference.Client = (*Client)(nil)

// NewClient creates a Gemini client. Without an API key the client is still
// returned and every Complete call fails with inference.ErrMissingCredential.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return &Client{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient > %w", err)
	}
	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Complete(ctx context.Context, req inference.CompletionRequest) (string, error) {
	if c.client == nil {
		return "", inference.NewProviderError(providerName, fmt.Errorf("GEMINI_API_KEY is not set: %w", inference.ErrMissingCredential))
	}

	config := &genai.GenerateContentConfig{}
	if req.Sampling.Temperature > 0 {
		temperature := req.Sampling.Temperature
		config.Temperature = &temperature
	}
	if req.Sampling.TopP > 0 {
		topP := req.Sampling.TopP
		config.TopP = &topP
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", inference.NewProviderError(providerName, fmt.Errorf("Models.GenerateContent > %w", err))
	}

	content := result.Text()
	slog.Default().Debug("gemini response content",
		"model", c.model,
		"content", content,
	)
	return content, nil
}
