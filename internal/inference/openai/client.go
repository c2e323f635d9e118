package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/genki-tutor/internal/inference"
	"resty.dev/v3"
)

const providerName = "openai"

type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey, model, baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	TopP        float32   `json:"top_p,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete implements the inference.Client interface.
// Each call sends exactly one chat completion request.
func (client *Client) Complete(ctx context.Context, req inference.CompletionRequest) (string, error) {
	content, err := client.complete(ctx, req)
	if err != nil {
		return "", inference.NewProviderError(providerName, err)
	}
	return content, nil
}

func (client *Client) complete(ctx context.Context, req inference.CompletionRequest) (string, error) {
	if client.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set: %w", inference.ErrMissingCredential)
	}

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: req.Sampling.Temperature,
		TopP:        req.Sampling.TopP,
		Messages: []Message{
			{Role: RoleUser, Content: req.Prompt},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	slog.Default().Debug("openai response content",
		"model", client.model,
		"usage", responseBody.Usage,
		"content", content,
	)
	return content, nil
}
