package inference

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client sends a single-turn prompt to a completion provider and returns the raw reply text.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is one user message plus the sampling parameters for it.
type CompletionRequest struct {
	Prompt   string
	Sampling SamplingParams
}

// SamplingParams controls output variety. A zero TopP leaves the provider default.
type SamplingParams struct {
	Temperature float32
	TopP        float32
}

var (
	// QuizSampling is the highest-variance preset so repeated quizzes differ.
	QuizSampling    = SamplingParams{Temperature: 1.4, TopP: 0.9}
	ExplainSampling = SamplingParams{Temperature: 1.1, TopP: 0.95}
	NotesSampling   = SamplingParams{Temperature: 0.7}
)

// ErrMissingCredential is reported when no API key is configured for the provider.
var ErrMissingCredential = errors.New("missing API credential")

// ProviderError wraps every failure of a completion call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err, keeping an existing ProviderError as is.
func NewProviderError(provider string, err error) error {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return err
	}
	return &ProviderError{Provider: provider, Err: err}
}
