package bootstrap

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/genki-tutor/internal/config"
	"github.com/at-ishikawa/genki-tutor/internal/inference"
	"github.com/at-ishikawa/genki-tutor/internal/inference/anthropic"
	"github.com/at-ishikawa/genki-tutor/internal/inference/gemini"
	"github.com/at-ishikawa/genki-tutor/internal/inference/openai"
	"github.com/at-ishikawa/genki-tutor/internal/lessons"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
	"github.com/at-ishikawa/genki-tutor/internal/validation"
)

// NewInferenceClient creates the completion client selected by cfg.Provider.
// The returned close function releases the client's connections.
// A missing API key is not an error here; it is reported on each call instead.
func NewInferenceClient(ctx context.Context, cfg *config.Config) (inference.Client, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Provider {
	case config.ProviderOpenAI:
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		return client, client.Close, nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("gemini.NewClient > %w", err)
		}
		return client, noop, nil
	case config.ProviderAnthropic:
		return anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.BaseURL), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
}

// NewTutorService builds the tutor service on top of client, honoring the normalizer settings.
func NewTutorService(cfg *config.Config, client inference.Client) (*tutor.Service, error) {
	var opts []tutor.Option
	if cfg.Normalizer.Strict {
		validator, err := validation.New("json")
		if err != nil {
			return nil, fmt.Errorf("validation.New > %w", err)
		}
		opts = append(opts, tutor.WithValidator(validator))
	}
	return tutor.NewService(client, opts...), nil
}

func NewLessonCatalogue(cfg *config.Config) *lessons.Catalogue {
	return lessons.NewCatalogue(cfg.Lessons.File)
}
