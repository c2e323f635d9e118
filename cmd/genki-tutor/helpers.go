package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/genki-tutor/internal/bootstrap"
	"github.com/at-ishikawa/genki-tutor/internal/config"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newTutorService wires the configured provider into a tutor service.
// The caller must call the returned close function.
func newTutorService(ctx context.Context, cfg *config.Config) (*tutor.Service, func() error, error) {
	client, closeClient, err := bootstrap.NewInferenceClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap.NewInferenceClient() > %w", err)
	}
	service, err := bootstrap.NewTutorService(cfg, client)
	if err != nil {
		_ = closeClient()
		return nil, nil, fmt.Errorf("bootstrap.NewTutorService() > %w", err)
	}
	return service, closeClient, nil
}
