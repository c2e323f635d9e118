package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/genki-tutor/internal/bootstrap"
	"github.com/at-ishikawa/genki-tutor/internal/config"
	"github.com/at-ishikawa/genki-tutor/internal/server"
)

const shutdownTimeout = 10 * time.Second

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "genki-tutor-server",
		Short:         "Genki tutor HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", os.Getenv("GENKI_TUTOR_CONFIG"), "config file path (default $GENKI_TUTOR_CONFIG)")
	return rootCmd
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	setupLogger(cfg.Log.Debug)

	httpServer, closeClient, err := newHTTPServer(ctx, cfg)
	if err != nil {
		return err
	}

	app := bootstrap.New()
	app.AddShutdownHook(func(ctx context.Context) error {
		return closeClient()
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(ctx)
	})

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server",
			slog.String("addr", httpServer.Addr),
			slog.String("provider", cfg.Provider),
			slog.String("lessons_file", cfg.Lessons.File),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// newHTTPServer wires the configured provider into the router.
// The returned close function releases the provider client.
func newHTTPServer(ctx context.Context, cfg *config.Config) (*http.Server, func() error, error) {
	client, closeClient, err := bootstrap.NewInferenceClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap.NewInferenceClient() > %w", err)
	}
	service, err := bootstrap.NewTutorService(cfg, client)
	if err != nil {
		_ = closeClient()
		return nil, nil, fmt.Errorf("bootstrap.NewTutorService() > %w", err)
	}
	handler, err := server.NewHandler(service, bootstrap.NewLessonCatalogue(cfg))
	if err != nil {
		_ = closeClient()
		return nil, nil, fmt.Errorf("server.NewHandler() > %w", err)
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(server.NewRouter(handler, cfg.Server.CORS.AllowedOrigins), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}, closeClient, nil
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
