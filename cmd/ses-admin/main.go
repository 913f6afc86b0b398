// Package main is the entry point for the SES admin console server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mouessam/localstack-ses-admin/internal/config"
	"github.com/mouessam/localstack-ses-admin/internal/httpd"
	"github.com/mouessam/localstack-ses-admin/internal/provider/capture"
	"github.com/mouessam/localstack-ses-admin/internal/provider/ses"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	flag.Parse()

	// A missing .env file is fine; env vars may come from anywhere.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emailProvider, err := ses.New(ctx, ses.Config{
		Endpoint:        cfg.AWS.Endpoint,
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	})
	if err != nil {
		slog.Error("failed to create SES provider", "error", err)
		os.Exit(1)
	}

	messageStore := capture.New(cfg.AWS.Endpoint)

	server := httpd.New(httpd.Config{
		ListenAddr:    cfg.Server.Listen,
		Development:   cfg.IsDevelopment(),
		UIDir:         cfg.Server.UIDir,
		MaxUploadSize: cfg.Server.MaxUploadSize,
		Email:         emailProvider,
		Messages:      messageStore,
	})

	slog.Info("starting ses-admin",
		"listen", cfg.Server.Listen,
		"endpoint", cfg.AWS.Endpoint,
		"region", cfg.AWS.Region,
		"mode", cfg.Server.Mode,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigCh
		slog.Info("received signal, initiating shutdown", "signal", sig)
		cancel()
	}()

	// Blocks until the context is cancelled.
	if err := server.Start(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("ses-admin stopped")
}

// loadConfig loads configuration from the specified path (YAML + env override)
// or from environment variables only if no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupLogger configures the global slog logger with JSON output and the
// specified log level.
func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
