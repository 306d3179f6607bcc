package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/pig/internal/api"
	"github.com/mcoot/pig/internal/config"
	"github.com/mcoot/pig/internal/factory"
)

func main() {
	configPath := flag.String("config", os.Getenv("PIG_CONFIG"), "Path to a pig.yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stdout)
	slog.SetDefault(logger)

	// Create application factory
	app := factory.New(factory.Config{
		Engine:       cfg.EngineConfig(),
		HistoryLimit: cfg.Game.HistoryLimit,
		Logger:       logger,
	})

	server := api.NewServer(app.Router(), cfg.ServerConfig(), logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("language", cfg.Game.Language),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		app.Close()
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		// Event streams never end on their own; closing the hub releases them
		app.Close()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
