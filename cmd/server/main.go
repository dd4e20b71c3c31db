package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaki95/track-search/config"
	"github.com/jaki95/track-search/internal/deezer"
	"github.com/jaki95/track-search/internal/server"
	"github.com/jaki95/track-search/internal/session"
	"github.com/jaki95/track-search/tracksearch"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to the configuration file")
	port := flag.String("port", "", "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := deezer.NewClient(cfg.Deezer)
	searcher := tracksearch.New(client, cfg.Deezer.PlaceholderCover)

	sessions := session.NewManager(cfg.Session.TTL)
	sessions.StartCleanupWorker(ctx, cfg.Session.CleanupInterval)

	srv := server.New(cfg, searcher, sessions)

	slog.Info("Starting track search API server", "port", cfg.Server.Port, "provider", cfg.Deezer.BaseURL)
	if err := srv.Start(ctx, cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
