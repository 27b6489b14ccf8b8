package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/saminadamn/bp-debate-simulator/internal/anthropic"
	"github.com/saminadamn/bp-debate-simulator/internal/api"
	"github.com/saminadamn/bp-debate-simulator/internal/config"
	"github.com/saminadamn/bp-debate-simulator/internal/events"
)

func main() {
	// Local development loads from .env; deployed environments set real
	// environment variables and have no .env file.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("bpsim starting", "port", cfg.Port)

	// Anthropic client (optional — templates cover every endpoint without it)
	var llm *anthropic.Client
	if cfg.AnthropicAPIKey != "" {
		llm = anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		slog.Info("anthropic client ready", "model", cfg.AnthropicModel)
	} else {
		slog.Warn("anthropic not configured — running on templates only")
	}

	// NATS publisher (optional — rounds work fine without event consumers)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		p, err := events.Connect(cfg.NatsURL, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		publisher = p
		defer publisher.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without event publishing")
	}

	srv := api.NewServer(cfg.Port, cfg.DefaultSkill, llm, publisher)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("bpsim ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("bpsim stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
