package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/lhiebert01/network-log-analyzer/internal/analyzer"
	"github.com/lhiebert01/network-log-analyzer/internal/config"
	"github.com/lhiebert01/network-log-analyzer/internal/llm"
	"github.com/lhiebert01/network-log-analyzer/internal/logging"
	"github.com/lhiebert01/network-log-analyzer/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logging.Configure(cfg.Logging)

	ctx := context.Background()
	registry := llm.NewRegistry()

	if cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGemini(ctx, &cfg.Gemini)
		if err != nil {
			log.Fatalf("failed to create Gemini provider: %v", err)
		}
		registry.Register(gemini)
	}

	if cfg.OpenAI.APIKey != "" {
		openAI, err := llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			log.Fatalf("failed to create OpenAI provider: %v", err)
		}
		registry.Register(openAI)
	}

	an := analyzer.New(registry, defaultModel(cfg))

	srv := server.New(*cfg, an, registry)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "providers", registry.Names())
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// defaultModel picks the model used when a request does not name one:
// Gemini's default when Gemini is configured, OpenAI's otherwise.
func defaultModel(cfg *config.Config) string {
	if cfg.Gemini.APIKey != "" {
		return cfg.Gemini.Model
	}
	return cfg.OpenAI.Model
}
