package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8001"`
	Host           string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"120s"`
}

type GeminiConfig struct {
	APIKey string `envconfig:"GOOGLE_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-lite"`
}

type OpenAIConfig struct {
	APIKey      string `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

type LoggingConfig struct {
	// Environment selects the log level: "development" enables debug logging.
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	File        string `envconfig:"LOG_FILE"`
	MaxSizeMB   int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
	MaxBackups  int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
}

// ErrNoProviders is returned when neither provider holds an API key.
var ErrNoProviders = errors.New("no LLM provider credentials configured: set GOOGLE_API_KEY or OPENAI_API_KEY")

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Gemini.APIKey == "" && cfg.OpenAI.APIKey == "" {
		return nil, ErrNoProviders
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
