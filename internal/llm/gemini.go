package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lhiebert01/network-log-analyzer/internal/catalog"
	"github.com/lhiebert01/network-log-analyzer/internal/config"
)

// Gemini client implementation
type Gemini struct {
	client *genai.Client
	cfg    *config.GeminiConfig
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Google API key not found. Please set the GOOGLE_API_KEY environment variable")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		cfg:    cfg,
	}, nil
}

func (g *Gemini) Name() string {
	return catalog.ProviderGemini
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Analyze(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:       g.cfg.Model,
		Temperature: 0,
	}
	for _, opt := range opts {
		opt(options)
	}

	model := g.client.GenerativeModel(options.Model)
	if options.Temperature > 0 {
		model.SetTemperature(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(options.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	response := &Response{
		Content: sb.String(),
		Model:   options.Model,
	}
	if resp.UsageMetadata != nil {
		response.Usage = Usage{
			PromptTokens:     int64(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int64(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return response, nil
}
