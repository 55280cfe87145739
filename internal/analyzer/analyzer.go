package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lhiebert01/network-log-analyzer/apimodels"
	"github.com/lhiebert01/network-log-analyzer/internal/catalog"
	"github.com/lhiebert01/network-log-analyzer/internal/llm"
)

// MinLogLength is the minimum sanitized input size accepted for analysis.
const MinLogLength = 10

var (
	ErrLogTooShort         = errors.New("log data is too short or empty")
	ErrUnknownModel        = errors.New("unknown model id")
	ErrProviderUnavailable = errors.New("provider not configured")
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// CleanLogData removes HTML tags from log data and trims surrounding space.
func CleanLogData(logData string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(logData, ""))
}

type Analyzer struct {
	providers    *llm.Registry
	defaultModel string
}

func New(providers *llm.Registry, defaultModel string) *Analyzer {
	return &Analyzer{
		providers:    providers,
		defaultModel: defaultModel,
	}
}

// Analyze sends the sanitized log to the requested (or default) model and
// walks the provider's fallback chain until one model answers. When every
// model fails the error is embedded in the response payload rather than
// returned, so callers still get a well-formed result.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	startTime := time.Now()
	requestID := uuid.NewString()

	logData := CleanLogData(req.LogData)
	if len(logData) < MinLogLength {
		return nil, ErrLogTooShort
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = a.defaultModel
	}

	chain := catalog.FallbackChain(modelID)
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}

	provider, ok := a.providers.Get(chain[0].Provider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, chain[0].Provider)
	}

	slog.Info("starting analysis", "request_id", requestID, "model", modelID, "log_bytes", len(logData))

	prompt := BuildPrompt(logData)

	var lastErr error
	for i, m := range chain {
		resp, err := provider.Analyze(ctx, prompt, llm.WithModel(m.ID))
		if err != nil {
			lastErr = err
			slog.Warn("model call failed, trying fallback", "request_id", requestID, "model", m.ID, "error", err)
			continue
		}

		slog.Info("analysis completed", "request_id", requestID, "model", m.ID, "fallback", i > 0, "duration", time.Since(startTime))
		return &apimodels.AnalysisResponse{
			Analysis:  resp.Content,
			ModelUsed: m.ID,
			Provider:  provider.Name(),
			Metadata: apimodels.AnalysisMetadata{
				Duration:     time.Since(startTime).String(),
				TokensUsed:   resp.Usage.TotalTokens,
				RequestID:    requestID,
				FallbackUsed: i > 0,
			},
		}, nil
	}

	slog.Error("all models failed", "request_id", requestID, "provider", provider.Name(), "error", lastErr)
	return &apimodels.AnalysisResponse{
		Analysis:  fmt.Sprintf("Error analyzing log: could not find any working %s model: %v", provider.Name(), lastErr),
		ModelUsed: "error",
		Provider:  provider.Name(),
		Metadata: apimodels.AnalysisMetadata{
			Duration:  time.Since(startTime).String(),
			RequestID: requestID,
		},
	}, nil
}
