package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhiebert01/network-log-analyzer/apimodels"
	"github.com/lhiebert01/network-log-analyzer/internal/analyzer"
	"github.com/lhiebert01/network-log-analyzer/internal/catalog"
	"github.com/lhiebert01/network-log-analyzer/internal/config"
	"github.com/lhiebert01/network-log-analyzer/internal/llm"
)

const sampleLog = `Mar 15 06:42:12 server sshd[5774]: Failed password for invalid user admin from 192.168.1.100 port 43250 ssh2`

type fakeProvider struct {
	name string
	fail bool
}

func (f *fakeProvider) Analyze(ctx context.Context, prompt string, opts ...llm.Option) (*llm.Response, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	if f.fail {
		return nil, errors.New("model unavailable")
	}
	return &llm.Response{
		Content: "The log shows an SSH brute force attempt.",
		Model:   options.Model,
		Usage:   llm.Usage{TotalTokens: 42},
	}, nil
}

func (f *fakeProvider) Name() string { return f.name }

func newTestServer(providers ...llm.Provider) *Server {
	registry := llm.NewRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	an := analyzer.New(registry, catalog.DefaultGeminiModel)

	cfg := config.Config{}
	cfg.Server.RequestTimeout = 30 * time.Second
	return New(cfg, an, registry)
}

func postAnalyze(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	form := url.Values{}
	form.Set("log_data", sampleLog)
	form.Set("model_id", "gemini-2.0-flash")
	rec := postAnalyze(t, s, form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp apimodels.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Analysis)
	assert.Equal(t, "gemini-2.0-flash", resp.ModelUsed)
	assert.Equal(t, catalog.ProviderGemini, resp.Provider)
	assert.NotEmpty(t, resp.Metadata.RequestID)
}

func TestHandleAnalyzeShortInput(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	form := url.Values{}
	form.Set("log_data", "short")
	rec := postAnalyze(t, s, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too short")
}

func TestHandleAnalyzeMissingLogData(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	rec := postAnalyze(t, s, url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeUnknownModel(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	form := url.Values{}
	form.Set("log_data", sampleLog)
	form.Set("model_id", "gemini-9000-ultra")
	rec := postAnalyze(t, s, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown model")
}

func TestHandleAnalyzeProviderUnavailable(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	form := url.Values{}
	form.Set("log_data", sampleLog)
	form.Set("model_id", "gpt-4o-mini")
	rec := postAnalyze(t, s, form)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleAnalyzeEmbedsErrorWhenAllModelsFail(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini, fail: true})

	form := url.Values{}
	form.Set("log_data", sampleLog)
	rec := postAnalyze(t, s, form)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.ModelUsed)
	assert.Contains(t, resp.Analysis, "Error analyzing log")
}

func TestHandleModelsListsConfiguredProvidersOnly(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var models []apimodels.ModelInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &models))
	require.NotEmpty(t, models)
	for _, m := range models {
		assert.Equal(t, catalog.ProviderGemini, m.Provider)
	}
}

func TestHandleSamples(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	req := httptest.NewRequest(http.MethodGet, "/samples", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "port-scan")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Network Log Analyzer")
	assert.Contains(t, rec.Body.String(), "gemini-2.0-flash-lite")
}

func TestHandleAnalyzeRejectsGet(t *testing.T) {
	s := newTestServer(&fakeProvider{name: catalog.ProviderGemini})

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
