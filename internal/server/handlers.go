package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lhiebert01/network-log-analyzer/apimodels"
	"github.com/lhiebert01/network-log-analyzer/internal/analyzer"
	"github.com/lhiebert01/network-log-analyzer/internal/catalog"
	"github.com/lhiebert01/network-log-analyzer/internal/samples"
)

type indexData struct {
	Models  []apimodels.ModelInfo
	Samples []samples.Sample
	Version string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Models:  catalog.ByProvider(s.providers.Names()...),
		Samples: samples.All(),
		Version: Version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("Failed to render analyzer page", "error", err)
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	req := apimodels.AnalysisRequest{
		LogData: r.PostFormValue("log_data"),
		ModelID: r.PostFormValue("model_id"),
	}

	slog.Debug("Received analysis request", "model_id", req.ModelID, "log_bytes", len(req.LogData))

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Analysis request failed", "error", err)
		switch {
		case errors.Is(err, analyzer.ErrLogTooShort), errors.Is(err, analyzer.ErrUnknownModel):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, analyzer.ErrProviderUnavailable):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, result)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.ByProvider(s.providers.Names()...))
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, samples.All())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": Version})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
