// Package catalog holds the static metadata for the models the analyzer
// knows how to reach, and the fallback order among them.
package catalog

import "github.com/lhiebert01/network-log-analyzer/apimodels"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	DefaultGeminiModel = "gemini-2.0-flash-lite"
	DefaultOpenAIModel = "gpt-4o-mini"
)

var models = []apimodels.ModelInfo{
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Description: "Fast, efficient model for quick analysis", Provider: ProviderGemini},
	{ID: "gemini-2.0-flash-lite", Name: "Gemini 2.0 Flash Lite", Description: "Lightweight version for basic analysis", Provider: ProviderGemini},
	{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Description: "Balanced performance model", Provider: ProviderGemini},
	{ID: "gemini-1.5-flash-8b", Name: "Gemini 1.5 Flash 8B", Description: "Compact model for simple analysis", Provider: ProviderGemini},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Fast, efficient model for quick analysis", Provider: ProviderOpenAI},
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Lightweight model for basic analysis", Provider: ProviderOpenAI},
}

func All() []apimodels.ModelInfo {
	out := make([]apimodels.ModelInfo, len(models))
	copy(out, models)
	return out
}

func Lookup(id string) (apimodels.ModelInfo, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return apimodels.ModelInfo{}, false
}

// ByProvider returns the catalog entries belonging to any of the given
// providers, in catalog order.
func ByProvider(providers ...string) []apimodels.ModelInfo {
	var out []apimodels.ModelInfo
	for _, m := range models {
		for _, p := range providers {
			if m.Provider == p {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// FallbackChain returns the requested model first, then every remaining
// model of the same provider in catalog order. It returns nil for an
// unknown id.
func FallbackChain(id string) []apimodels.ModelInfo {
	requested, ok := Lookup(id)
	if !ok {
		return nil
	}
	chain := []apimodels.ModelInfo{requested}
	for _, m := range models {
		if m.Provider == requested.Provider && m.ID != requested.ID {
			chain = append(chain, m)
		}
	}
	return chain
}
