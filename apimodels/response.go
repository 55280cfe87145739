package apimodels

type AnalysisResponse struct {
	// The model's security assessment, or an error message when no model
	// could be reached (ModelUsed is "error" in that case).
	Analysis string `json:"analysis"`

	// Model that actually produced the analysis, which may differ from the
	// requested one after fallback.
	ModelUsed string `json:"model_used"`

	Provider string `json:"provider"`

	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokens_used"`

	RequestID string `json:"request_id"`

	// Whether a fallback model produced the answer
	FallbackUsed bool `json:"fallback_used"`
}

type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}
