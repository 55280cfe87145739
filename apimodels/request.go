package apimodels

type AnalysisRequest struct {
	// LogData is the raw network log text to analyze.
	LogData string `json:"log_data"`

	// ModelID optionally selects a specific model; the provider's default is
	// used when empty.
	ModelID string `json:"model_id,omitempty"`
}
