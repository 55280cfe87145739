package llm

import "context"

type Provider interface {
	// Analyze sends a prompt and returns the model's response
	Analyze(ctx context.Context, prompt string, opts ...Option) (*Response, error)

	// Name returns the provider name ("gemini" or "openai")
	Name() string
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
