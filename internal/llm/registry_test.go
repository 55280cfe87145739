package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Analyze(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	return &Response{Content: "ok"}, nil
}

func (s *stubProvider) Name() string { return s.name }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "openai"})
	r.Register(&stubProvider{name: "gemini"})

	p, ok := r.Get("gemini")
	require.True(t, ok)
	assert.Equal(t, "gemini", p.Name())

	_, ok = r.Get("anthropic")
	assert.False(t, ok)

	assert.Equal(t, []string{"gemini", "openai"}, r.Names())
}
