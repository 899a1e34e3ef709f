package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/credlab/veracity/internal/model"
)

// Summarizer wraps a provider behind the enabled/disabled configuration
type Summarizer struct {
	provider Provider
	config   model.LLMConfig
}

// NewSummarizer creates a summarizer for the configured provider. An empty
// provider name is not an error; it yields a disabled summarizer.
func NewSummarizer(config model.LLMConfig) (*Summarizer, error) {
	if config.Provider == "" {
		return &Summarizer{config: config}, nil
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	switch config.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, fmt.Errorf("create openai provider: %w", err)
		}
		return &Summarizer{provider: provider, config: config}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates a prose summary of the finished result
func (s *Summarizer) Summarize(ctx context.Context, result model.CredibilityResult) (string, error) {
	if !s.IsEnabled() {
		return "", fmt.Errorf("summarizer is disabled")
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Result:    result,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}

	return resp.Summary, nil
}
