// Package llm generates an optional prose summary of a finished analysis.
// Summaries run strictly after scoring and never feed back into the score.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlab/veracity/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a prose summary of the analysis result
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Result is the finished analysis to summarize
	Result model.CredibilityResult

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// BuildPrompt constructs the default summarization prompt. The result is
// presented as settled: the model restates the findings in prose and must
// not second-guess the score or verdict.
func BuildPrompt(result model.CredibilityResult) string {
	var sb strings.Builder

	sb.WriteString(`You are summarizing an automated credibility analysis. The score and verdict below are final - restate them, do not dispute or recompute them.

RULES:
1. Do not introduce facts, sources, or URLs beyond what is listed.
2. Do not claim the content is true or false - describe the credibility signals only.
3. Keep the summary to 3-4 sentences.

Analysis:
`)
	sb.WriteString(fmt.Sprintf("- Credibility Score: %.2f\n", result.Score))
	sb.WriteString(fmt.Sprintf("- Verdict: %s\n", result.Verdict))
	sb.WriteString(fmt.Sprintf("- Content Type: %s\n", result.ContentType))
	sb.WriteString(fmt.Sprintf("- Sentiment: %s (confidence %.2f)\n", result.Sentiment, result.SentimentConfidence))
	if result.Degraded {
		sb.WriteString("- Note: article content could not be retrieved; analysis ran on limited information\n")
	}

	if len(result.Explanations) > 0 {
		sb.WriteString("\nFindings:\n")
		for _, e := range result.Explanations {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	if len(result.FactRatings) > 0 {
		sb.WriteString("\nFact checks:\n")
		for i, fc := range result.FactRatings {
			if i >= 3 {
				break
			}
			sb.WriteString(fmt.Sprintf("- [%s] %s (%s)\n", fc.Rating, fc.Claim, fc.Source))
		}
	}

	sb.WriteString("\nProvide the summary now.")

	return sb.String()
}
