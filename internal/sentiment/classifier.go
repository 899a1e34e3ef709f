// Package sentiment exposes the binary sentiment classifier consumed by the
// credibility pipeline. The classifier is constructed and initialized once
// at startup and injected into the pipeline; initialization failure is
// fatal to the process, never to an individual request.
package sentiment

import (
	"strings"

	"github.com/credlab/veracity/internal/model"
)

// maxTokens mirrors the upstream model's input limit; longer inputs are
// truncated, not rejected.
const maxTokens = 512

// Classifier is the binary sentiment classifier contract. Classify must be
// pure given initialized state and safe for concurrent use.
type Classifier interface {
	Init() error
	Classify(text string) (model.SentimentSignal, error)
}

// truncate caps the input at maxTokens whitespace-separated tokens.
func truncate(text string) string {
	fields := strings.Fields(text)
	if len(fields) <= maxTokens {
		return text
	}
	return strings.Join(fields[:maxTokens], " ")
}
