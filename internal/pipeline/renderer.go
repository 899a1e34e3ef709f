package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/credlab/veracity/internal/model"
)

// Renderer writes analysis results as JSON, Markdown, or a stdout summary
type Renderer struct {
	verbose bool
}

// NewRenderer creates a new renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderJSON writes the result as indented JSON to the given path
func (r *Renderer) RenderJSON(result model.CredibilityResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	if r.verbose {
		fmt.Printf("✓ Wrote JSON: %s\n", path)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to the given path
func (r *Renderer) RenderMarkdown(result model.CredibilityResult, subject string, path string) error {
	var sb strings.Builder

	sb.WriteString("# Credibility Report\n\n")
	if subject != "" {
		sb.WriteString(fmt.Sprintf("**Subject:** %s\n\n", subject))
	}
	sb.WriteString(fmt.Sprintf("**Score:** %.2f\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("**Verdict:** %s\n\n", result.Verdict))
	sb.WriteString(fmt.Sprintf("**Content Type:** %s\n\n", result.ContentType))
	sb.WriteString(fmt.Sprintf("**Sentiment:** %s (%.2f)\n\n", result.Sentiment, result.SentimentConfidence))
	if result.Degraded {
		sb.WriteString("> Article content could not be retrieved; this analysis is based on limited information.\n\n")
	}

	if len(result.Explanations) > 0 {
		sb.WriteString("## Findings\n\n")
		for _, e := range result.Explanations {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
		sb.WriteString("\n")
	}

	if len(result.FactRatings) > 0 {
		sb.WriteString("## Fact Checks\n\n")
		for _, fc := range result.FactRatings {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", fc.Rating, fc.Source, fc.Claim))
		}
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	if r.verbose {
		fmt.Printf("✓ Wrote Markdown: %s\n", path)
	}
	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(result model.CredibilityResult) {
	fmt.Printf("\nCredibility Score: %.2f\n", result.Score)
	fmt.Printf("Verdict: %s\n", result.Verdict)
	if result.Degraded {
		fmt.Println("Note: article content could not be retrieved; analysis is degraded")
	}
	for _, e := range result.Explanations {
		fmt.Printf("  - %s\n", e)
	}
	if len(result.FactRatings) > 0 {
		fmt.Printf("Fact checks: %d\n", len(result.FactRatings))
		for _, fc := range result.FactRatings {
			claim := fc.Claim
			if len(claim) > 70 {
				claim = claim[:67] + "..."
			}
			fmt.Printf("  [%s] %s\n", fc.Rating, claim)
		}
	}
}
