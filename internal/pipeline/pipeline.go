// Package pipeline wires the independent analysis stages into a single
// credibility verdict for a piece of text or a fetched article.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credlab/veracity/internal/classify"
	"github.com/credlab/veracity/internal/extract"
	"github.com/credlab/veracity/internal/factcheck"
	"github.com/credlab/veracity/internal/llm"
	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/score"
	"github.com/credlab/veracity/internal/sentiment"
	"github.com/credlab/veracity/internal/trust"
)

// Analyzer orchestrates the complete analysis process. Stateless per call
// once constructed; safe for concurrent use.
type Analyzer struct {
	classifier  sentiment.Classifier
	claims      *extract.ClaimExtractor
	content     *classify.ContentClassifier
	sensational *classify.SensationalismScorer
	rater       *factcheck.Rater
	trust       *trust.Evaluator
	aggregator  *score.Aggregator
	fetcher     *Fetcher
	summarizer  *llm.Summarizer // optional, nil when disabled
	config      *model.Config
}

// NewAnalyzer creates an analyzer from the configuration. The sentiment
// classifier is initialized here; a failed initialization is fatal and the
// process should not continue serving.
func NewAnalyzer(cfg *model.Config, classifier sentiment.Classifier) (*Analyzer, error) {
	if err := classifier.Init(); err != nil {
		return nil, fmt.Errorf("init sentiment classifier: %w", err)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			slog.Warn("llm summarizer disabled", "error", err)
		} else {
			summarizer = s
		}
	}

	return &Analyzer{
		classifier:  classifier,
		claims:      extract.NewClaimExtractor(),
		content:     classify.NewContentClassifier(),
		sensational: classify.NewSensationalismScorer(),
		rater:       factcheck.NewRater(),
		trust:       trust.NewEvaluator(&cfg.Trust),
		aggregator:  score.NewAggregator(),
		fetcher:     NewFetcher(cfg),
		summarizer:  summarizer,
		config:      cfg,
	}, nil
}

// AnalyzeText runs the full analysis over the given input. It never returns
// an error: an internal panic is recovered into the failed result so one bad
// input cannot take down a batch or the server.
func (a *Analyzer) AnalyzeText(ctx context.Context, input model.AnalysisInput) (result model.CredibilityResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis aborted", "panic", r)
			result = model.CredibilityResult{
				Score:        0.0,
				Verdict:      score.VerdictFailed.Display(),
				Explanations: []string{fmt.Sprintf("Analysis aborted by an internal error: %v", r)},
			}
		}
	}()

	sig, err := a.classifier.Classify(input.Text)
	if err != nil {
		panic(fmt.Sprintf("sentiment classify: %v", err))
	}

	kind := a.content.Classify(input.Text)
	sensational := a.sensational.Score(input.Text, kind)
	claims := a.claims.Extract(input.Text)
	ratings := a.rater.RateAll(claims)

	hasURL := input.SourceURL != ""
	var domainTrust float64
	if hasURL {
		domainTrust = a.trust.Trust(input.SourceURL)
	}

	raw := a.aggregator.Aggregate(score.Inputs{
		SentimentScore: sig.Signed(),
		ContentKind:    kind,
		Sensational:    sensational,
		FactRatings:    ratings,
		HasURL:         hasURL,
		DomainTrust:    domainTrust,
	})
	rounded := score.Round2(raw)

	slog.Debug("analysis complete",
		"score", rounded,
		"content_type", kind,
		"claims", len(claims),
		"sensational", sensational,
	)

	return model.CredibilityResult{
		Score:               rounded,
		Verdict:             score.MapVerdict(rounded).Display(),
		Explanations:        score.BuildExplanations(sig, kind, sensational, ratings),
		FactRatings:         ratings,
		ContentType:         kind,
		Sentiment:           string(sig.Label),
		SentimentConfidence: sig.Confidence,
	}
}

// AnalyzeURL fetches the article at the given URL and analyzes its text.
// A failed fetch degrades the analysis instead of aborting it: the result
// carries the Degraded flag and scores the placeholder text.
func (a *Analyzer) AnalyzeURL(ctx context.Context, url string) model.CredibilityResult {
	text, degraded := a.fetcher.FetchArticleText(ctx, url)

	result := a.AnalyzeText(ctx, model.AnalysisInput{
		Text:      text,
		SourceURL: url,
	})
	result.Degraded = degraded

	return result
}

// Summarize produces an optional prose summary of a finished result. It runs
// strictly after scoring and never affects the result itself.
func (a *Analyzer) Summarize(ctx context.Context, result model.CredibilityResult) (string, error) {
	if a.summarizer == nil || !a.summarizer.IsEnabled() {
		return "", nil
	}
	return a.summarizer.Summarize(ctx, result)
}
