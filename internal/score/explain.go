package score

import (
	"fmt"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// BuildExplanations renders the intermediate signals into an ordered list
// of explanation strings. The order is part of the observable contract:
// sentiment direction, sentiment confidence, content type, sensationalism,
// fact-check summary, balance cue, citation cue.
func BuildExplanations(sig model.SentimentSignal, kind model.ContentKind, sensational float64, ratings []model.FactRating) []string {
	var out []string

	if sig.Label == model.SentimentPositive {
		out = append(out, "Content shows positive sentiment")
	} else {
		out = append(out, "Content shows negative sentiment")
	}

	switch {
	case sig.Confidence > 0.9:
		out = append(out, "Very high confidence in sentiment analysis")
	case sig.Confidence > 0.8:
		out = append(out, "High confidence in sentiment analysis")
	default:
		out = append(out, "Moderate confidence in sentiment analysis")
	}

	switch kind {
	case model.ContentScientific:
		out = append(out, "Scientific content detected with supporting terminology")
	case model.ContentWeatherAlert:
		out = append(out, "Official weather alert language detected")
	}

	switch {
	case sensational > 0.7:
		out = append(out, "Heavy use of sensational language detected")
	case sensational > 0.4:
		out = append(out, "Some sensational language detected")
	}

	if len(ratings) > 0 {
		verified := 0
		for _, r := range ratings {
			if r.Verified() {
				verified++
			}
		}
		out = append(out, fmt.Sprintf("%d of %d factual claims verified", verified, len(ratings)))
	}

	if anyClaim(ratings, rules.BalanceCue.MatchString) {
		out = append(out, "Balanced language usage detected")
	}
	if anyClaim(ratings, rules.CitationCue.MatchString) {
		out = append(out, "Citations to recognized sources found")
	}

	return out
}
