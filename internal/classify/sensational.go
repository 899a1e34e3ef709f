package classify

import (
	"strings"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// SensationalismScorer computes a [0,1] score for hyperbolic and clickbait
// language, discounted for protected content classes and short texts.
type SensationalismScorer struct{}

// NewSensationalismScorer creates a new sensationalism scorer
func NewSensationalismScorer() *SensationalismScorer {
	return &SensationalismScorer{}
}

// Score sums matches times weight over the pattern table, then applies the
// content-class discount followed by the length discount, and clamps.
func (s *SensationalismScorer) Score(text string, kind model.ContentKind) float64 {
	lower := strings.ToLower(text)

	score := 0.0
	for _, p := range rules.SensationalPatterns {
		subject := lower
		if p.Raw {
			subject = text
		}
		score += float64(len(p.Pattern.FindAllString(subject, -1))) * p.Weight
	}

	switch kind {
	case model.ContentScientific:
		score *= rules.SensationalScientificDiscount
	case model.ContentWeatherAlert:
		score *= rules.SensationalWeatherDiscount
	}

	words := wordCount(text)
	if words < rules.SensationalShortWords {
		score *= rules.SensationalShortDiscount
	} else if words < rules.SensationalMediumWords {
		score *= rules.SensationalMediumDiscount
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
