// Package score turns the pipeline's independent signals into a bounded
// credibility score, a verdict band, and ordered explanation strings.
package score

import (
	"math"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// Inputs carries the five signals consumed by aggregation.
type Inputs struct {
	SentimentScore float64 // signed, [-1,1]
	ContentKind    model.ContentKind
	Sensational    float64 // [0,1]
	FactRatings    []model.FactRating
	HasURL         bool
	DomainTrust    float64 // meaningful only when HasURL
}

// Aggregator combines the signals into one bounded score
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate applies the fixed adjustment order and clamps once at the end.
// Protected content classes collect their bonuses before the sensational
// penalty is applied with the lower multiplier, so the two mechanisms
// compound favorably for legitimate urgent or technical content.
func (a *Aggregator) Aggregate(in Inputs) float64 {
	base := 0.6
	if in.ContentKind.Protected() {
		base = 0.7
	}

	if in.HasURL {
		base += in.DomainTrust
	}

	if in.ContentKind.Protected() {
		base += 0.2
		if anyClaim(in.FactRatings, rules.CitationCue.MatchString) {
			base += 0.15
		}
		if anyClaim(in.FactRatings, rules.DigitCue.MatchString) {
			base += 0.1
		}
	}

	if len(in.FactRatings) > 0 {
		verified := 0
		for _, r := range in.FactRatings {
			if r.Verified() {
				verified++
			}
		}
		base += 0.3 * float64(verified) / float64(len(in.FactRatings))
	}

	if in.ContentKind.Protected() {
		base -= in.Sensational * 0.1
	} else {
		base -= in.Sensational * 0.15
	}

	if anyClaim(in.FactRatings, rules.BalanceCue.MatchString) {
		base += 0.15
	}

	smoothed := Smooth(in.SentimentScore)
	if math.Abs(smoothed) > 0.9 {
		base -= 0.05
	}
	if math.Abs(smoothed) < 0.3 {
		base += 0.05
	}

	return clamp01(base)
}

// Smooth compresses extreme sentiment confidences toward zero before use:
// s' = s * (1 - |s| * 0.3).
func Smooth(s float64) float64 {
	return s * (1 - math.Abs(s)*0.3)
}

// Round2 rounds to two decimals at the output boundary only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func anyClaim(ratings []model.FactRating, match func(string) bool) bool {
	for _, r := range ratings {
		if match(r.Claim) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
