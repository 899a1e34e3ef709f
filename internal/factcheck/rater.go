// Package factcheck simulates fact-check lookups with a local, pattern-based
// rule table. Ratings are total: every claim gets exactly one rating.
package factcheck

import (
	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// Rater maps claims to simulated fact-check ratings
type Rater struct{}

// NewRater creates a new fact rater
func NewRater() *Rater {
	return &Rater{}
}

// Rate grades a single claim. Branch order is fixed, first match wins:
// climate topic, health topic, bare scientific-source phrase, default.
func (r *Rater) Rate(claim model.Claim) model.FactRating {
	sourced := rules.ScientificSource.MatchString(claim.Text)

	var src rules.FactSource
	switch {
	case rules.ClimateTopic.MatchString(claim.Text):
		if sourced {
			src = rules.ClimateSourced
		} else {
			src = rules.ClimateUnsourced
		}
	case rules.HealthTopic.MatchString(claim.Text):
		if sourced {
			src = rules.HealthSourced
		} else {
			src = rules.HealthUnsourced
		}
	case sourced:
		src = rules.SourcedOnly
	default:
		src = rules.Unmatched
	}

	return model.FactRating{
		Claim:       claim.Text,
		Rating:      src.Rating,
		Source:      src.Source,
		URL:         src.URL,
		Explanation: src.Explanation,
	}
}

// RateAll rates every claim in order, one rating per claim.
func (r *Rater) RateAll(claims []model.Claim) []model.FactRating {
	if len(claims) == 0 {
		return nil
	}
	ratings := make([]model.FactRating, 0, len(claims))
	for _, claim := range claims {
		ratings = append(ratings, r.Rate(claim))
	}
	return ratings
}
