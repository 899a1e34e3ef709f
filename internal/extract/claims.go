package extract

import (
	"strings"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// ClaimExtractor pulls candidate factual-claim sentences out of raw text
type ClaimExtractor struct {
	families []rules.ClaimFamily
	max      int
}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		families: rules.ClaimFamilies,
		max:      rules.MaxClaims,
	}
}

// Extract returns up to three claims. Family matches are concatenated in
// table order with source order preserved inside each family, then
// truncated. A sentence matching two families appears once per family;
// duplicates are kept.
func (e *ClaimExtractor) Extract(text string) []model.Claim {
	var claims []model.Claim
	for _, family := range e.families {
		for _, match := range family.Pattern.FindAllString(text, -1) {
			claims = append(claims, model.Claim{
				Text:      strings.TrimSpace(match),
				Heuristic: "family:" + family.Name,
			})
		}
	}

	if len(claims) > e.max {
		claims = claims[:e.max]
	}
	return claims
}
