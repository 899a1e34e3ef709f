package rules

import "regexp"

// Topic and source-mention patterns for the simulated fact-check lookup.
// All matching is case-insensitive over the raw claim text.
var (
	// ClimateTopic marks climate and temperature claims.
	ClimateTopic = regexp.MustCompile(`(?i)\b(?:climate|global warming|warming|temperatures?|co2|carbon dioxide|greenhouse)\b`)

	// HealthTopic marks medical and public-health claims.
	HealthTopic = regexp.MustCompile(`(?i)\b(?:vaccines?|vaccination|health|disease|medical|medicine|virus|treatment)\b`)

	// ScientificSource matches an attribution phrase naming a recognized
	// scientific body within the same clause.
	ScientificSource = regexp.MustCompile(`(?i)\b(?:according to|based on|from)\b[^.!?]*\b(?:nasa|noaa|who|cdc|nih)\b`)
)

// FactSource is the fixed presentation metadata attached to a rating
// branch. It never affects scoring beyond the rating value itself.
type FactSource struct {
	Rating      string
	Source      string
	URL         string
	Explanation string
}

// Fact-check branch outcomes, first match wins in this order:
// climate topic, health topic, bare source phrase, default.
var (
	ClimateSourced = FactSource{
		Rating:      "TRUE",
		Source:      "Climate Feedback",
		URL:         "https://climatefeedback.org/claim-reviews/",
		Explanation: "Verified by multiple scientific studies and consensus",
	}
	ClimateUnsourced = FactSource{
		Rating:      "MOSTLY TRUE",
		Source:      "Climate Feedback",
		URL:         "https://climatefeedback.org/claim-reviews/",
		Explanation: "Consistent with published climate research",
	}
	HealthSourced = FactSource{
		Rating:      "TRUE",
		Source:      "Health Feedback",
		URL:         "https://healthfeedback.org/",
		Explanation: "Supported by medical research and health organizations",
	}
	HealthUnsourced = FactSource{
		Rating:      "NEEDS REVIEW",
		Source:      "Health Feedback",
		URL:         "https://healthfeedback.org/",
		Explanation: "Medical claim requires verification against primary sources",
	}
	SourcedOnly = FactSource{
		Rating:      "LIKELY TRUE",
		Source:      "Science Feedback",
		URL:         "https://sciencefeedback.co/",
		Explanation: "Attributed to a recognized scientific organization",
	}
	Unmatched = FactSource{
		Rating:      "NEEDS REVIEW",
		Source:      "PolitiFact",
		URL:         "https://www.politifact.com/",
		Explanation: "Claim requires further verification",
	}
)

// Aggregation cues scanned over claim text.
var (
	CitationCue = regexp.MustCompile(`(?i)\b(?:according to|cited)\b`)
	BalanceCue  = regexp.MustCompile(`(?i)\b(?:however|but|although)\b`)
	DigitCue    = regexp.MustCompile(`[0-9]`)
)
