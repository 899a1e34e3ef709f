package model

// AnalysisInput is a single analysis request. Immutable once constructed:
// the pipeline never mutates it and may share it across goroutines.
type AnalysisInput struct {
	Text      string `json:"text"`
	SourceURL string `json:"source_url,omitempty"` // optional; enables domain trust
}

// SentimentLabel is the predicted class of the sentiment classifier.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
)

// SentimentSignal is the output of the external sentiment classifier.
// Confidence is the probability of the predicted class, so positive and
// negative signals are not comparable without sign conversion.
type SentimentSignal struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"` // [0,1]
}

// Signed returns the confidence with the negative label mapped below zero,
// yielding a single score in [-1,1].
func (s SentimentSignal) Signed() float64 {
	if s.Label == SentimentNegative {
		return -s.Confidence
	}
	return s.Confidence
}

// ContentKind classifies the nature of the analyzed text
type ContentKind string

const (
	ContentScientific   ContentKind = "scientific"
	ContentWeatherAlert ContentKind = "weather_alert"
	ContentGeneral      ContentKind = "general"
)

// Protected reports whether the kind receives the credibility bonus and the
// reduced sensationalism multiplier.
func (k ContentKind) Protected() bool {
	return k == ContentScientific || k == ContentWeatherAlert
}

// Claim represents a candidate factual assertion extracted from the source
type Claim struct {
	Text      string `json:"text"`
	Heuristic string `json:"heuristic,omitempty"` // which pattern family matched
}

// FactRating grades a single claim against the simulated fact-check rules.
// One rating exists per extracted claim; rating is total, never absent.
type FactRating struct {
	Claim       string `json:"claim"`
	Rating      string `json:"rating"` // TRUE, MOSTLY TRUE, LIKELY TRUE, NEEDS REVIEW
	Source      string `json:"source"`
	URL         string `json:"url"`
	Explanation string `json:"explanation"`
}

// Rating values. The space-separated spelling is part of the wire format.
const (
	RatingTrue        = "TRUE"
	RatingMostlyTrue  = "MOSTLY TRUE"
	RatingLikelyTrue  = "LIKELY TRUE"
	RatingNeedsReview = "NEEDS REVIEW"
)

// Verified reports whether the rating counts toward the verified-claims
// ratio in aggregation.
func (r FactRating) Verified() bool {
	switch r.Rating {
	case RatingTrue, RatingMostlyTrue, RatingLikelyTrue:
		return true
	}
	return false
}

// CredibilityResult is the sole externally visible artifact of an analysis.
type CredibilityResult struct {
	Score               float64      `json:"credibilityScore"` // [0,1], 2 decimals
	Verdict             string       `json:"verdict"`
	Explanations        []string     `json:"explanation"`
	FactRatings         []FactRating `json:"factCheckResults"`
	ContentType         ContentKind  `json:"contentType"`
	Sentiment           string       `json:"sentiment"`
	SentimentConfidence float64      `json:"sentimentConfidence"`
	Degraded            bool         `json:"degraded,omitempty"` // article fetch fell back to placeholder text
}
