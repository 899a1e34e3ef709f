package score

// Verdict is one of the five ordered credibility bands.
type Verdict struct {
	Label  string
	Detail string
}

// Display renders the band with its fixed descriptive suffix.
func (v Verdict) Display() string {
	return v.Label + " - " + v.Detail
}

// VerdictFailed is returned for analyses that aborted internally.
var VerdictFailed = Verdict{
	Label:  "Analysis Failed",
	Detail: "An internal error prevented a complete analysis",
}

// MapVerdict maps a final score onto contiguous half-open bands with closed
// lower bounds: a score of exactly 0.75 is Highly Credible.
func MapVerdict(score float64) Verdict {
	switch {
	case score >= 0.75:
		return Verdict{"Highly Credible", "Content appears well-sourced and reliable"}
	case score >= 0.55:
		return Verdict{"Credible", "Content is generally trustworthy"}
	case score >= 0.35:
		return Verdict{"Moderately Credible", "Verify key claims with additional sources"}
	case score >= 0.15:
		return Verdict{"Suspicious", "Multiple credibility concerns detected"}
	default:
		return Verdict{"Highly Suspicious", "Content shows strong signs of misinformation"}
	}
}
