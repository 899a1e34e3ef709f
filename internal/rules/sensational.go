package rules

import "regexp"

// SensationalPattern is one weighted cue in the sensationalism table.
// Weight is added once per match, uncapped per pattern; the scorer clamps
// only the final sum. Raw patterns run against the original text (needed
// for ALL-CAPS detection); the rest run against the lower-cased text.
type SensationalPattern struct {
	Name    string
	Pattern *regexp.Regexp
	Weight  float64
	Raw     bool
}

// SensationalPatterns in three weight bands: punctuation and formatting
// cues are cheap, hyperbole words cost more, and clickbait phrasing costs
// the most.
var SensationalPatterns = []SensationalPattern{
	{Name: "trailing_exclamation", Pattern: regexp.MustCompile(`(?m)!\s*$`), Weight: 0.02},
	{Name: "repeated_punctuation", Pattern: regexp.MustCompile(`[!?]{2,}`), Weight: 0.03},
	{Name: "all_caps", Pattern: regexp.MustCompile(`\b[A-Z]{3,}\b`), Weight: 0.03, Raw: true},

	{Name: "hyperbole", Pattern: regexp.MustCompile(`\b(?:amazing|incredible|unbelievable|astonishing)\b`), Weight: 0.05},
	{Name: "alarm", Pattern: regexp.MustCompile(`\b(?:shocking|horrifying|terrifying|mind-blowing)\b`), Weight: 0.06},
	{Name: "miracle", Pattern: regexp.MustCompile(`\b(?:revolutionary|miracle|breakthrough|game-chang\w+)\b`), Weight: 0.06},

	{Name: "urgency", Pattern: regexp.MustCompile(`\b(?:breaking|urgent|exclusive|must-see|must-read)\b`), Weight: 0.07},
	{Name: "curiosity_gap", Pattern: regexp.MustCompile(`\b(?:you won'?t believe|you need to see|this will shock you)\b`), Weight: 0.08},
	{Name: "secrecy", Pattern: regexp.MustCompile(`\b(?:secret|trick|they don'?t want you to know)\b`), Weight: 0.07},
	{Name: "experts_hate", Pattern: regexp.MustCompile(`\b(?:experts hate|doctors hate|one weird trick)\b`), Weight: 0.08},
	{Name: "listicle", Pattern: regexp.MustCompile(`\d+\s+(?:reasons why|things you)\b`), Weight: 0.06},
}

// Multiplicative discounts applied after the weighted sum, in order:
// protected content class first, then text length.
const (
	SensationalScientificDiscount = 0.5
	SensationalWeatherDiscount    = 0.3

	SensationalShortWords     = 30
	SensationalShortDiscount  = 0.7
	SensationalMediumWords    = 100
	SensationalMediumDiscount = 0.85
)
