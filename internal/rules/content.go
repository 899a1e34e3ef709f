package rules

import "regexp"

// ScientificGroups are independent pattern groups indicating scientific or
// technical writing. Classification counts how many distinct groups match
// at least once in the lower-cased text; the per-match count is irrelevant.
var ScientificGroups = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:study|studies|research|researchers?)\b`),
	regexp.MustCompile(`\b(?:peer[- ]review(?:ed)?|journal|published in)\b`),
	regexp.MustCompile(`\b(?:nasa|noaa|who|cdc|nih)\b`),
	regexp.MustCompile(`\b(?:scientists?|scientific)\b`),
	regexp.MustCompile(`\b(?:data|dataset|measurements?|observations?)\b`),
	regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:°\s*[cf]|degrees?|percent|%|mph|km/h|celsius|fahrenheit)`),
	regexp.MustCompile(`\b(?:et al|doi)\b|\[\d+\]|\(\d{4}\)`),
	regexp.MustCompile(`\b(?:statistically significant|correlation|confidence interval|sample size|margin of error|p-value)\b`),
	regexp.MustCompile(`\b(?:analysis|analyzed|findings|results)\b`),
	regexp.MustCompile(`\b(?:experiments?|clinical trials?|laboratory)\b`),
	regexp.MustCompile(`\b(?:hypothesis|theory|methodology|evidence)\b`),
	regexp.MustCompile(`\b(?:national weather service|weather service|meteorologists?|radar)\b`),
	regexp.MustCompile(`\b(?:climate|temperatures?|emissions|co2)\b`),
	regexp.MustCompile(`\b(?:university|institute|academy)\b`),
	regexp.MustCompile(`\b(?:pre-industrial|baseline|consistent with previous research)\b`),
}

// Scientific thresholds: short texts need fewer matching groups so that a
// dense two-sentence abstract is not out-voted by its own brevity, while a
// single strong term in a long text is not enough.
const (
	ScientificShortWords     = 50
	ScientificShortThreshold = 2
	ScientificLongThreshold  = 3
)

// WeatherAlertPattern requires an alert-type word later followed by a
// weather phenomenon anywhere in the text. Evaluated on the lower-cased
// text, with lower priority than scientific detection.
var WeatherAlertPattern = regexp.MustCompile(`(?s)\b(?:warnings?|advisory|advisories|watch(?:es)?|alerts?)\b.*\b(?:weather|storms?|thunder|tornado(?:es)?|hurricanes?|floods?|flooding)`)
