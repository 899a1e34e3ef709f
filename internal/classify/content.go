// Package classify implements the rule-based content-type classification
// and the sensational-language scoring used by the credibility pipeline.
package classify

import (
	"strings"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/rules"
)

// ContentClassifier labels text as scientific, weather alert, or general
type ContentClassifier struct{}

// NewContentClassifier creates a new content classifier
func NewContentClassifier() *ContentClassifier {
	return &ContentClassifier{}
}

// Classify returns the content kind. Scientific detection runs first and
// wins over the weather-alert pattern when both fire.
func (c *ContentClassifier) Classify(text string) model.ContentKind {
	lower := strings.ToLower(text)

	if c.isScientific(lower) {
		return model.ContentScientific
	}
	if rules.WeatherAlertPattern.MatchString(lower) {
		return model.ContentWeatherAlert
	}
	return model.ContentGeneral
}

// isScientific counts distinct matching pattern groups against a word-count
// threshold. Density is normalized by text length, not by pattern count, so
// one strong term cannot flag a short text on its own.
func (c *ContentClassifier) isScientific(lower string) bool {
	groups := 0
	for _, group := range rules.ScientificGroups {
		if group.MatchString(lower) {
			groups++
		}
	}

	threshold := rules.ScientificLongThreshold
	if wordCount(lower) < rules.ScientificShortWords {
		threshold = rules.ScientificShortThreshold
	}
	return groups >= threshold
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
