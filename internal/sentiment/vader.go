package sentiment

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/credlab/veracity/internal/model"
)

var (
	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VADER is a lexicon-based sentiment classifier. The analyzer holds the
// lexicon loaded during Init and is read-only afterwards.
type VADER struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER creates an uninitialized VADER classifier
func NewVADER() *VADER {
	return &VADER{}
}

// Init loads the sentiment lexicon and verifies it with a probe input.
// Safe to call once; subsequent calls are no-ops.
func (v *VADER) Init() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.analyzer != nil {
		return nil
	}

	analyzer := govader.NewSentimentIntensityAnalyzer()
	probe := analyzer.PolarityScores("good")
	if probe.Compound <= 0 {
		return fmt.Errorf("sentiment lexicon failed probe check")
	}

	v.analyzer = analyzer
	return nil
}

// Classify scores the text and maps the compound polarity onto the binary
// label contract: the sign selects the label and the magnitude scales the
// confidence into [0.5,1], matching the probability of a predicted class.
func (v *VADER) Classify(text string) (model.SentimentSignal, error) {
	if v.analyzer == nil {
		return model.SentimentSignal{}, fmt.Errorf("sentiment classifier not initialized")
	}

	plain := StripMarkup(truncate(text))
	compound := v.analyzer.PolarityScores(plain).Compound

	label := model.SentimentPositive
	if compound < 0 {
		label = model.SentimentNegative
	}

	return model.SentimentSignal{
		Label:      label,
		Confidence: (1 + math.Abs(compound)) / 2,
	}, nil
}

// StripMarkup renders markdown to plain text and removes links, which carry
// no sentiment but skew the lexicon lookup.
func StripMarkup(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(rendered)), " ")

	plain = markdownLink.ReplaceAllString(plain, "$1")
	return strings.TrimSpace(bareURL.ReplaceAllString(plain, ""))
}
