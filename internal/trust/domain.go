// Package trust maps source-URL hosts to fixed credibility adjustments.
package trust

import (
	"net/url"
	"strings"

	"github.com/credlab/veracity/internal/model"
)

// Adjustment values per tier. The default applies to any parseable URL
// whose host matches no tier, and to unparseable URLs. A request with no
// URL at all gets no adjustment; that decision belongs to the aggregator.
const (
	HighTrustAdjustment     = 0.4
	ModerateTrustAdjustment = 0.25
	LowTrustAdjustment      = -0.2
	DefaultAdjustment       = 0.05
)

// Evaluator looks up a host's trust adjustment in configured tiers
type Evaluator struct {
	high     []string
	moderate []string
	low      []string
}

// NewEvaluator creates an evaluator from config; nil falls back to the
// built-in tiers.
func NewEvaluator(cfg *model.TrustConfig) *Evaluator {
	if cfg == nil {
		cfg = &model.DefaultConfig().Trust
	}
	return &Evaluator{
		high:     lowered(cfg.HighTrust),
		moderate: lowered(cfg.ModerateTrust),
		low:      lowered(cfg.LowTrust),
	}
}

// Trust returns the adjustment for the URL's host. Lookup is by substring
// match on the lower-cased host, first matching tier wins. Parse failures
// yield the default adjustment.
func (e *Evaluator) Trust(rawURL string) float64 {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return DefaultAdjustment
	}

	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}

	switch {
	case matchesTier(host, e.high):
		return HighTrustAdjustment
	case matchesTier(host, e.moderate):
		return ModerateTrustAdjustment
	case matchesTier(host, e.low):
		return LowTrustAdjustment
	}
	return DefaultAdjustment
}

func matchesTier(host string, tier []string) bool {
	for _, domain := range tier {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}

func lowered(domains []string) []string {
	out := make([]string, len(domains))
	for i, d := range domains {
		out[i] = strings.ToLower(d)
	}
	return out
}
