package score

import (
	"math"
	"testing"

	"github.com/credlab/veracity/internal/model"
)

func TestAggregator_GeneralBaseline(t *testing.T) {
	a := NewAggregator()

	// Neutral sentiment sits below the 0.3 extremity threshold after
	// smoothing, adding 0.05 to the 0.6 base.
	got := a.Aggregate(Inputs{
		SentimentScore: 0.1,
		ContentKind:    model.ContentGeneral,
	})
	if math.Abs(got-0.65) > 1e-9 {
		t.Errorf("Expected 0.65, got %.4f", got)
	}
}

func TestAggregator_ProtectedBase(t *testing.T) {
	a := NewAggregator()

	general := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral})
	weather := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentWeatherAlert})

	// Protected kinds start at 0.7 and collect the 0.2 class bonus.
	if math.Abs(weather-general-0.3) > 1e-9 {
		t.Errorf("Expected protected lift of 0.3, got %.4f (general %.4f, weather %.4f)",
			weather-general, general, weather)
	}
}

func TestAggregator_DomainTrustRequiresURL(t *testing.T) {
	a := NewAggregator()

	withoutURL := a.Aggregate(Inputs{
		SentimentScore: 0.5,
		ContentKind:    model.ContentGeneral,
		DomainTrust:    -0.2, // must be ignored without a URL
	})
	withURL := a.Aggregate(Inputs{
		SentimentScore: 0.5,
		ContentKind:    model.ContentGeneral,
		HasURL:         true,
		DomainTrust:    -0.2,
	})

	if math.Abs(withoutURL-withURL-0.2) > 1e-9 {
		t.Errorf("Expected satire URL to cost exactly 0.2, got %.4f vs %.4f", withoutURL, withURL)
	}
}

func TestAggregator_VerifiedRatio(t *testing.T) {
	a := NewAggregator()

	ratings := []model.FactRating{
		{Claim: "x", Rating: model.RatingTrue},
		{Claim: "y", Rating: model.RatingNeedsReview},
	}

	with := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral, FactRatings: ratings})
	without := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral})

	// 0.3 * (1 verified / 2 total) = 0.15
	if math.Abs(with-without-0.15) > 1e-9 {
		t.Errorf("Expected verified-ratio bonus of 0.15, got %.4f", with-without)
	}
}

func TestAggregator_SensationalPenaltyMultipliers(t *testing.T) {
	a := NewAggregator()

	generalClean := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral})
	generalSpicy := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral, Sensational: 1})
	if math.Abs(generalClean-generalSpicy-0.15) > 1e-9 {
		t.Errorf("Expected 0.15 general penalty, got %.4f", generalClean-generalSpicy)
	}

	sciClean := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentScientific})
	sciSpicy := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentScientific, Sensational: 1})
	if math.Abs(sciClean-sciSpicy-0.1) > 1e-9 {
		t.Errorf("Expected 0.1 protected penalty, got %.4f", sciClean-sciSpicy)
	}
}

func TestAggregator_CitationAndDigitCues(t *testing.T) {
	a := NewAggregator()

	// Satire trust and full sensationalism pull the protected base down to
	// 0.6 so the cue bonuses stay visible below the clamp.
	pressed := Inputs{
		SentimentScore: 0.5,
		ContentKind:    model.ContentScientific,
		HasURL:         true,
		DomainTrust:    -0.2,
		Sensational:    1,
	}

	plain := pressed
	plain.FactRatings = []model.FactRating{{Claim: "plain claim", Rating: model.RatingNeedsReview}}
	base := a.Aggregate(plain)

	cued := pressed
	cued.FactRatings = []model.FactRating{
		{Claim: "According to records from 1998, output doubled", Rating: model.RatingNeedsReview},
	}
	bonused := a.Aggregate(cued)

	// Citation 0.15 + digits 0.1 on top of the same base.
	if math.Abs(bonused-base-0.25) > 1e-9 {
		t.Errorf("Expected cue bonuses of 0.25, got %.4f", bonused-base)
	}
}

func TestAggregator_BalanceCue(t *testing.T) {
	a := NewAggregator()

	plain := a.Aggregate(Inputs{
		SentimentScore: 0.5,
		ContentKind:    model.ContentGeneral,
		FactRatings:    []model.FactRating{{Claim: "plain claim", Rating: model.RatingNeedsReview}},
	})
	balanced := a.Aggregate(Inputs{
		SentimentScore: 0.5,
		ContentKind:    model.ContentGeneral,
		FactRatings:    []model.FactRating{{Claim: "output rose although costs fell", Rating: model.RatingNeedsReview}},
	})

	if math.Abs(balanced-plain-0.15) > 1e-9 {
		t.Errorf("Expected balance bonus of 0.15, got %.4f", balanced-plain)
	}
}

func TestAggregator_SentimentExtremity(t *testing.T) {
	a := NewAggregator()

	neutral := a.Aggregate(Inputs{SentimentScore: 0.5, ContentKind: model.ContentGeneral})

	// |Smooth(0.2)| = 0.188 < 0.3 adds 0.05.
	calm := a.Aggregate(Inputs{SentimentScore: 0.2, ContentKind: model.ContentGeneral})
	if math.Abs(calm-neutral-0.05) > 1e-9 {
		t.Errorf("Expected +0.05 for muted sentiment, got %.4f", calm-neutral)
	}

	// Smooth(-1) = -0.7, inside [0.3, 0.9]: no adjustment. Smoothing keeps
	// even full-confidence signals out of the extremity band.
	extreme := a.Aggregate(Inputs{SentimentScore: -1, ContentKind: model.ContentGeneral})
	if math.Abs(extreme-neutral) > 1e-9 {
		t.Errorf("Expected smoothed extreme to match neutral, got %.4f vs %.4f", extreme, neutral)
	}
}

func TestSmooth(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{1, 0.7},
		{-1, -0.7},
		{0.5, 0.425},
		{-0.5, -0.425},
	}
	for _, tc := range cases {
		if got := Smooth(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Smooth(%.2f) = %.4f, want %.4f", tc.in, got, tc.want)
		}
	}
}

func TestAggregator_ClampUnderMaximalBonuses(t *testing.T) {
	a := NewAggregator()

	got := a.Aggregate(Inputs{
		SentimentScore: 0.1,
		ContentKind:    model.ContentScientific,
		HasURL:         true,
		DomainTrust:    0.4,
		FactRatings: []model.FactRating{
			{Claim: "According to records from 1998, output rose but costs fell", Rating: model.RatingTrue},
		},
	})
	if got != 1 {
		t.Errorf("Expected clamp at 1, got %.4f", got)
	}
}

func TestAggregator_ClampUnderMaximalPenalties(t *testing.T) {
	a := NewAggregator()

	got := a.Aggregate(Inputs{
		SentimentScore: -1,
		ContentKind:    model.ContentGeneral,
		HasURL:         true,
		DomainTrust:    -0.2,
		Sensational:    1,
	})
	if got < 0 || got > 1 {
		t.Errorf("Expected score within [0,1], got %.4f", got)
	}
	// 0.6 - 0.2 - 0.15 with no extremity adjustment after smoothing.
	if math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Expected floor of 0.25, got %.4f", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(0.666666); got != 0.67 {
		t.Errorf("Expected 0.67, got %v", got)
	}
	if got := Round2(0.125); got != 0.13 {
		t.Errorf("Expected 0.13, got %v", got)
	}
}
