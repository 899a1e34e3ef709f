package classify

import (
	"math"
	"strings"
	"testing"

	"github.com/credlab/veracity/internal/model"
)

const clickbait = "BREAKING!!! You won't believe this SHOCKING secret trick experts hate!"

func TestSensationalismScorer_Clickbait(t *testing.T) {
	s := NewSensationalismScorer()

	score := s.Score(clickbait, model.ContentGeneral)
	if score <= 0.3 {
		t.Errorf("Expected high sensational score for clickbait, got %.3f", score)
	}
	if score > 1 {
		t.Errorf("Expected score within [0,1], got %.3f", score)
	}
}

func TestSensationalismScorer_NeutralText(t *testing.T) {
	s := NewSensationalismScorer()

	score := s.Score("The committee met on Tuesday to review the quarterly budget.", model.ContentGeneral)
	if score != 0 {
		t.Errorf("Expected zero score for neutral text, got %.3f", score)
	}
}

func TestSensationalismScorer_ScientificDiscount(t *testing.T) {
	s := NewSensationalismScorer()

	general := s.Score(clickbait, model.ContentGeneral)
	scientific := s.Score(clickbait, model.ContentScientific)

	if math.Abs(scientific-general*0.5) > 1e-9 {
		t.Errorf("Expected scientific score %.4f to be half of %.4f", scientific, general)
	}
}

func TestSensationalismScorer_WeatherDiscount(t *testing.T) {
	s := NewSensationalismScorer()

	general := s.Score(clickbait, model.ContentGeneral)
	weather := s.Score(clickbait, model.ContentWeatherAlert)

	if math.Abs(weather-general*0.3) > 1e-9 {
		t.Errorf("Expected weather score %.4f to be 0.3 of %.4f", weather, general)
	}
}

func TestSensationalismScorer_LengthDiscountBands(t *testing.T) {
	s := NewSensationalismScorer()

	// One urgency word in texts of three lengths; only the discount differs.
	pad := func(words int) string {
		return "breaking " + strings.Repeat("word ", words-1)
	}

	short := s.Score(pad(10), model.ContentGeneral)   // x0.7
	medium := s.Score(pad(60), model.ContentGeneral)  // x0.85
	long := s.Score(pad(150), model.ContentGeneral)   // x1.0

	if math.Abs(short-0.07*0.7) > 1e-9 {
		t.Errorf("Expected short discount 0.049, got %.4f", short)
	}
	if math.Abs(medium-0.07*0.85) > 1e-9 {
		t.Errorf("Expected medium discount 0.0595, got %.4f", medium)
	}
	if math.Abs(long-0.07) > 1e-9 {
		t.Errorf("Expected no length discount, got %.4f", long)
	}
}

func TestSensationalismScorer_ClampsAtOne(t *testing.T) {
	s := NewSensationalismScorer()

	text := strings.Repeat("SHOCKING secret trick!! you won't believe this! ", 40)
	score := s.Score(text, model.ContentGeneral)
	if score != 1 {
		t.Errorf("Expected clamped score of 1, got %.3f", score)
	}
}
