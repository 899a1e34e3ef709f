package sentiment

import (
	"strings"
	"testing"

	"github.com/credlab/veracity/internal/model"
)

func newInitialized(t *testing.T) *VADER {
	t.Helper()
	v := NewVADER()
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return v
}

func TestVADER_ClassifyBeforeInit(t *testing.T) {
	v := NewVADER()
	if _, err := v.Classify("anything"); err == nil {
		t.Error("Expected error when classifying before Init")
	}
}

func TestVADER_InitIdempotent(t *testing.T) {
	v := newInitialized(t)
	if err := v.Init(); err != nil {
		t.Errorf("Second Init failed: %v", err)
	}
}

func TestVADER_PositiveAndNegative(t *testing.T) {
	v := newInitialized(t)

	pos, err := v.Classify("This is a wonderful, excellent result and everyone is happy.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if pos.Label != model.SentimentPositive {
		t.Errorf("Expected POSITIVE, got %s", pos.Label)
	}

	neg, err := v.Classify("This is a horrible, terrible disaster and everyone is angry.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if neg.Label != model.SentimentNegative {
		t.Errorf("Expected NEGATIVE, got %s", neg.Label)
	}
}

func TestVADER_ConfidenceBounds(t *testing.T) {
	v := newInitialized(t)

	for _, text := range []string{
		"plain words without affect",
		"AMAZING incredible wonderful best ever!!!",
		"worst most horrible awful catastrophe!!!",
	} {
		sig, err := v.Classify(text)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", text, err)
		}
		if sig.Confidence < 0.5 || sig.Confidence > 1 {
			t.Errorf("Confidence for %q out of [0.5,1]: %.3f", text, sig.Confidence)
		}
	}
}

func TestVADER_Deterministic(t *testing.T) {
	v := newInitialized(t)

	text := "The committee approved the excellent proposal."
	first, _ := v.Classify(text)
	second, _ := v.Classify(text)

	if first != second {
		t.Errorf("Expected deterministic output, got %+v and %+v", first, second)
	}
}

func TestVADER_TruncatesLongInput(t *testing.T) {
	v := newInitialized(t)

	long := strings.Repeat("word ", 10_000) + "wonderful"
	if _, err := v.Classify(long); err != nil {
		t.Errorf("Expected truncated classification to succeed, got %v", err)
	}
}

func TestVADER_SignedConversion(t *testing.T) {
	pos := model.SentimentSignal{Label: model.SentimentPositive, Confidence: 0.8}
	if pos.Signed() != 0.8 {
		t.Errorf("Expected 0.8, got %.2f", pos.Signed())
	}
	neg := model.SentimentSignal{Label: model.SentimentNegative, Confidence: 0.8}
	if neg.Signed() != -0.8 {
		t.Errorf("Expected -0.8, got %.2f", neg.Signed())
	}
}

func TestStripMarkup(t *testing.T) {
	out := StripMarkup("See [the study](https://example.com/paper) at https://example.com/more")
	if strings.Contains(out, "example.com") {
		t.Errorf("Expected links removed, got %q", out)
	}
}
