package extract

import (
	"strings"
	"testing"
)

func TestClaimExtractor_BasicExtraction(t *testing.T) {
	extractor := NewClaimExtractor()

	text := "The new policy is effective immediately. " +
		"Officials said nothing else. " +
		"Officials say research indicates coffee improves focus."

	claims := extractor.Extract(text)
	if len(claims) < 2 {
		t.Fatalf("Expected at least 2 claims, got %d", len(claims))
	}

	foundCopular := false
	foundAttribution := false
	for _, claim := range claims {
		if strings.Contains(claim.Text, "policy is effective") {
			foundCopular = true
			if claim.Heuristic != "family:copular" {
				t.Errorf("Expected copular heuristic, got %q", claim.Heuristic)
			}
		}
		if strings.Contains(claim.Text, "research indicates") {
			foundAttribution = true
			if claim.Heuristic != "family:attribution" {
				t.Errorf("Expected attribution heuristic, got %q", claim.Heuristic)
			}
		}
	}

	if !foundCopular {
		t.Error("Expected to find claim with copular verb")
	}
	if !foundAttribution {
		t.Error("Expected to find claim with attribution cue")
	}
}

func TestClaimExtractor_AttributionCuesAreCaseSensitive(t *testing.T) {
	extractor := NewClaimExtractor()

	// Cues are lower case, so a sentence-initial capitalized cue matches
	// no family at all.
	claims := extractor.Extract("Research indicates coffee improves focus.")
	if len(claims) != 0 {
		t.Errorf("Expected no claims for capitalized cue, got %d", len(claims))
	}

	claims = extractor.Extract("Officials say research indicates coffee improves focus.")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim for mid-sentence cue, got %d", len(claims))
	}
	if claims[0].Heuristic != "family:attribution" {
		t.Errorf("Expected attribution heuristic, got %q", claims[0].Heuristic)
	}
}

func TestClaimExtractor_CapsAtThree(t *testing.T) {
	extractor := NewClaimExtractor()

	text := "Alpha is first. Beta is second. Gamma is third. Delta is fourth. Epsilon is fifth."

	claims := extractor.Extract(text)
	if len(claims) != 3 {
		t.Errorf("Expected exactly 3 claims, got %d", len(claims))
	}
}

func TestClaimExtractor_FamilyOrderBeforeSourceOrder(t *testing.T) {
	extractor := NewClaimExtractor()

	// The attribution sentence comes first in the text but its family is
	// evaluated second, so the copular sentence must lead the result.
	text := "Historians reports the find. The artifact is ancient."

	claims := extractor.Extract(text)
	if len(claims) < 2 {
		t.Fatalf("Expected at least 2 claims, got %d", len(claims))
	}
	if !strings.Contains(claims[0].Text, "artifact is ancient") {
		t.Errorf("Expected copular family first, got %q", claims[0].Text)
	}
}

func TestClaimExtractor_NoDeduplication(t *testing.T) {
	extractor := NewClaimExtractor()

	// Matches both the copular family ("is") and the certainty family
	// ("confirmed"), so the same sentence must appear twice.
	text := "The result is confirmed by the lab."

	claims := extractor.Extract(text)
	if len(claims) != 2 {
		t.Fatalf("Expected duplicate claim across families, got %d claims", len(claims))
	}
	if claims[0].Text != claims[1].Text {
		t.Errorf("Expected identical claim text, got %q and %q", claims[0].Text, claims[1].Text)
	}
	if claims[0].Heuristic == claims[1].Heuristic {
		t.Errorf("Expected distinct family heuristics, both were %q", claims[0].Heuristic)
	}
}

func TestClaimExtractor_NoClaims(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("just lower case fragments without verbs of interest")
	if len(claims) != 0 {
		t.Errorf("Expected no claims, got %d", len(claims))
	}
}

func TestClaimExtractor_Recomputed(t *testing.T) {
	extractor := NewClaimExtractor()
	text := "Water is wet."

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	if len(first) != len(second) {
		t.Fatalf("Expected identical results across calls, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Claim %d differs across calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}
