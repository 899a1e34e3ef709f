package rules

import "regexp"

// ClaimFamily is one family of sentence patterns that marks a candidate
// factual claim. Families are evaluated in table order and matches are
// concatenated family by family, preserving source order within a family.
type ClaimFamily struct {
	Name    string
	Pattern *regexp.Regexp
}

// MaxClaims caps the number of claims kept per analysis.
const MaxClaims = 3

// ClaimFamilies matches capitalized sentences ending in a terminator.
// The verb lists are matched case-sensitively: a sentence-initial
// "According to ..." is caught by the copular family, not the attribution
// family, which only sees mid-sentence lower-case cues.
var ClaimFamilies = []ClaimFamily{
	{
		Name:    "copular",
		Pattern: regexp.MustCompile(`[A-Z][^.!?]*\b(?:is|are|was|were|has|have|had|will|would|can|could)\b[^.!?]*[.!?]`),
	},
	{
		Name:    "attribution",
		Pattern: regexp.MustCompile(`[A-Z][^.!?]*\b(?:according to|reports|studies show|research indicates)\b[^.!?]*[.!?]`),
	},
	{
		Name:    "certainty",
		Pattern: regexp.MustCompile(`[A-Z][^.!?]*\b(?:proven|confirmed|verified|established)\b[^.!?]*[.!?]`),
	},
}
