package scoring

import (
	"strings"

	"contentgate/internal/asset"
)

// personalizationMetrics measures how much of the advisor's own identity the
// asset carries, against segment-specific expectations.
func personalizationMetrics(a asset.Asset, p asset.AdvisorProfile, lower string, words int) []Metric {
	expected := nameMentionExpectation[a.Segment]
	if expected == 0 {
		expected = 1
	}
	nameScore := 0.3
	if name := strings.ToLower(strings.TrimSpace(p.Name)); name != "" {
		mentions := countOccurrences(lower, name)
		nameScore = clamp01(float64(mentions) / float64(expected))
	}

	vocab := segmentVocabulary[a.Segment]
	segment := densityScore(countContained(lower, vocab), words, 2.5)

	brand := 0.7 // neutral when no brand is configured
	if b := strings.ToLower(strings.TrimSpace(p.Brand)); b != "" {
		if strings.Contains(lower, b) {
			brand = 1.0
		} else {
			brand = 0.3
		}
	}

	locale := 0.4
	if containsAny(lower, localeTerms) {
		locale = 1.0
	}

	return []Metric{
		{Name: "name_mentions", Value: nameScore},
		{Name: "segment_alignment", Value: segment},
		{Name: "brand_presence", Value: brand},
		{Name: "locale_terms", Value: locale},
	}
}
