package scoring

import (
	"strings"

	"contentgate/internal/asset"
)

// engagementMetrics measures whether the asset earns attention and asks for a
// response. Hook strength is judged on the opening alone, independent of length.
func engagementMetrics(a asset.Asset, lower string, words int) []Metric {
	opening := strings.ToLower(firstN(a.Text, 150))
	hookHits := countContained(opening, hookKeywords)
	if strings.Contains(opening, "?") {
		hookHits++
	}
	if hasDigit(opening) {
		hookHits++
	}
	hook := clamp01(float64(hookHits) / 3.0)

	emotional := densityScore(countContained(lower, emotionalVocabulary), words, 2.5)

	cta := 0.3
	if containsAny(lower, ctaMarkers) {
		cta = 1.0
	}

	viral := viralPotential(a, lower)

	return []Metric{
		{Name: "hook_strength", Value: hook},
		{Name: "emotional_vocabulary", Value: emotional},
		{Name: "call_to_action", Value: cta},
		{Name: "viral_potential", Value: viral},
	}
}

// viralPotential is a composite flag set: numeric claim, emoji, question,
// urgency term, social proof. Each present flag contributes equally.
func viralPotential(a asset.Asset, lower string) float64 {
	flags := 0
	if hasDigit(a.Text) {
		flags++
	}
	if hasEmoji(a.Text) {
		flags++
	}
	if strings.Contains(a.Text, "?") {
		flags++
	}
	if containsAny(lower, urgencyTerms) {
		flags++
	}
	if containsAny(lower, socialProofMarkers) {
		flags++
	}
	return float64(flags) / 5.0
}
