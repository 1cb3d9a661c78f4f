package scoring

import "contentgate/internal/asset"

// relevanceMetrics measures whether the asset speaks to the current market and
// to its segment's vocabulary.
func relevanceMetrics(a asset.Asset, lower string, words int) []Metric {
	timing := densityScore(countContained(lower, marketTimingKeywords), words, 3.0)

	vocab := segmentVocabulary[a.Segment]
	segment := densityScore(countContained(lower, vocab), words, 2.5)

	trendHits := countContained(lower, trendingTopics)
	trending := clamp01(float64(trendHits) / 2.0)

	month := 0
	if !a.Timestamp.IsZero() {
		month = int(a.Timestamp.Month())
	}
	terms, ok := seasonalTerms[month]
	if !ok {
		terms = seasonalTerms[0]
	}
	seasonal := 0.4
	if containsAny(lower, terms) {
		seasonal = 1.0
	}

	return []Metric{
		{Name: "market_timing", Value: timing},
		{Name: "segment_vocabulary", Value: segment},
		{Name: "trending_alignment", Value: trending},
		{Name: "seasonal_alignment", Value: seasonal},
	}
}
