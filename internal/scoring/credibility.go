package scoring

import (
	"regexp"

	"contentgate/internal/asset"
)

var arnPattern = regexp.MustCompile(`(?i)\barn[-\s]?\d+`)
var marketDataPattern = regexp.MustCompile(`(?:₹\s?[\d,]+(?:\.\d+)?|\d+(?:\.\d+)?\s?%|\b\d{4,6}\b)`)

// credibilityMetrics measures whether claims are backed by data and proper
// disclosure. A single prohibited absolute claim caps that sub-metric at 0.3.
func credibilityMetrics(a asset.Asset, lower string, words int) []Metric {
	dataHits := len(marketDataPattern.FindAllString(a.Text, -1))
	data := clamp01(float64(dataHits) / 2.0)

	credential := 0.4
	if arnPattern.MatchString(a.Text) || containsAny(lower, []string{"sebi registered", "amfi registered"}) {
		credential = 1.0
	}

	claims := 1.0
	if containsAny(lower, prohibitedClaims) {
		claims = 0.3
	}

	expertise := densityScore(countContained(lower, expertiseTerms), words, 2.5)

	return []Metric{
		{Name: "data_evidence", Value: data},
		{Name: "credential_disclosure", Value: credential},
		{Name: "compliant_claims", Value: claims},
		{Name: "expertise_terms", Value: expertise},
	}
}
