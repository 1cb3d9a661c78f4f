package scoring

import (
	"strings"

	"contentgate/internal/asset"
)

// Dimension names one of the six weighted quality dimensions.
type Dimension string

const (
	DimRelevance       Dimension = "relevance"
	DimClarity         Dimension = "clarity"
	DimEngagement      Dimension = "engagement"
	DimCredibility     Dimension = "credibility"
	DimPersonalization Dimension = "personalization"
	DimTechnical       Dimension = "technical"
)

// dimensionOrder fixes iteration order so reports are reproducible.
var dimensionOrder = []Dimension{
	DimRelevance, DimClarity, DimEngagement,
	DimCredibility, DimPersonalization, DimTechnical,
}

// DimensionWeights sum to exactly 1.0.
var DimensionWeights = map[Dimension]float64{
	DimRelevance:       0.20,
	DimClarity:         0.20,
	DimEngagement:      0.20,
	DimCredibility:     0.15,
	DimPersonalization: 0.15,
	DimTechnical:       0.10,
}

// AutoApprovalThreshold is the overall score at which an asset is eligible for
// automatic approval without human review.
const AutoApprovalThreshold = 0.80

// Metric is one named sub-metric in [0,1]. A dimension's score is the
// arithmetic mean of its sub-metrics.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Report is the full quality assessment for one asset. It is recomputed fresh
// on every call and never mutated.
type Report struct {
	AssetID              string                 `json:"asset_id"`
	AdvisorID            string                 `json:"advisor_id"`
	Segment              asset.Segment          `json:"segment"`
	ContentType          asset.ContentType      `json:"content_type"`
	Dimensions           map[Dimension]float64  `json:"dimensions"`
	Metrics              map[Dimension][]Metric `json:"metrics,omitempty"`
	Overall              float64                `json:"overall_score"`
	Grade                string                 `json:"grade"`
	AutoApprovalEligible bool                   `json:"auto_approval_eligible"`
	Strengths            []string               `json:"strengths,omitempty"`
	Improvements         []string               `json:"improvements,omitempty"`
}

// Score computes the weighted quality report for one asset. It is a pure
// function of the asset and profile: no I/O, no randomness, so identical input
// always yields an identical report.
func Score(a asset.Asset, p asset.AdvisorProfile) Report {
	lower := strings.ToLower(a.Text)
	words := wordCount(a.Text)

	metrics := map[Dimension][]Metric{
		DimRelevance:       relevanceMetrics(a, lower, words),
		DimClarity:         clarityMetrics(a, lower, words),
		DimEngagement:      engagementMetrics(a, lower, words),
		DimCredibility:     credibilityMetrics(a, lower, words),
		DimPersonalization: personalizationMetrics(a, p, lower, words),
		DimTechnical:       technicalMetrics(a),
	}

	dims := make(map[Dimension]float64, len(metrics))
	overall := 0.0
	for _, d := range dimensionOrder {
		avg := meanMetric(metrics[d])
		dims[d] = avg
		overall += DimensionWeights[d] * avg
	}

	r := Report{
		AssetID:              a.ID,
		AdvisorID:            a.AdvisorID,
		Segment:              a.Segment,
		ContentType:          a.Type,
		Dimensions:           dims,
		Metrics:              metrics,
		Overall:              overall,
		Grade:                GradeFor(overall),
		AutoApprovalEligible: overall >= AutoApprovalThreshold,
	}
	r.Strengths, r.Improvements = summarizeDimensions(dims)
	return r
}

// GradeFor maps an overall score onto a letter grade.
func GradeFor(overall float64) string {
	switch {
	case overall >= 0.90:
		return "A+"
	case overall >= 0.80:
		return "A"
	case overall >= 0.70:
		return "B"
	case overall >= 0.60:
		return "C"
	default:
		return "D"
	}
}

// WeakDimensions returns the dimensions scoring below the given bar, in the
// fixed dimension order.
func (r Report) WeakDimensions(bar float64) []Dimension {
	out := make([]Dimension, 0, len(dimensionOrder))
	for _, d := range dimensionOrder {
		if r.Dimensions[d] < bar {
			out = append(out, d)
		}
	}
	return out
}

func meanMetric(ms []Metric) float64 {
	if len(ms) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range ms {
		sum += m.Value
	}
	return sum / float64(len(ms))
}

var strengthPhrases = map[Dimension]string{
	DimRelevance:       "timely, segment-appropriate theme",
	DimClarity:         "clear structure and readable language",
	DimEngagement:      "strong hook and call-to-action",
	DimCredibility:     "well-supported with data and credentials",
	DimPersonalization: "carries the advisor's personal brand",
	DimTechnical:       "clean formatting at the right length",
}

var improvementPhrases = map[Dimension]string{
	DimRelevance:       "tie the message to current market context and segment vocabulary",
	DimClarity:         "shorten sentences and add a clear value proposition",
	DimEngagement:      "open with a stronger hook and close with a call-to-action",
	DimCredibility:     "add verifiable data points and the ARN disclosure",
	DimPersonalization: "mention the advisor's name and brand",
	DimTechnical:       "fix formatting issues and fit the channel's ideal length",
}

func summarizeDimensions(dims map[Dimension]float64) (strengths, improvements []string) {
	for _, d := range dimensionOrder {
		if dims[d] >= 0.80 {
			strengths = append(strengths, strengthPhrases[d])
		} else {
			improvements = append(improvements, improvementPhrases[d])
		}
	}
	return strengths, improvements
}
