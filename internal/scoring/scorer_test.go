package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"contentgate/internal/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAsset() asset.Asset {
	return asset.Asset{
		ID:        "a1",
		AdvisorID: "ADV001",
		Segment:   asset.SegmentGold,
		Type:      asset.TypeWhatsApp,
		Text: "Did you know? SIP investors who stayed invested through the 2020 dip " +
			"earned 12% CAGR over 5 years.\n\n" +
			"Rahul Sharma helps you plan your goals:\n" +
			"1. Start a monthly SIP of ₹5,000\n" +
			"2. Review your goals every quarter\n\n" +
			"Reply here to book a free review. ARN-12345",
		Hook:      "Did you know?",
		Timestamp: time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
	}
}

func sampleProfile() asset.AdvisorProfile {
	return asset.AdvisorProfile{
		AdvisorID: "ADV001",
		Name:      "Rahul Sharma",
		Brand:     "Sharma Wealth",
		ARN:       "ARN-12345",
		Segment:   asset.SegmentGold,
	}
}

func TestDimensionWeights_SumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range DimensionWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScore_OverallIsWeightedSum(t *testing.T) {
	r := Score(sampleAsset(), sampleProfile())

	expected := 0.0
	for d, w := range DimensionWeights {
		expected += w * r.Dimensions[d]
	}
	assert.InDelta(t, expected, r.Overall, 1e-9)
	require.Len(t, r.Dimensions, 6)
	for d, v := range r.Dimensions {
		assert.GreaterOrEqual(t, v, 0.0, "dimension %s", d)
		assert.LessOrEqual(t, v, 1.0, "dimension %s", d)
	}
}

func TestScore_Deterministic(t *testing.T) {
	a, p := sampleAsset(), sampleProfile()
	first := Score(a, p)
	second := Score(a, p)
	assert.True(t, reflect.DeepEqual(first, second), "identical input must produce identical reports")
}

func TestScore_AutoApprovalTracksThreshold(t *testing.T) {
	assets := []asset.Asset{
		sampleAsset(),
		{ID: "thin", Text: "buy now", Type: asset.TypeWhatsApp, Segment: asset.SegmentSilver},
		{ID: "empty", Type: asset.TypeLinkedIn, Segment: asset.SegmentPremium},
	}
	for _, a := range assets {
		r := Score(a, sampleProfile())
		assert.Equal(t, r.Overall >= AutoApprovalThreshold, r.AutoApprovalEligible, "asset %s", a.ID)
	}
}

func TestGradeFor_Bands(t *testing.T) {
	assert.Equal(t, "A+", GradeFor(0.95))
	assert.Equal(t, "A+", GradeFor(0.90))
	assert.Equal(t, "A", GradeFor(0.80))
	assert.Equal(t, "B", GradeFor(0.70))
	assert.Equal(t, "C", GradeFor(0.60))
	assert.Equal(t, "D", GradeFor(0.59))
}

func TestScore_ProhibitedClaimsPenalizeCredibility(t *testing.T) {
	a := sampleAsset()
	clean := Score(a, sampleProfile())

	a.Text += "\nGuaranteed returns, completely risk-free!"
	flagged := Score(a, sampleProfile())

	assert.Less(t, flagged.Dimensions[DimCredibility], clean.Dimensions[DimCredibility])
}

func TestScore_WeakDimensionsOrdered(t *testing.T) {
	r := Score(asset.Asset{ID: "thin", Text: "hello", Type: asset.TypeLinkedIn}, asset.AdvisorProfile{})
	weak := r.WeakDimensions(0.80)
	require.NotEmpty(t, weak)

	pos := map[Dimension]int{}
	for i, d := range dimensionOrder {
		pos[d] = i
	}
	for i := 1; i < len(weak); i++ {
		assert.Less(t, pos[weak[i-1]], pos[weak[i]])
	}
}

func TestLengthFitScore_ProportionalPenalty(t *testing.T) {
	inRange := asset.Asset{Type: asset.TypeWhatsApp, Text: makeText(300)}
	assert.Equal(t, 1.0, lengthFitScore(inRange))

	slightlyOver := asset.Asset{Type: asset.TypeWhatsApp, Text: makeText(1000)}
	wayOver := asset.Asset{Type: asset.TypeWhatsApp, Text: makeText(3000)}
	assert.Greater(t, lengthFitScore(slightlyOver), lengthFitScore(wayOver))
	assert.GreaterOrEqual(t, lengthFitScore(wayOver), 0.0)
}

func TestReadabilityScore_PrefersShortSentences(t *testing.T) {
	simple := "We plan. We save. We grow. It works well for you and me."
	dense := "Notwithstanding considerable macroeconomic uncertainties, sophisticated " +
		"institutional rebalancing methodologies necessitate comprehensive diversification analysis."
	assert.Greater(t, readabilityScore(simple), readabilityScore(dense))
}

func TestEstimateSyllables(t *testing.T) {
	assert.Equal(t, 1, estimateSyllables("plan"))
	assert.Equal(t, 2, estimateSyllables("money"))
	assert.GreaterOrEqual(t, estimateSyllables("diversification"), 5)
}

func TestBuildAssessment_Aggregates(t *testing.T) {
	reports := []Report{
		{AssetID: "a", AdvisorID: "1", Segment: asset.SegmentGold, ContentType: asset.TypeLinkedIn, Overall: 0.85, Grade: "A", AutoApprovalEligible: true},
		{AssetID: "b", AdvisorID: "1", Segment: asset.SegmentGold, ContentType: asset.TypeWhatsApp, Overall: 0.65, Grade: "C"},
		{AssetID: "c", AdvisorID: "2", Segment: asset.SegmentSilver, ContentType: asset.TypeWhatsApp, Overall: 0.40, Grade: "D"},
	}
	a := BuildAssessment(reports)

	assert.Equal(t, 3, a.TotalAssets)
	assert.Equal(t, 1, a.AutoApproved)
	assert.Equal(t, 1, a.ManualReview)
	assert.Equal(t, 1, a.Rejected)
	assert.InDelta(t, 0.75, a.SegmentAverages["Gold"], 1e-9)
	assert.InDelta(t, 0.525, a.TypeAverages["whatsapp"], 1e-9)
	assert.Equal(t, "REGENERATE", a.Recommendation())
}

func TestBuildAssessment_EmptyBatch(t *testing.T) {
	a := BuildAssessment(nil)
	assert.Equal(t, 0, a.TotalAssets)
	assert.False(t, math.IsNaN(a.AverageScore))
	assert.Equal(t, "MANUAL REVIEW", a.Recommendation())
}

func makeText(n int) string {
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, "invest well "...)
	}
	return string(out[:n])
}
