package scoring

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"contentgate/internal/asset"
)

// Assessment aggregates a session's quality reports into one artifact with the
// statistics a reviewer scans first.
type Assessment struct {
	GeneratedAt       string             `json:"generated_at"`
	TotalAssets       int                `json:"total_assets"`
	AutoApproved      int                `json:"auto_approved"`
	ManualReview      int                `json:"manual_review"`
	Rejected          int                `json:"rejected"`
	AverageScore      float64            `json:"average_score"`
	SegmentAverages   map[string]float64 `json:"segment_averages"`
	TypeAverages      map[string]float64 `json:"content_type_averages"`
	GradeDistribution map[string]int     `json:"grade_distribution"`
	Reports           []Report           `json:"reports"`
}

// BuildAssessment rolls up individual reports. Assets below the review bar
// (grade D) are counted as rejected.
func BuildAssessment(reports []Report) Assessment {
	a := Assessment{
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
		TotalAssets:       len(reports),
		SegmentAverages:   map[string]float64{},
		TypeAverages:      map[string]float64{},
		GradeDistribution: map[string]int{},
		Reports:           sortedReports(reports),
	}

	segSums := map[string]float64{}
	segCounts := map[string]int{}
	typeSums := map[string]float64{}
	typeCounts := map[string]int{}
	total := 0.0

	for _, r := range a.Reports {
		total += r.Overall
		a.GradeDistribution[r.Grade]++
		switch {
		case r.AutoApprovalEligible:
			a.AutoApproved++
		case r.Overall >= 0.60:
			a.ManualReview++
		default:
			a.Rejected++
		}
		segSums[string(r.Segment)] += r.Overall
		segCounts[string(r.Segment)]++
		typeSums[string(r.ContentType)] += r.Overall
		typeCounts[string(r.ContentType)]++
	}

	if len(reports) > 0 {
		a.AverageScore = total / float64(len(reports))
	}
	for seg, sum := range segSums {
		a.SegmentAverages[seg] = sum / float64(segCounts[seg])
	}
	for t, sum := range typeSums {
		a.TypeAverages[t] = sum / float64(typeCounts[t])
	}
	return a
}

// Recommendation is the human-facing status a reviewer acts on.
func (a Assessment) Recommendation() string {
	switch {
	case a.TotalAssets == 0:
		return "MANUAL REVIEW"
	case a.Rejected > 0:
		return "REGENERATE"
	case a.ManualReview > 0:
		return "MANUAL REVIEW"
	default:
		return "APPROVE"
	}
}

// Save writes the assessment artifact as indented JSON.
func (a Assessment) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(struct {
		Assessment
		Recommendation string `json:"recommendation"`
	}{a, a.Recommendation()}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

// ScoreAll scores a batch against per-advisor profiles. Assets whose advisor
// has no profile are scored with an empty profile rather than skipped.
func ScoreAll(assets []asset.Asset, profiles map[string]asset.AdvisorProfile) []Report {
	reports := make([]Report, 0, len(assets))
	for _, a := range assets {
		reports = append(reports, Score(a, profiles[a.AdvisorID]))
	}
	return reports
}

func sortedReports(reports []Report) []Report {
	cp := append([]Report(nil), reports...)
	sort.SliceStable(cp, func(i, j int) bool {
		if cp[i].AdvisorID == cp[j].AdvisorID {
			return cp[i].AssetID < cp[j].AssetID
		}
		return cp[i].AdvisorID < cp[j].AdvisorID
	})
	return cp
}
