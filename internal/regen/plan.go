package regen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Plan is the regeneration-plan.json artifact: every attempt made, every
// fallback applied, and the final quality rate.
type Plan struct {
	RunID            string    `json:"run_id"`
	GeneratedAt      string    `json:"generated_at"`
	TotalAssets      int       `json:"total_assets"`
	Accepted         int       `json:"accepted"`
	FallbacksApplied int       `json:"fallbacks_applied"`
	BelowThreshold   int       `json:"below_threshold"`
	FinalQualityRate float64   `json:"final_quality_rate"`
	Attempts         []Attempt `json:"attempts"`
	Assets           []Result  `json:"assets"`
}

// BuildPlan rolls up per-asset results. A fallback asset meets the bar when
// its template's curated quality (0-10 scale) clears the threshold; anything
// else that is not accepted still counts as below threshold.
func BuildPlan(runID string, results []Result, cfg Config) Plan {
	cfg = cfg.normalized()
	cp := append([]Result(nil), results...)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Asset.ID < cp[j].Asset.ID })

	p := Plan{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalAssets: len(cp),
		Attempts:    []Attempt{},
		Assets:      cp,
	}

	for _, r := range cp {
		p.Attempts = append(p.Attempts, r.Attempts...)
		switch {
		case r.State == StateAccepted:
			p.Accepted++
		case r.FallbackUsed:
			p.FallbacksApplied++
			if r.FallbackQuality/10.0 < cfg.QualityThreshold {
				p.BelowThreshold++
			}
		default:
			p.BelowThreshold++
		}
	}

	if p.TotalAssets > 0 {
		p.FinalQualityRate = float64(p.TotalAssets-p.BelowThreshold) / float64(p.TotalAssets) * 100.0
	} else {
		p.FinalQualityRate = 100.0
	}
	return p
}

// ExitCode maps the quality rate to the CLI contract callers script around:
// 0 at 100%, 1 at or above 90%, 2 below.
func (p Plan) ExitCode() int {
	switch {
	case p.FinalQualityRate >= 100.0:
		return 0
	case p.FinalQualityRate >= 90.0:
		return 1
	default:
		return 2
	}
}

// Save writes the plan artifact as indented JSON.
func (p Plan) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}
