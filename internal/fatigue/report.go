package fatigue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SessionReport aggregates per-advisor fatigue reports for one run.
type SessionReport struct {
	GeneratedAt    string   `json:"generated_at"`
	Advisors       []Report `json:"advisors"`
	OverallScore   float64  `json:"overall_score"`
	Status         string   `json:"distribution_status"`
	Recommendation string   `json:"recommendation"`
}

// BuildSessionReport combines advisor reports; the session score is the mean
// advisor freshness, and the session status uses the same banding.
func BuildSessionReport(reports []Report) SessionReport {
	cp := append([]Report(nil), reports...)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].AdvisorID < cp[j].AdvisorID })

	total := 0.0
	for _, r := range cp {
		total += r.FreshnessScore
	}
	overall := 10.0
	if len(cp) > 0 {
		overall = total / float64(len(cp))
	}

	status := StatusFor(overall)
	return SessionReport{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Advisors:       cp,
		OverallScore:   overall,
		Status:         status,
		Recommendation: RecommendationFor(status),
	}
}

// SaveJSON writes the fatigue_analysis.json artifact.
func (s SessionReport) SaveJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

// SaveMarkdown writes the human-readable FATIGUE_REPORT.md companion.
func (s SessionReport) SaveMarkdown(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.RenderMarkdown()), 0644)
}

// RenderMarkdown produces the reviewer-facing report.
func (s SessionReport) RenderMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Content Fatigue Report\n\n")
	fmt.Fprintf(&sb, "- **Generated**: %s\n", s.GeneratedAt)
	fmt.Fprintf(&sb, "- **Session freshness**: %.1f / 10\n", s.OverallScore)
	fmt.Fprintf(&sb, "- **Status**: %s\n", s.Status)
	fmt.Fprintf(&sb, "- **Recommendation**: %s\n\n", s.Recommendation)

	for _, r := range s.Advisors {
		fmt.Fprintf(&sb, "## Advisor %s\n\n", r.AdvisorID)
		fmt.Fprintf(&sb, "- Freshness: %.1f / 10 (%s)\n", r.FreshnessScore, r.Status)
		channels := make([]string, 0, len(r.ChannelScores))
		for ch := range r.ChannelScores {
			channels = append(channels, ch)
		}
		sort.Strings(channels)
		for _, ch := range channels {
			fmt.Fprintf(&sb, "- %s channel: %.1f\n", ch, r.ChannelScores[ch])
		}
		if len(r.Flags) == 0 {
			sb.WriteString("- No fatigue flags.\n\n")
			continue
		}
		sb.WriteString("\n| Flag | Channel | Severity | Details |\n")
		sb.WriteString("| --- | --- | --- | --- |\n")
		for _, f := range r.Flags {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", f.Type, f.Channel, f.Severity, f.Details)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
