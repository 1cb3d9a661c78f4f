package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RunSignal is one observability finding surfaced by a stage.
type RunSignal struct {
	Code     string  `json:"code"`
	Stage    string  `json:"stage"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
	Value    float64 `json:"value,omitempty"`
}

// StageMetric records timing and counters for one pipeline stage.
type StageMetric struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	StartedAt  string             `json:"started_at"`
	FinishedAt string             `json:"finished_at"`
	DurationMS int64              `json:"duration_ms"`
	Counters   map[string]float64 `json:"counters,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// RunSummary condenses the run for dashboards.
type RunSummary struct {
	StageCount        int            `json:"stage_count"`
	FailedStages      int            `json:"failed_stages"`
	QualityRate       float64        `json:"quality_rate"`
	FreshnessScore    float64        `json:"freshness_score,omitempty"`
	SignalsBySeverity map[string]int `json:"signals_by_severity"`
}

// RunReport is the run_report.json artifact for one pipeline invocation.
type RunReport struct {
	Version     string        `json:"version"`
	RunID       string        `json:"run_id"`
	Mode        string        `json:"mode"`
	GeneratedAt string        `json:"generated_at"`
	OutputDir   string        `json:"output_dir"`
	Stages      []StageMetric `json:"stages"`
	Signals     []RunSignal   `json:"signals,omitempty"`
	Summary     RunSummary    `json:"summary"`
}

// StageHandle tracks an in-flight stage.
type StageHandle struct {
	name    string
	started time.Time
}

func NewRunReport(runID, mode, outputDir string) *RunReport {
	return &RunReport{
		Version:     "v1",
		RunID:       runID,
		Mode:        mode,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		OutputDir:   outputDir,
		Stages:      []StageMetric{},
		Signals:     []RunSignal{},
	}
}

func (r *RunReport) BeginStage(name string) StageHandle {
	return StageHandle{name: strings.TrimSpace(name), started: time.Now().UTC()}
}

func (r *RunReport) EndStage(h StageHandle, status string, counters map[string]float64, err error) {
	if r == nil || h.name == "" {
		return
	}
	if status == "" {
		status = "ok"
	}
	finished := time.Now().UTC()
	m := StageMetric{
		Name:       h.name,
		Status:     status,
		StartedAt:  h.started.Format(time.RFC3339Nano),
		FinishedAt: finished.Format(time.RFC3339Nano),
		DurationMS: finished.Sub(h.started).Milliseconds(),
		Counters:   counters,
	}
	if err != nil {
		m.Error = err.Error()
		if status == "ok" {
			m.Status = "error"
		}
	}
	r.Stages = append(r.Stages, m)
}

func (r *RunReport) AddSignal(code, stage, severity, message string, value float64) {
	if r == nil {
		return
	}
	s := RunSignal{
		Code:     strings.TrimSpace(code),
		Stage:    strings.TrimSpace(stage),
		Severity: strings.ToLower(strings.TrimSpace(severity)),
		Message:  strings.TrimSpace(message),
		Value:    value,
	}
	if s.Code == "" || s.Stage == "" || s.Severity == "" || s.Message == "" {
		return
	}
	r.Signals = append(r.Signals, s)
}

func (r *RunReport) Finalize(qualityRate, freshness float64) {
	if r == nil {
		return
	}
	r.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	sort.SliceStable(r.Signals, func(i, j int) bool {
		pi, pj := signalPriority(r.Signals[i].Severity), signalPriority(r.Signals[j].Severity)
		if pi == pj {
			if r.Signals[i].Stage == r.Signals[j].Stage {
				return r.Signals[i].Code < r.Signals[j].Code
			}
			return r.Signals[i].Stage < r.Signals[j].Stage
		}
		return pi > pj
	})

	severityCount := map[string]int{}
	for _, s := range r.Signals {
		severityCount[s.Severity]++
	}
	failed := 0
	for _, st := range r.Stages {
		if st.Status != "ok" {
			failed++
		}
	}

	r.Summary = RunSummary{
		StageCount:        len(r.Stages),
		FailedStages:      failed,
		QualityRate:       qualityRate,
		FreshnessScore:    freshness,
		SignalsBySeverity: severityCount,
	}
}

func (r *RunReport) Save(path string) error {
	if r == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func signalPriority(severity string) int {
	switch severity {
	case "critical":
		return 3
	case "warning":
		return 2
	default:
		return 1
	}
}
