package pipeline

import (
	"context"
	"fmt"
	"time"

	"contentgate/internal/asset"
	"contentgate/internal/corpus"
	"contentgate/internal/fatigue"
	"contentgate/internal/regen"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates a batch run: per-asset regeneration under a bounded
// worker pool, then the freshness gate ahead of distribution.
type Runner struct {
	Controller  *regen.Controller
	PlanConfig  regen.Config
	Analyzer    *fatigue.Analyzer
	Corpus      corpus.Provider
	Profiles    map[string]asset.AdvisorProfile
	Concurrency int
	Deadline    time.Duration
	WindowDays  int
}

// RunRegeneration processes all assets in parallel. Assets are independent
// units: no shared mutable state, so the only coordination is the concurrency
// limit protecting generator rate limits and the run-level deadline. When the
// deadline fires, remaining assets take the fallback path instead of hanging
// in-progress.
func (r *Runner) RunRegeneration(ctx context.Context, assets []asset.Asset, report *RunReport) regen.Plan {
	if r.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Deadline)
		defer cancel()
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = 4
	}

	stage := report.BeginStage("regeneration")
	results := make([]regen.Result, len(assets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, a := range assets {
		g.Go(func() error {
			results[i] = r.Controller.ProcessAsset(gctx, a, r.Profiles[a.AdvisorID])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in the results

	plan := regen.BuildPlan(uuid.NewString(), results, r.PlanConfig)

	counters := map[string]float64{
		"assets":       float64(plan.TotalAssets),
		"accepted":     float64(plan.Accepted),
		"fallbacks":    float64(plan.FallbacksApplied),
		"regen_calls":  float64(len(plan.Attempts)),
		"quality_rate": plan.FinalQualityRate,
	}
	report.EndStage(stage, "ok", counters, nil)

	if plan.FallbacksApplied > 0 {
		report.AddSignal("fallbacks_applied", "regeneration", "warning",
			fmt.Sprintf("%d assets fell back to curated templates", plan.FallbacksApplied),
			float64(plan.FallbacksApplied))
	}
	for _, res := range plan.Assets {
		if res.DeadlineExceeded {
			report.AddSignal("deadline_exceeded", "regeneration", "critical",
				fmt.Sprintf("asset %s hit the run deadline mid-loop", res.Asset.ID), 0)
		}
	}
	return plan
}

// RunFatigue groups current assets by advisor, loads each advisor's history
// snapshot once, and runs the freshness gate.
func (r *Runner) RunFatigue(ctx context.Context, current []asset.Asset, report *RunReport) (fatigue.SessionReport, error) {
	stage := report.BeginStage("fatigue")

	byAdvisor := map[string][]asset.Asset{}
	order := make([]string, 0)
	for _, a := range current {
		if _, seen := byAdvisor[a.AdvisorID]; !seen {
			order = append(order, a.AdvisorID)
		}
		byAdvisor[a.AdvisorID] = append(byAdvisor[a.AdvisorID], a)
	}

	reports := make([]fatigue.Report, 0, len(order))
	failureCount := 0
	for _, advisorID := range order {
		history, failures, err := r.Corpus.Load(ctx, advisorID, r.WindowDays)
		if err != nil {
			report.EndStage(stage, "error", nil, err)
			return fatigue.SessionReport{}, fmt.Errorf("loading history for advisor %s: %w", advisorID, err)
		}
		failureCount += len(failures)
		for _, f := range failures {
			report.AddSignal("history_load_failure", "fatigue", "warning",
				fmt.Sprintf("%s: %s", f.Path, f.Reason), 0)
		}
		reports = append(reports, r.Analyzer.Analyze(advisorID, byAdvisor[advisorID], history))
	}

	session := fatigue.BuildSessionReport(reports)
	report.EndStage(stage, "ok", map[string]float64{
		"advisors":         float64(len(reports)),
		"history_failures": float64(failureCount),
		"freshness":        session.OverallScore,
	}, nil)

	if session.Status != fatigue.StatusApproved {
		report.AddSignal("freshness_gate", "fatigue", "warning",
			fmt.Sprintf("session freshness %.1f banded %s", session.OverallScore, session.Status),
			session.OverallScore)
	}
	return session, nil
}
