package regen

import (
	"context"
	"strings"
	"time"

	"contentgate/internal/asset"
	"contentgate/internal/llm"
	"contentgate/internal/scoring"

	"github.com/google/uuid"
)

// State of one asset inside the regeneration loop. Accepted and
// FallbackApplied are the only terminal states.
type State string

const (
	StateScored          State = "SCORED"
	StateRegenerating    State = "REGENERATING"
	StateAccepted        State = "ACCEPTED"
	StateFallbackApplied State = "FALLBACK_APPLIED"
)

// Config carries the controller thresholds. The distribution threshold is
// deliberately stricter than the scorer's auto-approval bar: this loop gates
// content headed for wide distribution.
type Config struct {
	QualityThreshold float64 `yaml:"quality_threshold"`
	WeakDimensionBar float64 `yaml:"weak_dimension_bar"`
	MaxAttempts      int     `yaml:"max_attempts"`
}

// DefaultConfig returns the production bars: 0.90 overall (the 9.0/10
// equivalent), 0.80 per dimension, two attempts.
func DefaultConfig() Config {
	return Config{
		QualityThreshold: 0.90,
		WeakDimensionBar: 0.80,
		MaxAttempts:      2,
	}
}

func (c Config) normalized() Config {
	if c.QualityThreshold <= 0 {
		c.QualityThreshold = 0.90
	}
	if c.WeakDimensionBar <= 0 {
		c.WeakDimensionBar = 0.80
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 2
	}
	return c
}

// Attempt is one append-only regeneration log entry.
type Attempt struct {
	ID                  string    `json:"id"`
	AssetID             string    `json:"asset_id"`
	AttemptNumber       int       `json:"attempt_number"`
	WeaknessesAddressed []string  `json:"weaknesses_addressed"`
	GeneratorError      string    `json:"generator_error,omitempty"`
	ScoreAfter          float64   `json:"score_after"`
	Timestamp           time.Time `json:"timestamp"`
}

// Result is the terminal outcome for one asset.
type Result struct {
	Asset            asset.Asset    `json:"asset"`
	Report           scoring.Report `json:"report"`
	State            State          `json:"state"`
	Attempts         []Attempt      `json:"attempts,omitempty"`
	FallbackUsed     bool           `json:"fallback_used"`
	FallbackQuality  float64        `json:"fallback_quality,omitempty"`
	DeadlineExceeded bool           `json:"deadline_exceeded,omitempty"`
}

// directiveFor maps each weak dimension to a fixed improvement directive sent
// to the generator.
var directiveFor = map[scoring.Dimension]string{
	scoring.DimRelevance:       "anchor the message in current market context and use vocabulary this segment responds to",
	scoring.DimClarity:         "use short sentences, add a numbered or bulleted flow, and state the value proposition explicitly",
	scoring.DimEngagement:      "add a provocative statistic or question in the first line, and end with a clear call-to-action",
	scoring.DimCredibility:     "cite a verifiable number or market data point and include the ARN disclosure; never use absolute claims",
	scoring.DimPersonalization: "mention the advisor's name and brand the way this segment expects",
	scoring.DimTechnical:       "fix formatting issues and bring the length into the channel's ideal range",
}

// DirectivesFor returns the fixed directives for the given weak dimensions.
func DirectivesFor(weak []scoring.Dimension) []string {
	out := make([]string, 0, len(weak))
	for _, d := range weak {
		if directive, ok := directiveFor[d]; ok {
			out = append(out, directive)
		}
	}
	return out
}

// Controller drives the accept/regenerate/fallback decision per asset.
type Controller struct {
	gen      llm.Generator
	fallback *FallbackStore
	cfg      Config
}

func NewController(gen llm.Generator, fallback *FallbackStore, cfg Config) *Controller {
	if fallback == nil {
		fallback = NewFallbackStore()
	}
	return &Controller{gen: gen, fallback: fallback, cfg: cfg.normalized()}
}

// ProcessAsset runs the bounded regenerate-or-fallback loop for one asset.
// Attempts are strictly sequential: each attempt's directives come from the
// previous re-score. A generator error consumes an attempt with the score
// unchanged; it is never retried outside the attempt budget. If ctx expires
// mid-loop the asset lands in FALLBACK_APPLIED rather than an ambiguous
// in-progress state.
func (c *Controller) ProcessAsset(ctx context.Context, a asset.Asset, profile asset.AdvisorProfile) Result {
	report := scoring.Score(a, profile)
	res := Result{Asset: a, Report: report, State: StateScored}

	if report.Overall >= c.cfg.QualityThreshold {
		res.State = StateAccepted
		return res
	}

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			res.DeadlineExceeded = true
			break
		}
		res.State = StateRegenerating

		weak := report.WeakDimensions(c.cfg.WeakDimensionBar)
		directives := DirectivesFor(weak)
		entry := Attempt{
			ID:                  uuid.NewString(),
			AssetID:             a.ID,
			AttemptNumber:       attempt,
			WeaknessesAddressed: dimensionNames(weak),
			Timestamp:           time.Now().UTC(),
		}

		regenerated, err := c.gen.Regenerate(ctx, res.Asset, directives)
		if err != nil {
			// A failed call counts as a no-improvement attempt.
			entry.GeneratorError = err.Error()
			entry.ScoreAfter = report.Overall
			res.Attempts = append(res.Attempts, entry)
			continue
		}

		res.Asset = regenerated
		report = scoring.Score(regenerated, profile)
		res.Report = report
		entry.ScoreAfter = report.Overall
		res.Attempts = append(res.Attempts, entry)

		if report.Overall >= c.cfg.QualityThreshold {
			res.State = StateAccepted
			return res
		}
	}

	return c.applyFallback(res, profile)
}

// applyFallback swaps in the curated (or generic) template. This path never
// fails: Lookup always returns a usable template.
func (c *Controller) applyFallback(res Result, profile asset.AdvisorProfile) Result {
	tmpl := c.fallback.Lookup(res.Asset.Type, res.Asset.Segment)

	out := res.Asset
	out.Text = tmpl.Text
	out.Hook = firstNonEmptyLine(tmpl.Text)

	res.Asset = out
	res.Report = scoring.Score(out, profile)
	res.State = StateFallbackApplied
	res.FallbackUsed = true
	res.FallbackQuality = tmpl.QualityScore
	return res
}

func dimensionNames(dims []scoring.Dimension) []string {
	out := make([]string, 0, len(dims))
	for _, d := range dims {
		out = append(out, string(d))
	}
	return out
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
