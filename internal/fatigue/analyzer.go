package fatigue

import (
	"fmt"
	"sort"
	"strings"

	"contentgate/internal/asset"
)

// Distribution statuses derived from the freshness score.
const (
	StatusApproved      = "APPROVED"
	StatusNeedsReview   = "NEEDS_REVIEW"
	StatusNeedsRevision = "NEEDS_REVISION"
)

// Config carries the fatigue thresholds. Zero values fall back to defaults.
type Config struct {
	TopicFrequencyThreshold float64 `yaml:"topic_frequency_threshold"`
	SimilarityThreshold     float64 `yaml:"similarity_threshold"`
	HistoryWindow           int     `yaml:"history_window"`
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		TopicFrequencyThreshold: 0.40,
		SimilarityThreshold:     0.70,
		HistoryWindow:           10,
	}
}

func (c Config) normalized() Config {
	if c.TopicFrequencyThreshold <= 0 {
		c.TopicFrequencyThreshold = 0.40
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.70
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = 10
	}
	return c
}

// Flag is one itemized fatigue finding.
type Flag struct {
	Type     string `json:"type"`
	Channel  string `json:"channel,omitempty"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

// Report is the per-advisor freshness verdict.
type Report struct {
	AdvisorID      string             `json:"advisor_id"`
	FreshnessScore float64            `json:"freshness_score"`
	ChannelScores  map[string]float64 `json:"channel_scores"`
	Flags          []Flag             `json:"flags"`
	Status         string             `json:"distribution_status"`
	Recommendation string             `json:"recommendation"`
}

// Analyzer compares a batch of new assets against the historical corpus.
type Analyzer struct {
	cfg     Config
	topics  TopicClassifier
	emotion EmotionClassifier
}

// NewAnalyzer builds an analyzer; nil classifiers use the keyword defaults.
func NewAnalyzer(cfg Config, tc TopicClassifier, ec EmotionClassifier) *Analyzer {
	if tc == nil {
		tc = KeywordTopicClassifier{}
	}
	if ec == nil {
		ec = KeywordEmotionClassifier{}
	}
	return &Analyzer{cfg: cfg.normalized(), topics: tc, emotion: ec}
}

// Analyze runs all fatigue checks for one advisor against an immutable history
// snapshot. Status images ride the WhatsApp channel since that is where they
// are distributed.
func (z *Analyzer) Analyze(advisorID string, current, history []asset.Asset) Report {
	r := Report{
		AdvisorID:     advisorID,
		ChannelScores: map[string]float64{},
		Flags:         []Flag{},
	}

	channels := []asset.ContentType{asset.TypeLinkedIn, asset.TypeWhatsApp}
	scored := 0
	total := 0.0
	for _, ch := range channels {
		cur := filterChannel(current, ch)
		if len(cur) == 0 {
			continue
		}
		hist := lastN(filterChannel(history, ch), z.cfg.HistoryWindow)
		score, flags := z.analyzeChannel(string(ch), cur, hist)
		r.ChannelScores[string(ch)] = score
		r.Flags = append(r.Flags, flags...)
		total += score
		scored++
	}

	switch scored {
	case 0:
		r.FreshnessScore = 10.0
	case 1:
		r.FreshnessScore = total
	default:
		// Equal 0.5/0.5 blend of the two channels.
		r.FreshnessScore = total / float64(scored)
	}

	r.Status = StatusFor(r.FreshnessScore)
	r.Recommendation = RecommendationFor(r.Status)
	return r
}

func (z *Analyzer) analyzeChannel(channel string, current, history []asset.Asset) (float64, []Flag) {
	score := 10.0
	flags := make([]Flag, 0, 4)

	if len(history) > 0 {
		if f, ok := z.topicRepetitionCheck(channel, current, history); ok {
			score -= 2.0
			flags = append(flags, f)
		}
		simFlags := z.similarityCheck(channel, current, history)
		score -= 1.5 * float64(len(simFlags))
		flags = append(flags, simFlags...)
		if f, ok := z.dataReuseCheck(channel, current, history); ok {
			score -= 1.0
			flags = append(flags, f)
		}
	}

	if f, ok := z.hookVarietyCheck(channel, current); ok {
		score -= 1.0
		flags = append(flags, f)
	}
	if f, ok := z.emotionBalanceCheck(channel, current); ok {
		score -= 0.5
		flags = append(flags, f)
	}

	if score < 0 {
		score = 0
	}
	return score, flags
}

func (z *Analyzer) topicRepetitionCheck(channel string, current, history []asset.Asset) (Flag, bool) {
	curTopics := z.collectTopics(current)
	if len(curTopics) == 0 {
		return Flag{}, false
	}
	histTopics := z.collectTopics(history)
	overlap := float64(countShared(curTopics, histTopics)) / float64(len(curTopics))
	if overlap <= z.cfg.TopicFrequencyThreshold {
		return Flag{}, false
	}
	severity := "medium"
	if overlap > 0.60 {
		severity = "high"
	}
	return Flag{
		Type:     "topic_repetition",
		Channel:  channel,
		Severity: severity,
		Details:  fmt.Sprintf("%.0f%% of current topics were covered in recent history: %s", overlap*100, joinSorted(intersect(curTopics, histTopics))),
	}, true
}

// similarityCheck compares each current asset against recent history. At most
// one deduction is taken per current asset, on its first match.
func (z *Analyzer) similarityCheck(channel string, current, history []asset.Asset) []Flag {
	histSets := make([]map[string]bool, len(history))
	for i, h := range history {
		histSets[i] = TokenSet(h.Text)
	}

	flags := make([]Flag, 0, 2)
	for _, cur := range current {
		curSet := TokenSet(cur.Text)
		for i, histSet := range histSets {
			sim := JaccardSimilarity(curSet, histSet)
			if sim <= z.cfg.SimilarityThreshold {
				continue
			}
			severity := "high"
			if sim > 0.85 {
				severity = "critical"
			}
			flags = append(flags, Flag{
				Type:     "near_duplicate",
				Channel:  channel,
				Severity: severity,
				Details:  fmt.Sprintf("asset %s is %.0f%% similar to published asset %s", cur.ID, sim*100, history[i].ID),
			})
			break
		}
	}
	return flags
}

func (z *Analyzer) dataReuseCheck(channel string, current, history []asset.Asset) (Flag, bool) {
	curPoints := map[string]bool{}
	for _, a := range current {
		for p := range ExtractDataPoints(a.Text) {
			curPoints[p] = true
		}
	}
	histPoints := map[string]bool{}
	for _, a := range history {
		for p := range ExtractDataPoints(a.Text) {
			histPoints[p] = true
		}
	}
	reused := countShared(curPoints, histPoints)
	if reused <= 5 {
		return Flag{}, false
	}
	return Flag{
		Type:     "data_point_reuse",
		Channel:  channel,
		Severity: "medium",
		Details:  fmt.Sprintf("%d data points repeat from recent history", reused),
	}, true
}

func (z *Analyzer) hookVarietyCheck(channel string, current []asset.Asset) (Flag, bool) {
	if len(current) < 2 {
		return Flag{}, false
	}
	distinct := map[string]bool{}
	for _, a := range current {
		distinct[a.Hook] = true
	}
	variety := float64(len(distinct)) / float64(len(current))
	if variety >= 0.5 {
		return Flag{}, false
	}
	return Flag{
		Type:     "low_hook_variety",
		Channel:  channel,
		Severity: "medium",
		Details:  fmt.Sprintf("only %d distinct hooks across %d assets", len(distinct), len(current)),
	}, true
}

func (z *Analyzer) emotionBalanceCheck(channel string, current []asset.Asset) (Flag, bool) {
	counts := map[string]int{}
	classified := 0
	for _, a := range current {
		if cat, ok := z.emotion.Emotion(a.Text); ok {
			counts[cat]++
			classified++
		}
	}
	if classified == 0 {
		return Flag{}, false
	}
	dominant := ""
	max := 0
	for _, cat := range []string{"fear", "aspiration", "urgency", "education"} {
		if counts[cat] > max {
			max = counts[cat]
			dominant = cat
		}
	}
	share := float64(max) / float64(classified)
	if share <= 0.70 {
		return Flag{}, false
	}
	return Flag{
		Type:     "emotional_tone_skew",
		Channel:  channel,
		Severity: "low",
		Details:  fmt.Sprintf("%.0f%% of classified assets lean on %s", share*100, dominant),
	}, true
}

func (z *Analyzer) collectTopics(assets []asset.Asset) map[string]bool {
	out := map[string]bool{}
	for _, a := range assets {
		for _, t := range z.topics.Topics(a.Text) {
			out[t] = true
		}
	}
	return out
}

// StatusFor bands a freshness score into a distribution status.
func StatusFor(score float64) string {
	switch {
	case score >= 8.0:
		return StatusApproved
	case score >= 6.0:
		return StatusNeedsReview
	default:
		return StatusNeedsRevision
	}
}

// RecommendationFor translates a status into the reviewer-facing action.
func RecommendationFor(status string) string {
	switch status {
	case StatusApproved:
		return "APPROVE"
	case StatusNeedsReview:
		return "MANUAL REVIEW"
	default:
		return "REGENERATE"
	}
}

func filterChannel(assets []asset.Asset, ch asset.ContentType) []asset.Asset {
	out := make([]asset.Asset, 0, len(assets))
	for _, a := range assets {
		t := a.Type
		if t == asset.TypeStatusImage {
			t = asset.TypeWhatsApp
		}
		if t == ch {
			out = append(out, a)
		}
	}
	return out
}

// lastN keeps the most recent n assets, assuming recency-ordered input
// (newest first).
func lastN(assets []asset.Asset, n int) []asset.Asset {
	if len(assets) <= n {
		return assets
	}
	return assets[:n]
}

func intersect(a, b map[string]bool) []string {
	out := make([]string, 0)
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	return out
}

func joinSorted(items []string) string {
	sort.Strings(items)
	return strings.Join(items, ", ")
}
