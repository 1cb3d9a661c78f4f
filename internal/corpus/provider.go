package corpus

import (
	"context"
	"sort"
	"time"

	"contentgate/internal/asset"
)

// LoadFailure records one historical file that could not be loaded. Failures
// are collected and reported, never raised, so a single bad file cannot abort
// a corpus load.
type LoadFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Provider returns previously published content for an advisor, newest first,
// windowed by recency. Implementations must return an immutable snapshot: the
// caller may share the slice across goroutines without copying.
type Provider interface {
	Load(ctx context.Context, advisorID string, windowDays int) ([]asset.Asset, []LoadFailure, error)
}

// MemoryProvider is an in-memory Provider used by tests and dry runs.
type MemoryProvider struct {
	Assets []asset.Asset
	Now    time.Time
}

func (m *MemoryProvider) Load(_ context.Context, advisorID string, windowDays int) ([]asset.Asset, []LoadFailure, error) {
	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	out := make([]asset.Asset, 0, len(m.Assets))
	for _, a := range m.Assets {
		if a.AdvisorID != advisorID {
			continue
		}
		if windowDays > 0 && !a.Timestamp.IsZero() && a.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, a)
	}
	sortByRecency(out)
	return out, nil, nil
}

func sortByRecency(assets []asset.Asset) {
	sort.SliceStable(assets, func(i, j int) bool {
		if assets[i].Timestamp.Equal(assets[j].Timestamp) {
			return assets[i].ID < assets[j].ID
		}
		return assets[i].Timestamp.After(assets[j].Timestamp)
	})
}
