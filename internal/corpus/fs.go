package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contentgate/internal/asset"
)

// FSProvider reads published session output from a directory tree. Each
// session directory holds one JSON record per asset. The walk tolerates
// unreadable or malformed files: they are reported as LoadFailures and the
// load continues.
type FSProvider struct {
	Root string
	Now  time.Time // overridable for tests
}

func NewFSProvider(root string) *FSProvider {
	return &FSProvider{Root: root}
}

func (p *FSProvider) Load(ctx context.Context, advisorID string, windowDays int) ([]asset.Asset, []LoadFailure, error) {
	if _, err := os.Stat(p.Root); err != nil {
		return nil, nil, fmt.Errorf("corpus root %s: %w", p.Root, err)
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	var assets []asset.Asset
	var failures []LoadFailure

	err := filepath.WalkDir(p.Root, func(path string, d os.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if walkErr != nil {
			failures = append(failures, LoadFailure{Path: path, Reason: walkErr.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			failures = append(failures, LoadFailure{Path: path, Reason: err.Error()})
			return nil
		}
		a, err := asset.Parse(data)
		if err != nil {
			failures = append(failures, LoadFailure{Path: path, Reason: err.Error()})
			return nil
		}
		if a.AdvisorID == "" {
			failures = append(failures, LoadFailure{Path: path, Reason: "missing advisor_id"})
			return nil
		}
		if a.AdvisorID != advisorID {
			return nil
		}
		if a.ID == "" {
			a.ID = strings.TrimSuffix(d.Name(), ".json")
		}
		if windowDays > 0 && !a.Timestamp.IsZero() && a.Timestamp.Before(cutoff) {
			return nil
		}
		if a.FilePath == "" {
			a.FilePath = path
		}
		assets = append(assets, a)
		return nil
	})
	if err != nil {
		return nil, failures, err
	}

	sortByRecency(assets)
	return assets, failures, nil
}
