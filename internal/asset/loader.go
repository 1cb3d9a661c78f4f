package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadError records one file in a session directory that could not be read as
// an asset. Loading continues past it.
type LoadError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// LoadDir reads every .json asset record under dir. A single bad file becomes
// a LoadError, never an abort; a missing directory is fatal because it means
// the run has no input at all.
func LoadDir(dir string) ([]Asset, []LoadError, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("asset input %s: %w", dir, err)
	}
	if !info.IsDir() {
		a, lerr := loadFile(dir)
		if lerr != nil {
			return nil, nil, fmt.Errorf("asset input %s: %s", dir, lerr.Reason)
		}
		return []Asset{a}, nil, nil
	}

	var assets []Asset
	var failures []LoadError
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			failures = append(failures, LoadError{Path: path, Reason: walkErr.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		a, lerr := loadFile(path)
		if lerr != nil {
			failures = append(failures, *lerr)
			return nil
		}
		assets = append(assets, a)
		return nil
	})
	if err != nil {
		return nil, failures, err
	}
	return assets, failures, nil
}

func loadFile(path string) (Asset, *LoadError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, &LoadError{Path: path, Reason: err.Error()}
	}
	a, err := Parse(data)
	if err != nil {
		return Asset{}, &LoadError{Path: path, Reason: err.Error()}
	}
	if a.ID == "" {
		a.ID = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	if a.FilePath == "" {
		a.FilePath = path
	}
	return a, nil
}
