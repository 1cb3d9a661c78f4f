package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"contentgate/internal/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistoryFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFSProvider_LoadsAndWindows(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	writeHistoryFile(t, dir, "recent.json", `{
		"advisor_id": "ADV001",
		"content": "SIP discipline beats timing.",
		"timestamp": "2026-08-25T10:00:00Z"
	}`)
	writeHistoryFile(t, dir, "stale.json", `{
		"advisor_id": "ADV001",
		"content": "Old diwali campaign.",
		"timestamp": "2026-06-01T10:00:00Z"
	}`)
	writeHistoryFile(t, dir, "other-advisor.json", `{
		"advisor_id": "ADV002",
		"content": "Tax harvesting reminder.",
		"timestamp": "2026-08-26T10:00:00Z"
	}`)

	p := &FSProvider{Root: dir, Now: now}
	assets, failures, err := p.Load(context.Background(), "ADV001", 30)
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, assets, 1)
	assert.Equal(t, "recent", assets[0].ID)
}

func TestFSProvider_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "broken.json", `{not json`)
	writeHistoryFile(t, dir, "anonymous.json", `{"content": "No advisor on record."}`)
	writeHistoryFile(t, dir, "ok.json", `{"advisor_id": "ADV001", "content": "Fine."}`)

	p := NewFSProvider(dir)
	assets, failures, err := p.Load(context.Background(), "ADV001", 0)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
	assert.Len(t, failures, 2)
}

func TestFSProvider_MissingRootIsFatal(t *testing.T) {
	p := NewFSProvider(filepath.Join(t.TempDir(), "absent"))
	_, _, err := p.Load(context.Background(), "ADV001", 30)
	assert.Error(t, err)
}

func TestFSProvider_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "older.json", `{
		"advisor_id": "ADV001", "content": "First post.",
		"timestamp": "2026-08-20T10:00:00Z"
	}`)
	writeHistoryFile(t, dir, "newer.json", `{
		"advisor_id": "ADV001", "content": "Second post.",
		"timestamp": "2026-08-28T10:00:00Z"
	}`)

	p := &FSProvider{Root: dir, Now: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	assets, _, err := p.Load(context.Background(), "ADV001", 30)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "newer", assets[0].ID)
	assert.Equal(t, "older", assets[1].ID)
}

func TestMemoryProvider_FiltersAndSorts(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	m := &MemoryProvider{
		Now: now,
		Assets: []asset.Asset{
			{ID: "a", AdvisorID: "ADV001", Timestamp: now.AddDate(0, 0, -5)},
			{ID: "b", AdvisorID: "ADV001", Timestamp: now.AddDate(0, 0, -1)},
			{ID: "c", AdvisorID: "ADV002", Timestamp: now.AddDate(0, 0, -1)},
			{ID: "d", AdvisorID: "ADV001", Timestamp: now.AddDate(0, 0, -90)},
		},
	}

	assets, failures, err := m.Load(context.Background(), "ADV001", 30)
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, assets, 2)
	assert.Equal(t, "b", assets[0].ID)
	assert.Equal(t, "a", assets[1].ID)
}

func TestMemoryProvider_ZeroWindowKeepsEverything(t *testing.T) {
	m := &MemoryProvider{
		Assets: []asset.Asset{
			{ID: "ancient", AdvisorID: "ADV001", Timestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	assets, _, err := m.Load(context.Background(), "ADV001", 0)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}
