package corpus

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"contentgate/internal/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_ArchiveAndLoad(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	batch := []asset.Asset{
		{ID: "a1", AdvisorID: "ADV001", Segment: asset.SegmentGold, Type: asset.TypeWhatsApp,
			Text: "SIP reminders keep clients on plan.", Timestamp: now.AddDate(0, 0, -2)},
		{ID: "a2", AdvisorID: "ADV001", Segment: asset.SegmentGold, Type: asset.TypeLinkedIn,
			Text: "Asset allocation is the only free lunch.", Timestamp: now.AddDate(0, 0, -1)},
		{ID: "b1", AdvisorID: "ADV002", Segment: asset.SegmentSilver, Type: asset.TypeWhatsApp,
			Text: "Tax filing deadline approaching.", Timestamp: now.AddDate(0, 0, -1)},
	}
	require.NoError(t, store.SaveAssets(ctx, batch))

	assets, failures, err := store.Load(ctx, "ADV001", 30)
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, assets, 2)
	assert.Equal(t, "a2", assets[0].ID)
	assert.Equal(t, "a1", assets[1].ID)
	assert.Equal(t, asset.TypeLinkedIn, assets[0].Type)
	assert.Equal(t, asset.SegmentGold, assets[0].Segment)
}

func TestSQLiteStore_ReArchivingIsIdempotent(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	a := asset.Asset{ID: "a1", AdvisorID: "ADV001", Type: asset.TypeWhatsApp,
		Text: "Original text.", Timestamp: time.Now().UTC()}
	require.NoError(t, store.SaveAssets(ctx, []asset.Asset{a}))

	a.Text = "Revised text."
	require.NoError(t, store.SaveAssets(ctx, []asset.Asset{a}))

	assets, _, err := store.Load(ctx, "ADV001", 30)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Revised text.", assets[0].Text)
}

func TestSQLiteStore_WindowExcludesOldPublishes(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, store.SaveAssets(ctx, []asset.Asset{
		{ID: "fresh", AdvisorID: "ADV001", Type: asset.TypeWhatsApp, Text: "x", Timestamp: now.AddDate(0, 0, -5)},
		{ID: "stale", AdvisorID: "ADV001", Type: asset.TypeWhatsApp, Text: "y", Timestamp: now.AddDate(0, 0, -60)},
	}))

	assets, _, err := store.Load(ctx, "ADV001", 30)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "fresh", assets[0].ID)
}
