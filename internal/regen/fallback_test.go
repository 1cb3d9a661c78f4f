package regen

import (
	"os"
	"path/filepath"
	"testing"

	"contentgate/internal/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_AlwaysReturnsUsableTemplate(t *testing.T) {
	store := NewFallbackStore()
	types := []asset.ContentType{asset.TypeLinkedIn, asset.TypeWhatsApp, asset.TypeStatusImage}
	segments := []asset.Segment{asset.SegmentPremium, asset.SegmentGold, asset.SegmentSilver}

	for _, ct := range types {
		for _, seg := range segments {
			tmpl := store.Lookup(ct, seg)
			assert.NotEmpty(t, tmpl.Text, "%s/%s", ct, seg)
			assert.GreaterOrEqual(t, tmpl.QualityScore, 9.0, "%s/%s", ct, seg)
			assert.LessOrEqual(t, tmpl.QualityScore, 9.5, "%s/%s", ct, seg)
		}
	}
}

func TestLookup_CuratedOverridesGeneric(t *testing.T) {
	store := NewFallbackStore()
	store.Add(FallbackTemplate{
		ContentType:  asset.TypeLinkedIn,
		Segment:      asset.SegmentPremium,
		Text:         "Curated premium post.",
		QualityScore: 9.4,
	})

	hit := store.Lookup(asset.TypeLinkedIn, asset.SegmentPremium)
	assert.Equal(t, "Curated premium post.", hit.Text)

	miss := store.Lookup(asset.TypeLinkedIn, asset.SegmentSilver)
	assert.NotEqual(t, "Curated premium post.", miss.Text)
	assert.NotEmpty(t, miss.Text)
}

func TestLoadFallbackStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`templates:
  - content_type: whatsapp
    segment: Gold
    text: "Curated gold whatsapp."
    quality_score: 9.1
`), 0644))

	store, err := LoadFallbackStore(path)
	require.NoError(t, err)
	assert.Equal(t, "Curated gold whatsapp.", store.Lookup(asset.TypeWhatsApp, asset.SegmentGold).Text)
}

func TestLoadFallbackStore_MissingFileStillUsable(t *testing.T) {
	store, err := LoadFallbackStore(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	require.NotNil(t, store)
	assert.NotEmpty(t, store.Lookup(asset.TypeWhatsApp, asset.SegmentGold).Text)
}
