package regen

import (
	"fmt"
	"os"

	"contentgate/internal/asset"

	"gopkg.in/yaml.v3"
)

// FallbackTemplate is a pre-approved piece of content used when regeneration
// exhausts its attempt budget. QualityScore is on the 0-10 virality scale.
type FallbackTemplate struct {
	ContentType  asset.ContentType `json:"content_type" yaml:"content_type"`
	Segment      asset.Segment     `json:"segment" yaml:"segment"`
	Text         string            `json:"text" yaml:"text"`
	QualityScore float64           `json:"quality_score" yaml:"quality_score"`
}

// FallbackStore resolves (contentType, segment) to a curated template.
// Lookup never fails: a miss falls through to a generic built-in template per
// content type, so the fallback path cannot itself error out.
type FallbackStore struct {
	curated map[string]FallbackTemplate
}

// NewFallbackStore builds a store with only the built-in generics.
func NewFallbackStore() *FallbackStore {
	return &FallbackStore{curated: map[string]FallbackTemplate{}}
}

// LoadFallbackStore reads curated templates from a YAML file. A missing or
// unreadable file is an error for the caller to log; the returned store is
// still usable with the generic templates.
func LoadFallbackStore(path string) (*FallbackStore, error) {
	store := NewFallbackStore()
	data, err := os.ReadFile(path)
	if err != nil {
		return store, fmt.Errorf("fallback template file: %w", err)
	}
	var parsed struct {
		Templates []FallbackTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return store, fmt.Errorf("fallback template file: %w", err)
	}
	for _, t := range parsed.Templates {
		store.Add(t)
	}
	return store, nil
}

func (s *FallbackStore) Add(t FallbackTemplate) {
	s.curated[templateKey(t.ContentType, t.Segment)] = t
}

// Lookup returns the curated template for the pair, or the generic template
// for the content type. It always returns a usable template.
func (s *FallbackStore) Lookup(ct asset.ContentType, seg asset.Segment) FallbackTemplate {
	if t, ok := s.curated[templateKey(ct, seg)]; ok {
		return t
	}
	if t, ok := genericTemplates[ct]; ok {
		t.Segment = seg
		return t
	}
	t := genericTemplates[asset.TypeWhatsApp]
	t.ContentType = ct
	t.Segment = seg
	return t
}

func templateKey(ct asset.ContentType, seg asset.Segment) string {
	return string(ct) + "|" + string(seg)
}

// genericTemplates are the in-memory last resort, one per content type.
var genericTemplates = map[asset.ContentType]FallbackTemplate{
	asset.TypeLinkedIn: {
		ContentType:  asset.TypeLinkedIn,
		QualityScore: 9.0,
		Text: "Markets reward patience, not prediction.\n\n" +
			"Three habits that quietly build wealth:\n" +
			"1. Invest a fixed amount every month, whatever the headlines say\n" +
			"2. Review your goals once a quarter, not your portfolio once an hour\n" +
			"3. Let compounding do the heavy lifting\n\n" +
			"If your SIP has run uninterrupted for 5+ years, you already know this. " +
			"If not, let's talk about getting you there.",
	},
	asset.TypeWhatsApp: {
		ContentType:  asset.TypeWhatsApp,
		QualityScore: 9.0,
		Text: "A gentle reminder 🙏\n\n" +
			"Market ups and downs are normal. Your SIP works best when it runs through both. " +
			"Stay invested, stay disciplined.\n\n" +
			"Questions about your portfolio? Reply here and I'll help.",
	},
	asset.TypeStatusImage: {
		ContentType:  asset.TypeStatusImage,
		QualityScore: 9.5,
		Text:         "Discipline beats timing. Keep your SIP running. 📈",
	},
}
