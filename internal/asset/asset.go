package asset

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Segment is the advisor tier driving vocabulary and personalization expectations.
type Segment string

const (
	SegmentPremium Segment = "Premium"
	SegmentGold    Segment = "Gold"
	SegmentSilver  Segment = "Silver"
)

// ContentType identifies the distribution channel an asset was generated for.
type ContentType string

const (
	TypeLinkedIn    ContentType = "linkedin"
	TypeWhatsApp    ContentType = "whatsapp"
	TypeStatusImage ContentType = "status_image"
)

// Asset is one generated piece of content. The text field is canonical: whatever
// shape the generator emitted (string, nested object) is coerced exactly once at
// ingestion, so downstream scoring never re-derives it.
type Asset struct {
	ID        string      `json:"id"`
	AdvisorID string      `json:"advisor_id"`
	Segment   Segment     `json:"segment"`
	Type      ContentType `json:"content_type"`
	Text      string      `json:"text"`
	Hook      string      `json:"hook,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	FilePath  string      `json:"file_path,omitempty"`
}

// AdvisorProfile carries the advisor identity used by personalization scoring.
type AdvisorProfile struct {
	AdvisorID string  `json:"advisor_id" yaml:"advisor_id"`
	Name      string  `json:"name" yaml:"name"`
	Brand     string  `json:"brand" yaml:"brand"`
	ARN       string  `json:"arn" yaml:"arn"`
	Segment   Segment `json:"segment" yaml:"segment"`
}

// rawAsset accepts both the `content` and `text` spellings the generator has
// used over time, in any JSON shape.
type rawAsset struct {
	ID          string          `json:"id"`
	AdvisorID   string          `json:"advisor_id"`
	Segment     string          `json:"segment"`
	ContentType string          `json:"content_type"`
	Content     json.RawMessage `json:"content,omitempty"`
	Text        json.RawMessage `json:"text,omitempty"`
	Hook        string          `json:"hook,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	FilePath    string          `json:"file_path,omitempty"`
}

// Parse decodes one asset record and resolves its content field.
func Parse(data []byte) (Asset, error) {
	var raw rawAsset
	if err := json.Unmarshal(data, &raw); err != nil {
		return Asset{}, fmt.Errorf("invalid asset record: %w", err)
	}

	field := raw.Content
	if len(field) == 0 {
		field = raw.Text
	}

	a := Asset{
		ID:        raw.ID,
		AdvisorID: raw.AdvisorID,
		Segment:   NormalizeSegment(raw.Segment),
		Type:      NormalizeContentType(raw.ContentType),
		Text:      CoerceText(field),
		Hook:      strings.TrimSpace(raw.Hook),
		Timestamp: raw.Timestamp,
		FilePath:  raw.FilePath,
	}
	if a.Hook == "" {
		a.Hook = firstLine(a.Text)
	}
	return a, nil
}

// CoerceText resolves a raw JSON content field to a single string. Strings are
// used as-is; any other JSON-serializable value keeps its compact JSON form
// rather than failing, so scoring stays total over generator output.
func CoerceText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	compact, err := json.Marshal(v)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	return string(compact)
}

// NormalizeSegment maps free-form segment labels onto the three tiers.
// Unknown labels default to Silver, the least demanding expectations.
func NormalizeSegment(s string) Segment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "premium":
		return SegmentPremium
	case "gold":
		return SegmentGold
	default:
		return SegmentSilver
	}
}

// NormalizeContentType maps channel labels, tolerating the plural and
// file-suffix variants seen in session output.
func NormalizeContentType(s string) ContentType {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "linkedin"):
		return TypeLinkedIn
	case strings.Contains(v, "whatsapp"):
		return TypeWhatsApp
	case strings.Contains(v, "status") || strings.Contains(v, "image"):
		return TypeStatusImage
	default:
		return TypeWhatsApp
	}
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
