package regen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"contentgate/internal/asset"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// qualityReportSchema validates the shape of the upstream QUALITY_REPORT.json
// artifact before any processing starts. A missing or malformed report is
// fatal: partial processing of a broken report is worse than no run.
const qualityReportSchema = `{
  "type": "object",
  "required": ["total_assets"],
  "properties": {
    "total_assets": {"type": "integer", "minimum": 0},
    "linkedin_posts": {"$ref": "#/$defs/items"},
    "whatsapp_messages": {"$ref": "#/$defs/items"},
    "status_images": {"$ref": "#/$defs/items"}
  },
  "$defs": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["advisor_id", "file_path", "overall_virality"],
        "properties": {
          "advisor_id": {"type": "string"},
          "file_path": {"type": "string"},
          "overall_virality": {"type": "number", "minimum": 0, "maximum": 10}
        }
      }
    }
  }
}`

var compiledQualitySchema = jsonschema.MustCompileString("quality_report.json", qualityReportSchema)

// QualityItem is one scored asset reference inside the quality report.
// OverallVirality uses the report's 0-10 scale.
type QualityItem struct {
	AdvisorID       string  `json:"advisor_id"`
	FilePath        string  `json:"file_path"`
	OverallVirality float64 `json:"overall_virality"`
}

// QualityReportInput is the parsed artifact the regeneration loop consumes.
type QualityReportInput struct {
	LinkedInPosts    []QualityItem `json:"linkedin_posts"`
	WhatsAppMessages []QualityItem `json:"whatsapp_messages"`
	StatusImages     []QualityItem `json:"status_images"`
	TotalAssets      int           `json:"total_assets"`
}

// LoadQualityReport reads and schema-validates the artifact.
func LoadQualityReport(path string) (*QualityReportInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quality report %s: %w", path, err)
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("quality report %s is not valid JSON: %w", path, err)
	}
	if err := compiledQualitySchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("quality report %s failed schema validation: %w", path, err)
	}

	var input QualityReportInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("quality report %s: %w", path, err)
	}
	return &input, nil
}

// Items flattens the three channels with their content type attached, ordered
// worst virality first so the weakest assets get regeneration attempts before
// a run deadline can expire on them.
func (q *QualityReportInput) Items() []ItemRef {
	out := make([]ItemRef, 0, q.TotalAssets)
	for _, it := range q.LinkedInPosts {
		out = append(out, ItemRef{Item: it, Type: asset.TypeLinkedIn})
	}
	for _, it := range q.WhatsAppMessages {
		out = append(out, ItemRef{Item: it, Type: asset.TypeWhatsApp})
	}
	for _, it := range q.StatusImages {
		out = append(out, ItemRef{Item: it, Type: asset.TypeStatusImage})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Item.OverallVirality < out[j].Item.OverallVirality
	})
	return out
}

// ItemRef pairs a quality item with its channel.
type ItemRef struct {
	Item QualityItem
	Type asset.ContentType
}

// LoadAssets resolves item file paths into assets. Unreadable asset files are
// reported, not fatal; the loop proceeds with what loaded.
func (q *QualityReportInput) LoadAssets(baseDir string) ([]asset.Asset, []LoadProblem) {
	var assets []asset.Asset
	var problems []LoadProblem

	for _, ref := range q.Items() {
		path := ref.Item.FilePath
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			problems = append(problems, LoadProblem{Path: path, Reason: err.Error()})
			continue
		}
		a, err := asset.Parse(data)
		if err != nil {
			problems = append(problems, LoadProblem{Path: path, Reason: err.Error()})
			continue
		}
		if a.AdvisorID == "" {
			a.AdvisorID = ref.Item.AdvisorID
		}
		a.Type = ref.Type
		if a.FilePath == "" {
			a.FilePath = path
		}
		if a.ID == "" {
			a.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		assets = append(assets, a)
	}
	return assets, problems
}

// LoadProblem records one asset reference that could not be resolved.
type LoadProblem struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}
