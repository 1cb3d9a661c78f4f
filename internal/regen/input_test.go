package regen

import (
	"os"
	"path/filepath"
	"testing"

	"contentgate/internal/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadQualityReport_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "QUALITY_REPORT.json", `{
		"total_assets": 2,
		"linkedin_posts": [
			{"advisor_id": "ADV001", "file_path": "a.json", "overall_virality": 6.5}
		],
		"whatsapp_messages": [
			{"advisor_id": "ADV002", "file_path": "b.json", "overall_virality": 8.1}
		]
	}`)

	input, err := LoadQualityReport(path)
	require.NoError(t, err)
	assert.Equal(t, 2, input.TotalAssets)

	items := input.Items()
	require.Len(t, items, 2)
	assert.Equal(t, asset.TypeLinkedIn, items[0].Type)
	assert.Equal(t, asset.TypeWhatsApp, items[1].Type)
	assert.Equal(t, "ADV002", items[1].Item.AdvisorID)
}

func TestItems_WorstViralityFirst(t *testing.T) {
	input := &QualityReportInput{
		TotalAssets: 3,
		LinkedInPosts: []QualityItem{
			{AdvisorID: "ADV001", FilePath: "strong.json", OverallVirality: 8.4},
		},
		WhatsAppMessages: []QualityItem{
			{AdvisorID: "ADV001", FilePath: "weakest.json", OverallVirality: 3.1},
		},
		StatusImages: []QualityItem{
			{AdvisorID: "ADV002", FilePath: "middling.json", OverallVirality: 5.7},
		},
	}

	items := input.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "weakest.json", items[0].Item.FilePath)
	assert.Equal(t, "middling.json", items[1].Item.FilePath)
	assert.Equal(t, "strong.json", items[2].Item.FilePath)
}

func TestLoadQualityReport_SchemaViolations(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"missing total_assets": `{"linkedin_posts": []}`,
		"virality above scale": `{
			"total_assets": 1,
			"linkedin_posts": [{"advisor_id": "ADV001", "file_path": "a.json", "overall_virality": 11}]
		}`,
		"item missing file_path": `{
			"total_assets": 1,
			"whatsapp_messages": [{"advisor_id": "ADV001", "overall_virality": 5}]
		}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "report.json", body)
			_, err := LoadQualityReport(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadQualityReport_MissingFile(t *testing.T) {
	_, err := LoadQualityReport(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadQualityReport_NotJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.json", "plain text")
	_, err := LoadQualityReport(path)
	assert.Error(t, err)
}

func TestLoadAssets_ResolvesPathsAndRecordsProblems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{
		"advisor_id": "ADV001",
		"segment": "gold",
		"content": "SIP returns compound over decades. Stay invested."
	}`)

	input := &QualityReportInput{
		TotalAssets: 2,
		LinkedInPosts: []QualityItem{
			{AdvisorID: "ADV001", FilePath: "good.json", OverallVirality: 6.0},
			{AdvisorID: "ADV001", FilePath: "missing.json", OverallVirality: 6.0},
		},
	}

	assets, problems := input.LoadAssets(dir)
	require.Len(t, assets, 1)
	require.Len(t, problems, 1)

	a := assets[0]
	assert.Equal(t, "good", a.ID)
	assert.Equal(t, asset.TypeLinkedIn, a.Type)
	assert.Equal(t, "ADV001", a.AdvisorID)
	assert.Contains(t, a.Text, "SIP returns")
	assert.Contains(t, problems[0].Path, "missing.json")
}

func TestLoadAssets_AdvisorIDFallsBackToReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "anon.json", `{"content": "Market update for the week."}`)

	input := &QualityReportInput{
		TotalAssets:      1,
		WhatsAppMessages: []QualityItem{{AdvisorID: "ADV009", FilePath: "anon.json", OverallVirality: 4.0}},
	}

	assets, problems := input.LoadAssets(dir)
	require.Empty(t, problems)
	require.Len(t, assets, 1)
	assert.Equal(t, "ADV009", assets[0].AdvisorID)
	assert.Equal(t, asset.TypeWhatsApp, assets[0].Type)
}
