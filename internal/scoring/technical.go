package scoring

import (
	"strings"

	"contentgate/internal/asset"
)

// lengthRange is the ideal character range for a content type.
type lengthRange struct {
	min int
	max int
}

var idealLengths = map[asset.ContentType]lengthRange{
	asset.TypeLinkedIn:    {min: 600, max: 2200},
	asset.TypeWhatsApp:    {min: 150, max: 900},
	asset.TypeStatusImage: {min: 40, max: 300},
}

// statusImageVisualScore stands in for visual quality, which is assessed by the
// rendering pipeline, not here.
const statusImageVisualScore = 0.75

// technicalMetrics measures mechanical hygiene: formatting anomalies, structure
// plus decoration, and length fit for the channel.
func technicalMetrics(a asset.Asset) []Metric {
	ms := []Metric{
		{Name: "formatting", Value: formattingScore(a.Text)},
		{Name: "structure_decoration", Value: structureDecorationScore(a.Text)},
		{Name: "length_fit", Value: lengthFitScore(a)},
	}
	if a.Type == asset.TypeStatusImage {
		ms = append(ms, Metric{Name: "visual_placeholder", Value: statusImageVisualScore})
	}
	return ms
}

func formattingScore(text string) float64 {
	anomalies := 0
	anomalies += strings.Count(text, "  ")
	anomalies += strings.Count(text, "!!")
	anomalies += strings.Count(text, "??")
	anomalies += strings.Count(text, ",,")
	anomalies += strings.Count(text, "\n\n\n")
	return clamp01(1.0 - 0.2*float64(anomalies))
}

func structureDecorationScore(text string) float64 {
	structured := strings.Contains(text, "\n") || hasStructuralMarkers(text)
	decorated := hasEmoji(text) || strings.Contains(text, "*")
	switch {
	case structured && decorated:
		return 1.0
	case structured || decorated:
		return 0.7
	default:
		return 0.4
	}
}

// lengthFitScore penalizes proportionally to how far outside the ideal range
// the text falls.
func lengthFitScore(a asset.Asset) float64 {
	r, ok := idealLengths[a.Type]
	if !ok {
		return 0.7
	}
	n := len([]rune(a.Text))
	if n >= r.min && n <= r.max {
		return 1.0
	}
	span := float64(r.max - r.min)
	var distance float64
	if n < r.min {
		distance = float64(r.min - n)
	} else {
		distance = float64(n - r.max)
	}
	return clamp01(1.0 - distance/span)
}
