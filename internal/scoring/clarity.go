package scoring

import (
	"strings"

	"contentgate/internal/asset"
)

// clarityMetrics approximates how easy the asset is to read and act on.
func clarityMetrics(a asset.Asset, lower string, words int) []Metric {
	readability := readabilityScore(a.Text)

	valueProp := 0.4
	if containsAny(lower, valuePropositionMarkers) {
		valueProp = 1.0
	}

	structure := 0.5
	if hasStructuralMarkers(a.Text) {
		structure = 1.0
	}

	jargonHits := countContained(lower, jargonTerms)
	jargon := 1.0 - densityScore(jargonHits, words, 2.0)

	return []Metric{
		{Name: "readability", Value: readability},
		{Name: "value_proposition", Value: valueProp},
		{Name: "structure", Value: structure},
		{Name: "jargon_penalty", Value: jargon},
	}
}

// readabilityScore is a Flesch-style approximation bucketed into four bands.
// Short sentences with few syllables per word read best for social content.
func readabilityScore(text string) float64 {
	sentences := splitSentences(text)
	fields := strings.Fields(text)
	if len(sentences) == 0 || len(fields) == 0 {
		return 0
	}

	avgSentenceLen := float64(len(fields)) / float64(len(sentences))
	totalSyllables := 0
	for _, w := range fields {
		totalSyllables += estimateSyllables(w)
	}
	avgSyllables := float64(totalSyllables) / float64(len(fields))

	// Flesch reading ease, then bucketed: the exact value matters less than
	// the band for short-form content.
	flesch := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	switch {
	case flesch >= 60:
		return 1.0
	case flesch >= 50:
		return 0.75
	case flesch >= 30:
		return 0.5
	default:
		return 0.3
	}
}

func hasStructuralMarkers(text string) bool {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || lineIsNumbered(line) {
			return true
		}
	}
	return false
}

func lineIsNumbered(line string) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] >= '1' && line[0] <= '9' && (line[1] == '.' || line[1] == ')')
}
