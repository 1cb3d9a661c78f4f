package scoring

import (
	"strings"
	"unicode"
)

// Text helpers shared by the dimension metrics. All of them operate on
// lowercased input so keyword matching is case-insensitive.

func countContained(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

func containsAny(lower string, terms []string) bool {
	return countContained(lower, terms) > 0
}

// densityScore converts "matched terms per 100 words" into [0,1]. saturation is
// the density at which the metric maxes out.
func densityScore(matches, wordCount int, saturation float64) float64 {
	if wordCount == 0 {
		return 0
	}
	density := float64(matches) / float64(wordCount) * 100.0
	return clamp01(density / saturation)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// splitSentences is a cheap sentence segmentation: terminal punctuation and
// newlines both end a sentence.
func splitSentences(text string) []string {
	out := make([]string, 0, 8)
	var sb strings.Builder
	flush := func() {
		s := strings.TrimSpace(sb.String())
		if s != "" {
			out = append(out, s)
		}
		sb.Reset()
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return out
}

// estimateSyllables approximates syllable count by vowel groups, which is close
// enough for bucketed readability.
func estimateSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

func countOccurrences(lower, term string) int {
	if term == "" {
		return 0
	}
	return strings.Count(lower, strings.ToLower(term))
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1FAFF {
			return true
		}
		if r >= 0x2600 && r <= 0x27BF {
			return true
		}
	}
	return false
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
