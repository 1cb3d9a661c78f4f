package fatigue

import (
	"regexp"
	"strings"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "for": true,
	"with": true, "from": true, "by": true, "as": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "you": true,
	"your": true, "we": true, "our": true, "i": true, "my": true, "me": true,
	"not": true, "no": true, "do": true, "does": true, "did": true, "can": true,
	"will": true, "have": true, "has": true, "had": true, "if": true, "so": true,
}

var tokenPattern = regexp.MustCompile(`[a-z0-9₹%]+`)

// TokenSet builds the stop-word-filtered token set used for similarity.
func TokenSet(text string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < 2 || stopWords[tok] {
			continue
		}
		out[tok] = true
	}
	return out
}

// JaccardSimilarity is |A∩B| / |A∪B| over two token sets. It is symmetric and
// bounded to [0,1]; two empty sets compare as 0 rather than dividing by zero.
func JaccardSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

var currencyPattern = regexp.MustCompile(`₹\s?[\d,]+(?:\.\d+)?(?:\s?(?:lakh|crore|cr|k))?`)
var percentPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s?%`)

var marketReferences = []string{
	"sensex", "nifty", "fii", "dii", "rbi", "repo rate", "sip",
	"gold", "crude", "rupee", "gdp", "inflation",
}

// ExtractDataPoints pulls currency amounts, percentages and named market
// references out of the text. Values are normalized so the reuse comparison is
// whitespace- and case-insensitive.
func ExtractDataPoints(text string) map[string]bool {
	lower := strings.ToLower(text)
	out := make(map[string]bool)
	for _, m := range currencyPattern.FindAllString(lower, -1) {
		out[normalizeDataPoint(m)] = true
	}
	for _, m := range percentPattern.FindAllString(lower, -1) {
		out[normalizeDataPoint(m)] = true
	}
	for _, ref := range marketReferences {
		if strings.Contains(lower, ref) {
			out[ref] = true
		}
	}
	return out
}

func normalizeDataPoint(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func countShared(a, b map[string]bool) int {
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}
