package fatigue

import "strings"

// TopicClassifier maps content text to zero or more topic tags. The default
// implementation is keyword containment; an embedding-based classifier can be
// swapped in without touching the analyzer.
type TopicClassifier interface {
	Topics(text string) []string
}

// EmotionClassifier assigns content to at most one emotional-tone category.
type EmotionClassifier interface {
	Emotion(text string) (string, bool)
}

// topicVocabulary is the fixed topic tag vocabulary, keyed by tag.
var topicVocabulary = []struct {
	tag      string
	keywords []string
}{
	{"gold", []string{"gold", "sovereign gold", "sgb"}},
	{"sip", []string{"sip", "systematic investment"}},
	{"fii", []string{"fii", "foreign institutional", "dii"}},
	{"tax", []string{"tax", "80c", "elss", "capital gains"}},
	{"market_volatility", []string{"volatility", "correction", "crash", "dip"}},
	{"mutual_funds", []string{"mutual fund", "nav", "amc"}},
	{"equity", []string{"equity", "stock", "share", "nifty", "sensex"}},
	{"retirement", []string{"retirement", "pension", "nps"}},
	{"insurance", []string{"insurance", "term plan", "cover"}},
	{"real_estate", []string{"real estate", "property", "reit"}},
	{"fixed_income", []string{"fd", "fixed deposit", "bond", "debt fund"}},
	{"budget", []string{"budget", "fiscal", "government spending"}},
}

// KeywordTopicClassifier is the default containment-based classifier.
type KeywordTopicClassifier struct{}

func (KeywordTopicClassifier) Topics(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0, 4)
	for _, entry := range topicVocabulary {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, entry.tag)
				break
			}
		}
	}
	return out
}

// emotionCategories is checked in order; the first matching category wins.
var emotionCategories = []struct {
	name     string
	keywords []string
}{
	{"fear", []string{"worry", "risk", "lose", "afraid", "crash", "mistake", "danger"}},
	{"aspiration", []string{"dream", "wealth", "freedom", "grow", "achieve", "future", "goal"}},
	{"urgency", []string{"now", "today", "hurry", "last chance", "limited", "deadline"}},
	{"education", []string{"learn", "understand", "explain", "know", "guide", "how to"}},
}

// KeywordEmotionClassifier is the default first-match keyword classifier. An
// asset that matches no category stays unclassified.
type KeywordEmotionClassifier struct{}

func (KeywordEmotionClassifier) Emotion(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, cat := range emotionCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name, true
			}
		}
	}
	return "", false
}
