package scoring

import "contentgate/internal/asset"

// Keyword vocabularies behind the heuristic sub-metrics. These are tuned for the
// Indian advisory market; scoring stays deterministic because every list is fixed
// at compile time.

var marketTimingKeywords = []string{
	"today", "this week", "right now", "current market", "latest",
	"budget", "rally", "correction", "volatility", "earnings season",
	"rate cut", "rate hike", "all-time high", "dip", "opportunity",
}

var trendingTopics = []string{
	"sip", "nifty", "sensex", "gold", "mutual fund", "fii",
	"small cap", "large cap", "tax saving", "retirement",
}

var segmentVocabulary = map[asset.Segment][]string{
	asset.SegmentPremium: {
		"portfolio", "wealth", "estate", "diversification", "allocation",
		"alternative", "private equity", "concentration", "legacy", "hni",
	},
	asset.SegmentGold: {
		"growth", "goal", "sip", "balance", "planning",
		"equity", "long-term", "compounding", "review", "milestone",
	},
	asset.SegmentSilver: {
		"start", "save", "simple", "small", "first step",
		"emergency fund", "monthly", "habit", "begin", "easy",
	},
}

// seasonalTerms is keyed by calendar month. Month 0 is the fallback used when
// an asset carries no timestamp.
var seasonalTerms = map[int][]string{
	0:  {"market", "invest", "plan"},
	1:  {"tax", "80c", "elss", "new year", "resolution"},
	2:  {"tax", "80c", "elss", "budget", "deadline"},
	3:  {"tax", "financial year", "march 31", "elss", "last chance"},
	4:  {"new financial year", "fresh start", "review", "increment"},
	5:  {"summer", "review", "goal"},
	6:  {"monsoon", "half-year", "review"},
	7:  {"monsoon", "discipline", "sip"},
	8:  {"festive", "independence", "freedom"},
	9:  {"festive", "navratri", "gold"},
	10: {"diwali", "muhurat", "gold", "festive"},
	11: {"diwali", "year-end", "review"},
	12: {"year-end", "review", "resolution", "tax planning"},
}

var valuePropositionMarkers = []string{
	"you get", "helps you", "you can", "benefit", "save", "grow",
	"protect", "secure", "achieve", "build",
}

var jargonTerms = []string{
	"alpha", "beta", "sharpe", "drawdown", "rebalancing", "arbitrage",
	"derivative", "hedging", "duration risk", "standard deviation",
	"expense ratio", "tracking error",
}

var hookKeywords = []string{
	"did you know", "why", "how", "secret", "mistake", "truth",
	"warning", "stop", "imagine", "what if", "most people",
}

var emotionalVocabulary = []string{
	"worry", "fear", "miss", "regret", "dream", "freedom",
	"proud", "confident", "peace of mind", "excited", "love", "family",
}

var ctaMarkers = []string{
	"dm me", "message me", "contact", "call", "reach out",
	"book a", "let's talk", "learn more", "reply", "whatsapp me",
}

var urgencyTerms = []string{
	"now", "today", "hurry", "last chance", "limited", "before", "don't wait",
}

var socialProofMarkers = []string{
	"clients", "investors", "families", "people like you", "my client",
	"helped", "trusted by",
}

var prohibitedClaims = []string{
	"guaranteed", "risk-free", "assured returns", "no loss",
	"100% safe", "double your money",
}

var expertiseTerms = []string{
	"analysis", "research", "data", "historically", "cagr",
	"portfolio", "strategy", "asset allocation", "study", "track record",
}

var localeTerms = []string{
	"₹", "lakh", "crore", "india", "indian", "rupee",
}

// nameMentionExpectation is how many advisor-name mentions each tier's content
// is expected to carry. Premium content leans on the personal brand harder.
var nameMentionExpectation = map[asset.Segment]int{
	asset.SegmentPremium: 2,
	asset.SegmentGold:    1,
	asset.SegmentSilver:  1,
}
