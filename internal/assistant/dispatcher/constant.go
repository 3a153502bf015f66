package dispatcher

import "marketing-insights-assistant/internal/assistant"

// Log prefixes
const (
	LogPrefixRespond = "internal.assistant.dispatcher.Respond"
)

// Routing configuration defaults.
const (
	DefaultDispatchThreshold = 0.3
	DefaultMaxQueryLength    = 2000
	DefaultRecentTurnWindow  = 10
	DefaultKeywordNormalizer = 3.0

	MetaConfidence     = 0.95
	ClarifyConfidence  = 0.2
	FallbackConfidence = 0.1
)

// metaQueryPatterns short-circuit platform/self-referential questions.
// Frequent, latency-sensitive, and answerable without topic data.
var metaQueryPatterns = []string{
	"what model are you",
	"which model are you",
	"what ai are you",
	"what system is this",
	"who are you",
	"what can you do",
	"what are your capabilities",
}

// unsafePatterns is a small denylist guarding any downstream query
// construction a handler might perform.
var unsafePatterns = []string{
	"<script",
	"javascript:",
	"drop table",
	"delete from",
	"; --",
	"${",
}

// boostTerms add a small additive bump for domain terms that are
// high-signal for one handler but too rare to carry the base score.
var boostTerms = map[assistant.HandlerID][]string{
	assistant.HandlerCampaign: {"roas", "cpa", "cpm"},
	assistant.HandlerAudience: {"demographic", "persona"},
	assistant.HandlerGeo:      {"dma", "heatmap"},
	assistant.HandlerSchedule: {"airing", "daypart"},
}

const boostAmount = 0.15

// keywordNormalizers is the per-handler denominator: chosen so a realistic
// strong query for that topic scores near 1.0.
var keywordNormalizers = map[assistant.HandlerID]float64{
	assistant.HandlerCampaign: 4.0,
	assistant.HandlerAudience: 3.0,
	assistant.HandlerGeo:      3.0,
	assistant.HandlerSchedule: 3.0,
}

// clarifyOpeners vary the clarifying question's phrasing. Selection uses the
// injected seeded random source so tests can pin exact output.
var clarifyOpeners = []string{
	"Happy to help!",
	"Sure thing.",
	"Let me make sure I understand.",
}

// Response templates
const (
	MetaAnswerHeader = "I'm the analytics assistant built into this dashboard. I route your questions to specialized helpers:\n"

	ClarifyTemplate = "%s Could you tell me a bit more about what you'd like to know regarding %s? For example, a specific campaign, date range, or metric."

	FallbackAnswer = "I couldn't find that information, but here's what you can try next: rephrase your question with a campaign or metric name, or pick a suggestion below."

	RejectedAnswer = "I can't process that request as written. Try rephrasing it as a plain question about your campaigns, audiences, regions, or schedule."

	EmptyQueryAnswer = "I didn't catch a question there. Ask me about your campaigns, audiences, regional performance, or the ad schedule."
)

// fallbackSuggestions are the generic next steps attached to degraded
// responses.
var fallbackSuggestions = []string{
	"How did my campaigns perform last week?",
	"Which audience segment converts best?",
	"Show regional performance for my top campaign",
	"What's on the schedule this week?",
}
