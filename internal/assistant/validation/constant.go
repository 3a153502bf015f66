package validation

import "time"

// Log prefixes
const (
	LogPrefixRun = "internal.assistant.validation.Run"
)

// Loop configuration defaults.
const (
	DefaultAcceptScore = 7
	DefaultMaxRounds   = 3
	DefaultMaxTokens   = 1024
	DefaultTimeout     = 45 * time.Second

	DraftTemperature    = 0.4
	CritiqueTemperature = 0.1
)

// Prompts
const (
	PromptPlan = `You are a marketing analytics assistant. Before answering, restate in 2-3 sentences what data and analysis the following question needs. Do not answer the question yet.

Question: %q`

	PromptAnswer = `You are a marketing analytics assistant for a campaign dashboard. Answer the user's question using the plan and the data context below. Be concrete and cite numbers from the context where available. If the context has no relevant data, say so plainly instead of inventing figures.

Plan:
%s

Data context:
%s

Question: %q`

	PromptRevise = `Your previous answer to the question below was reviewed and found lacking. Rewrite it, fixing every listed issue. Keep what was correct.

Question: %q

Previous answer:
%s

Issues to fix:
%s`

	PromptCritique = `You are a strict evaluator. Score the candidate answer against the original question on a 1-10 scale (10 = fully responsive, accurate in tone, appropriately concise). List concrete issues.

Return JSON only, with this shape:
{"score": 1-10, "issues": ["..."]}

Question: %q

Candidate answer:
%s`

	PromptFinalRegen = `Produce the best possible final answer to the question below. Earlier attempts had these accumulated issues; avoid all of them.

Question: %q

Data context:
%s

Accumulated issues:
%s`
)

// FallbackAnswer is the deterministic answer used when the completion
// service is unreachable. The conversation turn must never crash because the
// upstream is down.
const FallbackAnswer = "I couldn't reach the analysis service just now, so I can't generate a full answer. The dashboard tables still show your latest campaign data, so please try asking again in a moment."
