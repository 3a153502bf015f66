package dispatcher

import (
	"strings"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/model"
)

// Score is the ephemeral per-request routing score for one handler.
type Score struct {
	HandlerID  assistant.HandlerID
	Confidence float64 // clamped to [0,1]
}

// scoreHandler computes matchedKeywordCount/normalizer for one handler,
// plus additive boosts for high-signal terms, clamped to [0,1]. Explicit and
// reproducible: same query and registry, same score.
func scoreHandler(query string, id assistant.HandlerID) float64 {
	q := strings.ToLower(query)

	matched := 0
	for _, kw := range assistant.Keywords(id) {
		if strings.Contains(q, kw) {
			matched++
		}
	}

	normalizer, ok := keywordNormalizers[id]
	if !ok {
		normalizer = DefaultKeywordNormalizer
	}

	score := float64(matched) / normalizer

	for _, term := range boostTerms[id] {
		if strings.Contains(q, term) {
			score += boostAmount
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}

// scoreAll scores every registered handler in registration order. CanHandle
// is the cheap gate: a handler that declines the query scores zero.
func (d *Dispatcher) scoreAll(query string, sctx model.SessionContext) []Score {
	handlers := d.registry.List()
	scores := make([]Score, 0, len(handlers))
	for _, h := range handlers {
		confidence := 0.0
		if h.CanHandle(query, sctx) {
			confidence = scoreHandler(query, h.ID())
		}
		scores = append(scores, Score{
			HandlerID:  h.ID(),
			Confidence: confidence,
		})
	}
	return scores
}

// selectBest picks the highest-scoring handler. Ties keep the
// earlier-registered handler: only a strictly greater score displaces the
// current best.
func selectBest(scores []Score) (Score, bool) {
	if len(scores) == 0 {
		return Score{}, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Confidence > best.Confidence {
			best = s
		}
	}
	return best, true
}
