package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/model"
)

// Respond routes a query to exactly one handler (or the meta/clarify
// short-circuits) and returns the answer. It never fails: any internal
// error, including a panicking handler, becomes a low-confidence fallback
// response.
func (d *Dispatcher) Respond(ctx context.Context, query string, sctx model.SessionContext, history []model.Turn) (resp model.AgentResponse) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "%s: recovered from panic: %v", LogPrefixRespond, r)
			resp = d.fallbackResponse()
		}
	}()

	query = strings.TrimSpace(query)

	// 1. Meta fast-path: no handler, no topic data, answered from a static
	// template.
	if d.isMetaQuery(query) {
		d.l.Infof(ctx, "%s: meta fast-path for user=%s", LogPrefixRespond, sctx.UserID)
		return model.AgentResponse{
			Content:     d.metaAnswer(),
			Confidence:  MetaConfidence,
			Suggestions: fallbackSuggestions,
		}
	}

	// 2. Input validation: degraded answers, never errors.
	if reject, ok := d.validateQuery(ctx, query); !ok {
		return reject
	}

	conv := d.mem.Get(sctx.UserID)

	// Continuity and the handler's history are both read before the new
	// turn is recorded: continuity compares against the previous intent
	// label, and the history a handler sees ends at the prior exchange
	// rather than duplicating the live query.
	continuity := d.mem.RelevantContext(conv, query)
	merged := append(append([]model.Turn{}, history...), conv.RecentTurns(d.cfg.RecentTurnWindow)...)
	d.mem.RecordUserTurn(ctx, conv, query, sctx)

	// 3. Priority override: short unambiguous phrasings that generic
	// scoring under-weights.
	if target, ok := d.priorityTarget(query); ok {
		if h, found := d.registry.Get(target); found {
			d.l.Infof(ctx, "%s: priority override to %s", LogPrefixRespond, target)
			return d.dispatch(ctx, h, query, sctx, merged, conv, continuity)
		}
	}

	// 4-5. Confidence scoring and selection.
	scores := d.scoreAll(query, sctx)
	best, ok := selectBest(scores)
	if !ok || best.Confidence < d.cfg.DispatchThreshold {
		d.l.Infof(ctx, "%s: no handler above threshold (best=%.2f), asking to clarify", LogPrefixRespond, best.Confidence)
		clarify := d.clarifyResponse(query)
		d.mem.RecordAssistantTurn(ctx, conv, clarify)
		return clarify
	}

	handler, found := d.registry.Get(best.HandlerID)
	if !found {
		// A scored ID always comes from the registry; reaching here is a
		// programming defect, still converted to a fallback.
		d.l.Errorf(ctx, "%s: scored handler %s not registered", LogPrefixRespond, best.HandlerID)
		return d.fallbackResponse()
	}

	d.l.Infof(ctx, "%s: dispatching to %s (confidence=%.2f)", LogPrefixRespond, best.HandlerID, best.Confidence)

	// 6. Dispatch and return.
	return d.dispatch(ctx, handler, query, sctx, merged, conv, continuity)
}

// dispatch runs the selected handler and finalizes the response, prefixing
// the continuity phrase when the conversation stayed on topic.
func (d *Dispatcher) dispatch(
	ctx context.Context,
	h assistant.Handler,
	query string,
	sctx model.SessionContext,
	history []model.Turn,
	conv *memory.Conversation,
	continuity string,
) model.AgentResponse {
	hr := h.Process(ctx, query, sctx, history)

	content := hr.Content
	if continuity != "" && string(hr.HandlerID) == assistant.ExtractIntent(query) {
		content = continuity + content
	}

	resp := model.AgentResponse{
		Content:     content,
		Confidence:  hr.Confidence,
		HandlerID:   string(hr.HandlerID),
		HandlerName: hr.HandlerName,
		Suggestions: hr.Suggestions,
		NextActions: nextActionsFor(hr.HandlerID),
	}

	d.mem.RecordAssistantTurn(ctx, conv, resp)
	return resp
}

// validateQuery rejects empty, oversized, or unsafe input with a graceful
// response. The bool is false when the request was rejected.
func (d *Dispatcher) validateQuery(ctx context.Context, query string) (model.AgentResponse, bool) {
	if query == "" {
		return model.AgentResponse{
			Content:     EmptyQueryAnswer,
			Confidence:  FallbackConfidence,
			Suggestions: fallbackSuggestions,
		}, false
	}

	if len(query) > d.cfg.MaxQueryLength {
		return model.AgentResponse{
			Content:     RejectedAnswer,
			Confidence:  FallbackConfidence,
			Suggestions: fallbackSuggestions,
		}, false
	}

	q := strings.ToLower(query)
	for _, pattern := range unsafePatterns {
		if strings.Contains(q, pattern) {
			d.l.Warnf(ctx, "%s: rejected unsafe query pattern %q", LogPrefixRespond, pattern)
			return model.AgentResponse{
				Content:     RejectedAnswer,
				Confidence:  FallbackConfidence,
				Suggestions: fallbackSuggestions,
			}, false
		}
	}

	return model.AgentResponse{}, true
}

func (d *Dispatcher) isMetaQuery(query string) bool {
	q := strings.ToLower(query)
	for _, pattern := range metaQueryPatterns {
		if strings.Contains(q, pattern) {
			return true
		}
	}
	return false
}

// metaAnswer lists every registered handler from its static descriptor.
func (d *Dispatcher) metaAnswer() string {
	var b strings.Builder
	b.WriteString(MetaAnswerHeader)
	for _, h := range d.registry.List() {
		desc := h.Descriptor()
		b.WriteString(fmt.Sprintf("- %s: %s\n", desc.DisplayName, desc.Description))
	}
	b.WriteString("Ask me anything about those topics.")
	return b.String()
}

// priorityTarget force-dispatches complete-ask phrasings that generic
// scoring under-weights. The phrase table lives in the shared vocabulary so
// handlers exempt the same phrasings from their clarify analysis.
func (d *Dispatcher) priorityTarget(query string) (assistant.HandlerID, bool) {
	return assistant.DirectRequest(query)
}

// clarifyResponse builds the sub-threshold clarifying question around the
// extracted (possibly generic) topic label. HandlerID stays unset.
func (d *Dispatcher) clarifyResponse(query string) model.AgentResponse {
	topic := assistant.ExtractIntent(query)
	label := topicLabel(topic)

	return model.AgentResponse{
		Content:     fmt.Sprintf(ClarifyTemplate, d.pick(clarifyOpeners), label),
		Confidence:  ClarifyConfidence,
		Suggestions: fallbackSuggestions,
	}
}

func (d *Dispatcher) fallbackResponse() model.AgentResponse {
	return model.AgentResponse{
		Content:     FallbackAnswer,
		Confidence:  FallbackConfidence,
		Suggestions: fallbackSuggestions,
	}
}

func topicLabel(intent string) string {
	switch assistant.HandlerID(intent) {
	case assistant.HandlerCampaign:
		return "your campaigns"
	case assistant.HandlerAudience:
		return "your audiences"
	case assistant.HandlerGeo:
		return "regional performance"
	case assistant.HandlerSchedule:
		return "the ad schedule"
	default:
		return "your marketing data"
	}
}

func nextActionsFor(id assistant.HandlerID) []string {
	switch id {
	case assistant.HandlerCampaign:
		return []string{"Open the campaigns table", "Compare against last period"}
	case assistant.HandlerAudience:
		return []string{"Open the audience view", "Filter by segment"}
	case assistant.HandlerGeo:
		return []string{"Open the map view", "Zoom to your top market"}
	case assistant.HandlerSchedule:
		return []string{"Open the schedule view", "Review upcoming spots"}
	default:
		return nil
	}
}
