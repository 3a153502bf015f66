package handlers

import (
	"context"
	"fmt"
	"strings"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/assistant/validation"
	"marketing-insights-assistant/internal/model"
	"marketing-insights-assistant/pkg/analyticstore"
	pkgLog "marketing-insights-assistant/pkg/log"
)

// core carries the dependencies and behavior shared by every topic handler:
// keyword matching, clarify-vs-proceed analysis, org-scoped lookups, the
// validation loop invocation, and degraded fallbacks.
type core struct {
	l     pkgLog.Logger
	store analyticstore.Store
	loop  *validation.Loop
	mem   *memory.Store
}

// keywordMatch is the shared CanHandle implementation: pure substring
// matching against the handler's topic vocabulary.
func keywordMatch(id assistant.HandlerID, query string) bool {
	q := strings.ToLower(query)
	for _, kw := range assistant.Keywords(id) {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// needsClarification is the request analysis step: very short queries with
// no concrete token are answered with a question, not a guess. Direct-request
// phrasings are complete asks and never clarified, however short.
func needsClarification(query string) bool {
	if _, ok := assistant.DirectRequest(query); ok {
		return false
	}
	words := strings.Fields(query)
	if len(words) >= 4 {
		return false
	}
	for _, w := range words {
		if strings.ContainsAny(w, "0123456789") {
			return false
		}
	}
	return true
}

// fetchRows performs an org-scoped lookup. An empty result is a valid
// outcome, not an error; only transport/store failures return err.
func (c *core) fetchRows(ctx context.Context, table string, sctx model.SessionContext, conditions map[string]any, orderBy string) ([]analyticstore.Record, error) {
	return c.store.Fetch(ctx, table, analyticstore.FilterSpec{
		OrganizationID: sctx.OrganizationID,
		Conditions:     conditions,
		OrderBy:        orderBy,
		Limit:          MaxRowsInContext,
	})
}

// answer runs the validation loop over the gathered data context and maps
// the loop outcome to handler confidence.
func (c *core) answer(ctx context.Context, query, dataContext string, sctx model.SessionContext) (string, float64) {
	prefs := c.mem.Get(sctx.UserID).PreferencesSnapshot()
	dataContext += fmt.Sprintf("\n\nAnswer preferences: detail=%s, format=%s.",
		prefs.DetailLevel, prefs.PreferredFormat)

	result := c.loop.Run(ctx, query, dataContext)

	switch {
	case result.Content == validation.FallbackAnswer:
		return result.Content, ConfidenceDegraded
	case result.ForcedStop:
		return result.Content, ConfidenceForced
	default:
		return result.Content, ConfidenceAccepted
	}
}

func clarifyResponse(desc assistant.Descriptor, topic string, suggestions []string) assistant.HandlerResponse {
	return assistant.HandlerResponse{
		Content:     fmt.Sprintf(ClarifyTemplate, topic),
		Confidence:  ConfidenceClarify,
		HandlerID:   desc.ID,
		HandlerName: desc.DisplayName,
		Suggestions: suggestions,
	}
}

func degradedResponse(desc assistant.Descriptor, topic string, suggestions []string) assistant.HandlerResponse {
	return assistant.HandlerResponse{
		Content:     fmt.Sprintf(DegradedLookupAnswer, topic),
		Confidence:  ConfidenceDegraded,
		HandlerID:   desc.ID,
		HandlerName: desc.DisplayName,
		Suggestions: suggestions,
	}
}
