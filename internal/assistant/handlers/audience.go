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

// Audience answers questions about who the campaigns reached: segments,
// demographics, and household composition.
type Audience struct {
	core
}

var _ assistant.Handler = (*Audience)(nil)

func NewAudience(l pkgLog.Logger, store analyticstore.Store, loop *validation.Loop, mem *memory.Store) *Audience {
	return &Audience{core{l: l, store: store, loop: loop, mem: mem}}
}

func (h *Audience) ID() assistant.HandlerID {
	return assistant.HandlerAudience
}

func (h *Audience) Descriptor() assistant.Descriptor {
	return assistant.Descriptor{
		ID:          assistant.HandlerAudience,
		DisplayName: "Audience Insights",
		Description: "segments, demographics and household reach across your campaigns",
		Capabilities: []assistant.Capability{
			{Name: "segment breakdown", Description: "reach and share per audience segment"},
			{Name: "demographics", Description: "age and household composition of viewers"},
		},
	}
}

func (h *Audience) CanHandle(query string, _ model.SessionContext) bool {
	return keywordMatch(assistant.HandlerAudience, query)
}

func (h *Audience) Process(ctx context.Context, query string, sctx model.SessionContext, _ []model.Turn) assistant.HandlerResponse {
	desc := h.Descriptor()

	if needsClarification(query) {
		return clarifyResponse(desc, "audience insights", h.suggestions())
	}

	rows, err := h.fetchRows(ctx, TableAudienceSegments, sctx, sctx.ActiveFilters, "reach desc")
	if err != nil {
		h.l.Warnf(ctx, "%s: lookup failed: %v", LogPrefixAudience, err)
		return degradedResponse(desc, "audience", h.suggestions())
	}

	content, confidence := h.answer(ctx, query, h.dataContext(rows), sctx)

	return assistant.HandlerResponse{
		Content:     content,
		Confidence:  confidence,
		HandlerID:   assistant.HandlerAudience,
		HandlerName: desc.DisplayName,
		Suggestions: h.suggestions(),
	}
}

func (h *Audience) dataContext(rows []analyticstore.Record) string {
	if len(rows) == 0 {
		return NoDataNote
	}

	var b strings.Builder
	b.WriteString("Audience segments (largest reach first):\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("- %s: reach=%.0f households, share=%.1f%%, age_group=%s\n",
			r.String("segment_name"), r.Float("reach"), r.Float("share")*100, r.String("age_group")))
	}
	return b.String()
}

func (h *Audience) suggestions() []string {
	return []string{
		"Which segment has the largest reach?",
		"Break down my viewers by age group",
		"How many households did I reach this month?",
	}
}
