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

// Geo answers questions about where campaigns performed: states, cities and
// designated market areas, as shown on the dashboard map.
type Geo struct {
	core
}

var _ assistant.Handler = (*Geo)(nil)

func NewGeo(l pkgLog.Logger, store analyticstore.Store, loop *validation.Loop, mem *memory.Store) *Geo {
	return &Geo{core{l: l, store: store, loop: loop, mem: mem}}
}

func (h *Geo) ID() assistant.HandlerID {
	return assistant.HandlerGeo
}

func (h *Geo) Descriptor() assistant.Descriptor {
	return assistant.Descriptor{
		ID:          assistant.HandlerGeo,
		DisplayName: "Regional Performance",
		Description: "performance by state, city and market area on the map view",
		Capabilities: []assistant.Capability{
			{Name: "top markets", Description: "rank regions by impressions or conversions"},
			{Name: "regional comparison", Description: "compare two markets side by side"},
		},
	}
}

func (h *Geo) CanHandle(query string, _ model.SessionContext) bool {
	return keywordMatch(assistant.HandlerGeo, query)
}

func (h *Geo) Process(ctx context.Context, query string, sctx model.SessionContext, _ []model.Turn) assistant.HandlerResponse {
	desc := h.Descriptor()

	if needsClarification(query) {
		return clarifyResponse(desc, "regional performance", h.suggestions())
	}

	rows, err := h.fetchRows(ctx, TableRegionalPerformance, sctx, sctx.ActiveFilters, "impressions desc")
	if err != nil {
		h.l.Warnf(ctx, "%s: lookup failed: %v", LogPrefixGeo, err)
		return degradedResponse(desc, "regional", h.suggestions())
	}

	content, confidence := h.answer(ctx, query, h.dataContext(rows), sctx)

	return assistant.HandlerResponse{
		Content:     content,
		Confidence:  confidence,
		HandlerID:   assistant.HandlerGeo,
		HandlerName: desc.DisplayName,
		Suggestions: h.suggestions(),
	}
}

func (h *Geo) dataContext(rows []analyticstore.Record) string {
	if len(rows) == 0 {
		return NoDataNote
	}

	var b strings.Builder
	b.WriteString("Regional performance (highest impressions first):\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("- %s (%s): impressions=%.0f, conversions=%.0f, spend=$%.2f\n",
			r.String("region_name"), r.String("region_type"), r.Float("impressions"), r.Float("conversions"), r.Float("spend")))
	}
	return b.String()
}

func (h *Geo) suggestions() []string {
	return []string{
		"What are my top performing markets?",
		"Compare performance between two states",
		"Which DMA converts best?",
	}
}
