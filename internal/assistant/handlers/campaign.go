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

// Campaign answers questions about campaign performance: spend, impressions,
// clicks, conversions, and derived metrics such as CTR and ROAS.
type Campaign struct {
	core
}

var _ assistant.Handler = (*Campaign)(nil)

func NewCampaign(l pkgLog.Logger, store analyticstore.Store, loop *validation.Loop, mem *memory.Store) *Campaign {
	return &Campaign{core{l: l, store: store, loop: loop, mem: mem}}
}

func (h *Campaign) ID() assistant.HandlerID {
	return assistant.HandlerCampaign
}

func (h *Campaign) Descriptor() assistant.Descriptor {
	return assistant.Descriptor{
		ID:          assistant.HandlerCampaign,
		DisplayName: "Campaign Performance",
		Description: "spend, impressions, clicks, CTR, ROAS and conversions per campaign",
		Capabilities: []assistant.Capability{
			{Name: "campaign metrics", Description: "summarize performance for one or all campaigns"},
			{Name: "budget pacing", Description: "compare spend against budget"},
		},
	}
}

func (h *Campaign) CanHandle(query string, _ model.SessionContext) bool {
	return keywordMatch(assistant.HandlerCampaign, query)
}

func (h *Campaign) Process(ctx context.Context, query string, sctx model.SessionContext, _ []model.Turn) assistant.HandlerResponse {
	desc := h.Descriptor()

	if needsClarification(query) {
		return clarifyResponse(desc, "campaign performance", h.suggestions())
	}

	rows, err := h.fetchRows(ctx, TableCampaignMetrics, sctx, sctx.ActiveFilters, "spend desc")
	if err != nil {
		h.l.Warnf(ctx, "%s: lookup failed: %v", LogPrefixCampaign, err)
		return degradedResponse(desc, "campaign", h.suggestions())
	}

	content, confidence := h.answer(ctx, query, h.dataContext(rows), sctx)

	return assistant.HandlerResponse{
		Content:     content,
		Confidence:  confidence,
		HandlerID:   assistant.HandlerCampaign,
		HandlerName: desc.DisplayName,
		Suggestions: h.suggestions(),
	}
}

// dataContext flattens campaign rows into prompt-ready lines. Derived rates
// are computed here so the model never has to do arithmetic.
func (h *Campaign) dataContext(rows []analyticstore.Record) string {
	if len(rows) == 0 {
		return NoDataNote
	}

	var b strings.Builder
	b.WriteString("Campaign metrics (highest spend first):\n")
	for _, r := range rows {
		impressions := r.Float("impressions")
		clicks := r.Float("clicks")
		ctr := 0.0
		if impressions > 0 {
			ctr = clicks / impressions * 100
		}
		b.WriteString(fmt.Sprintf("- %s: spend=$%.2f, impressions=%.0f, clicks=%.0f, ctr=%.2f%%, conversions=%.0f\n",
			r.String("campaign_name"), r.Float("spend"), impressions, clicks, ctr, r.Float("conversions")))
	}
	return b.String()
}

func (h *Campaign) suggestions() []string {
	return []string{
		"Which campaign has the best ROAS?",
		"How is my spend pacing against budget?",
		"Compare CTR across my campaigns",
	}
}
