package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/assistant/validation"
	"marketing-insights-assistant/internal/model"
	"marketing-insights-assistant/pkg/gcalendar"
	pkgLog "marketing-insights-assistant/pkg/log"
)

// Schedule answers questions about upcoming ad airings. Flight schedules are
// maintained as Google Calendar events by the ad-ops team, so this handler
// reads from the calendar rather than the analytics store.
type Schedule struct {
	l          pkgLog.Logger
	calendar   *gcalendar.Client
	calendarID string
	loop       *validation.Loop
	mem        *memory.Store
	now        func() time.Time
}

var _ assistant.Handler = (*Schedule)(nil)

func NewSchedule(l pkgLog.Logger, cal *gcalendar.Client, calendarID string, loop *validation.Loop, mem *memory.Store) *Schedule {
	return &Schedule{
		l:          l,
		calendar:   cal,
		calendarID: calendarID,
		loop:       loop,
		mem:        mem,
		now:        time.Now,
	}
}

func (h *Schedule) ID() assistant.HandlerID {
	return assistant.HandlerSchedule
}

func (h *Schedule) Descriptor() assistant.Descriptor {
	return assistant.Descriptor{
		ID:          assistant.HandlerSchedule,
		DisplayName: "Ad Schedule",
		Description: "upcoming TV spots, air times and flight schedules",
		Capabilities: []assistant.Capability{
			{Name: "upcoming airings", Description: "list spots airing in the next week"},
			{Name: "daypart overview", Description: "when your spots air during the day"},
		},
	}
}

func (h *Schedule) CanHandle(query string, _ model.SessionContext) bool {
	return keywordMatch(assistant.HandlerSchedule, query)
}

func (h *Schedule) Process(ctx context.Context, query string, sctx model.SessionContext, _ []model.Turn) assistant.HandlerResponse {
	desc := h.Descriptor()

	if needsClarification(query) {
		return clarifyResponse(desc, "the ad schedule", h.suggestions())
	}

	dataContext, err := h.upcomingAirings(ctx)
	if err != nil {
		h.l.Warnf(ctx, "%s: calendar lookup failed: %v", LogPrefixSchedule, err)
		return degradedResponse(desc, "schedule", h.suggestions())
	}

	prefs := h.mem.Get(sctx.UserID).PreferencesSnapshot()
	dataContext += fmt.Sprintf("\n\nAnswer preferences: detail=%s, format=%s.",
		prefs.DetailLevel, prefs.PreferredFormat)

	result := h.loop.Run(ctx, query, dataContext)

	confidence := ConfidenceAccepted
	switch {
	case result.Content == validation.FallbackAnswer:
		confidence = ConfidenceDegraded
	case result.ForcedStop:
		confidence = ConfidenceForced
	}

	return assistant.HandlerResponse{
		Content:     result.Content,
		Confidence:  confidence,
		HandlerID:   assistant.HandlerSchedule,
		HandlerName: desc.DisplayName,
		Suggestions: h.suggestions(),
	}
}

// upcomingAirings lists calendar events for the next week and flattens them
// into prompt-ready lines.
func (h *Schedule) upcomingAirings(ctx context.Context) (string, error) {
	if h.calendar == nil {
		return "", fmt.Errorf("no calendar configured")
	}

	start := h.now()
	events, err := h.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: h.calendarID,
		TimeMin:    start,
		TimeMax:    start.AddDate(0, 0, ScheduleDaysAhead),
		MaxResults: MaxRowsInContext,
	})
	if err != nil {
		return "", err
	}

	if len(events) == 0 {
		return "No spots are scheduled in the next week. That can be a valid state between flights.", nil
	}

	var b strings.Builder
	b.WriteString("Upcoming airings (next 7 days, earliest first):\n")
	for _, ev := range events {
		line := fmt.Sprintf("- %s at %s", ev.Summary, ev.StartTime.Format("Mon Jan 2 15:04"))
		if ev.Location != "" {
			line += " on " + ev.Location
		}
		b.WriteString(line + "\n")
	}
	return b.String(), nil
}

func (h *Schedule) suggestions() []string {
	return []string{
		"What spots air this week?",
		"When does my next ad run?",
		"Show my prime time airings",
	}
}
