package handlers

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/assistant/validation"
	"marketing-insights-assistant/internal/model"
	"marketing-insights-assistant/pkg/analyticstore"
)

func testSessionContext() model.SessionContext {
	return model.SessionContext{UserID: "user-1", OrganizationID: "org-1"}
}

func TestCanHandle(t *testing.T) {
	c, mem := newTestCore(&stubStore{}, &acceptingClient{answer: "x"})
	campaign := &Campaign{c}
	audience := &Audience{c}
	geo := &Geo{c}
	schedule := NewSchedule(mockLogger{}, nil, "", nil, mem)

	tests := []struct {
		query   string
		handler assistant.Handler
		want    bool
	}{
		{"how is my campaign spend", campaign, true},
		{"what regions lead", campaign, false},
		{"audience segment breakdown", audience, true},
		{"campaign budget", audience, false},
		{"show the map by state", geo, true},
		{"audience personas", geo, false},
		{"what's airing on tv tonight", schedule, true},
		{"campaign spend", schedule, false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+string(tt.handler.ID()), func(t *testing.T) {
			if got := tt.handler.CanHandle(tt.query, testSessionContext()); got != tt.want {
				t.Errorf("CanHandle(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestCanHandleIsPure(t *testing.T) {
	store := &stubStore{}
	c, _ := newTestCore(store, &acceptingClient{answer: "x"})
	campaign := &Campaign{c}

	for i := 0; i < 5; i++ {
		campaign.CanHandle("campaign spend", testSessionContext())
	}
	if store.calls != 0 {
		t.Errorf("CanHandle must not touch the store, got %d calls", store.calls)
	}
}

func TestProcessClarifiesThinQueries(t *testing.T) {
	store := &stubStore{}
	c, _ := newTestCore(store, &acceptingClient{answer: "x"})
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "campaigns?", testSessionContext(), nil)

	if store.calls != 0 {
		t.Error("clarify path must not fetch data")
	}
	if resp.Confidence != ConfidenceClarify {
		t.Errorf("confidence = %.2f, want %.2f", resp.Confidence, ConfidenceClarify)
	}
	if !strings.Contains(resp.Content, "?") {
		t.Errorf("clarify response should ask a question, got %q", resp.Content)
	}
}

func TestProcessAnswersDirectRequests(t *testing.T) {
	store := &stubStore{rows: []analyticstore.Record{
		{"campaign_name": "Spring Launch", "spend": 1200.0},
	}}
	c, _ := newTestCore(store, &acceptingClient{answer: "Spring Launch leads on spend."})
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "show my campaigns", testSessionContext(), nil)

	if store.calls != 1 {
		t.Errorf("direct requests must fetch data, got %d store calls", store.calls)
	}
	if resp.Confidence != ConfidenceAccepted {
		t.Errorf("confidence = %.2f, want %.2f; a direct request must not be re-clarified", resp.Confidence, ConfidenceAccepted)
	}
}

func TestProcessConcurrentWithRecording(t *testing.T) {
	store := staticStore{rows: []analyticstore.Record{
		{"campaign_name": "Spring Launch", "spend": 1200.0},
	}}
	mem := memory.New(mockLogger{}, memory.Config{})
	loop := validation.New(failingClient{}, mockLogger{}, validation.Config{})
	campaign := &Campaign{core{l: mockLogger{}, store: store, loop: loop, mem: mem}}

	sctx := testSessionContext()
	conv := mem.Get(sctx.UserID)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			mem.RecordUserTurn(context.Background(), conv, "walk me through campaign spend in detail", sctx)
		}()
		go func() {
			defer wg.Done()
			campaign.Process(context.Background(), "how much did my campaigns spend last week", sctx, nil)
		}()
	}
	wg.Wait()

	if got := conv.PreferencesSnapshot().DetailLevel; got != "detailed" {
		t.Errorf("detail level = %q, want %q", got, "detailed")
	}
	if got := len(conv.Turns()); got != 25 {
		t.Errorf("recorded turns = %d, want 25", got)
	}
}

func TestProcessSuccess(t *testing.T) {
	store := &stubStore{rows: []analyticstore.Record{
		{"campaign_name": "Spring Launch", "spend": 1200.0, "impressions": 50000.0, "clicks": 800.0, "conversions": 40.0},
	}}
	c, _ := newTestCore(store, &acceptingClient{answer: "Spring Launch spent $1,200."})
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "how much did my campaigns spend last week", testSessionContext(), nil)

	if resp.Content != "Spring Launch spent $1,200." {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Confidence != ConfidenceAccepted {
		t.Errorf("confidence = %.2f, want %.2f", resp.Confidence, ConfidenceAccepted)
	}
	if resp.HandlerID != assistant.HandlerCampaign {
		t.Errorf("handler id = %s", resp.HandlerID)
	}
	if store.gotTable != TableCampaignMetrics {
		t.Errorf("table = %q", store.gotTable)
	}
	if store.gotFilter.OrganizationID != "org-1" {
		t.Errorf("organization scope missing: %+v", store.gotFilter)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("successful answers should carry suggestions")
	}
}

func TestProcessEmptyResultIsValid(t *testing.T) {
	store := &stubStore{rows: nil}
	c, _ := newTestCore(store, &acceptingClient{answer: "No campaign data exists yet for this account."})
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "how much did my campaigns spend last week", testSessionContext(), nil)

	if resp.Confidence != ConfidenceAccepted {
		t.Errorf("empty data is a valid answer, confidence = %.2f", resp.Confidence)
	}
}

func TestProcessLookupFailureDegrades(t *testing.T) {
	store := &stubStore{err: analyticstore.ErrLookupFailed}
	client := &acceptingClient{answer: "x"}
	c, _ := newTestCore(store, client)
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "how much did my campaigns spend last week", testSessionContext(), nil)

	if resp.Confidence != ConfidenceDegraded {
		t.Errorf("confidence = %.2f, want %.2f", resp.Confidence, ConfidenceDegraded)
	}
	if client.calls != 0 {
		t.Error("degraded lookup must not reach the completion service")
	}
	if strings.Contains(strings.ToLower(resp.Content), "error") {
		t.Errorf("degraded answer must stay non-technical, got %q", resp.Content)
	}
}

func TestProcessCompletionOutageDegrades(t *testing.T) {
	store := &stubStore{rows: []analyticstore.Record{{"campaign_name": "X", "spend": 1.0}}}
	c, _ := newTestCore(store, failingClient{})
	campaign := &Campaign{c}

	resp := campaign.Process(context.Background(), "how much did my campaigns spend last week", testSessionContext(), nil)

	if resp.Content != validation.FallbackAnswer {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Confidence != ConfidenceDegraded {
		t.Errorf("confidence = %.2f, want %.2f", resp.Confidence, ConfidenceDegraded)
	}
}

func TestAudienceAndGeoTables(t *testing.T) {
	store := &stubStore{}
	c, _ := newTestCore(store, &acceptingClient{answer: "ok"})

	audience := &Audience{c}
	audience.Process(context.Background(), "break down my audience segments by age group", testSessionContext(), nil)
	if store.gotTable != TableAudienceSegments {
		t.Errorf("audience table = %q", store.gotTable)
	}

	geo := &Geo{c}
	geo.Process(context.Background(), "which states lead on the map view", testSessionContext(), nil)
	if store.gotTable != TableRegionalPerformance {
		t.Errorf("geo table = %q", store.gotTable)
	}
}

func TestScheduleWithoutCalendarDegrades(t *testing.T) {
	_, mem := newTestCore(&stubStore{}, &acceptingClient{answer: "x"})
	loop := validation.New(&acceptingClient{answer: "x"}, mockLogger{}, validation.Config{})
	schedule := NewSchedule(mockLogger{}, nil, "", loop, mem)

	resp := schedule.Process(context.Background(), "what spots are airing this coming week", testSessionContext(), nil)

	if resp.Confidence != ConfidenceDegraded {
		t.Errorf("confidence = %.2f, want %.2f", resp.Confidence, ConfidenceDegraded)
	}
	if resp.HandlerID != assistant.HandlerSchedule {
		t.Errorf("handler id = %s", resp.HandlerID)
	}
}

func TestNeedsClarification(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"campaigns?", true},
		{"spend", true},
		{"top 5", false}, // a number is concrete enough
		{"how did my campaigns do", false},
		{"show my campaigns", false}, // direct requests are complete asks
		{"upcoming spots", false},
	}
	for _, tt := range tests {
		if got := needsClarification(tt.query); got != tt.want {
			t.Errorf("needsClarification(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestCampaignDataContextComputesRates(t *testing.T) {
	c, _ := newTestCore(&stubStore{}, &acceptingClient{answer: "x"})
	campaign := &Campaign{c}

	ctxStr := campaign.dataContext([]analyticstore.Record{
		{"campaign_name": "Spring", "spend": 100.0, "impressions": 1000.0, "clicks": 50.0, "conversions": 5.0},
	})

	if !strings.Contains(ctxStr, "ctr=5.00%") {
		t.Errorf("expected computed CTR in context, got %q", ctxStr)
	}
	if !strings.Contains(ctxStr, "Spring") {
		t.Errorf("expected campaign name, got %q", ctxStr)
	}
}

func TestScheduleDescriptorStable(t *testing.T) {
	schedule := NewSchedule(mockLogger{}, nil, "", nil, nil)
	d1 := schedule.Descriptor()
	time.Sleep(time.Millisecond)
	d2 := schedule.Descriptor()
	if d1.ID != d2.ID || d1.DisplayName != d2.DisplayName {
		t.Error("descriptor must be static")
	}
}
