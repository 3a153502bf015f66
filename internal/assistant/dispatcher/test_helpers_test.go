package dispatcher

import (
	"context"
	"errors"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/model"
	"marketing-insights-assistant/pkg/analyticstore"
	"marketing-insights-assistant/pkg/completion"
)

// mockLogger implements pkg/log.Logger with no-ops.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubHandler is a controllable assistant.Handler.
type stubHandler struct {
	id         assistant.HandlerID
	name       string
	processed  int
	panics     bool
	declines   bool
	answer     string
	gotHistory []model.Turn
}

var _ assistant.Handler = (*stubHandler)(nil)

func (h *stubHandler) ID() assistant.HandlerID { return h.id }

func (h *stubHandler) Descriptor() assistant.Descriptor {
	return assistant.Descriptor{ID: h.id, DisplayName: h.name, Description: "stub topic"}
}

func (h *stubHandler) CanHandle(query string, _ model.SessionContext) bool {
	return !h.declines
}

func (h *stubHandler) Process(ctx context.Context, query string, sctx model.SessionContext, history []model.Turn) assistant.HandlerResponse {
	h.processed++
	h.gotHistory = append([]model.Turn{}, history...)
	if h.panics {
		panic("stub handler exploded")
	}
	return assistant.HandlerResponse{
		Content:     h.answer,
		Confidence:  0.85,
		HandlerID:   h.id,
		HandlerName: h.name,
	}
}

func newTestMemory() *memory.Store {
	return memory.New(mockLogger{}, memory.Config{})
}

func newTestDispatcher(handlers ...assistant.Handler) (*Dispatcher, *assistant.Registry) {
	registry := assistant.NewRegistry()
	for _, h := range handlers {
		registry.Register(h)
	}
	mem := memory.New(mockLogger{}, memory.Config{})
	return New(registry, mem, mockLogger{}, Config{}), registry
}

func testSessionContext() model.SessionContext {
	return model.SessionContext{UserID: "user-1", OrganizationID: "org-1"}
}

// downClient fails every completion call, simulating a provider outage.
type downClient struct{}

var _ completion.Client = downClient{}

func (downClient) Complete(ctx context.Context, req *completion.Request) (string, error) {
	return "", errors.New("upstream down")
}
func (downClient) Provider() string { return "down" }
func (downClient) Model() string    { return "down-model" }

// cannedStore serves one fixed campaign row.
type cannedStore struct{}

var _ analyticstore.Store = cannedStore{}

func (cannedStore) Fetch(ctx context.Context, table string, filter analyticstore.FilterSpec) ([]analyticstore.Record, error) {
	return []analyticstore.Record{
		{"campaign_name": "Spring Launch", "spend": 1200.0, "impressions": 50000.0, "clicks": 800.0, "conversions": 40.0},
	}, nil
}
