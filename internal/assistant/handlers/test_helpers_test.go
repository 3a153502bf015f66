package handlers

import (
	"context"
	"errors"

	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/assistant/validation"
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

// stubStore is a scripted analyticstore.Store.
type stubStore struct {
	rows      []analyticstore.Record
	err       error
	gotTable  string
	gotFilter analyticstore.FilterSpec
	calls     int
}

var _ analyticstore.Store = (*stubStore)(nil)

func (s *stubStore) Fetch(ctx context.Context, table string, filter analyticstore.FilterSpec) ([]analyticstore.Record, error) {
	s.calls++
	s.gotTable = table
	s.gotFilter = filter
	return s.rows, s.err
}

// acceptingClient answers every draft and accepts on first critique.
type acceptingClient struct {
	answer string
	calls  int
}

var _ completion.Client = (*acceptingClient)(nil)

func (c *acceptingClient) Complete(ctx context.Context, req *completion.Request) (string, error) {
	c.calls++
	switch c.calls % 3 {
	case 1:
		return "plan", nil
	case 2:
		return c.answer, nil
	default:
		return `{"score": 9, "issues": []}`, nil
	}
}

func (c *acceptingClient) Provider() string { return "accepting" }
func (c *acceptingClient) Model() string    { return "accepting-model" }

// staticStore serves a fixed row set and keeps no state, so it is safe to
// share across goroutines.
type staticStore struct {
	rows []analyticstore.Record
}

var _ analyticstore.Store = staticStore{}

func (s staticStore) Fetch(ctx context.Context, table string, filter analyticstore.FilterSpec) ([]analyticstore.Record, error) {
	return s.rows, nil
}

// failingClient fails every completion call.
type failingClient struct{}

var _ completion.Client = (*failingClient)(nil)

func (failingClient) Complete(ctx context.Context, req *completion.Request) (string, error) {
	return "", errors.New("upstream down")
}
func (failingClient) Provider() string { return "failing" }
func (failingClient) Model() string    { return "failing-model" }

func newTestCore(store analyticstore.Store, client completion.Client) (core, *memory.Store) {
	mem := memory.New(mockLogger{}, memory.Config{})
	loop := validation.New(client, mockLogger{}, validation.Config{})
	return core{l: mockLogger{}, store: store, loop: loop, mem: mem}, mem
}
