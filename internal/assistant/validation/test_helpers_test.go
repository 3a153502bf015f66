package validation

import (
	"context"
	"errors"

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

// scriptStep is one scripted completion call outcome.
type scriptStep struct {
	text string
	err  error
}

// scriptedClient returns scripted outcomes in call order. Calls past the end
// of the script fail, so a test that under-scripts is caught loudly.
type scriptedClient struct {
	script []scriptStep
	calls  int
}

var _ completion.Client = (*scriptedClient)(nil)

func (c *scriptedClient) Complete(ctx context.Context, req *completion.Request) (string, error) {
	if c.calls >= len(c.script) {
		return "", errors.New("scripted client exhausted")
	}
	step := c.script[c.calls]
	c.calls++
	return step.text, step.err
}

func (c *scriptedClient) Provider() string { return "scripted" }
func (c *scriptedClient) Model() string    { return "scripted-model" }
