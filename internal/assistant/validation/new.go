package validation

import (
	"time"

	"marketing-insights-assistant/pkg/completion"
	pkgLog "marketing-insights-assistant/pkg/log"
)

// Config tunes the loop. Zero values fall back to the package defaults.
type Config struct {
	AcceptScore int
	MaxRounds   int
	MaxTokens   int
	Timeout     time.Duration
}

// Loop is the iterative self-validation control structure: generate a
// candidate, score it with a critic call, regenerate while unsatisfactory,
// bounded by MaxRounds. It gives the system a deterministic worst case
// (bounded calls, guaranteed non-empty answer) on top of an unreliable
// completion service.
type Loop struct {
	client completion.Client
	l      pkgLog.Logger
	cfg    Config
}

// New creates a validation loop around a completion client.
func New(client completion.Client, l pkgLog.Logger, cfg Config) *Loop {
	if cfg.AcceptScore <= 0 {
		cfg.AcceptScore = DefaultAcceptScore
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Loop{client: client, l: l, cfg: cfg}
}
