package dispatcher

import (
	"context"
	"math/rand"
	"sync"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/memory"
	"marketing-insights-assistant/internal/model"
	pkgLog "marketing-insights-assistant/pkg/log"
)

// Responder is the sole inbound contract of the orchestration core.
type Responder interface {
	Respond(ctx context.Context, query string, sctx model.SessionContext, history []model.Turn) model.AgentResponse
}

// Config tunes routing. Zero values fall back to the package defaults.
type Config struct {
	DispatchThreshold float64
	MaxQueryLength    int
	RecentTurnWindow  int
	RandomSeed        int64 // 0 means unseeded behavior is NOT used; a fixed default seed applies
}

// Dispatcher scores registered handlers for each query and routes to the
// best one, short-circuiting meta queries and asking clarifying questions
// when no handler scores above the threshold.
type Dispatcher struct {
	registry *assistant.Registry
	mem      *memory.Store
	l        pkgLog.Logger
	cfg      Config

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Ensure Dispatcher implements Responder interface
var _ Responder = (*Dispatcher)(nil)

// New creates a Dispatcher. The memory store is injected, never global.
func New(registry *assistant.Registry, mem *memory.Store, l pkgLog.Logger, cfg Config) *Dispatcher {
	if cfg.DispatchThreshold <= 0 {
		cfg.DispatchThreshold = DefaultDispatchThreshold
	}
	if cfg.MaxQueryLength <= 0 {
		cfg.MaxQueryLength = DefaultMaxQueryLength
	}
	if cfg.RecentTurnWindow <= 0 {
		cfg.RecentTurnWindow = DefaultRecentTurnWindow
	}
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = 1
	}

	return &Dispatcher{
		registry: registry,
		mem:      mem,
		l:        l,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.RandomSeed)),
	}
}

// pick returns a deterministic-under-seed element of options.
func (d *Dispatcher) pick(options []string) string {
	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	return options[d.rng.Intn(len(options))]
}
