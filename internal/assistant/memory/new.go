package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "marketing-insights-assistant/pkg/log"
)

const (
	// DefaultCapacity bounds the number of live conversations.
	DefaultCapacity = 1000

	// DefaultTTL evicts conversations idle longer than this.
	DefaultTTL = 30 * time.Minute
)

// Config tunes the conversation store bounds.
type Config struct {
	Capacity int
	TTL      time.Duration
}

// Store is the process-wide conversational memory, keyed by user/session id.
// It is backed by a TTL-evicting LRU so memory stays bounded under real
// request load.
type Store struct {
	l     pkgLog.Logger
	cache *expirable.LRU[string, *Conversation]
	mu    sync.Mutex // guards lazy creation so two requests never race a Get/Add pair
}

// New creates a bounded conversation store.
func New(l pkgLog.Logger, cfg Config) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Store{
		l:     l,
		cache: expirable.NewLRU[string, *Conversation](cfg.Capacity, nil, cfg.TTL),
	}
}

// Get returns the conversation for a user id, lazily creating one with
// default preferences on first contact.
func (s *Store) Get(userID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.cache.Get(userID); ok {
		return conv
	}

	conv := &Conversation{
		SessionID:   userID,
		Preferences: defaultPreferences(),
	}
	s.cache.Add(userID, conv)
	return conv
}

// Len returns the number of live conversations (for introspection/tests).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
