package memory

import (
	"sync"

	"marketing-insights-assistant/internal/model"
)

// Preferences are light per-user answer-shaping preferences. They are
// mutated only by explicit heuristics on the user's own phrasing, never by
// the language model.
type Preferences struct {
	DetailLevel     string // "brief" | "standard" | "detailed"
	TechnicalLevel  string // "plain" | "technical"
	PreferredFormat string // "prose" | "bullets"
}

// DerivedContext is the routing-adjacent state recomputed on every turn.
// Last-write-wins under concurrent requests for the same user.
type DerivedContext struct {
	CurrentPage         string
	LastQuery           string
	LastIntentLabel     string
	FollowUpSuggestions []string
	AttemptedApproaches []string
}

// Conversation is the per-user memory record. Turns are append-only; the
// mutex guards appends, derived-field updates and preference access so
// concurrent requests for the same user never corrupt or drop entries.
// Readers outside this package take preferences via PreferencesSnapshot.
type Conversation struct {
	SessionID   string
	Preferences Preferences
	Derived     DerivedContext

	mu    sync.Mutex
	turns []model.Turn
}

// PreferencesSnapshot returns a copy of the preferences taken under the
// lock, safe to read while another request is updating them.
func (c *Conversation) PreferencesSnapshot() Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Preferences
}

// AppendTurn appends a turn to the conversation.
func (c *Conversation) AppendTurn(t model.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, t)
}

// Turns returns a copy of all recorded turns, oldest first.
func (c *Conversation) Turns() []model.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// RecentTurns returns a copy of at most n most recent turns. Older turns are
// retained but not consulted.
func (c *Conversation) RecentTurns(n int) []model.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || n > len(c.turns) {
		n = len(c.turns)
	}
	out := make([]model.Turn, n)
	copy(out, c.turns[len(c.turns)-n:])
	return out
}

func defaultPreferences() Preferences {
	return Preferences{
		DetailLevel:     "standard",
		TechnicalLevel:  "plain",
		PreferredFormat: "prose",
	}
}
