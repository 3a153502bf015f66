package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/model"
)

// RecordUserTurn appends the user's turn and refreshes the derived context.
// The intent label comes from the same extraction routing uses, so the
// continuity phrasing and routing never disagree about the active topic.
func (s *Store) RecordUserTurn(ctx context.Context, conv *Conversation, query string, sctx model.SessionContext) {
	turn := model.Turn{
		ID:        uuid.New().String(),
		Role:      model.RoleUser,
		Content:   query,
		Timestamp: time.Now(),
	}
	conv.AppendTurn(turn)

	intent := assistant.ExtractIntent(query)

	conv.mu.Lock()
	conv.Derived.LastQuery = query
	conv.Derived.CurrentPage = sctx.CurrentPageHint
	conv.Derived.LastIntentLabel = intent
	conv.mu.Unlock()

	s.applyPreferenceHeuristics(conv, query)

	s.l.Debugf(ctx, "%s: user=%s intent=%s", LogPrefixRecordUser, conv.SessionID, intent)
}

// RecordAssistantTurn appends the produced turn and stores its follow-up
// suggestions for the next request.
func (s *Store) RecordAssistantTurn(ctx context.Context, conv *Conversation, resp model.AgentResponse) {
	turn := model.Turn{
		ID:                 uuid.New().String(),
		Role:               model.RoleAssistant,
		Content:            resp.Content,
		Timestamp:          time.Now(),
		ProducingHandlerID: resp.HandlerID,
	}
	conv.AppendTurn(turn)

	conv.mu.Lock()
	conv.Derived.FollowUpSuggestions = resp.Suggestions
	if resp.HandlerID != "" {
		conv.Derived.AttemptedApproaches = append(conv.Derived.AttemptedApproaches, resp.HandlerID)
	}
	conv.mu.Unlock()
}

// RelevantContext returns a short continuity phrase when the new query's
// intent matches the immediately preceding one, and "" otherwise. Memory
// never injects stale or mismatched context.
func (s *Store) RelevantContext(conv *Conversation, newQuery string) string {
	conv.mu.Lock()
	previous := conv.Derived.LastIntentLabel
	hasTurns := len(conv.turns) > 0
	conv.mu.Unlock()

	if !hasTurns || previous == "" || previous == assistant.IntentGeneral {
		return ""
	}

	if assistant.ExtractIntent(newQuery) != previous {
		return ""
	}

	return fmt.Sprintf("Continuing our discussion about %s: ", previous)
}

// applyPreferenceHeuristics mutates preferences from explicit phrasing in
// the user's own words. The language model never writes preferences.
func (s *Store) applyPreferenceHeuristics(conv *Conversation, query string) {
	q := strings.ToLower(query)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	switch {
	case strings.Contains(q, "in detail") || strings.Contains(q, "deep dive"):
		conv.Preferences.DetailLevel = "detailed"
	case strings.Contains(q, "briefly") || strings.Contains(q, "in short") || strings.Contains(q, "tl;dr"):
		conv.Preferences.DetailLevel = "brief"
	}

	if strings.Contains(q, "as a list") || strings.Contains(q, "bullet") {
		conv.Preferences.PreferredFormat = "bullets"
	}
}
