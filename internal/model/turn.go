package model

import "time"

// TurnRole identifies who produced a conversation turn
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
	RoleSystem    TurnRole = "system"
)

// Turn is one message in a conversation. Turns are immutable once created
// and are only ever appended, never mutated or reordered.
type Turn struct {
	ID                 string
	Role               TurnRole
	Content            string
	Timestamp          time.Time
	ProducingHandlerID string // set only on assistant turns
}
