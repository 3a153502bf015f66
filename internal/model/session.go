package model

// SessionContext is the caller-supplied context attached to every request.
// The orchestrator reads it but does not persist it beyond the current call;
// the surrounding application owns its lifecycle.
type SessionContext struct {
	UserID          string
	OrganizationID  string
	CurrentPageHint string
	ActiveFilters   map[string]any
}
