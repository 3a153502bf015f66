package assistant

import (
	"context"

	"marketing-insights-assistant/internal/model"
)

// HandlerID is the closed set of handler identifiers. Routing boost and
// override rules reference these constants, so the compiler catches a rule
// that names a handler that does not exist.
type HandlerID string

const (
	HandlerCampaign HandlerID = "campaign"
	HandlerAudience HandlerID = "audience"
	HandlerGeo      HandlerID = "geo"
	HandlerSchedule HandlerID = "schedule"
)

// Capability describes one thing a handler can do, for descriptors and
// meta-query answers.
type Capability struct {
	Name        string
	Description string
	Examples    []string
}

// Descriptor is the static description of a handler. Constructed once at
// startup, never mutated.
type Descriptor struct {
	ID           HandlerID
	DisplayName  string
	Description  string
	Capabilities []Capability
}

// HandlerResponse is what a handler returns from Process. Handlers never
// fail: internal errors degrade to a low-confidence fallback response.
type HandlerResponse struct {
	Content     string
	Confidence  float64
	HandlerID   HandlerID
	HandlerName string
	Suggestions []string
}

// Handler answers queries in one topic domain.
type Handler interface {
	// ID returns the handler's identifier.
	ID() HandlerID

	// Descriptor returns the handler's static description.
	Descriptor() Descriptor

	// CanHandle reports whether the handler can address the query. It must
	// be pure and cheap (keyword matching, no network) so the dispatcher can
	// call it on every registered handler per request.
	CanHandle(query string, sctx model.SessionContext) bool

	// Process answers the query. It may call the completion service, the
	// validation loop, and conversational memory. It always returns a value.
	Process(ctx context.Context, query string, sctx model.SessionContext, history []model.Turn) HandlerResponse
}
