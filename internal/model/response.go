package model

// AgentResponse is the single outbound shape of the assistant. Every query
// produces one of these; error conditions degrade confidence and content but
// never surface as failures to the caller.
type AgentResponse struct {
	Content     string   `json:"content"`
	Confidence  float64  `json:"confidence"`
	HandlerID   string   `json:"handler_id,omitempty"`
	HandlerName string   `json:"handler_name,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	NextActions []string `json:"next_actions,omitempty"`
}
