package completion

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged message in a completion request.
type Message struct {
	Role    string
	Content string
}

// Request is a normalized text-completion request.
type Request struct {
	Messages    []Message
	Model       string // optional override; client default applies when empty
	MaxTokens   int
	Temperature float64
}
