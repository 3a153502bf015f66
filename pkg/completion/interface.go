package completion

import "context"

// Client is the boundary to an external text-completion service.
// Implementations perform exactly one network call per Complete invocation;
// retry policy belongs to callers. Implementations are safe for concurrent use.
type Client interface {
	// Complete sends the ordered message sequence and returns the generated text.
	// Failures are one of ErrUpstreamUnavailable, ErrUpstreamRejected or
	// ErrUpstreamThrottled, wrapped in *UpstreamError.
	Complete(ctx context.Context, req *Request) (string, error)

	// Provider returns the provider name (e.g. "gemini", "openai")
	Provider() string

	// Model returns the model being used
	Model() string
}
