package openaichat

import "context"

// IChat defines the interface for an OpenAI-compatible chat-completions client
type IChat interface {
	// CreateChatCompletion sends a chat-completions request
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}
