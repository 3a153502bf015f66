package openaichat

import "time"

const (
	// DefaultBaseURL is the default API endpoint (OpenAI-compatible)
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
