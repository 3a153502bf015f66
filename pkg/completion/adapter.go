package completion

import (
	"context"
	"errors"
	"strings"

	"marketing-insights-assistant/pkg/gemini"
	"marketing-insights-assistant/pkg/openaichat"
)

// GeminiAdapter adapts pkg/gemini to the completion.Client interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// Ensure GeminiAdapter implements Client interface
var _ Client = (*GeminiAdapter)(nil)

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Client interface
func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (string, error) {
	geminiReq := &gemini.GenerateRequest{}

	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			geminiReq.SystemInstruction = &gemini.Content{
				Parts: []gemini.Part{{Text: msg.Content}},
			}
			continue
		}
		role := msg.Role
		if role == RoleAssistant {
			role = "model" // Gemini's name for the assistant role
		}
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return "", classifyError("gemini", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Provider: "gemini", Err: ErrEmptyCompletion}
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// Provider returns the provider name
func (a *GeminiAdapter) Provider() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIChatAdapter adapts pkg/openaichat to the completion.Client interface
type OpenAIChatAdapter struct {
	client   openaichat.IChat
	provider string
}

// Ensure OpenAIChatAdapter implements Client interface
var _ Client = (*OpenAIChatAdapter)(nil)

// NewOpenAIChatAdapter creates a new adapter for an OpenAI-compatible client
func NewOpenAIChatAdapter(client openaichat.IChat, provider string) *OpenAIChatAdapter {
	if provider == "" {
		provider = "openai"
	}
	return &OpenAIChatAdapter{client: client, provider: provider}
}

// Complete implements Client interface
func (a *OpenAIChatAdapter) Complete(ctx context.Context, req *Request) (string, error) {
	chatReq := &openaichat.Request{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages:    make([]openaichat.Message, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		chatReq.Messages[i] = openaichat.Message{Role: msg.Role, Content: msg.Content}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", classifyError(a.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: a.provider, Err: ErrEmptyCompletion}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Provider returns the provider name
func (a *OpenAIChatAdapter) Provider() string {
	return a.provider
}

// Model returns the model name
func (a *OpenAIChatAdapter) Model() string {
	return a.client.Model()
}

// classifyError maps raw client errors onto the error taxonomy.
// Context cancellation is passed through untouched so callers stay
// cancellation-transparent.
func classifyError(provider string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var geminiErr *gemini.APIError
	if errors.As(err, &geminiErr) {
		return &UpstreamError{Provider: provider, Err: ClassifyStatus(geminiErr.StatusCode, geminiErr.Body)}
	}

	var chatErr *openaichat.APIError
	if errors.As(err, &chatErr) {
		return &UpstreamError{Provider: provider, Err: ClassifyStatus(chatErr.StatusCode, chatErr.Message)}
	}

	// No HTTP status at all: transport-level failure
	return &UpstreamError{Provider: provider, Err: errors.Join(ErrUpstreamUnavailable, err)}
}
