package completion

import (
	"context"
	"errors"
	"testing"

	"marketing-insights-assistant/pkg/gemini"
	"marketing-insights-assistant/pkg/openaichat"
)

type mockGemini struct {
	resp *gemini.GenerateResponse
	err  error
	got  *gemini.GenerateRequest
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.got = req
	return m.resp, m.err
}
func (m *mockGemini) Model() string { return "mock-gemini" }

type mockChat struct {
	resp *openaichat.Response
	err  error
}

func (m *mockChat) CreateChatCompletion(ctx context.Context, req *openaichat.Request) (*openaichat.Response, error) {
	return m.resp, m.err
}
func (m *mockChat) Model() string { return "mock-chat" }

func TestGeminiAdapterComplete(t *testing.T) {
	mock := &mockGemini{resp: &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: "  answer text  "}}}},
		},
	}}
	a := NewGeminiAdapter(mock)

	text, err := a.Complete(context.Background(), &Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "be helpful"},
			{Role: RoleUser, Content: "question"},
			{Role: RoleAssistant, Content: "earlier answer"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "answer text" {
		t.Errorf("text = %q", text)
	}

	if mock.got.SystemInstruction == nil {
		t.Fatal("system message must become SystemInstruction")
	}
	if len(mock.got.Contents) != 2 {
		t.Fatalf("contents = %d, want 2", len(mock.got.Contents))
	}
	if mock.got.Contents[1].Role != "model" {
		t.Errorf("assistant role must map to %q, got %q", "model", mock.got.Contents[1].Role)
	}
}

func TestGeminiAdapterErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"throttle status", &gemini.APIError{StatusCode: 429, Body: "slow down"}, ErrUpstreamThrottled},
		{"server status", &gemini.APIError{StatusCode: 503, Body: "overloaded"}, ErrUpstreamUnavailable},
		{"auth status", &gemini.APIError{StatusCode: 403, Body: "bad key"}, ErrUpstreamRejected},
		{"transport failure", errors.New("dial tcp: connection refused"), ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewGeminiAdapter(&mockGemini{err: tt.err})
			_, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAdapterPassesThroughCancellation(t *testing.T) {
	a := NewGeminiAdapter(&mockGemini{err: context.Canceled})
	_, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation must pass through raw, got %v", err)
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		t.Error("cancellation must not be wrapped as an upstream error")
	}
}

func TestGeminiAdapterEmptyCandidates(t *testing.T) {
	a := NewGeminiAdapter(&mockGemini{resp: &gemini.GenerateResponse{}})
	_, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("error = %v, want %v", err, ErrEmptyCompletion)
	}
}

func TestOpenAIChatAdapter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &mockChat{resp: &openaichat.Response{
			Choices: []openaichat.Choice{{Message: openaichat.Message{Role: "assistant", Content: "hello"}}},
		}}
		a := NewOpenAIChatAdapter(mock, "deepseek")

		text, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "hello" {
			t.Errorf("text = %q", text)
		}
		if a.Provider() != "deepseek" {
			t.Errorf("provider = %q", a.Provider())
		}
	})

	t.Run("throttled", func(t *testing.T) {
		a := NewOpenAIChatAdapter(&mockChat{err: &openaichat.APIError{StatusCode: 429, Message: "rate limited"}}, "")
		_, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
		if !errors.Is(err, ErrUpstreamThrottled) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		a := NewOpenAIChatAdapter(&mockChat{resp: &openaichat.Response{}}, "")
		_, err := a.Complete(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
		if !errors.Is(err, ErrEmptyCompletion) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("default provider name", func(t *testing.T) {
		a := NewOpenAIChatAdapter(&mockChat{}, "")
		if a.Provider() != "openai" {
			t.Errorf("provider = %q", a.Provider())
		}
	})
}
