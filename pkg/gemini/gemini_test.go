package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode(GenerateResponse{
				Candidates: []Candidate{
					{Content: Content{Parts: []Part{{Text: "generated answer"}}}},
				},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "key", Model: "test-model", APIURL: server.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &GenerateRequest{
			Contents: []Content{{Role: "user", Parts: []Part{{Text: "question"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/models/test-model:generateContent" {
			t.Errorf("path = %q", gotPath)
		}
		if resp.Candidates[0].Content.Parts[0].Text != "generated answer" {
			t.Errorf("text = %q", resp.Candidates[0].Content.Parts[0].Text)
		}
	})

	t.Run("non-200 returns typed error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "key", APIURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &GenerateRequest{})

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("status = %d", apiErr.StatusCode)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := Config{APIKey: "key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("model = %q", cfg.Model)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("url = %q", cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("http client default missing")
		}
	})
}
