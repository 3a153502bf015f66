package completion

import (
	"fmt"

	"marketing-insights-assistant/config"
	"marketing-insights-assistant/pkg/gemini"
	"marketing-insights-assistant/pkg/openaichat"
)

// NewFromConfig creates a completion Client from config.LLMConfig.
// Which concrete provider backs the client is a deployment detail; everything
// above this boundary sees only the Client interface.
func NewFromConfig(cfg *config.LLMConfig) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen":
		client, err := openaichat.New(openaichat.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
		}
		return NewOpenAIChatAdapter(client, cfg.Provider), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
