package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Marketing Insights Assistant specifics
	AnalyticsStore AnalyticsStoreConfig
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig

	// Completion backend
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	Burst     int
}

type AnalyticsStoreConfig struct {
	URL    string
	APIKey string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// AssistantConfig tunes routing, validation and memory behavior.
type AssistantConfig struct {
	DispatchThreshold float64
	AcceptScore       int
	MaxRounds         int
	LoopTimeout       time.Duration
	MemoryCapacity    int
	MemoryTTL         time.Duration
	MaxQueryLength    int
	RecentTurnWindow  int
	RandomSeed        int64
}

// LLMConfig selects and configures the completion backend. Provider is one
// of: gemini, openai, deepseek, qwen.
type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Analytics store
	cfg.AnalyticsStore.URL = viper.GetString("analytics_store.url")
	cfg.AnalyticsStore.APIKey = expandEnvVar(viper.GetString("analytics_store.api_key"))
	if storeURL := viper.GetString("analytics_store_url"); storeURL != "" {
		cfg.AnalyticsStore.URL = storeURL
	}
	if cfg.AnalyticsStore.URL == "" {
		return nil, fmt.Errorf("analytics_store.url is required")
	}

	// Google Calendar (optional: schedule answers degrade without it)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Assistant tuning
	cfg.Assistant.DispatchThreshold = viper.GetFloat64("assistant.dispatch_threshold")
	cfg.Assistant.AcceptScore = viper.GetInt("assistant.accept_score")
	cfg.Assistant.MaxRounds = viper.GetInt("assistant.max_rounds")
	cfg.Assistant.LoopTimeout = viper.GetDuration("assistant.loop_timeout")
	cfg.Assistant.MemoryCapacity = viper.GetInt("assistant.memory_capacity")
	cfg.Assistant.MemoryTTL = viper.GetDuration("assistant.memory_ttl")
	cfg.Assistant.MaxQueryLength = viper.GetInt("assistant.max_query_length")
	cfg.Assistant.RecentTurnWindow = viper.GetInt("assistant.recent_turn_window")
	cfg.Assistant.RandomSeed = viper.GetInt64("assistant.random_seed")

	// Completion backend
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	if llmKey := viper.GetString("llm_api_key"); llmKey != "" {
		cfg.LLM.APIKey = llmKey
	}
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("llm.api_key is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)

	// Assistant defaults
	viper.SetDefault("assistant.dispatch_threshold", 0.3)
	viper.SetDefault("assistant.accept_score", 7)
	viper.SetDefault("assistant.max_rounds", 3)
	viper.SetDefault("assistant.loop_timeout", "45s")
	viper.SetDefault("assistant.memory_capacity", 1000)
	viper.SetDefault("assistant.memory_ttl", "30m")
	viper.SetDefault("assistant.max_query_length", 2000)
	viper.SetDefault("assistant.recent_turn_window", 10)
	viper.SetDefault("assistant.random_seed", 1)

	// LLM defaults
	viper.SetDefault("llm.provider", "gemini")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
