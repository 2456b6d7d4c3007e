package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RequestTimeoutSeconds bounds each API request, provider calls included. 0 disables it.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains the settings for the primary (Gemini) and fallback
// (OpenAI) generation providers.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	PrimaryModel string `mapstructure:"primary_model" validate:"required"`

	// OpenAIAPIKey is optional. When empty no fallback provider is configured.
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	FallbackModel string `mapstructure:"fallback_model" validate:"required_with=OpenAIAPIKey"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`
}

// FallbackEnabled reports whether a fallback provider should be constructed.
func (c LLMConfig) FallbackEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
