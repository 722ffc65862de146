package config

import "os"

// AIConfig holds reasoning-service configuration. The engine works without
// it: every consumer falls back to deterministic content when disabled.
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the Groq configuration from the environment.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GROQ_API_KEY"),
		BaseURL: getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:   getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		// Telephony expects an answer within a single-digit number of
		// seconds; a timed-out call is treated as service unavailable.
		TimeoutMS: 8000,
	}
}

// IsEnabled returns true if the reasoning service is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat completions endpoint.
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}
