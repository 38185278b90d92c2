// ABOUTME: Centralized configuration for the inquiry service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the inquiry service
type Config struct {
	// Server settings
	Addr        string
	CORSOrigins []string

	// OpenAI settings
	OpenAIKey   string
	ChatModel   string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration

	// Conversation settings. A zero TTL disables eviction and the
	// store grows with abandoned conversations until process exit.
	ConversationTTL time.Duration
	SweepInterval   time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Addr:            getEnv("INQUIRY_ADDR", ":8000"),
		CORSOrigins:     getEnvList("INQUIRY_CORS_ORIGINS", defaultOrigins),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("INQUIRY_OPENAI_MODEL", "gpt-4o"),
		Temperature:     float32(getEnvFloat("INQUIRY_TEMPERATURE", 0.8)),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 60*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ConversationTTL: getEnvDuration("INQUIRY_CONVERSATION_TTL", 0),
		SweepInterval:   getEnvDuration("INQUIRY_SWEEP_INTERVAL", time.Minute),
	}

	return cfg, cfg.Validate()
}

// defaultOrigins mirrors the frontends the service is deployed behind.
var defaultOrigins = []string{
	"http://localhost:3000",
	"https://inquiry-system-sable.vercel.app",
	"https://juli-lockable-contentedly.ngrok-free.dev",
}

func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("INQUIRY_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ConversationTTL < 0 {
		return fmt.Errorf("INQUIRY_CONVERSATION_TTL must not be negative, got %s", c.ConversationTTL)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
