// Package config loads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP settings
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// Scraper settings
	ScrapeTimeout      time.Duration
	ScrapeUserAgent    string
	ScrapeMaxBodyBytes int64

	// Gemini settings
	GeminiAPIKey      string
	GeminiModel       string
	MaxGeminiRequests int // per day, 0 = unlimited

	// Ollama / OpenAI-compatible settings
	OllamaAPIURL      string
	OllamaModel       string
	OpenAIAPIKey      string
	MaxOllamaRequests int
	MaxAIRequests     int // all providers, 0 = unlimited

	AITimeout     time.Duration
	RetryAttempts int
	RetryDelay    time.Duration

	// Recommendations
	FeedsConfigPath string
	FeedCacheTTL    time.Duration

	ImageProxyTimeout      time.Duration
	ImageProxyAllowPrivate bool // lets the proxy reach loopback/private hosts

	Debug bool
}

// Load reads .env if present, then the environment. Nothing is required:
// without any LLM credentials the service answers from local templates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:           getEnvOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:    getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		ScrapeTimeout:      getEnvDurationOrDefault("SCRAPE_TIMEOUT", 15*time.Second),
		ScrapeUserAgent:    os.Getenv("SCRAPE_USER_AGENT"),
		ScrapeMaxBodyBytes: int64(getEnvIntOrDefault("SCRAPE_MAX_BODY_BYTES", 5<<20)),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		MaxGeminiRequests:  getEnvIntOrDefault("MAX_GEMINI_REQUESTS", 0),
		OllamaAPIURL:       strings.TrimRight(os.Getenv("OLLAMA_API_URL"), "/"),
		OllamaModel:        getEnvOrDefault("OLLAMA_MODEL", "llama2"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		MaxOllamaRequests:  getEnvIntOrDefault("MAX_OLLAMA_REQUESTS", 0),
		MaxAIRequests:      getEnvIntOrDefault("MAX_AI_REQUESTS", 0),
		AITimeout:          getEnvDurationOrDefault("AI_TIMEOUT", 30*time.Second),
		RetryAttempts:      getEnvIntOrDefault("RETRY_ATTEMPTS", 2),
		RetryDelay:         getEnvDurationOrDefault("RETRY_DELAY", time.Second),
		FeedsConfigPath:    getEnvOrDefault("FEEDS_CONFIG_PATH", "configs/feeds.yaml"),
		FeedCacheTTL:       getEnvDurationOrDefault("FEED_CACHE_TTL", 30*time.Minute),
		ImageProxyTimeout:  getEnvDurationOrDefault("IMAGE_PROXY_TIMEOUT", 15*time.Second),
	}

	cfg.Debug = getEnvBool("DEBUG")
	cfg.ImageProxyAllowPrivate = getEnvBool("IMAGE_PROXY_ALLOW_PRIVATE")

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// getEnvDurationOrDefault accepts Go durations ("30s") or plain seconds ("30").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.ScrapeTimeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive")
	}
	if c.ScrapeMaxBodyBytes <= 0 {
		return fmt.Errorf("SCRAPE_MAX_BODY_BYTES must be positive")
	}
	if c.MaxGeminiRequests < 0 || c.MaxOllamaRequests < 0 || c.MaxAIRequests < 0 {
		return fmt.Errorf("request limits must not be negative")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("RETRY_ATTEMPTS must be at least 1")
	}
	return nil
}

// HasLLM reports whether any language model provider is configured.
func (c *Config) HasLLM() bool {
	return c.GeminiAPIKey != "" || c.OllamaAPIURL != "" || c.OpenAIAPIKey != ""
}
