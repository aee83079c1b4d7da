// Package config loads and validates all environment variables at startup.
// Every other package receives typed values; nothing reads os.Getenv directly.
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

// Generator backends selectable with GENERATOR.
const (
	BackendOpenAI   = "openai"
	BackendTemplate = "template"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port       string // default "8080"
	Env        string // "development" | "staging" | "production"
	LogLevel   string // "debug" | "info" | "warn" | "error"
	CORSOrigin string // empty: reflect the request origin outside production

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration // default 20s

	// ── Generation ────────────────────────────────────────────────────────────
	Generator string // "openai" | "template", default "openai"

	// ── OpenAI ────────────────────────────────────────────────────────────────
	// OpenAIAPIKey may be empty: the server still starts and answers each
	// generate request with a configuration error until a key is provided.
	OpenAIAPIKey        string
	OpenAIBaseURL       string  // optional OpenAI-compatible endpoint
	OpenAIModel         string  // default "gpt-4o-mini"
	OpenAIFallbackModel string  // default "gpt-3.5-turbo"; empty disables fallback
	OpenAITemperature   float64 // default 0.8
}

// Load reads all environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present; real
// environment variables always take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	defaultLevel := "info"
	if env == "development" {
		defaultLevel = "debug"
	}

	c := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 env,
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", defaultLevel)),
		CORSOrigin:          os.Getenv("CORS_ORIGIN"),
		ShutdownTimeout:     getEnvAsDuration("SHUTDOWN_TIMEOUT", 20*time.Second),
		Generator:           strings.ToLower(getEnv("GENERATOR", BackendOpenAI)),
		OpenAIAPIKey:        strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIFallbackModel: getEnvAllowEmpty("OPENAI_FALLBACK_MODEL", "gpt-3.5-turbo"),
		OpenAITemperature:   getEnvAsFloat("OPENAI_TEMPERATURE", 0.8),
	}

	return c, c.validate()
}

func (c *Config) validate() error {
	var errs []error

	switch c.Generator {
	case BackendOpenAI, BackendTemplate:
	default:
		errs = append(errs, fmt.Errorf("GENERATOR must be %q or %q, got %q", BackendOpenAI, BackendTemplate, c.Generator))
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be numeric, got %q", c.Port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Generator == BackendOpenAI && c.OpenAIModel == "" {
		errs = append(errs, errors.New("OPENAI_MODEL must not be empty"))
	}

	if c.OpenAITemperature < 0 || c.OpenAITemperature > 2 {
		errs = append(errs, fmt.Errorf("OPENAI_TEMPERATURE must be within [0, 2], got %v", c.OpenAITemperature))
	}

	return errors.Join(errs...)
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty distinguishes "unset" (default) from "set to empty".
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	// A plain integer is taken as seconds.
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	return defaultValue
}
