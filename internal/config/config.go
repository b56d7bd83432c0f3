package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"safarsathi/pkg/utils"
)

// MinSessionTTL is the shortest session lifetime accepted from the environment.
const MinSessionTTL = time.Second

type LLMConfig struct {
	Provider string
	Model    string
	BaseURL  string
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

type Config struct {
	ServerPort   string
	Environment  string
	SecretSource string // "env" or "aws"
	SecretName   string
	LLM          LLMConfig
	Session      SessionConfig
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads the configuration from the environment. Credentials are not part
// of it; they are resolved separately through a secrets provider.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "2h"))
	if err != nil || ttl < MinSessionTTL {
		return nil, fmt.Errorf("SESSION_TTL must be a duration of at least %s, got %q", MinSessionTTL, os.Getenv("SESSION_TTL"))
	}

	cfg := &Config{
		ServerPort:   getEnvOrDefault("PORT", "8080"),
		Environment:  strings.ToLower(getEnvOrDefault("APP_ENV", "production")),
		SecretSource: strings.ToLower(getEnvOrDefault("SECRET_SOURCE", "env")),
		SecretName:   os.Getenv("SECRET_NAME"),
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnvOrDefault("LLM_PROVIDER", "groq")),
			Model:    os.Getenv("LLM_MODEL"),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
		},
		Session: SessionConfig{
			TTL:        ttl,
			CookieName: getEnvOrDefault("SESSION_COOKIE", "safarsathi_session"),
		},
	}

	if _, err := utils.DefaultsFor(cfg.LLM.Provider); err != nil {
		return nil, err
	}
	switch cfg.SecretSource {
	case "env":
	case "aws":
		if cfg.SecretName == "" {
			return nil, fmt.Errorf("SECRET_NAME environment variable is required when SECRET_SOURCE=aws")
		}
	default:
		return nil, fmt.Errorf("SECRET_SOURCE must be env or aws, got %q", cfg.SecretSource)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
