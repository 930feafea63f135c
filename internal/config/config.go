package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"doc-summarizer/internal/domain"

	"github.com/caarlos0/env/v11"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	ServerPort      string        `env:"PORT"                 envDefault:"5000"`
	MaxFileSize     int64         `env:"MAX_FILE_SIZE"        envDefault:"52428800"`
	LogLevel        string        `env:"LOG_LEVEL"            envDefault:"info"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY,required,notEmpty"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
}

// NewConfig reads the configuration from the process environment.
// A missing or blank GEMINI_API_KEY yields domain.ErrMissingCredential.
func NewConfig() (domain.Config, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		if errors.Is(err, env.EnvVarIsNotSetError{}) || errors.Is(err, env.EmptyVarError{}) {
			return nil, fmt.Errorf("%w: %w", domain.ErrMissingCredential, err)
		}
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is blank", domain.ErrMissingCredential)
	}

	origins := cfg.AllowedOrigins[:0]
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins

	return cfg, nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum accepted request body size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiAPIKey returns the generative service credential
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetShutdownTimeout returns how long graceful shutdown may take
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}
