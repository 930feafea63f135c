package config

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"doc-summarizer/internal/domain"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func clearOptional(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		unsetEnv(t, key)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearOptional(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetServerPort() != "5000" {
		t.Fatalf("expected default server port 5000, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetGeminiAPIKey() != "test-key" {
		t.Fatalf("expected api key test-key, got %s", cfg.GetGeminiAPIKey())
	}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), []string{"*"}) {
		t.Fatalf("expected default origins [*], got %v", cfg.GetAllowedOrigins())
	}
	if cfg.GetShutdownTimeout() != 10*time.Second {
		t.Fatalf("expected default shutdown timeout 10s, got %s", cfg.GetShutdownTimeout())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000,")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	wantOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), wantOrigins) {
		t.Fatalf("expected origins %v, got %v", wantOrigins, cfg.GetAllowedOrigins())
	}
	if cfg.GetShutdownTimeout() != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %s", cfg.GetShutdownTimeout())
	}
}

func TestNewConfig_MissingCredential(t *testing.T) {
	clearOptional(t)

	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{name: "unset", setup: func(t *testing.T) { unsetEnv(t, "GEMINI_API_KEY") }},
		{name: "empty", setup: func(t *testing.T) { t.Setenv("GEMINI_API_KEY", "") }},
		{name: "blank", setup: func(t *testing.T) { t.Setenv("GEMINI_API_KEY", "   ") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			cfg, err := NewConfig()
			if err == nil {
				t.Fatalf("expected error, got config %+v", cfg)
			}
			if !errors.Is(err, domain.ErrMissingCredential) {
				t.Fatalf("expected ErrMissingCredential, got %v", err)
			}
		})
	}
}

func TestNewConfig_InvalidNumber(t *testing.T) {
	clearOptional(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	if _, err := NewConfig(); err == nil {
		t.Fatal("expected parse error for invalid MAX_FILE_SIZE")
	} else if errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("invalid number must not be reported as missing credential: %v", err)
	}
}
