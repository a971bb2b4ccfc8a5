package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	t.Setenv("ADVISOR_TIMEOUT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment by default")
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.AdvisorTimeout != 30*time.Second {
		t.Fatalf("expected default advisor timeout, got %s", cfg.AdvisorTimeout)
	}
	if cfg.TranscriptTTL != 24*time.Hour {
		t.Fatalf("expected default transcript ttl, got %s", cfg.TranscriptTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/healthmate")
	t.Setenv("ADVISOR_TIMEOUT", "15s")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production environment")
	}
	if cfg.DatabaseURL != "postgres://user@host/healthmate" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.AdvisorTimeout != 15*time.Second {
		t.Fatalf("expected advisor timeout override, got %s", cfg.AdvisorTimeout)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls override")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://staging.example.com" {
		t.Fatalf("expected cors list override, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestAdvisorTimeoutIgnoresMalformedValue(t *testing.T) {
	t.Setenv("ADVISOR_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.AdvisorTimeout != 30*time.Second {
		t.Fatalf("expected default timeout for malformed value, got %s", cfg.AdvisorTimeout)
	}
}
