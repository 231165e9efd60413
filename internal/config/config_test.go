package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("TOKEN_VALIDITY", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.RateLimitMax != 200 {
		t.Errorf("expected default rate limit max 200, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != 15*time.Minute {
		t.Errorf("expected default rate limit window 15m, got %s", cfg.RateLimitWindow)
	}
	if cfg.TokenValidity != time.Hour {
		t.Errorf("expected default token validity 1h, got %s", cfg.TokenValidity)
	}
}

func TestLoadGeneratesEphemeralSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	if cfg.SecretKey == "" {
		t.Fatal("auth must never run without a secret")
	}
	if !cfg.SecretGenerated {
		t.Error("expected SecretGenerated to be flagged for the startup warning")
	}

	other := Load()
	if other.SecretKey == cfg.SecretKey {
		t.Error("ephemeral secrets should not repeat")
	}
}

func TestLoadExplicitSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	cfg := Load()

	if cfg.SecretKey != "configured-secret" {
		t.Errorf("expected configured secret, got %s", cfg.SecretKey)
	}
	if cfg.SecretGenerated {
		t.Error("SecretGenerated must be false for a configured secret")
	}
}
