package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != ":8080" || cfg.GinMode != "debug" || cfg.DatabaseURL != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.CookieName != "lightwork_quiz" || cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LIGHTWORK_SERVER_PORT", ":9090")
	t.Setenv("LIGHTWORK_GIN_MODE", "release")
	t.Setenv("LIGHTWORK_SESSION_TTL", "30m")
	t.Setenv("LIGHTWORK_SESSION_SECURE_COOKIE", "true")
	t.Setenv("LIGHTWORK_SESSION_SIGNING_KEY", "an-overridden-signing-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != ":9090" || cfg.GinMode != "release" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Session.TTL != 30*time.Minute || !cfg.Session.SecureCookie || cfg.Session.SigningKey != "an-overridden-signing-key" {
		t.Fatalf("session env not applied: %+v", cfg.Session)
	}
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Setenv("LIGHTWORK_SESSION_SIGNING_KEY", "short")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for short signing key")
	}

	t.Setenv("LIGHTWORK_SESSION_SIGNING_KEY", "long-enough-signing-key")
	t.Setenv("LIGHTWORK_GIN_MODE", "verbose")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown gin mode")
	}
}
