package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("APP_PORT")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != "4000" {
		t.Errorf("expected default port 4000, got %s", cfg.App.Port)
	}
	if cfg.App.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.App.Env)
	}
	if cfg.IsProduction() {
		t.Error("expected IsProduction() to be false by default")
	}
	if cfg.HTTP.RateLimitRequests != 100 {
		t.Errorf("expected default rate limit 100, got %d", cfg.HTTP.RateLimitRequests)
	}
	if cfg.HTTP.RateLimitWindow != 15*time.Minute {
		t.Errorf("expected default rate window 15m, got %s", cfg.HTTP.RateLimitWindow)
	}
	if len(cfg.HTTP.AllowedOrigins) != 1 || cfg.HTTP.AllowedOrigins[0] != "*" {
		t.Errorf("expected permissive default origins, got %v", cfg.HTTP.AllowedOrigins)
	}
	if cfg.HTTP.StaticDir != "web" {
		t.Errorf("expected default static dir web, got %s", cfg.HTTP.StaticDir)
	}
	if cfg.App.ReadingRetention != 0 {
		t.Errorf("expected retention disabled by default, got %s", cfg.App.ReadingRetention)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	os.Setenv("APP_PORT", "8080")
	os.Setenv("APP_ENV", "production")
	os.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	defer func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("APP_ENV")
		os.Unsetenv("ALLOWED_ORIGINS")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.App.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to be true")
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.HTTP.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.HTTP.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.HTTP.AllowedOrigins[i] != origin {
			t.Errorf("origin %d: expected %s, got %s", i, origin, cfg.HTTP.AllowedOrigins[i])
		}
	}
}
