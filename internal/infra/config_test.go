package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("POLLINATIONS_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PollinationsBaseURL != "https://gen.pollinations.ai/image" {
		t.Fatalf("PollinationsBaseURL = %q", cfg.PollinationsBaseURL)
	}
	if cfg.GenerationTimeout != 120*time.Second {
		t.Fatalf("GenerationTimeout = %v", cfg.GenerationTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("POLLINATIONS_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when POLLINATIONS_API_KEY is missing")
	}
}

func TestLoadConfigSplitsOrigins(t *testing.T) {
	t.Setenv("POLLINATIONS_API_KEY", "sk-test")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://studio.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"http://localhost:5173", "https://studio.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %#v, want %#v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}
