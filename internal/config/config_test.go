package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL == "" {
		t.Fatalf("expected default api base url")
	}
	if cfg.UnsplashBaseURL == "" {
		t.Fatalf("expected default unsplash base url")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("UNSPLASH_ACCESS_KEY", "unsplash-key")
	t.Setenv("FIREBASE_PROJECT_ID", "project-override")

	cfg := Load()
	if cfg.APIBaseURL != "https://api.example.com/api" {
		t.Fatalf("expected override base url")
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected override timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.UnsplashAccessKey != "unsplash-key" {
		t.Fatalf("expected override unsplash key")
	}
	if cfg.FirebaseProjectID != "project-override" {
		t.Fatalf("expected override project id")
	}
}
