package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("GAME_BACKEND_URL", "http://localhost:9100")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	defer os.Unsetenv("GAME_BACKEND_URL")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://localhost:9100" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("GAME_BACKEND_URL")
	os.Unsetenv("CLIENT_MAX_ATTEMPTS")
	os.Unsetenv("REDIS_PORT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Backend.BaseURL != defaultBackendURL {
		t.Fatalf("expected default backend URL, got %q", cfg.Backend.BaseURL)
	}
	// REDIS_HOST alone must yield a dialable host:port
	if cfg.Redis.Port != "6379" {
		t.Fatalf("expected default redis port 6379, got %q", cfg.Redis.Port)
	}
	if cfg.Client.MaxAttempts != 3 {
		t.Fatalf("expected default max attempts 3, got %d", cfg.Client.MaxAttempts)
	}
	if cfg.Client.RetryDelay != 500*time.Millisecond {
		t.Fatalf("expected default retry delay 500ms, got %v", cfg.Client.RetryDelay)
	}
}
