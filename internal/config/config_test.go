package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yaml := []byte(`
server:
  port: 3300
  host: localhost
backend:
  url: http://localhost:8080
  timeout: 15s
logging:
  level: debug
  format: json
`)
	f, _ := os.CreateTemp("", "config-*.yaml")
	f.Write(yaml)
	f.Close()
	defer os.Remove(f.Name())

	cfg, err := Load(f.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3300 {
		t.Errorf("Expected port 3300, got %d", cfg.Server.Port)
	}
	if cfg.Backend.URL != "http://localhost:8080" {
		t.Errorf("Expected backend URL http://localhost:8080, got %s", cfg.Backend.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Backend.GetTimeout().Seconds() != 15 {
		t.Errorf("Expected default timeout 15s, got %v", cfg.Backend.GetTimeout())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("BACKEND_URL", "http://attractions.internal:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 4100 {
		t.Errorf("Expected port 4100 from env, got %d", cfg.Server.Port)
	}
	if cfg.Backend.URL != "http://attractions.internal:9000" {
		t.Errorf("Expected backend URL from env, got %s", cfg.Backend.URL)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: -1}, Backend: BackendConfig{URL: "http://localhost:8080"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for invalid port")
	}
}

func TestValidateChannelWithoutToken(t *testing.T) {
	cfg := Default()
	cfg.Channels.Telegram.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for enabled channel without token")
	}
}
