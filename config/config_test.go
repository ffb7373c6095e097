package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Greeting != DefaultGreeting {
		t.Errorf("expected default greeting %q, got %q", DefaultGreeting, cfg.Greeting)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting should be disabled by default")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `
port: 8080
greeting: "bonjour"
rateLimit:
  enabled: true
  rps: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.Greeting != "bonjour" {
		t.Errorf("expected greeting from file, got %q", cfg.Greeting)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RPS != 5 {
		t.Errorf("rate limit not merged: %+v", cfg.RateLimit)
	}
	// Keys absent from the file keep their defaults.
	if cfg.RateLimit.Burst != 60 {
		t.Errorf("expected default burst 60, got %d", cfg.RateLimit.Burst)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "port: 8080\ngreeting: \"bonjour\"\n")
	t.Setenv("GREETER_PORT", "9090")
	t.Setenv("GREETER_GREETING", "hola")
	t.Setenv("GREETER_LOG_REQUESTS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("env should win over file, got port %d", cfg.Port)
	}
	if cfg.Greeting != "hola" {
		t.Errorf("env should win over file, got greeting %q", cfg.Greeting)
	}
	if !cfg.LogRequests {
		t.Error("expected LogRequests enabled via env")
	}
}

func TestLoadMalformedFileIsFatal(t *testing.T) {
	path := writeConfigFile(t, "port: [not an int\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("GREETER_PORT", "70000")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestEnvBoolFallbacks(t *testing.T) {
	t.Setenv("GREETER_LOG_REQUESTS", "banana")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogRequests {
		t.Error("unparseable bool should fall back to default")
	}
}
