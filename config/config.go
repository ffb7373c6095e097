// Package config loads the immutable process configuration: an optional YAML
// file merged with environment overrides, read once at startup and passed
// into constructors explicitly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort     = 3000
	DefaultGreeting = "Hello World!"
)

type Config struct {
	BindAddr    string          `yaml:"bindAddr"`
	Port        int             `yaml:"port"`
	Greeting    string          `yaml:"greeting"`
	LogRequests bool            `yaml:"logRequests"`
	MaxConns    int             `yaml:"maxConns"`
	RateLimit   RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

func Default() Config {
	return Config{
		Port:     DefaultPort,
		Greeting: DefaultGreeting,
		RateLimit: RateLimitConfig{
			RPS:   30,
			Burst: 60,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment overrides, in that order of precedence (env wins). A missing
// file is not an error; a malformed one is.
func Load(configPath string) (Config, error) {
	cfg := Default()

	candidates := make([]string, 0, 2)
	if configPath != "" {
		candidates = append(candidates, configPath)
	} else {
		candidates = append(candidates, "configs/config.yaml")
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		break
	}

	applyEnvOverrides(&cfg)
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := envString("GREETER_ADDR"); v != "" {
		cfg.BindAddr = v
	}
	cfg.Port = envIntWithFallback("GREETER_PORT", cfg.Port)
	if v := envString("GREETER_GREETING"); v != "" {
		cfg.Greeting = v
	}
	cfg.LogRequests = envBoolWithFallback("GREETER_LOG_REQUESTS", cfg.LogRequests)
	cfg.MaxConns = envIntWithFallback("GREETER_MAX_CONNS", cfg.MaxConns)
	cfg.RateLimit.Enabled = envBoolWithFallback("GREETER_RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RPS = envFloatWithFallback("GREETER_RATE_LIMIT_RPS", cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = envIntWithFallback("GREETER_RATE_LIMIT_BURST", cfg.RateLimit.Burst)
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envIntWithFallback(key string, fallback int) int {
	raw := envString(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloatWithFallback(key string, fallback float64) float64 {
	raw := envString(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBoolWithFallback(key string, fallback bool) bool {
	raw := strings.ToLower(envString(key))
	switch raw {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
