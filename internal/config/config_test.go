package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv removes key for the duration of the test (t.Setenv restores the original value)
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}

func TestNewServerConfigDefaults(t *testing.T) {
	for _, k := range []string{"ENVIRONMENT", "HOST", "PORT", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"MAX_REQUEST_BODY_SIZE", "DEFAULT_TOKEN_DECIMALS", "METRICS_ENABLED", "SERVER_SHUTDOWN_TIMEOUT"} {
		unsetEnv(t, k)
	}

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() error: %v", err)
	}

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:3000", cfg.Addr())
	}
	if cfg.DefaultTokenDecimals != 6 {
		t.Errorf("DefaultTokenDecimals = %d, want 6", cfg.DefaultTokenDecimals)
	}
	if cfg.ServerShutdownTimeout != 10*time.Second {
		t.Errorf("ServerShutdownTimeout = %v, want 10s", cfg.ServerShutdownTimeout)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
}

func TestNewServerConfigLoopback(t *testing.T) {
	unsetEnv(t, "ENVIRONMENT")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() error: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", cfg.Addr())
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() ServerEnvironment {
		return ServerEnvironment{
			Environment:          "dev",
			Host:                 "0.0.0.0",
			Port:                 3000,
			MaxRequestBodySize:   1024,
			RateLimitRPS:         10,
			RateLimitBurst:       5,
			DefaultTokenDecimals: 6,
		}
	}

	tests := []struct {
		name    string
		modify  func(*ServerEnvironment)
		wantErr bool
	}{
		{"valid", func(c *ServerEnvironment) {}, false},
		{"port too low", func(c *ServerEnvironment) { c.Port = 0 }, true},
		{"port too high", func(c *ServerEnvironment) { c.Port = 70000 }, true},
		{"unknown environment", func(c *ServerEnvironment) { c.Environment = "qa" }, true},
		{"zero body size", func(c *ServerEnvironment) { c.MaxRequestBodySize = 0 }, true},
		{"zero burst with rate limit", func(c *ServerEnvironment) { c.RateLimitBurst = 0 }, true},
		{"zero burst with rate limit disabled", func(c *ServerEnvironment) { c.RateLimitRPS = 0; c.RateLimitBurst = 0 }, false},
		{"negative decimals", func(c *ServerEnvironment) { c.DefaultTokenDecimals = -1 }, true},
		{"decimals too large", func(c *ServerEnvironment) { c.DefaultTokenDecimals = 256 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := validateConfig(&cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
