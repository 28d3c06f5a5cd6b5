package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
	if cfg.SWAPIBaseURL != "https://swapi.dev/api/" {
		t.Errorf("SWAPIBaseURL = %q", cfg.SWAPIBaseURL)
	}
	if cfg.GatewayURL != "http://localhost:8080" {
		t.Errorf("GatewayURL = %q", cfg.GatewayURL)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true")
	}
	if cfg.CacheBackend != BackendRedis {
		t.Errorf("CacheBackend = %q, want redis", cfg.CacheBackend)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.CacheNamespace != "swapi:v1" {
		t.Errorf("CacheNamespace = %q", cfg.CacheNamespace)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.ExpandMaxConcurrency != 10 {
		t.Errorf("ExpandMaxConcurrency = %d, want 10", cfg.ExpandMaxConcurrency)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 10s", cfg.UpstreamTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "secret")
	t.Setenv("API_GATEWAY_URL", "https://gw.example.com/")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_BACKEND", "BOLT")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("UPSTREAM_TIMEOUT", "2.5")
	t.Setenv("EXPAND_FETCH_TIMEOUT", "750ms")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.GatewayURL != "https://gw.example.com" {
		t.Errorf("GatewayURL = %q, want trailing slash trimmed", cfg.GatewayURL)
	}
	if cfg.CacheEnabled {
		t.Error("CacheEnabled = true, want false")
	}
	if cfg.CacheBackend != BackendBolt {
		t.Errorf("CacheBackend = %q, want bolt", cfg.CacheBackend)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("CacheTTL = %v, want 1m", cfg.CacheTTL)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	if cfg.UpstreamTimeout != 2500*time.Millisecond {
		t.Errorf("UpstreamTimeout = %v, want 2.5s", cfg.UpstreamTimeout)
	}
	if cfg.ExpandFetchTimeout != 750*time.Millisecond {
		t.Errorf("ExpandFetchTimeout = %v, want 750ms", cfg.ExpandFetchTimeout)
	}
	if !cfg.LogPretty {
		t.Error("LogPretty = false, want true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		errorMsg string
	}{
		{name: "bad bool", key: "CACHE_ENABLED", value: "maybe", errorMsg: "invalid CACHE_ENABLED"},
		{name: "bad int", key: "REDIS_DB", value: "one", errorMsg: "invalid REDIS_DB"},
		{name: "bad duration", key: "SHUTDOWN_TIMEOUT", value: "soon", errorMsg: "invalid SHUTDOWN_TIMEOUT"},
		{name: "unknown backend", key: "CACHE_BACKEND", value: "memcached", errorMsg: "CACHE_BACKEND must be"},
		{name: "zero ttl", key: "CACHE_TTL_SECONDS", value: "0", errorMsg: "CACHE_TTL_SECONDS must be > 0"},
		{name: "zero concurrency", key: "EXPAND_MAX_CONCURRENCY", value: "0", errorMsg: "EXPAND_MAX_CONCURRENCY must be > 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Load() error = %q, want it to contain %q", err.Error(), tt.errorMsg)
			}
		})
	}
}
