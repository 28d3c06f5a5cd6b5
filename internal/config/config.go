// Package config loads the proxy configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cache backends.
const (
	BackendRedis = "redis"
	BackendBolt  = "bolt"
)

// Config is the complete runtime configuration.
type Config struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogPretty bool

	SWAPIBaseURL    string
	UserAgent       string
	UpstreamTimeout time.Duration

	APIKey     string
	GatewayURL string

	ExpandMaxConcurrency int
	ExpandFetchTimeout   time.Duration

	CacheEnabled   bool
	CacheBackend   string
	CacheTTL       time.Duration
	CacheNamespace string
	RedisURL       string
	RedisPassword  string
	RedisDB        int
	CacheDBPath    string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SWAPIBaseURL:   getEnv("SWAPI_BASE_URL", "https://swapi.dev/api/"),
		UserAgent:      getEnv("USER_AGENT", "starwars-func-api/1.0.0"),
		APIKey:         getEnv("API_KEY", ""),
		GatewayURL:     strings.TrimRight(getEnv("API_GATEWAY_URL", "http://localhost:8080"), "/"),
		CacheBackend:   strings.ToLower(getEnv("CACHE_BACKEND", BackendRedis)),
		CacheNamespace: getEnv("CACHE_NAMESPACE", "swapi:v1"),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		CacheDBPath:    getEnv("CACHE_DB_PATH", "swapi-cache.db"),
	}

	var err error
	if cfg.LogPretty, err = getBool("LOG_PRETTY", false); err != nil {
		return Config{}, err
	}
	if cfg.CacheEnabled, err = getBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamTimeout, err = getDuration("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ExpandFetchTimeout, err = getDuration("EXPAND_FETCH_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ExpandMaxConcurrency, err = getInt("EXPAND_MAX_CONCURRENCY", 10); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}

	ttl, err := getInt("CACHE_TTL_SECONDS", 3600)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Second

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.SWAPIBaseURL == "" {
		return fmt.Errorf("SWAPI_BASE_URL is required")
	}
	if c.CacheBackend != BackendRedis && c.CacheBackend != BackendBolt {
		return fmt.Errorf("CACHE_BACKEND must be %q or %q (got %q)", BackendRedis, BackendBolt, c.CacheBackend)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be > 0 (got %s)", c.CacheTTL)
	}
	if c.ExpandMaxConcurrency <= 0 {
		return fmt.Errorf("EXPAND_MAX_CONCURRENCY must be > 0 (got %d)", c.ExpandMaxConcurrency)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be > 0 (got %s)", c.UpstreamTimeout)
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

// getDuration accepts Go durations ("750ms", "2s") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
