package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandrosmarzaro/starwars-func-api/internal/config"
	"github.com/sandrosmarzaro/starwars-func-api/internal/httpapi"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/cache"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/client"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/expand"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/gateway"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:   logging.LogLevel(cfg.LogLevel),
		Pretty:  cfg.LogPretty,
		Service: "swapi-proxy",
		Output:  os.Stderr,
	})

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := newCacheStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open cache store")
	}

	handler, err := newHandler(cfg, store, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build handler")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("upstream", cfg.SWAPIBaseURL).
			Bool("auth", cfg.APIKey != "").
			Msg("Starting SWAPI proxy server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close cache store")
		}
	}

	logger.Info().Msg("Server stopped")
}

// newCacheStore opens the configured cache backend. It returns a nil store
// when caching is disabled. An unreachable Redis is only logged: the store
// is kept and individual operations degrade to misses.
func newCacheStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (cache.Store, error) {
	if !cfg.CacheEnabled {
		logger.Info().Msg("Cache disabled")
		return nil, nil
	}

	switch cfg.CacheBackend {
	case config.BackendBolt:
		store, err := cache.NewBoltStore(cfg.CacheDBPath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.CacheDBPath).Msg("Using bolt cache")
		return store, nil

	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisURL,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisURL).Msg("Redis unreachable, serving without cache until it recovers")
		} else {
			logger.Info().Str("addr", cfg.RedisURL).Msg("Connected to Redis")
		}
		return cache.NewRedisStore(redisClient), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

// newHandler wires the upstream client, cache, expander and gateway behind
// the HTTP router.
func newHandler(cfg config.Config, store cache.Store, logger zerolog.Logger) (http.Handler, error) {
	clientCfg := client.DefaultConfig()
	clientCfg.BaseURL = cfg.SWAPIBaseURL
	clientCfg.UserAgent = cfg.UserAgent
	clientCfg.Timeout = cfg.UpstreamTimeout

	upstream, err := client.New(clientCfg, logging.Component(logger, "client"))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	resultCache := cache.NewManager(store, cache.Config{
		Enabled:   cfg.CacheEnabled,
		TTL:       cfg.CacheTTL,
		Namespace: cfg.CacheNamespace,
	}, logging.Component(logger, "cache"))

	expander := expand.New(upstream, expand.Config{
		MaxConcurrency: cfg.ExpandMaxConcurrency,
		FetchTimeout:   cfg.ExpandFetchTimeout,
	}, logging.Component(logger, "expand"))

	svc, err := gateway.New(
		gateway.Config{BaseURL: cfg.SWAPIBaseURL},
		upstream,
		resultCache,
		expander,
		logging.Component(logger, "gateway"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	return httpapi.NewRouter(httpapi.Options{
		Resolver:   svc,
		Keys:       httpapi.StaticKey(cfg.APIKey),
		GatewayURL: cfg.GatewayURL,
		Logger:     logging.Component(logger, "http"),
	}), nil
}
