package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
)

// Config holds cache settings.
type Config struct {
	// Enabled turns caching on. A disabled cache always misses.
	Enabled bool

	// TTL applies to every entry.
	TTL time.Duration

	// Namespace prefixes every fingerprint.
	Namespace string
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		TTL:       time.Hour,
		Namespace: DefaultNamespace,
	}
}

// Manager caches raw upstream documents. It never returns errors: every
// store failure degrades to a miss or a failed Set.
type Manager struct {
	store  Store
	config Config
	logger zerolog.Logger
}

// NewManager creates a cache manager. A nil store yields a disabled cache.
func NewManager(store Store, cfg Config, logger zerolog.Logger) *Manager {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Manager{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Enabled reports whether the manager talks to a store at all.
func (m *Manager) Enabled() bool {
	return m != nil && m.config.Enabled && m.store != nil
}

// Get returns the cached document for key, or false on a miss.
func (m *Manager) Get(ctx context.Context, key Key) (document.Document, bool) {
	if !m.Enabled() {
		return nil, false
	}

	fingerprint := key.Fingerprint(m.config.Namespace)

	data, err := m.store.Get(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			CacheMisses.Inc()
			m.logger.Debug().Str("key", fingerprint).Msg("Cache MISS")
			return nil, false
		}
		CacheErrors.WithLabelValues("get").Inc()
		m.logger.Warn().Err(err).Str("key", fingerprint).Msg("Cache GET error")
		return nil, false
	}

	doc, err := document.Unmarshal(data)
	if err != nil {
		CacheErrors.WithLabelValues("decode").Inc()
		m.logger.Warn().Err(err).Str("key", fingerprint).Msg("Cache GET error")
		return nil, false
	}

	CacheHits.WithLabelValues(m.store.Backend()).Inc()
	m.logger.Debug().Str("key", fingerprint).Msg("Cache HIT")

	return doc, true
}

// Set stores doc under key with the configured TTL and reports success.
func (m *Manager) Set(ctx context.Context, key Key, doc document.Document) bool {
	if !m.Enabled() || doc == nil {
		return false
	}

	fingerprint := key.Fingerprint(m.config.Namespace)

	data, err := doc.Marshal()
	if err != nil {
		CacheErrors.WithLabelValues("encode").Inc()
		m.logger.Warn().Err(err).Str("key", fingerprint).Msg("Cache SET error")
		return false
	}

	if err := m.store.Set(ctx, fingerprint, data, m.config.TTL); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		m.logger.Warn().Err(err).Str("key", fingerprint).Msg("Cache SET error")
		return false
	}

	CacheStoredBytes.Add(float64(len(data)))
	m.logger.Debug().
		Str("key", fingerprint).
		Dur("ttl", m.config.TTL).
		Msg("Cache SET")

	return true
}

// Close closes the backing store, if any.
func (m *Manager) Close() error {
	if m == nil || m.store == nil {
		return nil
	}
	return m.store.Close()
}
