// Package cache provides the SWAPI response cache.
//
// The cache stores raw upstream documents, before any link expansion or
// sorting, under a fingerprint derived from the subset of the query that
// changes what SWAPI returns:
//
//	{namespace}:{resource}:{id or "list"}:{page or "1"}:{search or ""}
//
// Queries that differ only in expand, sort_by or sort_order therefore share
// one entry.
//
// # Backends
//
// A Manager sits on top of a Store. Two stores are provided:
//
//   - RedisStore: GET / SET key value EX ttl against a Redis server
//   - BoltStore: an embedded BoltDB file, for single-instance deployments
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager := cache.NewManager(cache.NewRedisStore(redisClient), cache.DefaultConfig(), logger)
//
//	key := cache.KeyFor(q)
//	if doc, ok := manager.Get(ctx, key); ok {
//		return doc
//	}
//	doc := fetchFromSWAPI()
//	manager.Set(ctx, key, doc)
//
// # Failure Semantics
//
// The cache is an optimization, never a correctness dependency. A Manager
// built with a nil store or with Enabled=false behaves exactly like a
// permanent miss. Store errors (connection, timeout, corrupt payload) are
// logged at warn level and reported as a miss or a failed Set; they are
// never returned to the caller.
//
// # Metrics
//
//   - swapi_cache_hits_total{backend} - Cache hits
//   - swapi_cache_misses_total - Cache misses
//   - swapi_cache_errors_total{operation} - Swallowed store errors
//   - swapi_cache_stored_bytes_total - Bytes written to the store
package cache
