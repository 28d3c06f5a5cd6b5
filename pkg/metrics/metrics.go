// Package metrics exposes the Prometheus registry shared by the gateway.
// All metrics are defined in their respective packages (client, cache,
// expand, gateway, httpapi) to maintain modularity and avoid circular
// dependencies.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the gateway.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the source scraped by Handler.
var Gatherer = prometheus.DefaultGatherer

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - swapi_requests_total{resource, status} (Counter): Upstream requests by resource and HTTP status
//   - swapi_request_duration_seconds{resource} (Histogram): Upstream request duration by resource
//   - swapi_errors_total{class} (Counter): Upstream errors by class (client, server, network)
//
// Cache Metrics (pkg/cache):
//   - swapi_cache_hits_total{backend} (Counter): Cache hits by backend (redis, bolt)
//   - swapi_cache_misses_total (Counter): Cache misses
//   - swapi_cache_errors_total{operation} (Counter): Swallowed cache errors (get, set, decode, encode)
//   - swapi_cache_stored_bytes_total (Counter): Bytes written to the cache
//
// Expansion Metrics (pkg/expand):
//   - swapi_expand_links_total{result} (Counter): Followed links by result (ok, failed)
//   - swapi_expand_duration_seconds (Histogram): Expansion time per document
//
// Gateway Metrics (pkg/gateway):
//   - swapi_resolve_total{resource, cache} (Counter): Resolved queries by resource and cache outcome
//
// HTTP Metrics (internal/httpapi):
//   - swapi_http_requests_total{route, status} (Counter): Inbound requests by route and status
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(swapi_cache_hits_total[5m])) /
//   (sum(rate(swapi_cache_hits_total[5m])) + sum(rate(swapi_cache_misses_total[5m])))
//
//   # Failed Link Ratio
//   rate(swapi_expand_links_total{result="failed"}[5m]) / rate(swapi_expand_links_total[5m])
//
//   # Upstream Error Rate
//   rate(swapi_errors_total[5m])
//
//   # P95 Upstream Latency
//   histogram_quantile(0.95, rate(swapi_request_duration_seconds_bucket[5m]))
