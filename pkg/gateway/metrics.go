package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// resolveTotal counts resolved queries by resource and cache outcome
var resolveTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swapi_resolve_total",
		Help: "Total number of resolved queries",
	},
	[]string{"resource", "cache"}, // cache: "hit", "miss"
)
