package expand

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// expandLinksTotal counts followed links by outcome
	expandLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapi_expand_links_total",
			Help: "Total number of expanded links by result",
		},
		[]string{"result"}, // "ok", "failed"
	)

	// expandDuration tracks the wall time of one Expand call
	expandDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "swapi_expand_duration_seconds",
			Help:    "Duration of link expansion per document",
			Buckets: prometheus.DefBuckets,
		},
	)
)
