package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpRequestsTotal counts inbound requests by matched route and status
var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swapi_http_requests_total",
		Help: "Total number of inbound HTTP requests",
	},
	[]string{"route", "status"},
)
