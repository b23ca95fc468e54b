package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datereg_client",
			Name:      "requests_total",
			Help:      "Completed HTTP round trips by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datereg_client",
			Name:      "request_failures_total",
			Help:      "Round trips that failed at the transport layer.",
		},
		[]string{"endpoint"},
	)
)
