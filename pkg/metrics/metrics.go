// Package metrics exposes the Prometheus instruments for the chat
// pipeline. All instruments are registered on the default registry and
// served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "promotor",
		Name:      "chat_requests_total",
		Help:      "Chat requests by classified task type and model tier.",
	}, []string{"task", "tier"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "promotor",
		Name:      "chat_request_duration_seconds",
		Help:      "End-to-end chat request latency.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	DivisionRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "promotor",
		Name:      "division_runs_total",
		Help:      "Division executions by division and outcome.",
	}, []string{"division", "outcome"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "promotor",
		Name:      "response_cache_hits_total",
		Help:      "Responses served from the cache.",
	})
)
