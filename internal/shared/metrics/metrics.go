// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apg_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apg_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MarginSimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apg_margin_simulations_total",
			Help: "Completed margin simulations by resource type, scenario and status.",
		},
		[]string{"resource_type", "scenario", "status"},
	)

	MarketTrendsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apg_market_trends_requests_total",
			Help: "Market trends lookups by provider and outcome (hit, miss, error).",
		},
		[]string{"provider", "outcome"},
	)

	OutboxPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apg_outbox_events_total",
			Help: "Outbox events processed by the publisher, by result.",
		},
		[]string{"event_type", "result"},
	)
)
