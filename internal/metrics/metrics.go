// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service updates
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	Deposits          *prometheus.CounterVec
	GoalsCompleted    prometheus.Counter
	EscrowSettlements *prometheus.CounterVec
	EscrowsBackfilled prometheus.Counter
	OutboxPublished   *prometheus.CounterVec
	IdempotentReplays prometheus.Counter
	GeocodeLookups    *prometheus.CounterVec
	registry          *prometheus.Registry
}

// New registers the collectors on a fresh registry together with the
// standard process and Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "layaway",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Deposits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "deposits_total",
			Help:      "Recorded deposits by payment method.",
		}, []string{"payment_method"}),
		GoalsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "goals_completed_total",
			Help:      "Goals that reached their target amount.",
		}),
		EscrowSettlements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "escrow_settlements_total",
			Help:      "Escrows moved to a terminal status.",
		}, []string{"status"}),
		EscrowsBackfilled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "escrows_backfilled_total",
			Help:      "Escrow rows created by reconciliation.",
		}),
		OutboxPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "outbox_events_total",
			Help:      "Outbox publish attempts by event type and outcome.",
		}, []string{"event_type", "outcome"}),
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "idempotent_replays_total",
			Help:      "Responses served from the idempotency cache.",
		}),
		GeocodeLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layaway",
			Name:      "geocode_lookups_total",
			Help:      "Address lookups during redemption by outcome.",
		}, []string{"outcome"}),
	}
}
