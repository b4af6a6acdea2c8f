package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingpay_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookingpay_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingpay_webhook_events_total",
			Help: "Processor events by final outcome.",
		},
		[]string{"outcome"},
	)

	ReconcileExamined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookingpay_reconcile_examined_total",
			Help: "Stale payment requests examined by the reconciler.",
		},
	)

	ReconcileRepaired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookingpay_reconcile_repaired_total",
			Help: "Payment requests repaired from a missed webhook.",
		},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingpay_cancellations_total",
			Help: "Cancellation attempts by result.",
		},
		[]string{"result"},
	)
)
