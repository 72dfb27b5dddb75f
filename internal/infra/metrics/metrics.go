// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// Metrics bundles the service-level Prometheus collectors. All collectors are
// registered on the default registry and exposed through /metrics.
type Metrics struct {
	// HTTP request metrics
	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec

	// Account metrics
	RegistrationTotal *prometheus.CounterVec
	LoginTotal        *prometheus.CounterVec

	// Order metrics
	OrdersCreatedTotal      prometheus.Counter
	OrderDetailLinesCreated prometheus.Counter
}

// New initializes and registers all collectors.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RequestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RegistrationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_registrations_total",
				Help:      "Total number of account registrations",
			},
			[]string{"user_type"},
		),
		LoginTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_logins_total",
				Help:      "Total number of login attempts",
			},
			[]string{"result"},
		),
		OrdersCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created",
		}),
		OrderDetailLinesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_detail_lines_created_total",
			Help:      "Total number of order detail lines created",
		}),
	}
}
