package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/infra/metrics"
)

// MetricsMiddleware records per-request Prometheus metrics.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle measures request duration and counts requests by route template,
// method and status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler assign the status before reading it;
			// the handler ignores the second invocation once committed.
			c.Error(err)
		}

		// c.Path is the route template, which keeps label cardinality bounded.
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		method := c.Request().Method
		status := strconv.Itoa(c.Response().Status)
		elapsed := time.Since(start).Seconds()

		m.metrics.RequestTotal.WithLabelValues(method, path, status).Inc()
		m.metrics.RequestDuration.WithLabelValues(method, path, status).Observe(elapsed)

		return nil
	}
}
