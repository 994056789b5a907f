package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xraph/frankie"
	"github.com/xraph/frankie/errors"
)

// MetricsConfig defines configuration for metrics middleware
type MetricsConfig struct {
	// Namespace prefixes metric names
	Namespace string

	// SkipPaths defines paths to exclude from collection
	SkipPaths []string

	// DurationBuckets overrides the default histogram buckets
	DurationBuckets []float64
}

// DefaultMetricsConfig returns default metrics configuration
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "frankie",
		SkipPaths: []string{"/metrics"},
	}
}

// Metrics middleware records request counts and latencies into a Prometheus
// registry, labelled by method and status code.
func Metrics(reg prometheus.Registerer) frankie.Middleware {
	return MetricsWithConfig(reg, DefaultMetricsConfig())
}

// MetricsWithConfig middleware records request metrics with custom
// configuration.
func MetricsWithConfig(reg prometheus.Registerer, config MetricsConfig) frankie.Middleware {
	buckets := config.DurationBuckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of dispatched requests.",
	}, []string{"method", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Request latency from dispatch entry to response.",
		Buckets:   buckets,
	}, []string{"method", "status"})

	reg.MustRegister(requestsTotal, requestDuration)

	skip := make(map[string]bool)
	for _, path := range config.SkipPaths {
		skip[path] = true
	}

	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			if skip[c.Path()] {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			// A handler failure is presented by the error handler, not by
			// whatever status the context holds at this point.
			code := c.Status()
			if err != nil {
				code = errors.GetHTTPStatusCode(err)
			}

			status := strconv.Itoa(code)
			requestsTotal.WithLabelValues(c.Method(), status).Inc()
			requestDuration.WithLabelValues(c.Method(), status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
