package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// mediatorSubsystem groups the per-request series under bakery_mediator_*
const mediatorSubsystem = "mediator"

// RequestMetricsCollector times every command and query sent through the mediator
type RequestMetricsCollector struct {
	latency  *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewRequestMetricsCollector builds the request series; call Register to expose them
func NewRequestMetricsCollector() *RequestMetricsCollector {
	labels := []string{"request", "outcome"}
	return &RequestMetricsCollector{
		// Handlers are in-memory, so buckets start at 10µs
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: mediatorSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a mediator request",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, labels),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: mediatorSubsystem,
			Name:      "requests_total",
			Help:      "Mediator requests handled, by request type and outcome",
		}, labels),
	}
}

// Register adds the series to Registry. Without a registry it does nothing.
func (c *RequestMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	for _, collector := range []prometheus.Collector{c.latency, c.requests} {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordRequest counts one handled request; a non-nil err marks it as an error
func (c *RequestMetricsCollector) RecordRequest(name string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.latency.WithLabelValues(name, outcome).Observe(elapsed.Seconds())
	c.requests.WithLabelValues(name, outcome).Inc()
}
