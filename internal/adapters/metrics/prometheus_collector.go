package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

const (
	// Namespace for all metrics
	namespace = "bakery"
	// Subsystem for production metrics
	subsystem = "production"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalProductionCollector is the singleton production metrics collector
	// Set by SetGlobalProductionCollector() when metrics are enabled
	globalProductionCollector ProductionMetricsRecorder
)

// ProductionMetricsRecorder defines the interface for recording production run events
type ProductionMetricsRecorder interface {
	RecordBatch(produced map[production.Flavor]int, statuses []production.Status, value decimal.Decimal)
	RecordRunCompletion(ticks int, duration time.Duration)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// Enable installs reg as the global registry (a fresh one when reg is nil),
// registers the production and request collectors and makes the production
// collector global. On any failure metrics are left disabled.
func Enable(reg *prometheus.Registry) (*RequestMetricsCollector, error) {
	if reg == nil {
		InitRegistry()
	} else {
		Registry = reg
	}

	productionCollector := NewProductionMetricsCollector()
	if err := productionCollector.Register(); err != nil {
		Disable()
		return nil, fmt.Errorf("failed to register production metrics: %w", err)
	}

	requestCollector := NewRequestMetricsCollector()
	if err := requestCollector.Register(); err != nil {
		Disable()
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}

	SetGlobalProductionCollector(productionCollector)
	return requestCollector, nil
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Disable drops the registry and the global collector
func Disable() {
	Registry = nil
	globalProductionCollector = nil
}

// SetGlobalProductionCollector sets the global production metrics collector
func SetGlobalProductionCollector(collector ProductionMetricsRecorder) {
	globalProductionCollector = collector
}

// RecordBatch records one produced batch globally
func RecordBatch(produced map[production.Flavor]int, statuses []production.Status, value decimal.Decimal) {
	if globalProductionCollector != nil {
		globalProductionCollector.RecordBatch(produced, statuses, value)
	}
}

// RecordRunCompletion records a finished production run globally
func RecordRunCompletion(ticks int, duration time.Duration) {
	if globalProductionCollector != nil {
		globalProductionCollector.RecordRunCompletion(ticks, duration)
	}
}
