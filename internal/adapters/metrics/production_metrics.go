package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// ProductionMetricsCollector handles all doughnut production metrics
type ProductionMetricsCollector struct {
	doughnutsProduced  *prometheus.CounterVec
	remainingDoughnuts *prometheus.GaugeVec
	batchesTotal       prometheus.Counter
	productionValue    prometheus.Counter
	runsCompleted      prometheus.Counter
	runTicks           prometheus.Histogram
	runDurationSeconds prometheus.Histogram
}

// NewProductionMetricsCollector creates a new production metrics collector
func NewProductionMetricsCollector() *ProductionMetricsCollector {
	return &ProductionMetricsCollector{
		doughnutsProduced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "doughnuts_produced_total",
				Help:      "Total doughnuts produced by flavor",
			},
			[]string{"flavor"},
		),

		remainingDoughnuts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "remaining_doughnuts",
				Help:      "Doughnuts still to be produced in the current run by flavor",
			},
			[]string{"flavor"},
		),

		batchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "batches_total",
				Help:      "Total production ticks executed",
			},
		),

		productionValue: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "production_value_total",
				Help:      "Total sale value of produced doughnuts",
			},
		),

		runsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_completed_total",
				Help:      "Total production runs that met every target",
			},
		),

		runTicks: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_ticks",
				Help:      "Number of batches needed to complete a run",
				Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
			},
		),

		runDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Production run duration in seconds",
				Buckets:   []float64{10, 30, 60, 120, 300, 600, 1800, 3600},
			},
		),
	}
}

// Register registers all production metrics with the Prometheus registry
func (c *ProductionMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.doughnutsProduced,
		c.remainingDoughnuts,
		c.batchesTotal,
		c.productionValue,
		c.runsCompleted,
		c.runTicks,
		c.runDurationSeconds,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordBatch records the doughnuts made in one tick and the remaining work per flavor
func (c *ProductionMetricsCollector) RecordBatch(
	produced map[production.Flavor]int,
	statuses []production.Status,
	value decimal.Decimal,
) {
	c.batchesTotal.Inc()

	for flavor, count := range produced {
		if count > 0 {
			c.doughnutsProduced.WithLabelValues(flavor.String()).Add(float64(count))
		}
	}

	for _, status := range statuses {
		c.remainingDoughnuts.WithLabelValues(status.Flavor.String()).Set(float64(status.Remaining()))
	}

	if value.IsPositive() {
		c.productionValue.Add(value.InexactFloat64())
	}
}

// RecordRunCompletion records a run that reached every target
func (c *ProductionMetricsCollector) RecordRunCompletion(ticks int, duration time.Duration) {
	c.runsCompleted.Inc()
	c.runTicks.Observe(float64(ticks))
	c.runDurationSeconds.Observe(duration.Seconds())
}
