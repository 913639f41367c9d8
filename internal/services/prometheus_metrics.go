package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "bankpulse"

type PrometheusMetrics struct {
	batchesTotal          *prometheus.CounterVec
	transactionsIngested  prometheus.Counter
	detectionsTotal       *prometheus.CounterVec
	detectionBatches      prometheus.Counter
	batchDuration         prometheus.Histogram
	cycleDuration         prometheus.Histogram
	detectionsPending     prometheus.Gauge
	retryAttempts         *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	lastCycleTimestampSec prometheus.Gauge
}

// NewPrometheusMetrics registers the pipeline collectors with reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		batchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "batches_total",
				Help:      "Total number of batches handled, by outcome",
			},
			[]string{"status"},
		),
		transactionsIngested: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "transactions_ingested_total",
				Help:      "Total number of transaction records folded into the aggregates",
			},
		),
		detectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "detections_total",
				Help:      "Total number of detection events emitted, by pattern",
			},
			[]string{"pattern"},
		),
		detectionBatches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "detection_batches_flushed_total",
				Help:      "Total number of detection batches written to the sink",
			},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "batch_processing_duration_milliseconds",
				Help:      "Time to read, apply and evaluate one batch in milliseconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		cycleDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cycle_duration_milliseconds",
				Help:      "Duration of one polling cycle in milliseconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		detectionsPending: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "detections_pending",
				Help:      "Detection events waiting for the next flush",
			},
		),
		retryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "retry_attempts_total",
				Help:      "Total number of retried operations",
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		lastCycleTimestampSec: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "last_cycle_timestamp_seconds",
				Help:      "Unix time of the last completed polling cycle",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	switch name {
	case "batch.applied":
		m.batchesTotal.WithLabelValues("applied").Add(value)
	case "batch.rejected":
		m.batchesTotal.WithLabelValues("rejected").Add(value)
	case "batch.skipped":
		m.batchesTotal.WithLabelValues("skipped").Add(value)
	case "batch.deferred":
		m.batchesTotal.WithLabelValues("deferred").Add(value)
	case "transactions.ingested":
		m.transactionsIngested.Add(value)
	case "detection.emitted":
		if pattern := tags["pattern"]; pattern != "" {
			m.detectionsTotal.WithLabelValues(pattern).Add(value)
		}
	case "detection.batch.flushed":
		m.detectionBatches.Add(value)
	case "retry.attempt":
		m.retryAttempts.WithLabelValues(tags["operation"]).Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "batch.processing":
		m.batchDuration.Observe(float64(duration.Milliseconds()))
	case "cycle":
		m.cycleDuration.Observe(float64(duration.Milliseconds()))
		m.lastCycleTimestampSec.SetToCurrentTime()
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "detections.pending":
		m.detectionsPending.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
