// Package scorecardmetrics registers the Prometheus instruments for scan and
// round-save operations.
package scorecardmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records scan and save outcomes.
type Metrics interface {
	RecordScanAttempt()
	RecordScanFailure(reason string)
	RecordScanDuration(d time.Duration)
	RecordRoundSaved(submissionType string)
	RecordRoundDeleted()
}

type promMetrics struct {
	scanAttempts  prometheus.Counter
	scanFailures  *prometheus.CounterVec
	scanDuration  prometheus.Histogram
	roundsSaved   *prometheus.CounterVec
	roundsDeleted prometheus.Counter
}

// New registers the instruments on the given registry.
func New(reg prometheus.Registerer) Metrics {
	m := &promMetrics{
		scanAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "greenside_scan_attempts_total",
			Help: "Number of scorecard scan attempts.",
		}),
		scanFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greenside_scan_failures_total",
			Help: "Number of failed scorecard scans by reason.",
		}, []string{"reason"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "greenside_scan_duration_seconds",
			Help:    "Duration of scorecard scan calls.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
		roundsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "greenside_rounds_saved_total",
			Help: "Number of rounds persisted by submission type.",
		}, []string{"submission_type"}),
		roundsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "greenside_rounds_deleted_total",
			Help: "Number of rounds deleted.",
		}),
	}
	reg.MustRegister(m.scanAttempts, m.scanFailures, m.scanDuration, m.roundsSaved, m.roundsDeleted)
	return m
}

func (m *promMetrics) RecordScanAttempt() { m.scanAttempts.Inc() }

func (m *promMetrics) RecordScanFailure(reason string) {
	m.scanFailures.WithLabelValues(reason).Inc()
}

func (m *promMetrics) RecordScanDuration(d time.Duration) {
	m.scanDuration.Observe(d.Seconds())
}

func (m *promMetrics) RecordRoundSaved(submissionType string) {
	m.roundsSaved.WithLabelValues(submissionType).Inc()
}

func (m *promMetrics) RecordRoundDeleted() { m.roundsDeleted.Inc() }

// NoOpMetrics satisfies Metrics for tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordScanAttempt()               {}
func (NoOpMetrics) RecordScanFailure(string)         {}
func (NoOpMetrics) RecordScanDuration(time.Duration) {}
func (NoOpMetrics) RecordRoundSaved(string)          {}
func (NoOpMetrics) RecordRoundDeleted()              {}
