// Package observability provides Prometheus metrics for comparison runs.
// Runs are one-shot, so metrics are exported as a node-exporter textfile
// instead of being served over HTTP.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"buynow-compare/internal/domain"
)

// Metrics holds all Prometheus metrics for one run.
type Metrics struct {
	registry *prometheus.Registry

	// Input metrics
	EventsLoaded   prometheus.Counter
	RejectedValues *prometheus.CounterVec

	// Group metrics
	GroupTrades       *prometheus.GaugeVec
	GroupWinRate      *prometheus.GaugeVec
	GroupExpectancy   *prometheus.GaugeVec
	GroupProfitFactor *prometheus.GaugeVec

	// Run metrics
	RunsTotal         *prometheus.CounterVec
	RunDuration       prometheus.Histogram
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "buynow_compare"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Input metrics
		EventsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "input",
			Name:      "events_loaded_total",
			Help:      "Total number of backtest events loaded",
		}),
		RejectedValues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "input",
			Name:      "rejected_values_total",
			Help:      "Present field values ignored because they are not finite numbers",
		}, []string{"field"}),

		// Group metrics
		GroupTrades: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "group",
			Name:      "trades",
			Help:      "Number of trades in each buyNow group",
		}, []string{"group"}),
		GroupWinRate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "group",
			Name:      "win_rate_percent",
			Help:      "Win rate percent of each buyNow group",
		}, []string{"group"}),
		GroupExpectancy: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "group",
			Name:      "expectancy_r",
			Help:      "Mean R per trade of each buyNow group",
		}, []string{"group"}),
		GroupProfitFactor: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "group",
			Name:      "profit_factor",
			Help:      "Gross positive R over gross negative R of each buyNow group",
		}, []string{"group"}),

		// Run metrics
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Total number of comparison runs by status",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Comparison run duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_success_timestamp",
			Help:      "Unix timestamp of the last successful run",
		}),
	}
}

// Registry returns the registry holding every metric of m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordEvents adds n loaded events.
func (m *Metrics) RecordEvents(n int) {
	m.EventsLoaded.Add(float64(n))
}

// RecordGroup sets the gauges for one group. Undefined values export as NaN.
func (m *Metrics) RecordGroup(group string, s domain.Summary) {
	m.GroupTrades.WithLabelValues(group).Set(float64(s.N))
	m.GroupWinRate.WithLabelValues(group).Set(s.WinRatePct)
	m.GroupExpectancy.WithLabelValues(group).Set(s.ExpR)
	m.GroupProfitFactor.WithLabelValues(group).Set(s.ProfitFactor)
}

// RecordRejections adds rejected value counts keyed by field path.
func (m *Metrics) RecordRejections(rejections map[string]int) {
	for field, count := range rejections {
		m.RejectedValues.WithLabelValues(field).Add(float64(count))
	}
}

// RecordRun records a finished run. unixTime is only used on success.
func (m *Metrics) RecordRun(status string, durationSeconds float64, unixTime int64) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(durationSeconds)
	if status == StatusSuccess {
		m.LastSuccessfulRun.Set(float64(unixTime))
	}
}

// WriteTextfile writes all metrics to path in Prometheus text format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Run status labels
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)
