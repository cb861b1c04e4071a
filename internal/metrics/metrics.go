package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/crimson/internal/logger"
)

// Registry holds every collector of the payout tool. It is separate from the
// default registry so a batch run can dump exactly its own metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Directory Metrics
var (
	DirectoryRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDirectoryRequestsTotal,
			Help:      HelpTextDirectoryRequestsTotal,
		},
		[]string{LabelMethod, LabelStatus},
	)

	DirectoryRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameDirectoryRequestDuration,
			Help:      HelpTextDirectoryRequestDuration,
			Buckets:   DirectoryLatencyBuckets,
		},
		[]string{LabelMethod},
	)

	DirectoryRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameDirectoryRequestsInFlight,
			Help:      HelpTextDirectoryRequestsInFlight,
		},
	)

	DirectoryLookupsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDirectoryLookupsTotal,
			Help:      HelpTextDirectoryLookupsTotal,
		},
		[]string{LabelOutcome},
	)
)

// Payout Metrics
var (
	HelpersPaid = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHelpersPaid,
			Help:      HelpTextHelpersPaid,
		},
	)

	TicketsClosed = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameTicketsClosed,
			Help:      HelpTextTicketsClosed,
		},
	)

	CookiesDistributed = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCookiesDistributed,
			Help:      HelpTextCookiesDistributed,
		},
	)

	StageDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameStageDuration,
			Help:      HelpTextStageDuration,
			Buckets:   StageLatencyBuckets,
		},
		[]string{LabelStage},
	)

	RunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRunsTotal,
			Help:      HelpTextRunsTotal,
		},
		[]string{LabelPolicy, LabelResult},
	)

	LastRunTimestamp = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLastRunTimestamp,
			Help:      HelpTextLastRunTimestamp,
		},
	)
)

// WriteTextfile dumps Registry in the node-exporter textfile format.
// An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	logger.Debug(LogMsgMetricsWritten, "path", path)
	return nil
}
