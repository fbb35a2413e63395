package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ChainPulse/internal/domain/models"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	metricValue *prometheus.GaugeVec
	regime      *prometheus.GaugeVec
	alerts      *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New creates a recorder whose collectors are registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		metricValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chainpulse_metric_value",
				Help: "Latest observed value of an on-chain metric",
			},
			[]string{"metric"},
		),
		regime: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chainpulse_metric_regime",
				Help: "1 for the current regime label of a metric, 0 otherwise",
			},
			[]string{"metric", "label"},
		),
		alerts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainpulse_regime_changes_total",
				Help: "Total regime changes detected between consecutive observations",
			},
			[]string{"metric"},
		),
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainpulse_deliveries_total",
				Help: "Total report deliveries by channel and result",
			},
			[]string{"channel", "result"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chainpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordObservation sets the value gauges from one observation.
func (r *Recorder) RecordObservation(obs models.Observation) {
	for _, m := range append(models.TrackedMetrics(), models.RealizedCap) {
		r.metricValue.WithLabelValues(string(m)).Set(obs.Value(m))
	}
}

// RecordClassifications sets one-hot regime gauges.
func (r *Recorder) RecordClassifications(cls models.Classifications) {
	for metric, current := range cls {
		for _, label := range models.Labels() {
			v := 0.0
			if label == current {
				v = 1
			}
			r.regime.WithLabelValues(string(metric), string(label)).Set(v)
		}
	}
}

// RecordAlert counts a regime change.
func (r *Recorder) RecordAlert(metric models.Metric) {
	r.alerts.WithLabelValues(string(metric)).Inc()
}

// RecordDelivery counts a delivery attempt.
func (r *Recorder) RecordDelivery(channel string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.deliveries.WithLabelValues(channel, result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
