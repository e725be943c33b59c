package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the mpin module.
type Metrics struct {
	// Validation outcomes by strength label
	ValidationOutcome *prometheus.CounterVec

	// Weakness reasons by code
	WeaknessReason *prometheus.CounterVec

	// Full validation latency
	ValidateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all mpin module metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mpinguard_validation_outcomes_total",
			Help: "Total PIN validation outcomes by strength label",
		}, []string{"strength"}),

		WeaknessReason: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mpinguard_weakness_reasons_total",
			Help: "Total weakness reasons reported by reason code",
		}, []string{"reason"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpinguard_validate_duration_seconds",
			Help:    "Duration of full PIN validation including candidate generation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(strength string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(strength).Inc()
	}
}

// IncrementReason records one reported weakness reason.
func (m *Metrics) IncrementReason(reason string) {
	if m != nil {
		m.WeaknessReason.WithLabelValues(reason).Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
