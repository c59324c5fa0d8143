package trafficlight

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the prometheus metrics of the phase-cycling loop.
type Metrics struct {
	PhaseChanges *prometheus.CounterVec
	Published    prometheus.Counter
	Limits       prometheus.Histogram
}

// NewMetrics returns a new set of traffic light metrics registered in the given registerer.
func NewMetrics(promRegisterer prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.PhaseChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trafficlight",
			Subsystem: "cycle",
			Name:      "phase_changes_total",
			Help:      "Total number of phase changes by the phase entered.",
		},
		[]string{"phase"})

	promRegisterer.MustRegister(m.PhaseChanges)

	m.Published = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "trafficlight",
			Subsystem: "cycle",
			Name:      "published_total",
			Help:      "Total number of phases published to the message channel.",
		})

	promRegisterer.MustRegister(m.Published)

	m.Limits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "trafficlight",
			Subsystem: "cycle",
			Name:      "limit_seconds",
			Help:      "Phase durations drawn from the trigger.",
			Buckets:   prometheus.LinearBuckets(4, 0.5, 5),
		})

	promRegisterer.MustRegister(m.Limits)

	return m
}

func (m *Metrics) phaseChanged(p Phase) {
	if m == nil {
		return
	}
	m.PhaseChanges.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) published() {
	if m == nil {
		return
	}
	m.Published.Inc()
}

func (m *Metrics) observeLimit(limit time.Duration) {
	if m == nil {
		return
	}
	m.Limits.Observe(limit.Seconds())
}
