package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Registration is lazy: collectors are created and registered on first use,
// so constructing the collector never fails and an unused collector adds
// nothing to the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	picksTotal          *prometheus.CounterVec
	exhaustedTotal      prometheus.Counter
	resetsTotal         *prometheus.CounterVec
	rosterSize          prometheus.Gauge
	spinsStarted        prometheus.Counter
	spinsRejected       prometheus.Counter
	spinSteps           prometheus.Histogram
	spinDuration        prometheus.Histogram
	stateChangesDropped prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "picker" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "picker"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.picksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "picks_total",
			Help:      "Total successful weighted selections by student name.",
		}, []string{"student"})

		p.exhaustedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "exhausted_total",
			Help:      "Total pick attempts that found no eligible student.",
		})

		p.resetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "resets_total",
			Help:      "Total reset operations by kind (full, weights).",
		}, []string{"kind"})

		p.rosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "size",
			Help:      "Current number of students in the roster.",
		})

		p.spinsStarted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "spin",
			Name:      "started_total",
			Help:      "Total spin runs started.",
		})

		p.spinsRejected = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "spin",
			Name:      "rejected_total",
			Help:      "Total spin start requests rejected while already spinning.",
		})

		p.spinSteps = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "spin",
			Name:      "steps",
			Help:      "Planned steps per spin run.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 8),
		})

		p.spinDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "spin",
			Name:      "duration_seconds",
			Help:      "Wall time per completed spin run.",
			Buckets:   prometheus.DefBuckets,
		})

		p.stateChangesDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "spin",
			Name:      "state_changes_dropped_total",
			Help:      "State change notifications dropped due to slow subscribers.",
		})

		p.reg.MustRegister(
			p.picksTotal,
			p.exhaustedTotal,
			p.resetsTotal,
			p.rosterSize,
			p.spinsStarted,
			p.spinsRejected,
			p.spinSteps,
			p.spinDuration,
			p.stateChangesDropped,
		)
	})
}

// RecordPick increments the pick counter for the given student.
func (p *PrometheusCollector) RecordPick(name string) {
	p.ensureRegistered()
	p.picksTotal.WithLabelValues(name).Inc()
}

// RecordExhausted increments the exhausted pick counter.
func (p *PrometheusCollector) RecordExhausted() {
	p.ensureRegistered()
	p.exhaustedTotal.Inc()
}

// RecordReset increments the reset counter for the given kind.
func (p *PrometheusCollector) RecordReset(kind string) {
	p.ensureRegistered()
	p.resetsTotal.WithLabelValues(kind).Inc()
}

// RecordRosterSize sets the roster size gauge.
func (p *PrometheusCollector) RecordRosterSize(count int) {
	p.ensureRegistered()
	p.rosterSize.Set(float64(count))
}

// RecordSpinStart increments the spin counter and observes the planned steps.
func (p *PrometheusCollector) RecordSpinStart(totalSteps int) {
	p.ensureRegistered()
	p.spinsStarted.Inc()
	p.spinSteps.Observe(float64(totalSteps))
}

// RecordSpinComplete observes the run duration.
func (p *PrometheusCollector) RecordSpinComplete(duration float64, _ /* totalSteps */ int) {
	p.ensureRegistered()
	p.spinDuration.Observe(duration)
}

// RecordSpinRejected increments the rejected spin counter.
func (p *PrometheusCollector) RecordSpinRejected() {
	p.ensureRegistered()
	p.spinsRejected.Inc()
}

// RecordStateChangeDropped increments the dropped notification counter.
func (p *PrometheusCollector) RecordStateChangeDropped() {
	p.ensureRegistered()
	p.stateChangesDropped.Inc()
}
