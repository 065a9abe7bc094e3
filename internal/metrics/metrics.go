// Package metrics exports verification outcomes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder counts assertions and passes on its own registry. It satisfies
// verify.Observer.
type Recorder struct {
	Registry *prometheus.Registry

	assertions *prometheus.CounterVec
	passes     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder returns a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		Registry: reg,
		assertions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashcheck_assertions_total",
				Help: "Total number of verification assertions by step and outcome",
			},
			[]string{"step", "outcome"},
		),
		passes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashcheck_passes_total",
				Help: "Total number of dataset cohorts view passes by dataset and outcome",
			},
			[]string{"dataset", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashcheck_pass_duration_seconds",
				Help:    "Wall time of one verification pass",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
			},
			[]string{"dataset"},
		),
	}
}

func outcome(err error) string {
	if err != nil {
		return "fail"
	}
	return "pass"
}

// Assertion records one assertion.
func (r *Recorder) Assertion(step string, err error) {
	r.assertions.WithLabelValues(step, outcome(err)).Inc()
}

// Pass records one completed pass.
func (r *Recorder) Pass(dataset string, err error, seconds float64) {
	r.passes.WithLabelValues(dataset, outcome(err)).Inc()
	r.duration.WithLabelValues(dataset).Observe(seconds)
}

// WriteTextfile writes the registry in the Prometheus text format, for the
// node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
