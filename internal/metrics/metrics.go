package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"os-scheduler-sim/internal/core"
)

const namespace = "schedsim"

// Recorder counts simulations served and tracks the shape of their results.
type Recorder struct {
	simulations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	makespan    *prometheus.HistogramVec
	waiting     *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Simulations completed, by policy.",
		}, []string{"policy"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_failures_total",
			Help:      "Simulations rejected or aborted, by policy and error kind.",
		}, []string{"policy", "kind"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "makespan_time_units",
			Help:      "End time of the last Gantt block.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"policy"}),
		waiting: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "waiting_time_units",
			Help:      "Per-process waiting time.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"policy"}),
	}
	reg.MustRegister(r.simulations, r.failures, r.makespan, r.waiting)
	return r
}

func (r *Recorder) Observe(policy string, result core.SimulationResult) {
	r.simulations.WithLabelValues(policy).Inc()
	r.makespan.WithLabelValues(policy).Observe(float64(result.CpuMetric().TotalTime))
	for _, p := range result.Processes {
		r.waiting.WithLabelValues(policy).Observe(float64(p.WaitingTime))
	}
}

func (r *Recorder) ObserveError(policy string, err error) {
	kind := "internal"
	if errors.Is(err, core.ErrValidation) {
		kind = "validation"
	}
	r.failures.WithLabelValues(policy, kind).Inc()
}
