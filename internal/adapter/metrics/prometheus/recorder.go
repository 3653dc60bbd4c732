// Package prometheus exposes solve outcome counters to a Prometheus
// scrape endpoint.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Recorder struct {
	solved     *prometheus.CounterVec
	noSolution *prometheus.CounterVec
	failure    prometheus.Counter
}

// NewRecorder registers the solve counters on the given registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		solved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pushworld_solve_solved_total",
			Help: "Solve runs that found a plan, by planner mode.",
		}, []string{"mode"}),
		noSolution: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pushworld_solve_no_solution_total",
			Help: "Solve runs that proved the goal unreachable, by planner mode.",
		}, []string{"mode"}),
		failure: factory.NewCounter(prometheus.CounterOpts{
			Name: "pushworld_solve_failure_total",
			Help: "Solve runs that failed before producing an outcome.",
		}),
	}
}

func (r *Recorder) RecordSolved(mode string) {
	r.solved.WithLabelValues(mode).Inc()
}

func (r *Recorder) RecordNoSolution(mode string) {
	r.noSolution.WithLabelValues(mode).Inc()
}

func (r *Recorder) RecordFailure() {
	r.failure.Inc()
}
