// Package metrics records solve runs as Prometheus metrics.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	pegerrors "github.com/lgbarn/peg-solitaire-go/internal/errors"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
)

const namespace = "pegsolitaire"

// Outcome label values.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Recorder holds the collectors for solve runs. Each Recorder owns its own
// registry so tests and batch runs never collide with the global one.
type Recorder struct {
	registry *prometheus.Registry

	solvesTotal   *prometheus.CounterVec
	nodesTotal    prometheus.Counter
	attemptsTotal prometheus.Counter
	deadEndsTotal prometheus.Counter
	duration      prometheus.Histogram
	maxDepth      prometheus.Gauge

	mu      sync.Mutex
	deepest int
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of searches by outcome",
			},
			[]string{"outcome"},
		),
		nodesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_visited_total",
			Help:      "Total number of boards visited by all searches",
		}),
		attemptsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jump_attempts_total",
			Help:      "Total number of jumps tried, legal or not",
		}),
		deadEndsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dead_ends_total",
			Help:      "Total number of boards from which no solution was found",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a single search in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60, 600},
		}),
		maxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_depth",
			Help:      "Deepest recursion reached by any recorded search",
		}),
	}
	r.registry.MustRegister(
		r.solvesTotal,
		r.nodesTotal,
		r.attemptsTotal,
		r.deadEndsTotal,
		r.duration,
		r.maxDepth,
	)
	return r
}

// Registry exposes the private registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one search. err is the error returned alongside res.
func (r *Recorder) Observe(res solver.Result, err error) {
	r.solvesTotal.WithLabelValues(Outcome(res, err)).Inc()

	st := res.Stats
	r.nodesTotal.Add(float64(st.Nodes))
	r.attemptsTotal.Add(float64(st.Attempts))
	r.deadEndsTotal.Add(float64(st.DeadEnds))
	r.duration.Observe(st.Duration.Seconds())

	r.mu.Lock()
	if st.MaxDepth > r.deepest {
		r.deepest = st.MaxDepth
		r.maxDepth.Set(float64(st.MaxDepth))
	}
	r.mu.Unlock()
}

// Outcome classifies a search for the outcome label.
func Outcome(res solver.Result, err error) string {
	switch {
	case err == nil && res.Solved():
		return OutcomeSolved
	case errors.Is(err, pegerrors.ErrNoSolution):
		return OutcomeNoSolution
	case err == nil:
		return OutcomeNoSolution
	}
	return OutcomeError
}

// WriteTextfile writes every metric to path in the text exposition format
// read by the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return pegerrors.Wrapf(err, "write metrics %s", path)
	}
	return nil
}
