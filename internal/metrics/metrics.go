// Package metrics exports traversal activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/path"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "knightpath"

// Recorder implements traversal.Observer on top of Prometheus collectors.
type Recorder struct {
	started   prometheus.Counter
	ignored   prometheus.Counter
	completed prometheus.Counter
	moves     prometheus.Histogram
	duration  prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traversals_started_total",
			Help:      "Traversals accepted by the controller.",
		}),
		ignored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traversals_ignored_total",
			Help:      "Requests dropped because a traversal was animating.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traversals_completed_total",
			Help:      "Traversals whose animation finished.",
		}),
		moves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_moves",
			Help:      "Knight moves per accepted traversal.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_duration_seconds",
			Help:      "Wall time of completed traversal animations.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 8),
		}),
	}
	for _, c := range []prometheus.Collector{r.started, r.ignored, r.completed, r.moves, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// TraversalStarted counts an accepted request and records its move count.
func (r *Recorder) TraversalStarted(_, _ grid.Cell, p path.Path) {
	r.started.Inc()
	r.moves.Observe(float64(p.Moves()))
}

// TraversalIgnored counts a request dropped while animating.
func (r *Recorder) TraversalIgnored(grid.Cell) {
	r.ignored.Inc()
}

// TraversalCompleted counts a finished animation and records its duration.
func (r *Recorder) TraversalCompleted(_ path.Path, elapsed time.Duration) {
	r.completed.Inc()
	r.duration.Observe(elapsed.Seconds())
}
