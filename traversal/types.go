package traversal

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/path"
)

// Sentinel errors for traversal requests.
var (
	// ErrBusyTraversalIgnored reports a request dropped because another
	// traversal is animating. It is an outcome, not a failure.
	ErrBusyTraversalIgnored = errors.New("traversal: busy, request ignored")

	// ErrNilSurface is returned by New when no board surface is given.
	ErrNilSurface = errors.New("traversal: board surface is nil")

	// ErrInvalidDelay is returned by New for a negative delay.
	ErrInvalidDelay = errors.New("traversal: delay cannot be negative")
)

// Default animation pacing.
const (
	DefaultStepDelay = time.Second
	DefaultEdgeDelay = 200 * time.Millisecond
)

// State is the controller's animation state.
type State int

const (
	// Idle accepts a new traversal.
	Idle State = iota
	// Animating drops every new request until the running traversal ends.
	Animating
)

// String returns "idle" or "animating".
func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Observer is notified of traversal lifecycle events. Calls are made
// synchronously from the requesting or animating goroutine.
type Observer interface {
	TraversalStarted(from, to grid.Cell, p path.Path)
	TraversalIgnored(to grid.Cell)
	TraversalCompleted(p path.Path, elapsed time.Duration)
}

// nopObserver ignores every event.
type nopObserver struct{}

func (nopObserver) TraversalStarted(grid.Cell, grid.Cell, path.Path) {}
func (nopObserver) TraversalIgnored(grid.Cell)                       {}
func (nopObserver) TraversalCompleted(path.Path, time.Duration)      {}

// Option configures a Controller.
type Option func(*options)

type options struct {
	start     grid.Cell
	hasStart  bool
	stepDelay time.Duration
	edgeDelay time.Duration
	sleep     func(time.Duration)
	now       func() time.Time
	logger    *slog.Logger
	observer  Observer
	rng       *rand.Rand
}

// WithStart places the token on c instead of a random cell.
func WithStart(c grid.Cell) Option {
	return func(o *options) {
		o.start = c
		o.hasStart = true
	}
}

// WithStepDelay sets the pause after every intermediate path cell.
func WithStepDelay(d time.Duration) Option {
	return func(o *options) { o.stepDelay = d }
}

// WithEdgeDelay sets the pause after the first and the last path cell.
func WithEdgeDelay(d time.Duration) Option {
	return func(o *options) { o.edgeDelay = d }
}

// WithSleep replaces time.Sleep for the pauses between steps.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *options) {
		if fn != nil {
			o.sleep = fn
		}
	}
}

// WithClock replaces time.Now when measuring traversal duration.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		if fn != nil {
			o.now = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers lifecycle callbacks.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithRand sets the source used to pick a random start cell.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}
