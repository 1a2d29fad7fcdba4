package traversal

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/internal/logging"
	"github.com/katalvlaran/knightpath/path"
)

// Traversal is one accepted request. Its Path is fixed at creation.
type Traversal struct {
	from, to grid.Cell
	path     path.Path
	done     chan struct{}
}

// From returns the token cell the traversal started on.
func (t *Traversal) From() grid.Cell { return t.from }

// To returns the requested destination.
func (t *Traversal) To() grid.Cell { return t.to }

// Path returns the cells the token visits, origin and destination included.
func (t *Traversal) Path() path.Path { return t.path }

// Done is closed once the animation has finished and the controller is Idle.
func (t *Traversal) Done() <-chan struct{} { return t.done }

// Wait blocks until Done is closed.
func (t *Traversal) Wait() { <-t.done }

// Controller owns the token position and the single-traversal invariant.
type Controller struct {
	grid    grid.Grid
	finder  *path.Finder
	surface board.Surface
	opts    options
	log     *slog.Logger

	mu       sync.Mutex
	state    State
	position grid.Cell
	current  *Traversal
	active   int // accepted traversals that have not yet closed Done
	idle     *sync.Cond
}

// New builds a Controller for g and places the token on its start cell.
// A nil finder defaults to path.NewFinder(g).
// Returns ErrNilSurface, ErrInvalidDelay, an error wrapping
// grid.ErrInvalidSize for an empty grid, or an error wrapping
// grid.ErrInvalidCell for an off-board WithStart cell.
func New(g grid.Grid, finder *path.Finder, surface board.Surface, opts ...Option) (*Controller, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if g.Size() < 1 {
		return nil, fmt.Errorf("traversal: %w: %d", grid.ErrInvalidSize, g.Size())
	}
	o := options{
		stepDelay: DefaultStepDelay,
		edgeDelay: DefaultEdgeDelay,
		sleep:     time.Sleep,
		now:       time.Now,
		logger:    logging.NewNop(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stepDelay < 0 || o.edgeDelay < 0 {
		return nil, fmt.Errorf("%w: step %v, edge %v", ErrInvalidDelay, o.stepDelay, o.edgeDelay)
	}
	if finder == nil {
		finder = path.NewFinder(g)
	}

	start := o.start
	if !o.hasStart {
		if o.rng != nil {
			start = grid.Cell(o.rng.IntN(g.Cells()))
		} else {
			start = grid.Cell(rand.IntN(g.Cells()))
		}
	}
	if err := g.Validate(start); err != nil {
		return nil, fmt.Errorf("traversal: start: %w", err)
	}

	c := &Controller{
		grid:     g,
		finder:   finder,
		surface:  surface,
		opts:     o,
		log:      o.logger.With("component", "traversal"),
		state:    Idle,
		position: start,
	}
	c.idle = sync.NewCond(&c.mu)
	surface.PlaceToken(start)
	c.log.Info("token placed", "cell", start, "label", g.Label(start))

	return c, nil
}

// Grid returns the board the controller animates on.
func (c *Controller) Grid() grid.Grid { return c.grid }

// Position returns the token's current cell.
func (c *Controller) Position() grid.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// State returns Idle or Animating.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a traversal is animating.
func (c *Controller) Busy() bool {
	return c.State() == Animating
}

// Current returns the running traversal, or nil when Idle.
func (c *Controller) Current() *Traversal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Wait blocks until no traversal is animating. It may be called while
// new requests are still arriving.
func (c *Controller) Wait() {
	c.mu.Lock()
	for c.active > 0 {
		c.idle.Wait()
	}
	c.mu.Unlock()
}

// release marks the controller Idle and wakes Wait callers.
func (c *Controller) release() {
	c.mu.Lock()
	c.state = Idle
	c.current = nil
	c.active--
	c.mu.Unlock()
	c.idle.Broadcast()
}

// RequestTraversal starts moving the token to dest and returns as soon as
// the path is known; the animation continues in the background.
// See the package documentation for the error contract.
func (c *Controller) RequestTraversal(dest grid.Cell) (*Traversal, error) {
	if err := c.grid.Validate(dest); err != nil {
		return nil, fmt.Errorf("traversal: destination: %w", err)
	}

	c.mu.Lock()
	if c.state == Animating {
		c.mu.Unlock()
		c.opts.observer.TraversalIgnored(dest)
		c.log.Debug("request ignored while animating", "dest", dest)
		return nil, ErrBusyTraversalIgnored
	}
	c.state = Animating
	c.active++
	from := c.position
	c.mu.Unlock()

	c.surface.FrameCell(dest)

	p, err := c.finder.ShortestPath(from, dest)
	if err != nil {
		c.surface.UnframeCell(dest)
		c.release()
		c.log.Warn("no traversal", "from", from, "dest", dest, "error", err)
		return nil, err
	}

	t := &Traversal{from: from, to: dest, path: p, done: make(chan struct{})}
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()

	c.log.Info("traversal started", "from", from, "dest", dest, "moves", p.Moves(), "path", p.Format(c.grid))
	c.opts.observer.TraversalStarted(from, dest, p)

	go c.animate(t)

	return t, nil
}

// animate plays t on the surface and releases the controller.
func (c *Controller) animate(t *Traversal) {
	started := c.opts.now()

	last := len(t.path) - 1
	for i, cell := range t.path {
		c.surface.HighlightCell(cell)
		c.surface.PlaceToken(cell)
		c.mu.Lock()
		c.position = cell
		c.mu.Unlock()

		if i == 0 || i == last {
			c.opts.sleep(c.opts.edgeDelay)
		} else {
			c.opts.sleep(c.opts.stepDelay)
		}
	}

	for _, cell := range t.path {
		c.surface.UnhighlightCell(cell)
	}
	c.surface.UnframeCell(t.to)

	c.mu.Lock()
	c.state = Idle
	c.current = nil
	c.mu.Unlock()

	elapsed := c.opts.now().Sub(started)
	c.log.Info("traversal completed", "dest", t.to, "moves", t.path.Moves(), "elapsed", elapsed)
	c.opts.observer.TraversalCompleted(t.path, elapsed)
	close(t.done)

	c.mu.Lock()
	c.active--
	c.mu.Unlock()
	c.idle.Broadcast()
}

// OnCellClicked is the inbound click handler for board surfaces. Dropped
// and invalid clicks are logged and otherwise ignored.
func (c *Controller) OnCellClicked(cell grid.Cell) {
	_, err := c.RequestTraversal(cell)
	switch {
	case err == nil:
	case errors.Is(err, ErrBusyTraversalIgnored):
		// logged by RequestTraversal
	case errors.Is(err, grid.ErrInvalidCell):
		c.log.Warn("click outside board", "cell", cell)
	default:
		c.log.Error("click failed", "cell", cell, "error", err)
	}
}
