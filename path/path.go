package path

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/knight"
)

// ErrNoPathFound is returned when the destination cannot be reached.
var ErrNoPathFound = errors.New("path: no path found")

// Path is an ordered sequence of cells from origin to destination,
// both inclusive. A Path returned by Finder is never empty.
type Path []grid.Cell

// Origin returns the first cell.
func (p Path) Origin() grid.Cell { return p[0] }

// Destination returns the last cell.
func (p Path) Destination() grid.Cell { return p[len(p)-1] }

// Moves returns the number of knight moves (edges) in p.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Format renders p as a run of "[ col, row ]" labels.
func (p Path) Format(g grid.Grid) string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(g.Label(c))
	}
	return sb.String()
}

// Option configures a Finder.
type Option func(*Finder)

// WithContext bounds every search with ctx.
func WithContext(ctx context.Context) Option {
	return func(f *Finder) {
		if ctx != nil {
			f.ctx = ctx
		}
	}
}

// Finder searches knight paths on one grid. It holds no per-search state
// and is safe for concurrent use.
type Finder struct {
	grid      grid.Grid
	ctx       context.Context
	neighbors func(grid.Cell) []grid.Cell
}

// NewFinder returns a Finder for g.
func NewFinder(g grid.Grid, opts ...Option) *Finder {
	f := &Finder{
		grid:      g,
		ctx:       context.Background(),
		neighbors: knight.Neighbors(g),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Grid returns the board the Finder searches.
func (f *Finder) Grid() grid.Grid {
	return f.grid
}

// ShortestPath returns a minimum-move knight path from origin to destination.
// Returns an error wrapping grid.ErrInvalidCell for off-board endpoints and
// ErrNoPathFound when the destination is unreachable.
// Complexity: O(N²) time and memory.
func (f *Finder) ShortestPath(origin, destination grid.Cell) (Path, error) {
	if err := f.grid.Validate(origin); err != nil {
		return nil, fmt.Errorf("path: origin: %w", err)
	}
	if err := f.grid.Validate(destination); err != nil {
		return nil, fmt.Errorf("path: destination: %w", err)
	}
	if origin == destination {
		return Path{origin}, nil
	}

	res, err := bfs.Search(origin, f.neighbors,
		bfs.WithContext[grid.Cell](f.ctx),
		bfs.WithStopAt(destination),
	)
	if err != nil {
		return nil, fmt.Errorf("path: search from %d: %w", origin, err)
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPathFound, origin, destination)
	}
	cells, err := res.PathTo(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPathFound, err)
	}

	return Path(cells), nil
}

// Distance returns the minimum number of knight moves from origin to destination.
func (f *Finder) Distance(origin, destination grid.Cell) (int, error) {
	p, err := f.ShortestPath(origin, destination)
	if err != nil {
		return 0, err
	}
	return p.Moves(), nil
}
