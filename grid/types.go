// Package grid defines core types, constants, and sentinel errors
// for board geometry.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a board dimension smaller than 1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrInvalidCell indicates a cell index outside [0, N²).
	ErrInvalidCell = errors.New("grid: cell out of range")
)

// DefaultSize is the dimension of a standard chess board.
const DefaultSize = 8

// Cell is a row-major index of one square on the board.
type Cell int

// Color selects the shade of a square in the checkered pattern.
type Color int

const (
	// Light squares have an even column+row sum; cell 0 is Light.
	Light Color = iota
	// Dark squares have an odd column+row sum.
	Dark
)

// String returns "light" or "dark".
func (c Color) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

// Grid is an immutable N×N board description.
// The zero value is not usable; construct with New or Standard.
type Grid struct {
	size int
}
