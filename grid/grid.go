// Package grid provides conversions between linear cell indices and
// (column,row) coordinates on a square board.
package grid

import "fmt"

// New constructs a Grid of size×size cells.
// Returns ErrInvalidSize if size < 1.
func New(size int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	return Grid{size: size}, nil
}

// Standard returns the 8×8 chess board.
func Standard() Grid {
	return Grid{size: DefaultSize}
}

// Size returns the board dimension N.
func (g Grid) Size() int {
	return g.size
}

// Cells returns the number of cells on the board (N²).
func (g Grid) Cells() int {
	return g.size * g.size
}

// ToColRow converts a row-major index back to (col,row).
// The result is well defined for any input; pair it with Contains
// when the index comes from outside.
// Complexity: O(1).
func (g Grid) ToColRow(c Cell) (col, row int) {
	return int(c) % g.size, int(c) / g.size
}

// ToCell maps (col,row) to a row-major index: row*N + col.
// Callers must check InBounds first; out-of-range input aliases other cells.
// Complexity: O(1).
func (g Grid) ToCell(col, row int) Cell {
	return Cell(row*g.size + col)
}

// InBounds reports whether (col,row) lies within the board.
// Complexity: O(1).
func (g Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// Contains reports whether c is a valid index on this board.
func (g Grid) Contains(c Cell) bool {
	return c >= 0 && int(c) < g.Cells()
}

// Validate returns an error wrapping ErrInvalidCell if c is off the board.
func (g Grid) Validate(c Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidCell, c, g.Cells())
	}

	return nil
}

// Color returns the checkered shade of c.
func (g Grid) Color(c Cell) Color {
	col, row := g.ToColRow(c)
	if (col+row)%2 == 0 {
		return Light
	}

	return Dark
}

// Label formats c as "[ col, row ]".
func (g Grid) Label(c Cell) string {
	col, row := g.ToColRow(c)
	return fmt.Sprintf("[ %d, %d ]", col, row)
}
