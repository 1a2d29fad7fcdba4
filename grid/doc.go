// Package grid describes the square board geometry shared by every other
// package: linear cell indices, (column,row) coordinates, and bounds checks.
//
// What:
//
//   - Grid wraps a single dimension N; the board holds N×N cells.
//   - A Cell is a row-major index in [0, N²): column = idx mod N, row = idx div N.
//   - Out-of-range coordinates are reported by InBounds, never by panics.
//   - Validate rejects foreign cell indices at the package boundary.
//
// Why:
//
//   - Keep a single positional representation (Cell) between components.
//   - Let move generation test candidates in (col,row) space and convert back.
//
// Complexity:
//
//   - Every method is O(1) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: requested dimension is smaller than 1.
//   - ErrInvalidCell: a cell index lies outside [0, N²).
package grid
