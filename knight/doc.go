// Package knight enumerates legal knight moves on a grid.Grid.
//
// A knight moves by one of eight fixed (Δcol, Δrow) offsets, (±1,±2) and
// (±2,±1). MovesFrom applies every offset to a cell, drops candidates that
// leave the board, and returns the survivors as cells.
//
// Determinism
//
//	Offsets are always tried in the order of the Offsets table, so the same
//	cell yields the same move order on every call. Breadth-first search uses
//	that order to break ties between equally short paths.
//
// Complexity
//
//   - MovesFrom: O(1) time, at most 8 results.
//   - IsMove:    O(1).
package knight
