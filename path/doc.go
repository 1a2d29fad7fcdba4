// Package path computes the shortest sequence of knight moves between two
// cells of a grid.Grid.
//
// What:
//
//   - Finder.ShortestPath runs a breadth-first search over the implicit
//     knight-move graph (edges from knight.MovesFrom) and returns a Path
//     from origin to destination, both inclusive.
//   - Finder.Distance returns the number of moves only.
//   - Path.Format renders a path as "[ col, row ][ col, row ]...".
//
// Guarantees:
//
//   - The first element is the origin, the last the destination, and every
//     consecutive pair is a legal knight move.
//   - The number of moves is minimal: BFS dequeues the destination at its
//     minimum edge distance from the origin.
//   - Among equally short paths the one chosen is fixed by knight.Offsets
//     enumeration order, so results are reproducible.
//   - ShortestPath(c, c) returns [c].
//
// Errors:
//
//   - grid.ErrInvalidCell: either endpoint is off the board; nothing is searched.
//   - ErrNoPathFound:      the frontier was exhausted without reaching the
//     destination. Cannot happen on boards of size 4 and up, where the knight graph is
//     connected, but small boards have isolated cells.
package path
