package knight

import "github.com/katalvlaran/knightpath/grid"

// Offset is a single (Δcol, Δrow) knight displacement.
type Offset struct {
	DCol, DRow int
}

// Offsets lists the eight knight displacements in enumeration order.
// Callers must not modify it.
var Offsets = [8]Offset{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

// MovesFrom returns every cell reachable from c with one knight move,
// in Offsets order. An off-board c yields no moves.
func MovesFrom(g grid.Grid, c grid.Cell) []grid.Cell {
	if !g.Contains(c) {
		return nil
	}
	col, row := g.ToColRow(c)
	moves := make([]grid.Cell, 0, len(Offsets))
	for _, o := range Offsets {
		nc, nr := col+o.DCol, row+o.DRow
		if !g.InBounds(nc, nr) {
			continue
		}
		moves = append(moves, g.ToCell(nc, nr))
	}

	return moves
}

// IsMove reports whether a knight on from can reach to in one move.
func IsMove(g grid.Grid, from, to grid.Cell) bool {
	if !g.Contains(from) || !g.Contains(to) {
		return false
	}
	fc, fr := g.ToColRow(from)
	tc, tr := g.ToColRow(to)
	dc, dr := abs(tc-fc), abs(tr-fr)

	return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
}

// Neighbors returns MovesFrom bound to g, in the shape bfs.Search expects.
func Neighbors(g grid.Grid) func(grid.Cell) []grid.Cell {
	return func(c grid.Cell) []grid.Cell {
		return MovesFrom(g, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
