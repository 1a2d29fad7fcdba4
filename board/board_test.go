package board_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/grid"
	"github.com/stretchr/testify/require"
)

// TestState_Instructions applies each instruction and reads the snapshot.
func TestState_Instructions(t *testing.T) {
	s := board.NewState()
	require.Equal(t, board.NoToken, s.Token())

	s.PlaceToken(12)
	s.HighlightCell(40)
	s.HighlightCell(3)
	s.HighlightCell(3)
	s.FrameCell(63)

	snap := s.Snapshot()
	require.Equal(t, grid.Cell(12), snap.Token)
	require.Equal(t, []grid.Cell{3, 40}, snap.Highlighted)
	require.Equal(t, []grid.Cell{63}, snap.Framed)

	s.UnhighlightCell(3)
	s.UnhighlightCell(40)
	s.UnhighlightCell(7) // never highlighted
	s.UnframeCell(63)

	snap = s.Snapshot()
	require.Empty(t, snap.Highlighted)
	require.Empty(t, snap.Framed)
	require.Equal(t, grid.Cell(12), snap.Token)
}

// TestState_Concurrent hammers the board from several goroutines.
func TestState_Concurrent(t *testing.T) {
	s := board.NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(c grid.Cell) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.HighlightCell(c)
				s.PlaceToken(c)
				_ = s.Snapshot()
				s.UnhighlightCell(c)
			}
		}(grid.Cell(i))
	}
	wg.Wait()
	require.Empty(t, s.Snapshot().Highlighted)
}

// TestRecorder keeps call order.
func TestRecorder(t *testing.T) {
	r := board.NewRecorder()
	r.FrameCell(5)
	r.HighlightCell(0)
	r.PlaceToken(0)
	r.UnhighlightCell(0)
	r.UnframeCell(5)

	want := []board.Instruction{
		{Op: board.OpFrame, Cell: 5},
		{Op: board.OpHighlight, Cell: 0},
		{Op: board.OpPlace, Cell: 0},
		{Op: board.OpUnhighlight, Cell: 0},
		{Op: board.OpUnframe, Cell: 5},
	}
	require.Equal(t, want, r.Instructions())
	require.Equal(t, 5, r.Len())
	require.Equal(t, []grid.Cell{0}, r.Filter(board.OpPlace))
	require.Equal(t, "frame(5)", want[0].String())

	r.Reset()
	require.Zero(t, r.Len())
}

// TestMulti forwards to every non-nil surface.
func TestMulti(t *testing.T) {
	a, b := board.NewRecorder(), board.NewState()
	m := board.Multi(a, nil, b)
	m.PlaceToken(9)
	m.HighlightCell(9)
	m.FrameCell(1)
	m.UnhighlightCell(9)
	m.UnframeCell(1)

	require.Equal(t, 5, a.Len())
	require.Equal(t, board.Snapshot{Token: 9, Highlighted: []grid.Cell{}, Framed: []grid.Cell{}}, b.Snapshot())
}
