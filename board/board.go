package board

import (
	"slices"
	"sync"

	"github.com/katalvlaran/knightpath/grid"
)

// Surface is the outbound contract of the traversal core. Calls must not
// block for long; their results are never consumed.
type Surface interface {
	PlaceToken(c grid.Cell)
	HighlightCell(c grid.Cell)
	UnhighlightCell(c grid.Cell)
	FrameCell(c grid.Cell)
	UnframeCell(c grid.Cell)
}

// NoToken marks a board whose token has not been placed yet.
const NoToken grid.Cell = -1

// Snapshot is a point-in-time copy of a State.
type Snapshot struct {
	Token       grid.Cell   `json:"token"`
	Highlighted []grid.Cell `json:"highlighted"`
	Framed      []grid.Cell `json:"framed"`
}

// State is an in-memory Surface safe for concurrent use.
type State struct {
	mu          sync.RWMutex
	token       grid.Cell
	highlighted map[grid.Cell]struct{}
	framed      map[grid.Cell]struct{}
}

// NewState returns an empty board with no token.
func NewState() *State {
	return &State{
		token:       NoToken,
		highlighted: make(map[grid.Cell]struct{}),
		framed:      make(map[grid.Cell]struct{}),
	}
}

// PlaceToken moves the token to c.
func (s *State) PlaceToken(c grid.Cell) {
	s.mu.Lock()
	s.token = c
	s.mu.Unlock()
}

// HighlightCell marks c as part of the current path.
func (s *State) HighlightCell(c grid.Cell) {
	s.mu.Lock()
	s.highlighted[c] = struct{}{}
	s.mu.Unlock()
}

// UnhighlightCell clears the path mark on c.
func (s *State) UnhighlightCell(c grid.Cell) {
	s.mu.Lock()
	delete(s.highlighted, c)
	s.mu.Unlock()
}

// FrameCell marks c as the traversal target.
func (s *State) FrameCell(c grid.Cell) {
	s.mu.Lock()
	s.framed[c] = struct{}{}
	s.mu.Unlock()
}

// UnframeCell clears the target mark on c.
func (s *State) UnframeCell(c grid.Cell) {
	s.mu.Lock()
	delete(s.framed, c)
	s.mu.Unlock()
}

// Token returns the token cell, or NoToken.
func (s *State) Token() grid.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Snapshot copies the board. Cell lists are sorted ascending.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Token:       s.token,
		Highlighted: sortedKeys(s.highlighted),
		Framed:      sortedKeys(s.framed),
	}
}

func sortedKeys(m map[grid.Cell]struct{}) []grid.Cell {
	out := make([]grid.Cell, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// multi fans instructions out in order.
type multi []Surface

// Multi returns a Surface forwarding every instruction to each of surfaces,
// in argument order. Nil surfaces are skipped.
func Multi(surfaces ...Surface) Surface {
	out := make(multi, 0, len(surfaces))
	for _, s := range surfaces {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) PlaceToken(c grid.Cell) {
	for _, s := range m {
		s.PlaceToken(c)
	}
}

func (m multi) HighlightCell(c grid.Cell) {
	for _, s := range m {
		s.HighlightCell(c)
	}
}

func (m multi) UnhighlightCell(c grid.Cell) {
	for _, s := range m {
		s.UnhighlightCell(c)
	}
}

func (m multi) FrameCell(c grid.Cell) {
	for _, s := range m {
		s.FrameCell(c)
	}
}

func (m multi) UnframeCell(c grid.Cell) {
	for _, s := range m {
		s.UnframeCell(c)
	}
}
