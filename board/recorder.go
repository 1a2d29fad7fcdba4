package board

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/knightpath/grid"
)

// Op names a Surface instruction.
type Op string

// Surface instructions as recorded by Recorder.
const (
	OpPlace       Op = "place"
	OpHighlight   Op = "highlight"
	OpUnhighlight Op = "unhighlight"
	OpFrame       Op = "frame"
	OpUnframe     Op = "unframe"
)

// Instruction is one recorded Surface call.
type Instruction struct {
	Op   Op
	Cell grid.Cell
}

// String formats the instruction as "op(cell)".
func (i Instruction) String() string {
	return fmt.Sprintf("%s(%d)", i.Op, i.Cell)
}

// Recorder is a Surface that keeps every instruction in call order.
type Recorder struct {
	mu  sync.Mutex
	ops []Instruction
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op, c grid.Cell) {
	r.mu.Lock()
	r.ops = append(r.ops, Instruction{Op: op, Cell: c})
	r.mu.Unlock()
}

// PlaceToken records OpPlace.
func (r *Recorder) PlaceToken(c grid.Cell) { r.add(OpPlace, c) }

// HighlightCell records OpHighlight.
func (r *Recorder) HighlightCell(c grid.Cell) { r.add(OpHighlight, c) }

// UnhighlightCell records OpUnhighlight.
func (r *Recorder) UnhighlightCell(c grid.Cell) { r.add(OpUnhighlight, c) }

// FrameCell records OpFrame.
func (r *Recorder) FrameCell(c grid.Cell) { r.add(OpFrame, c) }

// UnframeCell records OpUnframe.
func (r *Recorder) UnframeCell(c grid.Cell) { r.add(OpUnframe, c) }

// Instructions returns a copy of everything recorded so far.
func (r *Recorder) Instructions() []Instruction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Instruction, len(r.ops))
	copy(out, r.ops)
	return out
}

// Len returns the number of recorded instructions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

// Filter returns the cells of every recorded instruction with the given op.
func (r *Recorder) Filter(op Op) []grid.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []grid.Cell
	for _, i := range r.ops {
		if i.Op == op {
			out = append(out, i.Cell)
		}
	}
	return out
}

// Reset forgets all recorded instructions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}
