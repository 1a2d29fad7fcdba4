// Package terminal draws the knight board in a terminal with tcell and
// turns mouse clicks into cell selections.
package terminal

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/grid"
)

// Layout of one board square in screen cells.
const (
	cellW   = 5
	cellH   = 2
	marginX = 3 // row labels
	marginY = 1 // column labels
)

const tokenRune = '♞'

var (
	styleLight     = tcell.StyleDefault.Background(tcell.ColorWheat).Foreground(tcell.ColorBlack)
	styleDark      = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorBlack)
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorYellowGreen).Foreground(tcell.ColorBlack)
	styleFrame     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLabel     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Surface is a board.Surface rendered on a tcell.Screen.
// Instructions may arrive from any goroutine.
type Surface struct {
	screen tcell.Screen
	grid   grid.Grid

	mu          sync.Mutex
	token       grid.Cell
	highlighted map[grid.Cell]bool
	framed      map[grid.Cell]bool
	status      string
}

var _ board.Surface = (*Surface)(nil)

// New wraps an initialised screen. Mouse reporting is enabled.
func New(screen tcell.Screen, g grid.Grid) *Surface {
	screen.EnableMouse()
	s := &Surface{
		screen:      screen,
		grid:        g,
		token:       board.NoToken,
		highlighted: make(map[grid.Cell]bool),
		framed:      make(map[grid.Cell]bool),
		status:      "click a square to move the knight; q to quit",
	}
	s.Draw()
	return s
}

// PlaceToken moves the knight glyph to c.
func (s *Surface) PlaceToken(c grid.Cell) {
	s.update(func() { s.token = c })
}

// HighlightCell paints c as part of the path.
func (s *Surface) HighlightCell(c grid.Cell) {
	s.update(func() { s.highlighted[c] = true })
}

// UnhighlightCell restores the checkered colour of c.
func (s *Surface) UnhighlightCell(c grid.Cell) {
	s.update(func() { delete(s.highlighted, c) })
}

// FrameCell draws target brackets around c.
func (s *Surface) FrameCell(c grid.Cell) {
	s.update(func() { s.framed[c] = true })
}

// UnframeCell removes the target brackets from c.
func (s *Surface) UnframeCell(c grid.Cell) {
	s.update(func() { delete(s.framed, c) })
}

// SetStatus replaces the line printed under the board.
func (s *Surface) SetStatus(msg string) {
	s.update(func() { s.status = msg })
}

func (s *Surface) update(fn func()) {
	s.mu.Lock()
	fn()
	s.drawLocked()
	s.mu.Unlock()
	s.screen.Show()
}

// Draw repaints the whole board.
func (s *Surface) Draw() {
	s.mu.Lock()
	s.drawLocked()
	s.mu.Unlock()
	s.screen.Show()
}

func (s *Surface) drawLocked() {
	s.screen.Clear()
	n := s.grid.Size()
	for col := 0; col < n; col++ {
		s.text(marginX+col*cellW+cellW/2, 0, strconv.Itoa(col), styleLabel)
	}
	for row := 0; row < n; row++ {
		s.text(0, marginY+row*cellH, fmt.Sprintf("%2d", row), styleLabel)
	}
	for c := grid.Cell(0); int(c) < s.grid.Cells(); c++ {
		s.drawCell(c)
	}
	s.text(0, marginY+n*cellH+1, s.status, styleLabel)
}

func (s *Surface) drawCell(c grid.Cell) {
	col, row := s.grid.ToColRow(c)
	x0, y0 := marginX+col*cellW, marginY+row*cellH

	style := styleLight
	if s.grid.Color(c) == grid.Dark {
		style = styleDark
	}
	if s.highlighted[c] {
		style = styleHighlight
	}
	_, bg, _ := style.Decompose()

	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW; dx++ {
			s.screen.SetContent(x0+dx, y0+dy, ' ', nil, style)
		}
		if s.framed[c] {
			frame := styleFrame.Background(bg)
			s.screen.SetContent(x0, y0+dy, '[', nil, frame)
			s.screen.SetContent(x0+cellW-1, y0+dy, ']', nil, frame)
		}
	}
	if c == s.token {
		s.screen.SetContent(x0+cellW/2, y0, tokenRune, nil, style.Bold(true))
	}
}

func (s *Surface) text(x, y int, msg string, style tcell.Style) {
	for i, r := range []rune(msg) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// CellAt maps a screen position to the board square under it.
func (s *Surface) CellAt(x, y int) (grid.Cell, bool) {
	if x < marginX || y < marginY {
		return 0, false
	}
	col, row := (x-marginX)/cellW, (y-marginY)/cellH
	if !s.grid.InBounds(col, row) {
		return 0, false
	}
	return s.grid.ToCell(col, row), true
}

// Origin returns the top-left screen position of c.
func (s *Surface) Origin(c grid.Cell) (x, y int) {
	col, row := s.grid.ToColRow(c)
	return marginX + col*cellW, marginY + row*cellH
}

// Run polls screen events until ctx is done, the screen is finalised, or
// the user presses q, Esc or Ctrl-C. Each primary-button press on a square
// calls onClick with that cell.
func (s *Surface) Run(ctx context.Context, onClick func(grid.Cell)) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var pressed tcell.ButtonMask
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.Draw()
		case *tcell.EventMouse:
			buttons := ev.Buttons()
			// act on the press edge only; held buttons repeat events
			if buttons&tcell.Button1 != 0 && pressed&tcell.Button1 == 0 {
				if c, ok := s.CellAt(ev.Position()); ok {
					onClick(c)
				}
			}
			pressed = buttons
		}
	}
}
