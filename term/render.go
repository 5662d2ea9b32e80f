// Package term renders game state to a tcell screen and maps terminal keys to
// engine actions.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Board cells are two columns wide so they look square.
	cellWidth = 2

	boardLeft = 1
	boardTop  = 1
	panelLeft = boardLeft + tetris.Width*cellWidth + 4
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws states onto a screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw replaces the screen contents with s and shows it.
func (r *Renderer) Draw(s tetris.State) {
	r.screen.Clear()

	switch s.Phase {
	case tetris.PhaseNotStarted:
		r.drawTitle()
	default:
		r.drawBoard(s)
		r.drawPanel(s)
		switch s.Phase {
		case tetris.PhasePaused:
			r.drawBanner([]string{"PAUSED", "P: resume"}, styleTitle)
		case tetris.PhaseGameOver:
			r.drawBanner([]string{
				"Game Over",
				fmt.Sprintf("Your Score: %d", s.FinalScore),
				"Enter: play again",
			}, styleAlert)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawTitle() {
	lines := []string{
		"Welcome to Tetris!",
		"",
		"Enter: play",
		"Arrows: move / rotate",
		"P: pause   Q: quit",
	}
	for i, line := range lines {
		style := styleText
		if i == 0 {
			style = styleTitle
		}
		r.text(boardLeft+1, boardTop+2+i, line, style)
	}
}

func (r *Renderer) drawBoard(s tetris.State) {
	right := boardLeft + 1 + tetris.Width*cellWidth
	bottom := boardTop + 1 + tetris.Height

	for y := boardTop; y <= bottom; y++ {
		r.screen.SetContent(boardLeft, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	for x := boardLeft; x <= right; x++ {
		r.screen.SetContent(x, boardTop, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	r.screen.SetContent(boardLeft, boardTop, '┌', nil, styleBorder)
	r.screen.SetContent(right, boardTop, '┐', nil, styleBorder)
	r.screen.SetContent(boardLeft, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)

	for y := range tetris.Height {
		for x := range tetris.Width {
			if c := s.Board[y][x]; c != tetris.Empty {
				r.block(x, y, c)
			} else {
				r.cell(x, y, " .", styleDim)
			}
		}
	}

	if s.Active.IsZero() || s.Phase == tetris.PhaseGameOver {
		return
	}

	ghost := s.Ghost()
	ghostStyle := tcell.StyleDefault.Foreground(cellColor(s.Active.Color))
	for col, row := range s.Active.Cells() {
		if s.Board.At(s.X+col, ghost+row) == tetris.Empty {
			r.cell(s.X+col, ghost+row, "[]", ghostStyle)
		}
	}
	for col, row := range s.Active.Cells() {
		r.block(s.X+col, s.Y+row, s.Active.Color)
	}
}

func (r *Renderer) drawPanel(s tetris.State) {
	r.text(panelLeft, boardTop, "SCORE", styleDim)
	r.text(panelLeft, boardTop+1, fmt.Sprintf("%d", s.Score), styleText)
	r.text(panelLeft, boardTop+3, "LINES", styleDim)
	r.text(panelLeft, boardTop+4, fmt.Sprintf("%d", s.Lines), styleText)
	r.text(panelLeft, boardTop+6, "NEXT", styleDim)

	if !s.Next.IsZero() {
		style := tcell.StyleDefault.Background(cellColor(s.Next.Color))
		for col, row := range s.Next.Cells() {
			x := panelLeft + col*cellWidth
			y := boardTop + 8 + row
			r.text(x, y, "  ", style)
		}
	}

	status := "P: pause"
	if s.Phase == tetris.PhasePaused {
		status = "P: resume"
	}
	r.text(panelLeft, boardTop+13, status, styleDim)
	r.text(panelLeft, boardTop+14, "Q: quit", styleDim)
}

func (r *Renderer) drawBanner(lines []string, style tcell.Style) {
	top := boardTop + tetris.Height/2 - len(lines)/2
	width := tetris.Width * cellWidth
	for i, line := range lines {
		pad := max(0, (width-len([]rune(line)))/2)
		r.text(boardLeft+1, top+i, fmt.Sprintf("%*s%-*s", pad, "", width-pad, line), style.Background(tcell.ColorBlack))
	}
}

// block draws a settled or falling cell. Cells above the board are skipped.
func (r *Renderer) block(x, y int, c tetris.Cell) {
	r.cell(x, y, "  ", tcell.StyleDefault.Background(cellColor(c)))
}

func (r *Renderer) cell(x, y int, glyph string, style tcell.Style) {
	if x < 0 || x >= tetris.Width || y < 0 || y >= tetris.Height {
		return
	}
	r.text(boardLeft+1+x*cellWidth, boardTop+1+y, glyph, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func cellColor(c tetris.Cell) tcell.Color {
	rgba := palette.Color(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
