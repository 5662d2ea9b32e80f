package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	cellSize = 30
	margin   = 20
	panelW   = 140

	boardW = tetris.Width * cellSize
	boardH = tetris.Height * cellSize

	screenWidth  = margin + boardW + margin + panelW + margin
	screenHeight = margin + boardH + margin
)

var (
	background = color.RGBA{24, 24, 32, 255}
	gridLine   = color.RGBA{60, 60, 72, 255}
	overlay    = color.RGBA{0, 0, 0, 180}
)

func drawGame(screen *ebiten.Image, s tetris.State, scale float32) {
	screen.Fill(background)

	if s.Phase == tetris.PhaseNotStarted {
		drawDialog(screen, scale, "Welcome to Tetris!", "", "Press Enter to play")
		return
	}

	drawBoard(screen, s, scale)
	drawPanel(screen, s, scale)

	switch s.Phase {
	case tetris.PhasePaused:
		drawDialog(screen, scale, "PAUSED", "", "Press P to resume")
	case tetris.PhaseGameOver:
		drawDialog(screen, scale, "Game Over", fmt.Sprintf("Your Score: %d", s.FinalScore), "Press Enter to play again")
	}
}

func drawBoard(screen *ebiten.Image, s tetris.State, scale float32) {
	vector.StrokeRect(screen, margin*scale, margin*scale, boardW*scale, boardH*scale, 2*scale, gridLine, false)

	for y := range tetris.Height {
		for x := range tetris.Width {
			if c := s.Board[y][x]; c != tetris.Empty {
				fillCell(screen, x, y, palette.Color(c), scale)
			}
		}
	}

	if s.Active.IsZero() || s.Phase == tetris.PhaseGameOver {
		return
	}

	ghost := s.Ghost()
	outline := palette.Ghost(s.Active.Color, 200)
	for col, row := range s.Active.Cells() {
		x, y := s.X+col, ghost+row
		if y < 0 {
			continue
		}
		px, py := cellOrigin(x, y, scale)
		vector.StrokeRect(screen, px+1, py+1, (cellSize-2)*scale, (cellSize-2)*scale, 1.5*scale, outline, false)
	}

	c := palette.Color(s.Active.Color)
	for col, row := range s.Active.Cells() {
		if s.Y+row >= 0 {
			fillCell(screen, s.X+col, s.Y+row, c, scale)
		}
	}
}

func drawPanel(screen *ebiten.Image, s tetris.State, scale float32) {
	left := margin + boardW + margin
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", s.Score), int(float32(left)*scale), margin*int(scale))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", s.Lines), int(float32(left)*scale), (margin+50)*int(scale))
	ebitenutil.DebugPrintAt(screen, "NEXT", int(float32(left)*scale), (margin+100)*int(scale))

	if !s.Next.IsZero() {
		c := palette.Color(s.Next.Color)
		for col, row := range s.Next.Cells() {
			px := float32(left+col*cellSize) * scale
			py := float32(margin+120+row*cellSize) * scale
			vector.DrawFilledRect(screen, px+1, py+1, (cellSize-2)*scale, (cellSize-2)*scale, c, false)
		}
	}

	help := "Arrows: move/rotate\nP: pause\nQ: quit"
	ebitenutil.DebugPrintAt(screen, help, int(float32(left)*scale), (margin+240)*int(scale))
}

func drawDialog(screen *ebiten.Image, scale float32, lines ...string) {
	w, h := float32(boardW-40), float32(20+len(lines)*20)
	x := float32(margin+20) * scale
	y := (float32(margin+boardH/2) - h/2) * scale

	vector.DrawFilledRect(screen, x, y, w*scale, h*scale, overlay, false)
	vector.StrokeRect(screen, x, y, w*scale, h*scale, scale, gridLine, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+10, int(y)+10+i*20*int(scale))
	}
}

func fillCell(screen *ebiten.Image, x, y int, c color.Color, scale float32) {
	px, py := cellOrigin(x, y, scale)
	vector.DrawFilledRect(screen, px+1, py+1, (cellSize-2)*scale, (cellSize-2)*scale, c, false)
}

func cellOrigin(x, y int, scale float32) (float32, float32) {
	return float32(margin+x*cellSize) * scale, float32(margin+y*cellSize) * scale
}
