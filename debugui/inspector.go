package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/tetris"
)

// Inspector shows the engine state and offers buttons that queue actions.
type Inspector struct {
	engine *tetris.Engine
	queue  *input.Queue

	// ShowBoard toggles the text dump of the board.
	ShowBoard bool
}

func NewInspector(engine *tetris.Engine, queue *input.Queue) *Inspector {
	return &Inspector{engine: engine, queue: queue, ShowBoard: true}
}

func (in *Inspector) Render() {
	s := in.engine.State()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 420), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase))
	imgui.Text(fmt.Sprintf("Score: %d", s.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", s.Lines))
	imgui.Text(fmt.Sprintf("Pieces: %d", s.Pieces))
	if s.Phase == tetris.PhaseGameOver {
		imgui.Text(fmt.Sprintf("Final score: %d", s.FinalScore))
	}

	imgui.Separator()
	if !s.Active.IsZero() {
		pieceText("Active", s.Active)
		imgui.Text(fmt.Sprintf("Position: (%d, %d)  Ghost row: %d", s.X, s.Y, s.Ghost()))
	}
	if !s.Next.IsZero() {
		pieceText("Next", s.Next)
	}

	imgui.Separator()
	switch s.Phase {
	case tetris.PhaseNotStarted:
		in.button("Start", tetris.ActionStart)
	case tetris.PhaseRunning:
		in.button("Pause", tetris.ActionTogglePause)
		imgui.SameLine()
		in.button("Tick", tetris.ActionTick)
	case tetris.PhasePaused:
		in.button("Resume", tetris.ActionTogglePause)
	case tetris.PhaseGameOver:
		in.button("Play Again", tetris.ActionAcknowledge)
	}
	if s.Playing() || s.Phase == tetris.PhasePaused {
		imgui.SameLine()
		if imgui.Button("New Game") {
			in.engine.Reset()
		}
	}

	imgui.Checkbox("Board dump", &in.ShowBoard)
	if in.ShowBoard {
		for _, line := range BoardLines(s) {
			imgui.Text(line)
		}
	}

	imgui.End()
}

func (in *Inspector) button(label string, action tetris.Action) {
	if imgui.Button(label) {
		in.queue.Push(action)
	}
}

func pieceText(label string, p tetris.Piece) {
	c := palette.Color(p.Color)
	imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
		1.0,
	))
	imgui.Text(fmt.Sprintf("%s: colour %d, %dx%d", label, p.Color, p.Width(), p.Height()))
	imgui.PopStyleColor()
}

// BoardLines renders s as text, one string per row. Settled and falling cells
// show their colour digit, the drop preview shows '+' and empty cells '.'.
func BoardLines(s tetris.State) []string {
	var grid [tetris.Height][tetris.Width]byte
	for y := range tetris.Height {
		for x := range tetris.Width {
			if c := s.Board[y][x]; c != tetris.Empty {
				grid[y][x] = '0' + byte(c)
			} else {
				grid[y][x] = '.'
			}
		}
	}

	if !s.Active.IsZero() && s.Phase != tetris.PhaseNotStarted {
		put := func(x, y int, ch byte) {
			if x >= 0 && x < tetris.Width && y >= 0 && y < tetris.Height {
				grid[y][x] = ch
			}
		}
		ghost := s.Ghost()
		for col, row := range s.Active.Cells() {
			if s.Board.At(s.X+col, ghost+row) == tetris.Empty {
				put(s.X+col, ghost+row, '+')
			}
		}
		for col, row := range s.Active.Cells() {
			put(s.X+col, s.Y+row, '0'+byte(s.Active.Color))
		}
	}

	lines := make([]string, tetris.Height)
	var b strings.Builder
	for y := range grid {
		b.Reset()
		b.Write(grid[y][:])
		lines[y] = b.String()
	}
	return lines
}
