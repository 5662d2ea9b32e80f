package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Game adapts the scheduler to ebiten's update and draw callbacks.
type Game struct {
	engine    *tetris.Engine
	scheduler *loop.Scheduler
	queue     *input.Queue
	keys      *input.Bindings[ebiten.Key]
	scale     int

	// Set only with -debug-ui.
	imguiBackend *debugui_ebiten.ImguiBackend
	imgui        *debugui.ImguiSystem
	perf         *debugui.PerformanceStats
}

func defaultKeys() *input.Bindings[ebiten.Key] {
	return input.NewBindings[ebiten.Key](16).
		Bind(ebiten.KeyArrowLeft, tetris.ActionMoveLeft).
		Bind(ebiten.KeyArrowRight, tetris.ActionMoveRight).
		Bind(ebiten.KeyArrowDown, tetris.ActionSoftDrop).
		Bind(ebiten.KeyArrowUp, tetris.ActionRotate).
		Bind(ebiten.KeyP, tetris.ActionTogglePause).
		Bind(ebiten.KeyEnter, tetris.ActionConfirm).
		Bind(ebiten.KeySpace, tetris.ActionConfirm)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		defer g.imguiBackend.EndFrame()
		g.perf.Record(float32(dt))
	}

	// Keys typed into an ImGui widget are not game input.
	if g.imgui == nil || !g.imgui.InputState.WantCaptureKeyboard {
		for _, key := range g.keys.Keys() {
			if inpututil.IsKeyJustPressed(key) {
				g.keys.Press(key, g.queue)
			}
		}
	}

	g.scheduler.Once(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.engine.State(), float32(g.scale))

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width(), g.height()
}

func (g *Game) width() int  { return screenWidth * g.scale }
func (g *Game) height() int { return screenHeight * g.scale }
