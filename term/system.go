package term

import (
	"github.com/plus3/blockfall/loop"
)

// RenderSystem redraws the screen once per frame, after the frame's actions
// have been applied.
type RenderSystem struct {
	Renderer *Renderer
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	engine := frame.Engine
	frame.Commands.Defer(func() {
		s.Renderer.Draw(engine.State())
	})
}
