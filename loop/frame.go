package loop

import "github.com/plus3/blockfall/tetris"

type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Engine    *tetris.Engine
}

func newFrame(dt float64, engine *tetris.Engine) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    engine,
	}
}
