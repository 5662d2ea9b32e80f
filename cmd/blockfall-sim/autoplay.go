package main

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var playActions = [...]tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionRotate,
	tetris.ActionSoftDrop,
}

// AutoplaySystem stands in for a player: it starts and restarts games and
// presses a random key on some frames.
type AutoplaySystem struct {
	Rand tetris.Rand

	// Percent of frames on which a key is pressed.
	PressRate int
}

func (s *AutoplaySystem) Execute(frame *loop.Frame) {
	switch frame.Engine.Phase() {
	case tetris.PhaseNotStarted, tetris.PhaseGameOver:
		frame.Commands.Dispatch(tetris.ActionConfirm)
	case tetris.PhaseRunning:
		if s.Rand.IntN(100) < s.PressRate {
			frame.Commands.Dispatch(playActions[s.Rand.IntN(len(playActions))])
		}
	}
}

// tally returns a listener that accumulates totals.
func (g *GameTotals) tally() tetris.Listener {
	return func(_, next tetris.State, out tetris.Outcome) {
		if out.Has(tetris.EventSettled) {
			g.Pieces++
		}
		g.Lines += out.Cleared
		if out.Has(tetris.EventGameOver) {
			g.Games++
			g.BestScore = max(g.BestScore, next.FinalScore)
		}
	}
}
