package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Keys translates tcell key events into queued actions.
type Keys struct {
	Special *input.Bindings[tcell.Key]
	Runes   *input.Bindings[rune]
}

// DefaultKeys binds the arrow keys, P for pause and Enter or space to start
// and acknowledge.
func DefaultKeys() *Keys {
	special := input.NewBindings[tcell.Key](8).
		Bind(tcell.KeyLeft, tetris.ActionMoveLeft).
		Bind(tcell.KeyRight, tetris.ActionMoveRight).
		Bind(tcell.KeyDown, tetris.ActionSoftDrop).
		Bind(tcell.KeyUp, tetris.ActionRotate).
		Bind(tcell.KeyEnter, tetris.ActionConfirm)

	runes := input.NewBindings[rune](8).
		Bind('p', tetris.ActionTogglePause).
		Bind('P', tetris.ActionTogglePause).
		Bind(' ', tetris.ActionConfirm)

	return &Keys{Special: special, Runes: runes}
}

// Handle queues the action bound to ev. It returns true when ev asks to quit.
func (k *Keys) Handle(ev *tcell.EventKey, q *input.Queue) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		}
		k.Runes.Press(ev.Rune(), q)
	default:
		k.Special.Press(ev.Key(), q)
	}
	return false
}
