package loop

import "github.com/plus3/blockfall/tetris"

// Commands buffers actions queued by systems during a frame. They are applied
// to the engine after every system has run, in the order they were queued.
type Commands struct {
	actions []tetris.Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Dispatch queues an action for the engine.
func (c *Commands) Dispatch(action tetris.Action) {
	if action == tetris.ActionNone {
		return
	}
	c.actions = append(c.actions, action)
}

// Defer queues a function to run after the queued actions are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies queued actions to engine, runs deferred functions and resets
// the buffer. It returns the combined outcome of the applied actions.
func (c *Commands) Flush(engine *tetris.Engine) tetris.Outcome {
	var total tetris.Outcome
	for _, action := range c.actions {
		out := engine.Dispatch(action)
		total.Events |= out.Events
		total.Cleared += out.Cleared
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
	return total
}
