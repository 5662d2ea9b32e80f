// Package loop drives a tetris.Engine from a fixed sequence of systems. Each
// frame runs every registered system in order, then flushes the actions and
// deferred calls they queued.
package loop

// System is one step of a frame. Systems may keep their own state between
// frames; they change the game only through frame.Commands.
type System interface {
	Execute(frame *Frame)
}
