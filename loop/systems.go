package loop

import (
	"sync/atomic"
	"time"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// DefaultTickInterval is the gravity period of a new game.
const DefaultTickInterval = time.Second

// maxTicksPerFrame caps catch-up after a long stall.
const maxTicksPerFrame = 4

// InputSystem forwards queued player actions to the engine.
type InputSystem struct {
	Queue *input.Queue
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, action := range s.Queue.Drain() {
		frame.Commands.Dispatch(action)
	}
}

// GravitySystem emits a tick every interval while the game is running. The
// phase is read from the engine on every frame, and the timer is re-armed
// whenever the game stops running or the interval changes, so no tick is
// carried over a pause, a game over or a speed change.
type GravitySystem struct {
	interval atomic.Int64

	armed         bool
	armedInterval time.Duration
	elapsed       float64
	ticks         int64
}

// NewGravitySystem creates a gravity system with the given period. A
// non-positive interval uses DefaultTickInterval.
func NewGravitySystem(interval time.Duration) *GravitySystem {
	g := &GravitySystem{}
	g.SetInterval(interval)
	return g
}

// SetInterval changes the gravity period. It may be called from any
// goroutine; the change re-arms the timer on the next frame.
func (g *GravitySystem) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	g.interval.Store(int64(interval))
}

// Interval returns the current gravity period.
func (g *GravitySystem) Interval() time.Duration {
	return time.Duration(g.interval.Load())
}

// Ticks returns how many ticks the system has emitted.
func (g *GravitySystem) Ticks() int64 {
	return g.ticks
}

func (g *GravitySystem) Execute(frame *Frame) {
	if !frame.Engine.State().Playing() {
		g.armed = false
		return
	}

	interval := g.Interval()
	if !g.armed || interval != g.armedInterval {
		g.armed = true
		g.armedInterval = interval
		g.elapsed = 0
	}

	g.elapsed += frame.DeltaTime
	period := interval.Seconds()

	emitted := 0
	for g.elapsed >= period && emitted < maxTicksPerFrame {
		g.elapsed -= period
		frame.Commands.Dispatch(tetris.ActionTick)
		g.ticks++
		emitted++
	}
	if emitted == maxTicksPerFrame {
		g.elapsed = 0
	}
}
