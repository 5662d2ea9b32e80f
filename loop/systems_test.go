package loop_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func newRunningLoop(t *testing.T, interval time.Duration) (*tetris.Engine, *loop.Scheduler, *loop.GravitySystem, *input.Queue) {
	t.Helper()

	engine := tetris.NewEngine(tetris.NewRand(5))
	queue := input.NewQueue(16)
	gravity := loop.NewGravitySystem(interval)

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Queue: queue})
	scheduler.Register(gravity)

	engine.Dispatch(tetris.ActionStart)
	return engine, scheduler, gravity, queue
}

func TestGravityTicksOnInterval(t *testing.T) {
	engine, scheduler, gravity, _ := newRunningLoop(t, 100*time.Millisecond)

	for range 9 {
		scheduler.Once(0.01)
	}
	assert.Equal(t, 0, engine.State().Y, "no tick before the interval elapses")

	scheduler.Once(0.01)
	scheduler.Once(0.001)
	assert.Equal(t, 1, engine.State().Y)
	assert.Equal(t, int64(1), gravity.Ticks())

	scheduler.Once(0.2)
	assert.Equal(t, 3, engine.State().Y, "a long frame catches up")
}

func TestGravityCatchUpIsBounded(t *testing.T) {
	engine, scheduler, gravity, _ := newRunningLoop(t, 10*time.Millisecond)

	scheduler.Once(10)
	assert.Equal(t, int64(4), gravity.Ticks())
	assert.Equal(t, 4, engine.State().Y)

	scheduler.Once(0.001)
	assert.Equal(t, int64(4), gravity.Ticks(), "backlog is dropped after a stall")
}

func TestGravityIdleWhilePaused(t *testing.T) {
	engine, scheduler, gravity, queue := newRunningLoop(t, 100*time.Millisecond)

	scheduler.Once(0.09)
	queue.Push(tetris.ActionTogglePause)
	scheduler.Once(0.005)
	assert.Equal(t, tetris.PhasePaused, engine.Phase())

	for range 50 {
		scheduler.Once(0.1)
	}
	assert.Equal(t, int64(0), gravity.Ticks())
	assert.Equal(t, 0, engine.State().Y)

	queue.Push(tetris.ActionTogglePause)
	scheduler.Once(0.05)
	scheduler.Once(0.05)
	assert.Equal(t, 0, engine.State().Y, "the timer restarts after resuming")

	scheduler.Once(0.06)
	assert.Equal(t, 1, engine.State().Y)
}

func TestGravityRearmsOnIntervalChange(t *testing.T) {
	engine, scheduler, gravity, _ := newRunningLoop(t, 100*time.Millisecond)

	scheduler.Once(0.09)
	gravity.SetInterval(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, gravity.Interval())

	scheduler.Once(0.02)
	assert.Equal(t, 0, engine.State().Y, "elapsed time from the old interval is discarded")

	scheduler.Once(0.04)
	assert.Equal(t, 1, engine.State().Y)
}

func TestGravityDefaultInterval(t *testing.T) {
	gravity := loop.NewGravitySystem(0)
	assert.Equal(t, loop.DefaultTickInterval, gravity.Interval())
	gravity.SetInterval(-time.Second)
	assert.Equal(t, loop.DefaultTickInterval, gravity.Interval())
}

func TestInputSystemForwardsInOrder(t *testing.T) {
	engine, scheduler, _, queue := newRunningLoop(t, time.Hour)
	x := engine.State().X

	queue.Push(tetris.ActionMoveLeft)
	queue.Push(tetris.ActionMoveLeft)
	queue.Push(tetris.ActionMoveRight)
	scheduler.Once(0.016)

	assert.Equal(t, x-1, engine.State().X)
	assert.Equal(t, 0, queue.Len())
}

func TestGravityStopsAfterEngineReset(t *testing.T) {
	engine, scheduler, gravity, queue := newRunningLoop(t, 100*time.Millisecond)

	scheduler.Once(0.09)
	engine.Reset()
	scheduler.Once(0.5)
	assert.Zero(t, gravity.Ticks(), "a reset game is not playing")
	assert.Equal(t, tetris.PhaseNotStarted, engine.Phase())

	queue.Push(tetris.ActionConfirm)
	scheduler.Once(0)
	assert.Equal(t, tetris.PhaseRunning, engine.Phase())

	scheduler.Once(0.09)
	assert.Zero(t, gravity.Ticks(), "the timer re-arms for the new game")
	scheduler.Once(0.02)
	assert.Equal(t, int64(1), gravity.Ticks())
}
