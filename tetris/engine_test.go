package tetris_test

import (
	"sync"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestEngineDispatch(t *testing.T) {
	engine := tetris.NewEngine(tetris.NewRand(7))
	assert.Equal(t, tetris.PhaseNotStarted, engine.Phase())

	out := engine.Dispatch(tetris.ActionMoveLeft)
	assert.False(t, out.Changed())

	out = engine.Dispatch(tetris.ActionStart)
	assert.True(t, out.Has(tetris.EventStarted))
	assert.Equal(t, tetris.PhaseRunning, engine.Phase())

	snapshot := engine.State()
	engine.Dispatch(tetris.ActionTick)
	assert.Equal(t, tetris.SpawnY, snapshot.Y, "snapshots are values")
	assert.Equal(t, tetris.SpawnY+1, engine.State().Y)

	engine.Reset()
	assert.Equal(t, tetris.State{}, engine.State())

	out = engine.Dispatch(tetris.ActionConfirm)
	assert.True(t, out.Has(tetris.EventStarted), "a reset engine starts a new game")
}

func TestEngineListeners(t *testing.T) {
	engine := tetris.NewEngine(tetris.NewRand(1))

	var events []tetris.Outcome
	var phases []tetris.Phase
	engine.Subscribe(func(prev, next tetris.State, out tetris.Outcome) {
		events = append(events, out)
		phases = append(phases, next.Phase)
	})

	engine.Dispatch(tetris.ActionRotate) // ignored, no notification
	engine.Dispatch(tetris.ActionStart)
	engine.Dispatch(tetris.ActionTogglePause)
	engine.Dispatch(tetris.ActionTick) // ignored while paused
	engine.Dispatch(tetris.ActionTogglePause)

	assert.Len(t, events, 3)
	assert.Equal(t, []tetris.Phase{tetris.PhaseRunning, tetris.PhasePaused, tetris.PhaseRunning}, phases)
	assert.True(t, events[1].Has(tetris.EventPaused))
}

func TestEnginePlaysToGameOver(t *testing.T) {
	engine := tetris.NewEngine(tetris.NewRand(99))
	engine.Dispatch(tetris.ActionStart)

	var final tetris.State
	engine.Subscribe(func(prev, next tetris.State, out tetris.Outcome) {
		if out.Has(tetris.EventGameOver) {
			final = next
		}
	})

	// Without input every piece stacks in the spawn column.
	for range 10_000 {
		if engine.Phase() == tetris.PhaseGameOver {
			break
		}
		engine.Dispatch(tetris.ActionTick)
	}

	assert.Equal(t, tetris.PhaseGameOver, engine.Phase())
	assert.Equal(t, tetris.PhaseGameOver, final.Phase)
	assert.Equal(t, tetris.Board{}, engine.State().Board)

	engine.Dispatch(tetris.ActionAcknowledge)
	assert.Equal(t, tetris.PhaseNotStarted, engine.Phase())
}

func TestEngineConcurrentDispatch(t *testing.T) {
	engine := tetris.NewEngine(tetris.NewRand(3))
	engine.Dispatch(tetris.ActionStart)

	var wg sync.WaitGroup
	for _, a := range []tetris.Action{tetris.ActionTick, tetris.ActionMoveLeft, tetris.ActionMoveRight, tetris.ActionRotate} {
		wg.Add(1)
		go func(a tetris.Action) {
			defer wg.Done()
			for range 500 {
				engine.Dispatch(a)
				if engine.Phase() == tetris.PhaseGameOver {
					engine.Dispatch(tetris.ActionConfirm)
					engine.Dispatch(tetris.ActionConfirm)
				}
			}
		}(a)
	}
	wg.Wait()

	s := engine.State()
	for y := range s.Board {
		for _, c := range s.Board[y] {
			assert.LessOrEqual(t, c, tetris.Cell(tetris.PieceCount))
		}
	}
}
