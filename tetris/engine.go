package tetris

import (
	"sync"
	"time"
)

// Listener is notified after every transition that changed the state.
type Listener func(prev, next State, out Outcome)

// Engine owns the authoritative game state. Dispatch serializes transitions,
// so a timer and an input source may call it from different goroutines.
type Engine struct {
	mu        sync.Mutex
	state     State
	rng       Rand
	listeners []Listener
}

// NewEngine creates an engine in PhaseNotStarted. A nil rng is replaced by a
// time-seeded source.
func NewEngine(rng Rand) *Engine {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Phase
}

// Subscribe registers l for state changes. Listeners run while the engine
// lock is held, in dispatch order, and must not call back into the engine.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Dispatch applies action to the current state.
func (e *Engine) Dispatch(action Action) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.state
	next, out := Reduce(prev, action, e.rng)
	if !out.Changed() {
		return out
	}

	e.state = next
	for _, l := range e.listeners {
		l(prev, next, out)
	}
	return out
}

// Reset discards the current game and returns to PhaseNotStarted.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = State{}
}
