// Package input collects player actions from frontends. Key tables map
// device keys to actions and a Queue hands them to the game loop.
package input

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// DefaultQueueLimit bounds how many actions may wait for the next frame.
const DefaultQueueLimit = 64

// Queue is a bounded FIFO of actions safe for use by one producer goroutine
// and the loop goroutine at the same time.
type Queue struct {
	mu      sync.Mutex
	actions []tetris.Action
	limit   int
	dropped int
}

// NewQueue creates a queue holding at most limit actions. A non-positive limit
// uses DefaultQueueLimit.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &Queue{
		actions: make([]tetris.Action, 0, limit),
		limit:   limit,
	}
}

// Push appends an action. It returns false and drops the action when the
// queue is full.
func (q *Queue) Push(action tetris.Action) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.actions) >= q.limit {
		q.dropped++
		return false
	}
	q.actions = append(q.actions, action)
	return true
}

// Drain removes and returns every queued action in arrival order.
func (q *Queue) Drain() []tetris.Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.actions) == 0 {
		return nil
	}
	out := make([]tetris.Action, len(q.actions))
	copy(out, q.actions)
	q.actions = q.actions[:0]
	return out
}

// Len returns the number of waiting actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

// Dropped returns how many actions were rejected because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
