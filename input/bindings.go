package input

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Bindings maps integer key codes of a frontend to engine actions.
type Bindings[K intmap.IntKey] struct {
	actions *intmap.Map[K, tetris.Action]
}

// NewBindings creates an empty table.
func NewBindings[K intmap.IntKey](capacity int) *Bindings[K] {
	return &Bindings[K]{
		actions: intmap.New[K, tetris.Action](capacity),
	}
}

// Bind maps key to action, replacing any earlier binding. It returns b so
// tables can be built in one expression.
func (b *Bindings[K]) Bind(key K, action tetris.Action) *Bindings[K] {
	b.actions.Put(key, action)
	return b
}

// Unbind removes the binding for key.
func (b *Bindings[K]) Unbind(key K) {
	b.actions.Del(key)
}

// Lookup returns the action bound to key.
func (b *Bindings[K]) Lookup(key K) (tetris.Action, bool) {
	return b.actions.Get(key)
}

// Len returns the number of bound keys.
func (b *Bindings[K]) Len() int {
	return b.actions.Len()
}

// Keys returns the bound keys in ascending order.
func (b *Bindings[K]) Keys() []K {
	return slices.Sorted(b.actions.Keys())
}

// Press looks up key and queues its action. It reports whether the key was
// bound and the action accepted.
func (b *Bindings[K]) Press(key K, q *Queue) bool {
	action, ok := b.Lookup(key)
	if !ok {
		return false
	}
	return q.Push(action)
}
