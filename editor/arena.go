package editor

import "fmt"

// Handle is a stable, opaque reference into an Arena. Handles survive
// insertion and removal of unrelated entries; a handle to a removed
// entry goes stale rather than dangling, because each slot carries a
// generation that is bumped on reuse. The zero Handle never resolves.
type Handle[T any] struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle[T]) IsZero() bool { return h.gen == 0 }

type arenaSlot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena is an owning collection addressed by generation-checked
// handles. It replaces direct pointers between editor structures:
// windows reference buffers, and windows own selections, through
// handles into arenas held by the editor state.
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
	count int
}

// Insert adds v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle[T] {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.gen++
		s.live = true
		return Handle[T]{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, arenaSlot[T]{value: v, gen: 1, live: true})
	return Handle[T]{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get returns a pointer to the entry for h, or nil if h is stale or
// zero.
func (a *Arena[T]) Get(h Handle[T]) *T {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.value
}

// Must returns the entry for h, panicking on a stale handle. Stale
// handles on the dispatch path are a programming error, not a runtime
// condition.
func (a *Arena[T]) Must(h Handle[T]) *T {
	v := a.Get(h)
	if v == nil {
		panic(fmt.Sprintf("editor: stale arena handle {index:%d gen:%d}", h.index, h.gen))
	}
	return v
}

// Remove deletes the entry for h, returning false if h was already
// stale. The slot is recycled with a new generation.
func (a *Arena[T]) Remove(h Handle[T]) bool {
	if a.Get(h) == nil {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int { return a.count }

// Handles returns the live handles in slot order.
func (a *Arena[T]) Handles() []Handle[T] {
	hs := make([]Handle[T], 0, a.count)
	for i := range a.slots {
		if a.slots[i].live {
			hs = append(hs, Handle[T]{index: uint32(i), gen: a.slots[i].gen})
		}
	}
	return hs
}
