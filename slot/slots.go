// Package slot provides a growable collection of optional values that reuses
// freed slots before growing.
package slot

// entry is one slot; ok is false for a free slot
type entry[T any] struct {
	val T
	ok  bool
}

// Slots is an arena of optional T
// Removal empties a slot in place; the backing slice never shrinks
// Indices are internal and never exposed, iteration order is slot order
type Slots[T any] struct {
	items    []entry[T]
	occupied int

	// Removal marks reused across Update calls
	marked []int
}

// New creates a collection with room for capacity slots before reallocating
func New[T any](capacity int) *Slots[T] {
	return &Slots[T]{
		items: make([]entry[T], 0, capacity),
	}
}

// Insert places v into the lowest-index free slot, appending when none is free
func (s *Slots[T]) Insert(v T) {
	s.occupied++
	for i := range s.items {
		if !s.items[i].ok {
			s.items[i] = entry[T]{val: v, ok: true}
			return
		}
	}
	s.items = append(s.items, entry[T]{val: v, ok: true})
}

// Len returns the number of occupied slots
func (s *Slots[T]) Len() int {
	return s.occupied
}

// Empty reports whether no slot is occupied
func (s *Slots[T]) Empty() bool {
	return s.occupied == 0
}

// Each calls fn for every occupied slot in slot order
// fn must not insert into or remove from s
func (s *Slots[T]) Each(fn func(v *T)) {
	for i := range s.items {
		if s.items[i].ok {
			fn(&s.items[i].val)
		}
	}
}

// Update calls fn for every occupied slot, fn may mutate the value and returns
// false to mark the slot for removal
// Marked slots are emptied after the whole pass, returns the number removed
func (s *Slots[T]) Update(fn func(v *T) bool) int {
	s.marked = s.marked[:0]
	for i := range s.items {
		if !s.items[i].ok {
			continue
		}
		if !fn(&s.items[i].val) {
			s.marked = append(s.marked, i)
		}
	}

	for _, i := range s.marked {
		var zero T
		s.items[i] = entry[T]{val: zero}
	}
	s.occupied -= len(s.marked)
	return len(s.marked)
}
