package handle

import (
	"math"
	"sync"
)

// maxSlots bounds the slot count so index+1 fits in 32 bits.
const maxSlots = math.MaxUint32 - 1

// maxGeneration is the last generation a slot can carry.
const maxGeneration = math.MaxUint32

// Table maps handles to values of type T.
type Table[T any] struct {
	mu        sync.RWMutex
	slots     []slot[T]
	free      []uint32
	live      int
	closed    bool
	observers []Observer
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// NewTable creates an empty table with room for capacity values before
// the slot slice grows.
func NewTable[T any](capacity int) *Table[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Table[T]{
		slots: make([]slot[T], 0, capacity),
		free:  make([]uint32, 0, capacity/4),
	}
}

// Insert stores v and returns a new handle for it.
func (t *Table[T]) Insert(v T) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if len(t.slots) >= maxSlots {
			t.mu.Unlock()
			return 0, ErrFull
		}
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{gen: 1})
	}

	s := &t.slots[idx]
	s.value = v
	s.live = true
	t.live++
	h := makeHandle(idx, s.gen)
	obs := t.observers
	t.mu.Unlock()

	notify(obs, Event{Type: EventInserted, Handle: h, Value: v})
	return h, nil
}

// Get returns the value for h.
// It fails with ErrInvalid, ErrStale or ErrClosed.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Remove deletes the value for h and returns it. The handle, and every
// copy of it, becomes stale.
func (t *Table[T]) Remove(h Handle) (T, error) {
	t.mu.Lock()
	s, err := t.lookup(h)
	if err != nil {
		t.mu.Unlock()
		var zero T
		return zero, err
	}

	v := t.release(h.Index(), s)
	obs := t.observers
	t.mu.Unlock()

	notify(obs, Event{Type: EventRemoved, Handle: h, Value: v})
	return v, nil
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

// Each calls fn for every live value until fn returns false.
// fn runs under the table's read lock and must not modify the table.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.slots {
		s := &t.slots[i]
		if !s.live {
			continue
		}
		if !fn(makeHandle(uint32(i), s.gen), s.value) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Copy on write: notify iterates a snapshot taken under the lock.
	obs := make([]Observer, len(t.observers), len(t.observers)+1)
	copy(obs, t.observers)
	t.observers = append(obs, o)
}

// Close removes every live value and rejects further operations.
// Observers receive EventRemoved for each value. Close is idempotent.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}

	var events []Event
	for i := range t.slots {
		s := &t.slots[i]
		if !s.live {
			continue
		}
		h := makeHandle(uint32(i), s.gen)
		v := t.release(uint32(i), s)
		events = append(events, Event{Type: EventRemoved, Handle: h, Value: v})
	}
	t.closed = true
	t.slots = nil
	t.free = nil
	obs := t.observers
	t.mu.Unlock()

	for _, e := range events {
		notify(obs, e)
	}
	return nil
}

// lookup validates h. Caller must hold t.mu.
func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	if t.closed {
		return nil, ErrClosed
	}
	if h == 0 {
		return nil, ErrInvalid
	}
	idx := h.Index()
	if int64(idx) >= int64(len(t.slots)) {
		return nil, ErrInvalid
	}
	s := &t.slots[idx]
	gen := h.Generation()
	switch {
	case gen > s.gen:
		return nil, ErrInvalid
	case gen < s.gen || !s.live:
		return nil, ErrStale
	}
	return s, nil
}

// release clears a live slot, bumps its generation and recycles it.
// A slot whose generation reaches maxGeneration is retired instead of
// recycled, so a generation is never issued twice for the same index.
// Caller must hold t.mu for writing.
func (t *Table[T]) release(idx uint32, s *slot[T]) T {
	v := s.value
	var zero T
	s.value = zero
	s.live = false
	t.live--
	if s.gen == maxGeneration {
		return v
	}
	s.gen++
	t.free = append(t.free, idx)
	return v
}

func notify(obs []Observer, e Event) {
	for _, o := range obs {
		o.OnHandleEvent(e)
	}
}
