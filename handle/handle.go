package handle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is returned for the zero handle and for handles this
	// table never issued.
	ErrInvalid = errors.New("handle: invalid handle")

	// ErrStale is returned for a handle whose value has been removed.
	ErrStale = errors.New("handle: stale handle")

	// ErrClosed is returned by operations on a closed table.
	ErrClosed = errors.New("handle: table closed")

	// ErrFull is returned when every slot index is in use.
	ErrFull = errors.New("handle: table full")
)

// Handle is an opaque reference to a value in a Table.
// The zero Handle is reserved and always invalid.
type Handle uint64

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | (uint64(index) + 1))
}

// Index returns the slot index encoded in h.
// The result is meaningless for the zero handle.
func (h Handle) Index() uint32 { return uint32(h) - 1 }

// Generation returns the slot generation encoded in h.
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// IsZero reports whether h is the reserved zero handle.
func (h Handle) IsZero() bool { return h == 0 }

// String formats h as index@generation.
func (h Handle) String() string {
	if h == 0 {
		return "handle(0)"
	}
	return fmt.Sprintf("handle(%d@%d)", h.Index(), h.Generation())
}

// EventType identifies a table lifecycle event.
type EventType uint8

const (
	// EventInserted is sent after a value is inserted.
	EventInserted EventType = iota
	// EventRemoved is sent after a value is removed, including on Close.
	EventRemoved
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventInserted:
		return "inserted"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle change of one handle.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives table lifecycle events. Observers are called after
// the table lock is released and may call back into the table.
type Observer interface {
	OnHandleEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnHandleEvent calls f(e).
func (f ObserverFunc) OnHandleEvent(e Event) { f(e) }
