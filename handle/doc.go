// Package handle provides a generation-checked table mapping opaque
// integer handles to live Go values.
//
// A managed runtime holds a Handle instead of a pointer. Lookups validate
// the handle instead of trusting it:
//
//	t := handle.NewTable[*Filter](64)
//	h, _ := t.Insert(f)
//	f, err := t.Get(h)        // ok
//	t.Remove(h)
//	_, err = t.Get(h)         // errors.Is(err, handle.ErrStale)
//
// # Layout
//
// The low 32 bits of a Handle hold the slot index plus one, the high 32
// bits hold the slot generation. Removed slots are recycled through a
// free list and their generation is bumped, so a handle to a removed
// value never aliases the value that later reuses its slot. The zero
// Handle is never issued.
//
// # Thread Safety
//
// Table is safe for concurrent use. It must not be copied after creation.
package handle
