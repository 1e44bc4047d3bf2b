package colorfilter

// ColorFilter is a descriptor for one color effect. It owns the filter
// parameters and lazily materializes the engine effect they describe.
//
// The set of implementations is closed: *BlendFilter, *LightingFilter
// and *ColorMatrixFilter.
//
// A ColorFilter is not safe for concurrent use. Setters and Instance are
// expected to run on the goroutine that drives drawing.
type ColorFilter interface {
	// Kind reports the filter variant.
	Kind() Kind

	// Instance returns the cached effect, building it first if needed.
	Instance() Effect

	// Discard drops the cached effect so the next Instance rebuilds it.
	Discard()

	// Cached reports whether an effect is currently held.
	Cached() bool

	lazy() *lazyEffect
}

// lazyEffect holds zero or one cached effect and the construct function
// supplied by the variant.
//
// Invariant: when built is true, instance came from the most recent
// construct call and reflects the current parameters.
type lazyEffect struct {
	kind      Kind
	construct func() Effect
	instance  Effect
	built     bool
	builds    uint64

	// registered is set while a Registry holds a handle for the filter.
	registered bool
}

func (l *lazyEffect) init(kind Kind, construct func() Effect) {
	l.kind = kind
	l.construct = construct
}

func (l *lazyEffect) lazy() *lazyEffect { return l }

// Kind reports the filter variant.
func (l *lazyEffect) Kind() Kind { return l.kind }

// Instance returns the cached effect. On a cache miss it calls the
// variant's constructor, stores the result and returns it. A nil effect
// from the engine is cached like any other.
func (l *lazyEffect) Instance() Effect {
	if l.built {
		return l.instance
	}
	l.instance = l.construct()
	l.built = true
	l.builds++
	Logger().Debug("colorfilter: effect constructed",
		"kind", l.kind,
		"builds", l.builds)
	return l.instance
}

// Discard clears the cached effect. It is idempotent and does not rebuild.
func (l *lazyEffect) Discard() {
	l.instance = nil
	l.built = false
}

// Cached reports whether an effect is currently held.
func (l *lazyEffect) Cached() bool { return l.built }

// Builds returns how many times the effect has been constructed.
func (l *lazyEffect) Builds() uint64 { return l.builds }

// update applies a parameter change and invalidates the cache.
// Every setter goes through here.
func (l *lazyEffect) update(apply func()) {
	apply()
	l.Discard()
}

// isNilFilter reports whether f is nil or wraps a nil pointer.
func isNilFilter(f ColorFilter) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *BlendFilter:
		return v == nil
	case *LightingFilter:
		return v == nil
	case *ColorMatrixFilter:
		return v == nil
	}
	return false
}
