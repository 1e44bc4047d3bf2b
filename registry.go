package colorfilter

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/colorfilter/handle"
)

// Handle is the opaque integer a runtime peer holds for one filter.
type Handle = handle.Handle

// Registry bridges runtime-held handles to filter descriptors.
//
// It owns the handle table and exposes the entry points a runtime binding
// calls: creation, per-variant setters taking primitive arguments, and
// release. Lookups are validated; a stale or never-issued handle yields
// an error wrapping handle.ErrStale or handle.ErrInvalid.
//
// The handle table is safe for concurrent use, but each filter is not:
// calls that touch the same filter must come from one goroutine.
type Registry struct {
	engine Engine
	table  *handle.Table[ColorFilter]
	logger *slog.Logger
}

// NewRegistry creates a registry whose filters build effects with e.
func NewRegistry(e Engine, opts ...RegistryOption) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		engine: e,
		table:  handle.NewTable[ColorFilter](o.capacity),
		logger: o.logger,
	}
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// Register adds an existing filter and returns its handle.
// A filter holds at most one live handle at a time; registering it again
// before Release fails with ErrAlreadyRegistered.
func (r *Registry) Register(f ColorFilter) (Handle, error) {
	if isNilFilter(f) {
		return 0, ErrNilFilter
	}
	l := f.lazy()
	if l.registered {
		return 0, fmt.Errorf("%w: %s filter", ErrAlreadyRegistered, f.Kind())
	}
	h, err := r.table.Insert(f)
	if err != nil {
		return 0, fmt.Errorf("colorfilter: register %s filter: %w", f.Kind(), err)
	}
	l.registered = true
	r.log().Debug("colorfilter: filter registered", "handle", h, "kind", f.Kind())
	return h, nil
}

// NewBlend creates a blend filter and returns its handle.
func (r *Registry) NewBlend(color Color, mode BlendMode) (Handle, error) {
	if r.engine == nil {
		return 0, ErrNilEngine
	}
	return r.Register(NewBlendFilter(r.engine, color, mode))
}

// NewLighting creates a lighting filter and returns its handle.
func (r *Registry) NewLighting(mul, add Color) (Handle, error) {
	if r.engine == nil {
		return 0, ErrNilEngine
	}
	return r.Register(NewLightingFilter(r.engine, mul, add))
}

// NewColorMatrix creates a color matrix filter from 20 coefficients and
// returns its handle. Any other length fails with ErrMatrixLength.
func (r *Registry) NewColorMatrix(coeffs []float32) (Handle, error) {
	if r.engine == nil {
		return 0, ErrNilEngine
	}
	m, err := ColorMatrixFromSlice(coeffs)
	if err != nil {
		return 0, err
	}
	return r.Register(NewColorMatrixFilter(r.engine, m))
}

// FromHandle returns the filter for h.
func (r *Registry) FromHandle(h Handle) (ColorFilter, error) {
	f, err := r.table.Get(h)
	if err != nil {
		r.log().Warn("colorfilter: lookup failed", "handle", h, "err", err)
		return nil, fmt.Errorf("colorfilter: %v: %w", h, err)
	}
	return f, nil
}

// Instance returns the effect for h, building it if needed.
func (r *Registry) Instance(h Handle) (Effect, error) {
	f, err := r.FromHandle(h)
	if err != nil {
		return nil, err
	}
	return f.Instance(), nil
}

// SetLightingMultiply updates the multiply color of a lighting filter.
func (r *Registry) SetLightingMultiply(h Handle, mul Color) error {
	f, err := lookupAs[*LightingFilter](r, h, "set multiply")
	if err != nil {
		return err
	}
	f.SetMultiply(mul)
	return nil
}

// SetLightingAdd updates the add color of a lighting filter.
func (r *Registry) SetLightingAdd(h Handle, add Color) error {
	f, err := lookupAs[*LightingFilter](r, h, "set add")
	if err != nil {
		return err
	}
	f.SetAdd(add)
	return nil
}

// SetColorMatrix replaces the coefficients of a color matrix filter.
// coeffs must hold exactly 20 values.
func (r *Registry) SetColorMatrix(h Handle, coeffs []float32) error {
	f, err := lookupAs[*ColorMatrixFilter](r, h, "set matrix")
	if err != nil {
		return err
	}
	return f.SetMatrixSlice(coeffs)
}

// Release removes the filter for h and drops its cached effect.
// The handle is stale afterwards.
func (r *Registry) Release(h Handle) error {
	f, err := r.table.Remove(h)
	if err != nil {
		r.log().Warn("colorfilter: release failed", "handle", h, "err", err)
		return fmt.Errorf("colorfilter: release %v: %w", h, err)
	}
	f.lazy().registered = false
	f.Discard()
	r.log().Debug("colorfilter: filter released", "handle", h, "kind", f.Kind())
	return nil
}

// Len returns the number of live filters.
func (r *Registry) Len() int {
	return r.table.Len()
}

// Close releases every filter. The registry cannot be used afterwards.
func (r *Registry) Close() error {
	r.table.Each(func(_ Handle, f ColorFilter) bool {
		f.lazy().registered = false
		f.Discard()
		return true
	})
	return r.table.Close()
}

// lookupAs resolves h and asserts the filter variant.
func lookupAs[F ColorFilter](r *Registry, h Handle, op string) (F, error) {
	var zero F
	f, err := r.FromHandle(h)
	if err != nil {
		return zero, err
	}
	typed, ok := f.(F)
	if !ok {
		return zero, fmt.Errorf("%w: %s on %s filter", ErrWrongKind, op, f.Kind())
	}
	return typed, nil
}
