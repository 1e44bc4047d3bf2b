package colorfilter

// Kind identifies a filter variant. The set is closed.
type Kind uint8

// Filter kinds.
const (
	// KindBlend composites a constant color with each pixel.
	KindBlend Kind = iota

	// KindLighting multiplies and then adds a color per channel.
	KindLighting

	// KindColorMatrix applies a 4x5 color transform.
	KindColorMatrix
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlend:
		return "Blend"
	case KindLighting:
		return "Lighting"
	case KindColorMatrix:
		return "ColorMatrix"
	default:
		return "Unknown"
	}
}

// Effect is an opaque, ready-to-use color effect produced by an Engine.
//
// Effects are immutable once built. A filter keeps one reference and may
// hand the same Effect to any number of draw calls; the garbage collector
// reclaims it once the filter discards it and no draw holds it.
type Effect interface {
	// Kind reports which factory produced the effect.
	Kind() Kind
}

// Engine constructs effects from filter parameters.
//
// Each method must be a pure function of its arguments: calling it twice
// with the same values yields functionally equivalent effects, although
// not necessarily the same object. Engines validate their own inputs; an
// engine that cannot build an effect may return nil, which filters cache
// and pass through unchanged.
type Engine interface {
	// Blend builds an effect compositing color (as source) onto each pixel
	// (as destination) with mode.
	Blend(color Color, mode BlendMode) Effect

	// Lighting builds an effect computing clamp(c*mul/255 + add) per RGB channel.
	Lighting(mul, add Color) Effect

	// ColorMatrix builds an effect applying m to each pixel.
	ColorMatrix(m ColorMatrix) Effect
}
