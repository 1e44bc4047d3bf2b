package colorfilter

// BlendFilter composites a constant color onto every pixel.
// Its parameters are fixed at construction, so once built the effect
// stays valid for the filter's lifetime.
type BlendFilter struct {
	lazyEffect
	color Color
	mode  BlendMode
}

// NewBlendFilter creates a blend filter. The effect is built by e on the
// first call to Instance; e must not be nil.
func NewBlendFilter(e Engine, color Color, mode BlendMode) *BlendFilter {
	f := &BlendFilter{color: color, mode: mode}
	f.init(KindBlend, func() Effect {
		return e.Blend(f.color, f.mode)
	})
	return f
}

// Color returns the source color.
func (f *BlendFilter) Color() Color { return f.color }

// Mode returns the blend mode.
func (f *BlendFilter) Mode() BlendMode { return f.mode }
