package software

import (
	"image"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/blend"
	"github.com/gogpu/colorfilter/internal/cache"
)

// Effect is an effect that can run on the CPU.
type Effect interface {
	colorfilter.Effect

	// FilterColor transforms a single unpremultiplied color.
	FilterColor(c colorfilter.Color) colorfilter.Color

	// Apply transforms the pixels of img inside r in place.
	// r is clipped to img.Bounds().
	Apply(img *image.RGBA, r image.Rectangle)
}

// Engine builds CPU effects.
// Engine is safe for concurrent use; the effects it returns are immutable.
type Engine struct {
	luts *cache.Cache[lutKey, *lightingLUT]
}

var _ colorfilter.Engine = (*Engine)(nil)

// New creates a software engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		luts: cache.New[lutKey, *lightingLUT](o.lutCacheSize),
	}
}

// Blend returns a blend effect, or nil if mode is not a known blend mode.
func (e *Engine) Blend(color colorfilter.Color, mode colorfilter.BlendMode) colorfilter.Effect {
	if !mode.IsValid() {
		colorfilter.Logger().Warn("software: unknown blend mode", "mode", mode)
		return nil
	}
	p := color.Premultiplied()
	return &BlendEffect{
		color: color,
		mode:  mode,
		src:   blend.Pixel{R: p.R, G: p.G, B: p.B, A: p.A},
		fn:    blend.Lookup(blend.Mode(mode)),
	}
}

// Lighting returns a lighting effect.
func (e *Engine) Lighting(mul, add colorfilter.Color) colorfilter.Effect {
	key := newLUTKey(mul, add)
	lut := e.luts.GetOrCreate(key, func() *lightingLUT {
		return buildLightingLUT(key)
	})
	return &LightingEffect{mul: mul, add: add, lut: lut}
}

// ColorMatrix returns a color matrix effect.
func (e *Engine) ColorMatrix(m colorfilter.ColorMatrix) colorfilter.Effect {
	return &MatrixEffect{matrix: m, identity: m.IsIdentity()}
}

// CachedLUTs returns the number of memoized lighting tables.
func (e *Engine) CachedLUTs() int {
	return e.luts.Len()
}
