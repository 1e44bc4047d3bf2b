package software

import (
	"image"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/blend"
)

// lutKey identifies a lighting table. Alpha channels are ignored by
// the lighting transform, so they are masked out.
type lutKey struct {
	mul, add colorfilter.Color
}

func newLUTKey(mul, add colorfilter.Color) lutKey {
	return lutKey{mul: mul.WithAlpha(0), add: add.WithAlpha(0)}
}

// lightingLUT maps each unpremultiplied channel value to its output.
type lightingLUT struct {
	r, g, b [256]uint8
}

func buildLightingLUT(k lutKey) *lightingLUT {
	lut := &lightingLUT{}
	fill := func(t *[256]uint8, mul, add uint8) {
		for c := range t {
			v := (uint16(c)*uint16(mul)+127)/255 + uint16(add)
			t[c] = uint8(min(v, 255))
		}
	}
	fill(&lut.r, k.mul.R(), k.add.R())
	fill(&lut.g, k.mul.G(), k.add.G())
	fill(&lut.b, k.mul.B(), k.add.B())
	return lut
}

// LightingEffect computes clamp(c*mul/255 + add) per RGB channel on
// unpremultiplied values. Alpha passes through.
type LightingEffect struct {
	mul, add colorfilter.Color
	lut      *lightingLUT
}

// Kind implements colorfilter.Effect.
func (e *LightingEffect) Kind() colorfilter.Kind { return colorfilter.KindLighting }

// Multiply returns the multiply color.
func (e *LightingEffect) Multiply() colorfilter.Color { return e.mul }

// Add returns the add color.
func (e *LightingEffect) Add() colorfilter.Color { return e.add }

// FilterColor applies the lighting transform to c.
func (e *LightingEffect) FilterColor(c colorfilter.Color) colorfilter.Color {
	return colorfilter.ARGB(c.A(), e.lut.r[c.R()], e.lut.g[c.G()], e.lut.b[c.B()])
}

// Apply transforms every pixel in r.
func (e *LightingEffect) Apply(img *image.RGBA, r image.Rectangle) {
	forEachPixel(img, r, func(p blend.Pixel) blend.Pixel {
		if p.A == 0 {
			return p
		}
		return blend.Pixel{
			R: premul(e.lut.r[unpremul(p.R, p.A)], p.A),
			G: premul(e.lut.g[unpremul(p.G, p.A)], p.A),
			B: premul(e.lut.b[unpremul(p.B, p.A)], p.A),
			A: p.A,
		}
	})
}
