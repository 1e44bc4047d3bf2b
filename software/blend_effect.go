package software

import (
	"image"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/blend"
)

// BlendEffect composites a constant color (source) onto each pixel
// (destination).
type BlendEffect struct {
	color colorfilter.Color
	mode  colorfilter.BlendMode
	src   blend.Pixel
	fn    blend.Func
}

// Kind implements colorfilter.Effect.
func (e *BlendEffect) Kind() colorfilter.Kind { return colorfilter.KindBlend }

// Color returns the source color.
func (e *BlendEffect) Color() colorfilter.Color { return e.color }

// Mode returns the blend mode.
func (e *BlendEffect) Mode() colorfilter.BlendMode { return e.mode }

// FilterColor blends the effect color onto c.
func (e *BlendEffect) FilterColor(c colorfilter.Color) colorfilter.Color {
	return fromPixel(e.fn(e.src, toPixel(c)))
}

// Apply blends the effect color onto every pixel in r.
func (e *BlendEffect) Apply(img *image.RGBA, r image.Rectangle) {
	forEachPixel(img, r, func(p blend.Pixel) blend.Pixel {
		return e.fn(e.src, p)
	})
}
