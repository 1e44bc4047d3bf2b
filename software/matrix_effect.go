package software

import (
	"image"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/blend"
)

// MatrixEffect applies a 4x5 color matrix to unpremultiplied channels.
type MatrixEffect struct {
	matrix   colorfilter.ColorMatrix
	identity bool
}

// Kind implements colorfilter.Effect.
func (e *MatrixEffect) Kind() colorfilter.Kind { return colorfilter.KindColorMatrix }

// Matrix returns the effect's matrix.
func (e *MatrixEffect) Matrix() colorfilter.ColorMatrix { return e.matrix }

// FilterColor transforms c.
func (e *MatrixEffect) FilterColor(c colorfilter.Color) colorfilter.Color {
	if e.identity {
		return c
	}
	r, g, b, a := e.matrix.Transform(float32(c.R()), float32(c.G()), float32(c.B()), float32(c.A()))
	return colorfilter.ARGB(clampByte(a), clampByte(r), clampByte(g), clampByte(b))
}

// Apply transforms every pixel in r. The result is premultiplied again
// with the transformed alpha.
func (e *MatrixEffect) Apply(img *image.RGBA, r image.Rectangle) {
	if e.identity {
		return
	}
	forEachPixel(img, r, func(p blend.Pixel) blend.Pixel {
		var ur, ug, ub uint8
		if p.A > 0 {
			ur, ug, ub = unpremul(p.R, p.A), unpremul(p.G, p.A), unpremul(p.B, p.A)
		}
		nr, ng, nb, na := e.matrix.Transform(float32(ur), float32(ug), float32(ub), float32(p.A))
		a := clampByte(na)
		return blend.Pixel{
			R: premul(clampByte(nr), a),
			G: premul(clampByte(ng), a),
			B: premul(clampByte(nb), a),
			A: a,
		}
	})
}
