package software

import (
	"image"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/blend"
)

// toPixel premultiplies a packed color.
func toPixel(c colorfilter.Color) blend.Pixel {
	p := c.Premultiplied()
	return blend.Pixel{R: p.R, G: p.G, B: p.B, A: p.A}
}

// fromPixel unpremultiplies a pixel into a packed color.
func fromPixel(p blend.Pixel) colorfilter.Color {
	if p.A == 0 {
		return colorfilter.Transparent
	}
	return colorfilter.ARGB(p.A, unpremul(p.R, p.A), unpremul(p.G, p.A), unpremul(p.B, p.A))
}

func unpremul(c, a uint8) uint8 {
	if c >= a {
		return 255
	}
	return uint8((uint16(c)*255 + uint16(a)/2) / uint16(a))
}

func premul(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

// forEachPixel rewrites every pixel of img inside r with fn.
func forEachPixel(img *image.RGBA, r image.Rectangle, fn func(blend.Pixel) blend.Pixel) {
	if img == nil {
		return
	}
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		row := img.Pix[i : i+4*r.Dx() : i+4*r.Dx()]
		for x := 0; x < len(row); x += 4 {
			out := fn(blend.Pixel{R: row[x], G: row[x+1], B: row[x+2], A: row[x+3]})
			row[x], row[x+1], row[x+2], row[x+3] = out.R, out.G, out.B, out.A
		}
	}
}

// clampByte rounds and clamps a float channel to [0, 255].
func clampByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
