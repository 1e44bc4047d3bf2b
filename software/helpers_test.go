package software

import (
	"image"
	"image/color"
)

// Test helper functions shared across software tests.

// newFilledRGBA creates a w x h image filled with c (straight alpha).
func newFilledRGBA(w, h int, c color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// pixelAt reads the premultiplied pixel at (x, y).
func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

// absDiff returns |a - b| for bytes.
func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
