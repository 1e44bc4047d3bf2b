package software

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ToRGBA returns img as *image.RGBA, converting when necessary.
// An *image.RGBA input is returned as is, so Apply modifies it.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Copy(dst, b.Min, img, b, xdraw.Src, nil)
	return dst
}
