package colorfilter

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed, unpremultiplied 0xAARRGGBB color value.
//
// Color implements [color.Color], so it can be used directly with the
// image and image/draw packages.
type Color uint32

// ARGB packs alpha, red, green and blue channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// NRGBA converts c to the standard non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Premultiplied returns c with color channels scaled by alpha.
func (c Color) Premultiplied() color.RGBA {
	a := uint32(c.A())
	return color.RGBA{
		R: uint8((uint32(c.R())*a + 127) / 255),
		G: uint8((uint32(c.G())*a + 127) / 255),
		B: uint8((uint32(c.B())*a + 127) / 255),
		A: uint8(a),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Float returns the channels normalized to [0, 1].
func (c Color) Float() (r, g, b, a float32) {
	return float32(c.R()) / 255, float32(c.G()) / 255, float32(c.B()) / 255, float32(c.A()) / 255
}

// String formats c as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// FromColor converts any color.Color to a packed Color.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ParseColor parses a color string.
// Supported formats: "#RRGGBB", "#AARRGGBB" and SVG 1.1 color names
// such as "cornflowerblue" (case-insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		switch len(hex) {
		case 6:
			return Color(0xFF000000 | uint32(v)), nil
		case 8:
			return Color(uint32(v)), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ARGB(named.A, named.R, named.G, named.B), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Common colors
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)
