package blend

import "math"

// rgb is a straight color with channels in [0, 1].
type rgb struct {
	r, g, b float32
}

// tripletFunc is a non-separable blend function B(Cs, Cb).
type tripletFunc func(s, b rgb) rgb

// nonSeparable lifts a triplet function into a premultiplied blend using
// the same compositing formula as separable modes.
func nonSeparable(fn tripletFunc) Func {
	return func(s, d Pixel) Pixel {
		if s.A == 0 {
			return d
		}
		if d.A == 0 {
			return s
		}
		cs := rgb{
			float32(unpremul(s.R, s.A)) / 255,
			float32(unpremul(s.G, s.A)) / 255,
			float32(unpremul(s.B, s.A)) / 255,
		}
		cb := rgb{
			float32(unpremul(d.R, d.A)) / 255,
			float32(unpremul(d.G, d.A)) / 255,
			float32(unpremul(d.B, d.A)) / 255,
		}
		res := fn(cs, cb)

		both := float32(s.A) * float32(d.A) / 255
		invS, invD := 255-s.A, 255-d.A
		mix := func(sc, dc uint8, v float32) uint8 {
			return addSat(lerp2(sc, invD, dc, invS), toByte(v*both))
		}
		return Pixel{
			R: mix(s.R, d.R, res.r),
			G: mix(s.G, d.G, res.g),
			B: mix(s.B, d.B, res.b),
			A: addSat(s.A, mulDiv255(d.A, invS)),
		}
	}
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(v, 255)))))
}

// lum uses the BT.601 weights from the W3C definition.
func lum(c rgb) float32 {
	return 0.30*c.r + 0.59*c.g + 0.11*c.b
}

func sat(c rgb) float32 {
	return max(c.r, c.g, c.b) - min(c.r, c.g, c.b)
}

func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)
	if n < 0 {
		c = rgb{
			l + (c.r-l)*l/(l-n),
			l + (c.g-l)*l/(l-n),
			l + (c.b-l)*l/(l-n),
		}
	}
	if x > 1 {
		c = rgb{
			l + (c.r-l)*(1-l)/(x-l),
			l + (c.g-l)*(1-l)/(x-l),
			l + (c.b-l)*(1-l)/(x-l),
		}
	}
	return c
}

func setLum(c rgb, l float32) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func setSat(c rgb, s float32) rgb {
	ch := [3]*float32{&c.r, &c.g, &c.b}
	// Order pointers min, mid, max.
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	if *ch[1] > *ch[2] {
		ch[1], ch[2] = ch[2], ch[1]
	}
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	lo, mid, hi := *ch[0], *ch[1], *ch[2]
	if hi > lo {
		*ch[1] = (mid - lo) * s / (hi - lo)
		*ch[2] = s
	} else {
		*ch[1], *ch[2] = 0, 0
	}
	*ch[0] = 0
	return c
}

func hue(s, b rgb) rgb {
	return setLum(setSat(s, sat(b)), lum(b))
}

func saturation(s, b rgb) rgb {
	return setLum(setSat(b, sat(s)), lum(b))
}

func colorMode(s, b rgb) rgb {
	return setLum(s, lum(b))
}

func luminosity(s, b rgb) rgb {
	return setLum(b, lum(s))
}
