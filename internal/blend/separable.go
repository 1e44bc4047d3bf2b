package blend

import "math"

// channelFunc is a separable blend function B(Cs, Cb) on straight
// (unpremultiplied) source and backdrop channels.
type channelFunc func(s, b uint8) uint8

// separable lifts a channel function into a premultiplied blend:
//
//	co = cs*(1 - ab) + cb*(1 - as) + as*ab*B(Cs, Cb)
//	ao = as + ab*(1 - as)
func separable(fn channelFunc) Func {
	return func(s, d Pixel) Pixel {
		if s.A == 0 {
			return d
		}
		if d.A == 0 {
			return s
		}
		both := mulDiv255(s.A, d.A)
		invS, invD := 255-s.A, 255-d.A
		mix := func(sc, dc uint8) uint8 {
			b := fn(unpremul(sc, s.A), unpremul(dc, d.A))
			return addSat(lerp2(sc, invD, dc, invS), mulDiv255(both, b))
		}
		return Pixel{
			R: mix(s.R, d.R),
			G: mix(s.G, d.G),
			B: mix(s.B, d.B),
			A: addSat(s.A, mulDiv255(d.A, invS)),
		}
	}
}

func multiply(s, b uint8) uint8 { return mulDiv255(s, b) }

func screen(s, b uint8) uint8 {
	return 255 - mulDiv255(255-s, 255-b)
}

func overlay(s, b uint8) uint8 { return hardLight(b, s) }

func darken(s, b uint8) uint8 { return min(s, b) }

func lighten(s, b uint8) uint8 { return max(s, b) }

func colorDodge(s, b uint8) uint8 {
	switch {
	case b == 0:
		return 0
	case s == 255:
		return 255
	}
	v := (uint32(b)*255 + uint32(255-s)/2) / uint32(255-s)
	return uint8(min(v, 255))
}

func colorBurn(s, b uint8) uint8 {
	switch {
	case b == 255:
		return 255
	case s == 0:
		return 0
	}
	v := (uint32(255-b)*255 + uint32(s)/2) / uint32(s)
	return 255 - uint8(min(v, 255))
}

func hardLight(s, b uint8) uint8 {
	if s <= 127 {
		return mulDiv255(b, 2*s)
	}
	return screen(uint8(2*uint16(s)-255), b)
}

func softLight(s, b uint8) uint8 {
	cs := float64(s) / 255
	cb := float64(b) / 255
	var r float64
	if cs <= 0.5 {
		r = cb - (1-2*cs)*cb*(1-cb)
	} else {
		var dx float64
		if cb <= 0.25 {
			dx = ((16*cb-12)*cb + 4) * cb
		} else {
			dx = math.Sqrt(cb)
		}
		r = cb + (2*cs-1)*(dx-cb)
	}
	return uint8(math.Round(math.Max(0, math.Min(1, r)) * 255))
}

func difference(s, b uint8) uint8 {
	if s > b {
		return s - b
	}
	return b - s
}

func exclusion(s, b uint8) uint8 {
	v := int(s) + int(b) - 2*int(mulDiv255(s, b))
	return uint8(max(0, min(v, 255)))
}
