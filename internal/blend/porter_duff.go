package blend

func clearMode(_, _ Pixel) Pixel { return Pixel{} }

func src(s, _ Pixel) Pixel { return s }

func dst(_, d Pixel) Pixel { return d }

// srcOver: S + D*(1-Sa)
func srcOver(s, d Pixel) Pixel {
	inv := 255 - s.A
	return Pixel{
		R: addSat(s.R, mulDiv255(d.R, inv)),
		G: addSat(s.G, mulDiv255(d.G, inv)),
		B: addSat(s.B, mulDiv255(d.B, inv)),
		A: addSat(s.A, mulDiv255(d.A, inv)),
	}
}

// dstOver: S*(1-Da) + D
func dstOver(s, d Pixel) Pixel {
	return srcOver(d, s)
}

// scale multiplies every channel of p by f/255.
func scale(p Pixel, f uint8) Pixel {
	return Pixel{
		R: mulDiv255(p.R, f),
		G: mulDiv255(p.G, f),
		B: mulDiv255(p.B, f),
		A: mulDiv255(p.A, f),
	}
}

// srcIn: S*Da
func srcIn(s, d Pixel) Pixel { return scale(s, d.A) }

// dstIn: D*Sa
func dstIn(s, d Pixel) Pixel { return scale(d, s.A) }

// srcOut: S*(1-Da)
func srcOut(s, d Pixel) Pixel { return scale(s, 255-d.A) }

// dstOut: D*(1-Sa)
func dstOut(s, d Pixel) Pixel { return scale(d, 255-s.A) }

// srcATop: S*Da + D*(1-Sa), alpha = Da
func srcATop(s, d Pixel) Pixel {
	inv := 255 - s.A
	return Pixel{
		R: lerp2(s.R, d.A, d.R, inv),
		G: lerp2(s.G, d.A, d.G, inv),
		B: lerp2(s.B, d.A, d.B, inv),
		A: d.A,
	}
}

// dstATop: S*(1-Da) + D*Sa, alpha = Sa
func dstATop(s, d Pixel) Pixel {
	return srcATop(d, s)
}

// xor: S*(1-Da) + D*(1-Sa)
func xor(s, d Pixel) Pixel {
	invS, invD := 255-s.A, 255-d.A
	return Pixel{
		R: lerp2(s.R, invD, d.R, invS),
		G: lerp2(s.G, invD, d.G, invS),
		B: lerp2(s.B, invD, d.B, invS),
		A: lerp2(s.A, invD, d.A, invS),
	}
}

// plus: min(S + D, 1)
func plus(s, d Pixel) Pixel {
	return Pixel{
		R: addSat(s.R, d.R),
		G: addSat(s.G, d.G),
		B: addSat(s.B, d.B),
		A: addSat(s.A, d.A),
	}
}

// modulate: S*D
func modulate(s, d Pixel) Pixel {
	return Pixel{
		R: mulDiv255(s.R, d.R),
		G: mulDiv255(s.G, d.G),
		B: mulDiv255(s.B, d.B),
		A: mulDiv255(s.A, d.A),
	}
}
