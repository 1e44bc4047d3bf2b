package blend

// mulDiv255 computes a*b/255 with rounding, exact for all byte inputs.
func mulDiv255(a, b uint8) uint8 {
	t := uint16(a)*uint16(b) + 128
	return uint8((t + t>>8) >> 8)
}

// addSat adds two bytes, saturating at 255.
func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// lerp2 computes (a*x + b*y)/255 for premultiplied terms, saturating.
func lerp2(a, x, b, y uint8) uint8 {
	return addSat(mulDiv255(a, x), mulDiv255(b, y))
}

// unpremul recovers a straight channel value from a premultiplied one.
func unpremul(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return uint8((uint16(c)*255 + uint16(a)/2) / uint16(a))
}
