package blend

// Pixel is a premultiplied RGBA8 color.
type Pixel struct {
	R, G, B, A uint8
}

// Func composites src onto dst. Both are premultiplied.
type Func func(src, dst Pixel) Pixel

// Mode identifies a blend function.
type Mode uint8

const (
	ModeClear Mode = iota
	ModeSrc
	ModeDst
	ModeSrcOver
	ModeDstOver
	ModeSrcIn
	ModeDstIn
	ModeSrcOut
	ModeDstOut
	ModeSrcATop
	ModeDstATop
	ModeXor
	ModePlus
	ModeModulate
	ModeScreen
	ModeOverlay
	ModeDarken
	ModeLighten
	ModeColorDodge
	ModeColorBurn
	ModeHardLight
	ModeSoftLight
	ModeDifference
	ModeExclusion
	ModeMultiply
	ModeHue
	ModeSaturation
	ModeColor
	ModeLuminosity

	// ModeCount is the number of defined modes.
	ModeCount
)

var funcs = [ModeCount]Func{
	ModeClear:      clearMode,
	ModeSrc:        src,
	ModeDst:        dst,
	ModeSrcOver:    srcOver,
	ModeDstOver:    dstOver,
	ModeSrcIn:      srcIn,
	ModeDstIn:      dstIn,
	ModeSrcOut:     srcOut,
	ModeDstOut:     dstOut,
	ModeSrcATop:    srcATop,
	ModeDstATop:    dstATop,
	ModeXor:        xor,
	ModePlus:       plus,
	ModeModulate:   modulate,
	ModeScreen:     separable(screen),
	ModeOverlay:    separable(overlay),
	ModeDarken:     separable(darken),
	ModeLighten:    separable(lighten),
	ModeColorDodge: separable(colorDodge),
	ModeColorBurn:  separable(colorBurn),
	ModeHardLight:  separable(hardLight),
	ModeSoftLight:  separable(softLight),
	ModeDifference: separable(difference),
	ModeExclusion:  separable(exclusion),
	ModeMultiply:   separable(multiply),
	ModeHue:        nonSeparable(hue),
	ModeSaturation: nonSeparable(saturation),
	ModeColor:      nonSeparable(colorMode),
	ModeLuminosity: nonSeparable(luminosity),
}

// Lookup returns the blend function for m.
// Unknown modes fall back to source-over.
func Lookup(m Mode) Func {
	if m >= ModeCount {
		return srcOver
	}
	return funcs[m]
}
