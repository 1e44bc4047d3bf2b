package colorfilter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// BlendMode selects how a blend filter combines its color (the source)
// with each input pixel (the destination).
//
// The ordering matches the Skia blend mode enumeration so values can be
// passed through from runtimes that use the same numbering.
type BlendMode uint8

const (
	// Porter-Duff modes
	BlendClear    BlendMode = iota // 0
	BlendSrc                       // S
	BlendDst                       // D
	BlendSrcOver                   // S + D*(1-Sa)
	BlendDstOver                   // S*(1-Da) + D
	BlendSrcIn                     // S*Da
	BlendDstIn                     // D*Sa
	BlendSrcOut                    // S*(1-Da)
	BlendDstOut                    // D*(1-Sa)
	BlendSrcATop                   // S*Da + D*(1-Sa)
	BlendDstATop                   // S*(1-Da) + D*Sa
	BlendXor                       // S*(1-Da) + D*(1-Sa)
	BlendPlus                      // min(S+D, 1)
	BlendModulate                  // S*D

	// Separable modes
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply

	// Non-separable modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	blendModeCount
)

var blendModeNames = [blendModeCount]string{
	BlendClear:      "Clear",
	BlendSrc:        "Src",
	BlendDst:        "Dst",
	BlendSrcOver:    "SrcOver",
	BlendDstOver:    "DstOver",
	BlendSrcIn:      "SrcIn",
	BlendDstIn:      "DstIn",
	BlendSrcOut:     "SrcOut",
	BlendDstOut:     "DstOut",
	BlendSrcATop:    "SrcATop",
	BlendDstATop:    "DstATop",
	BlendXor:        "Xor",
	BlendPlus:       "Plus",
	BlendModulate:   "Modulate",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendMultiply:   "Multiply",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// blendModeAliases maps other common spellings (Android PorterDuff.Mode,
// CSS mix-blend-mode, canvas globalCompositeOperation) to modes.
var blendModeAliases = map[string]BlendMode{
	"add":         BlendPlus,
	"lighter":     BlendPlus,
	"normal":      BlendSrcOver,
	"copy":        BlendSrc,
	"source-over": BlendSrcOver,
}

// foldKey builds the lookup key for a blend mode name.
func foldKey(s string) string {
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return cases.Fold().String(s)
}

var blendModeByKey = func() map[string]BlendMode {
	m := make(map[string]BlendMode, int(blendModeCount)+len(blendModeAliases))
	for mode, name := range blendModeNames {
		m[foldKey(name)] = BlendMode(mode)
	}
	for alias, mode := range blendModeAliases {
		m[foldKey(alias)] = mode
	}
	return m
}()

// String returns the canonical name of the mode.
func (m BlendMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// IsValid reports whether m names a known blend mode.
func (m BlendMode) IsValid() bool {
	return m < blendModeCount
}

// IsSeparable reports whether the mode operates on each channel independently.
// Non-separable modes need the whole RGB triplet (HSL conversions).
func (m BlendMode) IsSeparable() bool {
	return m < BlendHue
}

// ParseBlendMode looks up a blend mode by name. Matching ignores case,
// hyphens and underscores, so "src-over", "SRC_OVER" and "SrcOver" are equal.
func ParseBlendMode(name string) (BlendMode, error) {
	if m, ok := blendModeByKey[foldKey(name)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}
