package colorfilter

import (
	"errors"
	"testing"
)

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		m    BlendMode
		want string
	}{
		{BlendClear, "Clear"},
		{BlendSrcOver, "SrcOver"},
		{BlendModulate, "Modulate"},
		{BlendScreen, "Screen"},
		{BlendLuminosity, "Luminosity"},
		{BlendMode(99), "BlendMode(99)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestBlendModeOrdinals(t *testing.T) {
	// Ordinals are shared with runtime peers and shader uniforms.
	if BlendClear != 0 || BlendModulate != 13 || BlendScreen != 14 || BlendLuminosity != 28 {
		t.Errorf("ordinals moved: Clear=%d Modulate=%d Screen=%d Luminosity=%d",
			BlendClear, BlendModulate, BlendScreen, BlendLuminosity)
	}
	if BlendMode(29).IsValid() {
		t.Error("BlendMode(29).IsValid() = true")
	}
}

func TestBlendModeIsSeparable(t *testing.T) {
	if !BlendMultiply.IsSeparable() || !BlendSrcOver.IsSeparable() {
		t.Error("Multiply/SrcOver reported non-separable")
	}
	for _, m := range []BlendMode{BlendHue, BlendSaturation, BlendColor, BlendLuminosity} {
		if m.IsSeparable() {
			t.Errorf("%v.IsSeparable() = true", m)
		}
	}
}

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"SrcOver", BlendSrcOver},
		{"src-over", BlendSrcOver},
		{"SRC_OVER", BlendSrcOver},
		{"source-over", BlendSrcOver},
		{"normal", BlendSrcOver},
		{"color dodge", BlendColorDodge},
		{"add", BlendPlus},
		{"lighter", BlendPlus},
		{"copy", BlendSrc},
		{"luminosity", BlendLuminosity},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if err != nil {
			t.Errorf("ParseBlendMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBlendModeRoundTrip(t *testing.T) {
	for m := BlendClear; m < blendModeCount; m++ {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
}

func TestParseBlendModeUnknown(t *testing.T) {
	for _, in := range []string{"", "burn", "src-overr"} {
		if _, err := ParseBlendMode(in); !errors.Is(err, ErrUnknownBlendMode) {
			t.Errorf("ParseBlendMode(%q) error = %v, want ErrUnknownBlendMode", in, err)
		}
	}
}
