package shader

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorfilter"
)

// base holds what every effect shares.
type base struct {
	engine *Engine
	kind   colorfilter.Kind
}

func (b base) Kind() colorfilter.Kind { return b.kind }

func (b base) Module() ([]uint32, error) { return b.engine.Module(b.kind) }

func (b base) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	premul := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &premul,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

func (b base) Constant() gputypes.Color { return gputypes.Color{} }

// BlendEffect blends a constant color over the destination.
type BlendEffect struct {
	base
	color colorfilter.Color
	mode  colorfilter.BlendMode
}

// Color returns the source color.
func (e *BlendEffect) Color() colorfilter.Color { return e.color }

// Mode returns the blend mode.
func (e *BlendEffect) Mode() colorfilter.BlendMode { return e.mode }

// Uniforms returns the premultiplied color followed by the mode ordinal,
// padded to 32 bytes.
func (e *BlendEffect) Uniforms() []byte {
	r, g, b, a := premultipliedFloat(e.color)
	buf := make([]byte, 0, 32)
	buf = appendFloats(buf, r, g, b, a)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.mode))
	return append(buf, make([]byte, 12)...)
}

// Constant returns the premultiplied filter color.
func (e *BlendEffect) Constant() gputypes.Color {
	r, g, b, a := premultipliedFloat(e.color)
	return gputypes.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

// LightingEffect multiplies and offsets RGB.
type LightingEffect struct {
	base
	mul colorfilter.Color
	add colorfilter.Color
}

// Multiply returns the multiply color.
func (e *LightingEffect) Multiply() colorfilter.Color { return e.mul }

// Add returns the add color.
func (e *LightingEffect) Add() colorfilter.Color { return e.add }

// Uniforms returns mul and add as two normalized vec4s. Alpha lanes are 1 and 0.
func (e *LightingEffect) Uniforms() []byte {
	mr, mg, mb, _ := e.mul.Float()
	ar, ag, ab, _ := e.add.Float()
	buf := make([]byte, 0, 32)
	buf = appendFloats(buf, mr, mg, mb, 1)
	return appendFloats(buf, ar, ag, ab, 0)
}

// MatrixEffect applies a 4x5 color matrix.
type MatrixEffect struct {
	base
	matrix colorfilter.ColorMatrix
}

// Matrix returns the effect's coefficients.
func (e *MatrixEffect) Matrix() colorfilter.ColorMatrix { return e.matrix }

// Uniforms returns the four matrix rows followed by the offsets scaled to
// [0, 1], 80 bytes in total.
func (e *MatrixEffect) Uniforms() []byte {
	m := &e.matrix
	buf := make([]byte, 0, 80)
	for row := 0; row < 4; row++ {
		buf = appendFloats(buf, m[row*5:row*5+4]...)
	}
	return appendFloats(buf, m[4]/255, m[9]/255, m[14]/255, m[19]/255)
}

func appendFloats(buf []byte, vs ...float32) []byte {
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func premultipliedFloat(c colorfilter.Color) (r, g, b, a float32) {
	r, g, b, a = c.Float()
	return r * a, g * a, b * a, a
}
