package colorfilter

// LightingFilter multiplies each RGB channel by one color and then adds
// another. Alpha channels of both colors are ignored.
type LightingFilter struct {
	lazyEffect
	mul Color
	add Color
}

// NewLightingFilter creates a lighting filter; e must not be nil.
func NewLightingFilter(e Engine, mul, add Color) *LightingFilter {
	f := &LightingFilter{mul: mul, add: add}
	f.init(KindLighting, func() Effect {
		return e.Lighting(f.mul, f.add)
	})
	return f
}

// Multiply returns the multiply color.
func (f *LightingFilter) Multiply() Color { return f.mul }

// Add returns the add color.
func (f *LightingFilter) Add() Color { return f.add }

// SetMultiply replaces the multiply color and invalidates the effect.
func (f *LightingFilter) SetMultiply(mul Color) {
	f.update(func() { f.mul = mul })
}

// SetAdd replaces the add color and invalidates the effect.
func (f *LightingFilter) SetAdd(add Color) {
	f.update(func() { f.add = add })
}
