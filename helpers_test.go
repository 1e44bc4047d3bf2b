package colorfilter

import "testing"

// Test helpers shared across package tests.

// fakeEffect records the parameters it was built with. Each factory call
// allocates a new one, so pointer equality identifies a build.
type fakeEffect struct {
	kind   Kind
	color  Color
	mode   BlendMode
	mul    Color
	add    Color
	matrix ColorMatrix
	serial int
}

func (e *fakeEffect) Kind() Kind { return e.kind }

// fakeEngine counts factory calls.
type fakeEngine struct {
	calls   int
	nilNext bool
}

func (e *fakeEngine) next(eff *fakeEffect) Effect {
	e.calls++
	if e.nilNext {
		return nil
	}
	eff.serial = e.calls
	return eff
}

func (e *fakeEngine) Blend(color Color, mode BlendMode) Effect {
	return e.next(&fakeEffect{kind: KindBlend, color: color, mode: mode})
}

func (e *fakeEngine) Lighting(mul, add Color) Effect {
	return e.next(&fakeEffect{kind: KindLighting, mul: mul, add: add})
}

func (e *fakeEngine) ColorMatrix(m ColorMatrix) Effect {
	return e.next(&fakeEffect{kind: KindColorMatrix, matrix: m})
}

// mustFake asserts an effect came from fakeEngine.
func mustFake(t testing.TB, eff Effect) *fakeEffect {
	t.Helper()
	fe, ok := eff.(*fakeEffect)
	if !ok {
		t.Fatalf("effect %T is not *fakeEffect", eff)
	}
	return fe
}
