package colorfilter

import (
	"errors"
	"math"
	"testing"
)

func TestColorMatrixFromSlice(t *testing.T) {
	id := IdentityColorMatrix()
	m, err := ColorMatrixFromSlice(id[:])
	if err != nil {
		t.Fatalf("ColorMatrixFromSlice(20) error = %v", err)
	}
	if !m.IsIdentity() {
		t.Errorf("ColorMatrixFromSlice(identity) = %v", m)
	}

	for _, n := range []int{0, 19, 21} {
		if _, err := ColorMatrixFromSlice(make([]float32, n)); !errors.Is(err, ErrMatrixLength) {
			t.Errorf("ColorMatrixFromSlice(%d values) error = %v, want ErrMatrixLength", n, err)
		}
	}
	if _, err := ColorMatrixFromSlice(nil); !errors.Is(err, ErrMatrixLength) {
		t.Errorf("ColorMatrixFromSlice(nil) error = %v, want ErrMatrixLength", err)
	}
}

func TestColorMatrixIsIdentity(t *testing.T) {
	if !IdentityColorMatrix().IsIdentity() {
		t.Error("IdentityColorMatrix().IsIdentity() = false")
	}
	if !SaturationColorMatrix(1).IsIdentity() {
		t.Error("SaturationColorMatrix(1).IsIdentity() = false")
	}
	if SepiaColorMatrix().IsIdentity() {
		t.Error("SepiaColorMatrix().IsIdentity() = true")
	}
}

func TestColorMatrixConcat(t *testing.T) {
	inv := InvertColorMatrix()
	if got := inv.Concat(inv); !got.IsIdentity() {
		t.Errorf("invert after invert = %v, want identity", got)
	}

	scale := ScaleColorMatrix(0.5, 0.5, 0.5, 1)
	m := scale.Concat(inv)
	r, g, b, a := m.Transform(55, 155, 255, 200)
	want := [4]float32{100, 50, 0, 200}
	for i, got := range [4]float32{r, g, b, a} {
		if math.Abs(float64(got-want[i])) > 1e-3 {
			t.Errorf("channel %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestColorMatrixTransformClamps(t *testing.T) {
	m := ScaleColorMatrix(2, -1, float32(math.NaN()), 1)
	r, g, b, a := m.Transform(200, 100, 50, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("Transform() = %v %v %v %v, want 255 0 0 255", r, g, b, a)
	}
}

func TestSaturationGrayscale(t *testing.T) {
	m := SaturationColorMatrix(0)
	r, g, b, _ := m.Transform(255, 0, 0, 255)
	if r != g || g != b {
		t.Errorf("grayscale red = %v %v %v, want equal channels", r, g, b)
	}
	if math.Abs(float64(r)-0.2126*255) > 1e-2 {
		t.Errorf("grayscale red luminance = %v, want %v", r, 0.2126*255)
	}
}
