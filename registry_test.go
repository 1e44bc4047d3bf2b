package colorfilter

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/colorfilter/handle"
)

func TestRegistryLifecycle(t *testing.T) {
	e := &fakeEngine{}
	r := NewRegistry(e)

	h, err := r.NewLighting(White, Black)
	if err != nil {
		t.Fatalf("NewLighting() error = %v", err)
	}
	if h.IsZero() {
		t.Fatal("NewLighting() returned the zero handle")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	f, err := r.FromHandle(h)
	if err != nil {
		t.Fatalf("FromHandle() error = %v", err)
	}
	if f.Kind() != KindLighting {
		t.Errorf("Kind() = %v, want Lighting", f.Kind())
	}

	eff1, err := r.Instance(h)
	if err != nil {
		t.Fatalf("Instance() error = %v", err)
	}
	eff2, _ := r.Instance(h)
	if eff1 != eff2 {
		t.Error("Instance() through the registry did not reuse the effect")
	}

	if err := r.SetLightingAdd(h, 0x11223344); err != nil {
		t.Fatalf("SetLightingAdd() error = %v", err)
	}
	eff3, _ := r.Instance(h)
	if eff3 == eff1 {
		t.Error("Instance() after SetLightingAdd returned the stale effect")
	}
	if got := mustFake(t, eff3).add; got != 0x11223344 {
		t.Errorf("rebuilt add = %v, want #11223344", got)
	}

	if err := r.SetLightingMultiply(h, 0xFF808080); err != nil {
		t.Fatalf("SetLightingMultiply() error = %v", err)
	}
	if got := mustFake(t, f.Instance()).mul; got != 0xFF808080 {
		t.Errorf("rebuilt mul = %v, want #FF808080", got)
	}

	if err := r.Release(h); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if f.Cached() {
		t.Error("Release() left the effect cached")
	}
	if r.Len() != 0 {
		t.Errorf("Len() after Release = %d, want 0", r.Len())
	}
}

func TestRegistryStaleHandle(t *testing.T) {
	r := NewRegistry(&fakeEngine{})

	h1, _ := r.NewBlend(Red, BlendSrcOver)
	if err := r.Release(h1); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	h2, _ := r.NewBlend(Blue, BlendMultiply)

	if _, err := r.FromHandle(h1); !errors.Is(err, handle.ErrStale) {
		t.Errorf("FromHandle(released) error = %v, want ErrStale", err)
	}
	if err := r.Release(h1); !errors.Is(err, handle.ErrStale) {
		t.Errorf("Release(released) error = %v, want ErrStale", err)
	}
	if _, err := r.Instance(h1); !errors.Is(err, handle.ErrStale) {
		t.Errorf("Instance(released) error = %v, want ErrStale", err)
	}

	f, err := r.FromHandle(h2)
	if err != nil {
		t.Fatalf("FromHandle(h2) error = %v", err)
	}
	if bf := f.(*BlendFilter); bf.Color() != Blue {
		t.Errorf("recycled slot color = %v, want Blue", bf.Color())
	}
}

func TestRegistryInvalidHandle(t *testing.T) {
	r := NewRegistry(&fakeEngine{})
	for _, h := range []Handle{0, 12345} {
		if _, err := r.FromHandle(h); !errors.Is(err, handle.ErrInvalid) {
			t.Errorf("FromHandle(%v) error = %v, want ErrInvalid", h, err)
		}
	}
}

func TestRegistryWrongKind(t *testing.T) {
	r := NewRegistry(&fakeEngine{})
	blendH, _ := r.NewBlend(Red, BlendSrcOver)
	lightH, _ := r.NewLighting(White, Black)

	if err := r.SetLightingAdd(blendH, Red); !errors.Is(err, ErrWrongKind) {
		t.Errorf("SetLightingAdd(blend) error = %v, want ErrWrongKind", err)
	}
	if err := r.SetLightingMultiply(blendH, Red); !errors.Is(err, ErrWrongKind) {
		t.Errorf("SetLightingMultiply(blend) error = %v, want ErrWrongKind", err)
	}
	id := IdentityColorMatrix()
	err := r.SetColorMatrix(lightH, id[:])
	if !errors.Is(err, ErrWrongKind) {
		t.Errorf("SetColorMatrix(lighting) error = %v, want ErrWrongKind", err)
	}
	if err != nil && !strings.Contains(err.Error(), "Lighting") {
		t.Errorf("error %q does not name the filter kind", err)
	}
}

func TestRegistryColorMatrix(t *testing.T) {
	e := &fakeEngine{}
	r := NewRegistry(e)

	if _, err := r.NewColorMatrix(make([]float32, 16)); !errors.Is(err, ErrMatrixLength) {
		t.Errorf("NewColorMatrix(16 values) error = %v, want ErrMatrixLength", err)
	}
	if r.Len() != 0 {
		t.Errorf("failed NewColorMatrix registered a filter")
	}

	id := IdentityColorMatrix()
	h, err := r.NewColorMatrix(id[:])
	if err != nil {
		t.Fatalf("NewColorMatrix() error = %v", err)
	}
	eff1, _ := r.Instance(h)

	if err := r.SetColorMatrix(h, make([]float32, 21)); !errors.Is(err, ErrMatrixLength) {
		t.Errorf("SetColorMatrix(21 values) error = %v, want ErrMatrixLength", err)
	}
	if eff, _ := r.Instance(h); eff != eff1 {
		t.Error("rejected SetColorMatrix invalidated the cache")
	}

	sepia := SepiaColorMatrix()
	if err := r.SetColorMatrix(h, sepia[:]); err != nil {
		t.Fatalf("SetColorMatrix() error = %v", err)
	}
	eff2, _ := r.Instance(h)
	if eff2 == eff1 || mustFake(t, eff2).matrix != sepia {
		t.Error("SetColorMatrix did not rebuild with the new matrix")
	}
}

func TestRegistryNilArguments(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.NewBlend(Red, BlendSrc); !errors.Is(err, ErrNilEngine) {
		t.Errorf("NewBlend() error = %v, want ErrNilEngine", err)
	}
	if _, err := r.NewLighting(Red, Red); !errors.Is(err, ErrNilEngine) {
		t.Errorf("NewLighting() error = %v, want ErrNilEngine", err)
	}
	if _, err := r.NewColorMatrix(nil); !errors.Is(err, ErrNilEngine) {
		t.Errorf("NewColorMatrix() error = %v, want ErrNilEngine", err)
	}
	if _, err := r.Register(nil); !errors.Is(err, ErrNilFilter) {
		t.Errorf("Register(nil) error = %v, want ErrNilFilter", err)
	}
}

func TestRegistryRegisterExisting(t *testing.T) {
	e := &fakeEngine{}
	r := NewRegistry(e, WithInitialCapacity(2))
	f := NewColorMatrixFilter(e, SepiaColorMatrix())
	h, err := r.Register(f)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	got, _ := r.FromHandle(h)
	if got != ColorFilter(f) {
		t.Error("FromHandle() returned a different filter")
	}
}

func TestRegistryRegisterTwice(t *testing.T) {
	e := &fakeEngine{}
	r := NewRegistry(e)
	f := NewBlendFilter(e, Red, BlendSrcOver)

	h1, err := r.Register(f)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := r.Register(f); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second Register() error = %v, want ErrAlreadyRegistered", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	// Other registries refuse it too while the handle is live.
	if _, err := NewRegistry(e).Register(f); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("Register() in second registry error = %v, want ErrAlreadyRegistered", err)
	}

	// After Release the filter may be registered again.
	if err := r.Release(h1); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	h2, err := r.Register(f)
	if err != nil {
		t.Fatalf("Register() after Release error = %v", err)
	}
	if _, err := r.FromHandle(h1); !errors.Is(err, handle.ErrStale) {
		t.Errorf("FromHandle(h1) error = %v, want ErrStale", err)
	}
	if got, _ := r.FromHandle(h2); got != ColorFilter(f) {
		t.Error("FromHandle(h2) returned a different filter")
	}
}

func TestRegistryCloseAllowsReregister(t *testing.T) {
	e := &fakeEngine{}
	f := NewLightingFilter(e, White, Black)
	r := NewRegistry(e)
	if _, err := r.Register(f); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := NewRegistry(e).Register(f); err != nil {
		t.Errorf("Register() after Close error = %v", err)
	}
}

func TestRegistryRegisterTypedNil(t *testing.T) {
	r := NewRegistry(&fakeEngine{})
	for _, f := range []ColorFilter{
		(*BlendFilter)(nil),
		(*LightingFilter)(nil),
		(*ColorMatrixFilter)(nil),
	} {
		if _, err := r.Register(f); !errors.Is(err, ErrNilFilter) {
			t.Errorf("Register(%T nil) error = %v, want ErrNilFilter", f, err)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry(&fakeEngine{})
	h1, _ := r.NewBlend(Red, BlendSrcOver)
	h2, _ := r.NewLighting(White, Black)
	f1, _ := r.FromHandle(h1)
	f2, _ := r.FromHandle(h2)
	f1.Instance()
	f2.Instance()

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if f1.Cached() || f2.Cached() {
		t.Error("Close() left effects cached")
	}
	if _, err := r.FromHandle(h1); !errors.Is(err, handle.ErrClosed) {
		t.Errorf("FromHandle after Close error = %v, want ErrClosed", err)
	}
	if _, err := r.NewBlend(Red, BlendSrc); !errors.Is(err, handle.ErrClosed) {
		t.Errorf("NewBlend after Close error = %v, want ErrClosed", err)
	}
}

func TestRegistryLogs(t *testing.T) {
	buf := captureLogger(t)
	r := NewRegistry(&fakeEngine{})

	h, _ := r.NewBlend(Red, BlendSrcOver)
	_ = r.Release(h)
	_, _ = r.FromHandle(h)

	out := buf.String()
	for _, want := range []string{"level=DEBUG msg=\"colorfilter: filter registered\"", "filter released", "level=WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
