package colorfilter

// ColorMatrixFilter applies a 4x5 color matrix to every pixel.
type ColorMatrixFilter struct {
	lazyEffect
	matrix ColorMatrix
}

// NewColorMatrixFilter creates a color matrix filter; e must not be nil.
func NewColorMatrixFilter(e Engine, m ColorMatrix) *ColorMatrixFilter {
	f := &ColorMatrixFilter{matrix: m}
	f.init(KindColorMatrix, func() Effect {
		return e.ColorMatrix(f.matrix)
	})
	return f
}

// Matrix returns a copy of the current matrix.
func (f *ColorMatrixFilter) Matrix() ColorMatrix { return f.matrix }

// SetMatrix replaces the matrix and invalidates the effect.
func (f *ColorMatrixFilter) SetMatrix(m ColorMatrix) {
	f.update(func() { f.matrix = m })
}

// SetMatrixSlice replaces the matrix from a coefficient slice.
// The slice must hold exactly 20 values; otherwise ErrMatrixLength is
// returned and the filter is left unchanged.
func (f *ColorMatrixFilter) SetMatrixSlice(coeffs []float32) error {
	m, err := ColorMatrixFromSlice(coeffs)
	if err != nil {
		return err
	}
	f.SetMatrix(m)
	return nil
}
