package colorfilter

import "fmt"

// ColorMatrixSize is the number of coefficients in a ColorMatrix.
const ColorMatrixSize = 20

// ColorMatrix is a 4x5 color transformation in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are unpremultiplied in the [0, 255] range; the fifth column
// is an offset in the same range.
type ColorMatrix [ColorMatrixSize]float32

// IdentityColorMatrix returns the matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ColorMatrixFromSlice copies coefficients into a ColorMatrix.
// It returns ErrMatrixLength unless len(coeffs) is exactly 20.
func ColorMatrixFromSlice(coeffs []float32) (ColorMatrix, error) {
	var m ColorMatrix
	if len(coeffs) != ColorMatrixSize {
		return m, fmt.Errorf("%w: got %d", ErrMatrixLength, len(coeffs))
	}
	copy(m[:], coeffs)
	return m, nil
}

// ScaleColorMatrix scales each channel independently.
func ScaleColorMatrix(r, g, b, a float32) ColorMatrix {
	return ColorMatrix{
		r, 0, 0, 0, 0,
		0, g, 0, 0, 0,
		0, 0, b, 0, 0,
		0, 0, 0, a, 0,
	}
}

// SaturationColorMatrix adjusts saturation.
// 0 yields grayscale, 1 is unchanged, values above 1 oversaturate.
func SaturationColorMatrix(sat float32) ColorMatrix {
	// Rec. 709 luminance weights
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - sat
	return ColorMatrix{
		lumR*inv + sat, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + sat, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + sat, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SepiaColorMatrix returns a sepia tone transform.
func SepiaColorMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertColorMatrix inverts RGB and keeps alpha.
func InvertColorMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// Concat returns the matrix equivalent to applying other first and then m.
func (m ColorMatrix) Concat(other ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*5+k] * other[k*5+col]
			}
			if col == 4 {
				sum += m[row*5+4]
			}
			out[row*5+col] = sum
		}
	}
	return out
}

// IsIdentity reports whether m is exactly the identity transform.
func (m ColorMatrix) IsIdentity() bool {
	return m == IdentityColorMatrix()
}

// Transform applies m to unpremultiplied channel values in [0, 255]
// and clamps the result.
func (m *ColorMatrix) Transform(r, g, b, a float32) (float32, float32, float32, float32) {
	return clamp255(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		clamp255(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		clamp255(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		clamp255(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
}

// clamp255 restricts a value to [0, 255]. NaN maps to 0.
func clamp255(x float32) float32 {
	if !(x >= 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
