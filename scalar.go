package damage

import "github.com/chewxy/math32"

// Scalar is the single-precision coordinate type used throughout the
// damage pipeline.
type Scalar = float32

// Epsilon is the tolerance for scalar comparisons, roughly 1/10000th of a
// pixel. Tiny differences from different transformation paths
// (e.g. 10.499999 vs 10.500001) must not register as damage.
const Epsilon Scalar = 1e-4

// ScalarNearlyEqual reports whether a and b are equal within Epsilon.
func ScalarNearlyEqual(a, b Scalar) bool {
	return math32.Abs(a-b) <= Epsilon
}

// ScalarsNearlyEqual reports whether a and b are elementwise equal within
// Epsilon. Slices of different lengths are never equal.
func ScalarsNearlyEqual(a, b []Scalar) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math32.Abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

// PixelsToScalar converts a device pixel count to scalar units at the given
// point scale.
func PixelsToScalar(pixels int, pointScale Scalar) Scalar {
	return Scalar(pixels) / pointScale
}

// SanitizeScalarFromScale snaps v to the device pixel grid implied by scale.
func SanitizeScalarFromScale(v, scale Scalar) Scalar {
	return math32.Round(v*scale) / scale
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v Scalar) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
