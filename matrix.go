package damage

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C Scalar
	D, E, F Scalar
}

// IdentityMatrix returns the identity transformation matrix.
func IdentityMatrix() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// TranslateMatrix creates a translation matrix.
func TranslateMatrix(x, y Scalar) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// ScaleMatrix creates a scaling matrix.
func ScaleMatrix(x, y Scalar) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// SetScaleX sets the horizontal scale component.
func (m *Matrix) SetScaleX(x Scalar) {
	m.A = x
}

// SetScaleY sets the vertical scale component.
func (m *Matrix) SetScaleY(y Scalar) {
	m.E = y
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y Scalar) (Scalar, Scalar) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// MapRect returns the axis-aligned bounding box of the four transformed
// corners of r.
func (m Matrix) MapRect(r Rect) Rect {
	x0, y0 := m.TransformPoint(r.Left, r.Top)
	x1, y1 := m.TransformPoint(r.Right, r.Top)
	x2, y2 := m.TransformPoint(r.Right, r.Bottom)
	x3, y3 := m.TransformPoint(r.Left, r.Bottom)

	out := Rect{Left: x0, Top: y0, Right: x0, Bottom: y0}
	for _, p := range [3][2]Scalar{{x1, y1}, {x2, y2}, {x3, y3}} {
		if p[0] < out.Left {
			out.Left = p[0]
		}
		if p[0] > out.Right {
			out.Right = p[0]
		}
		if p[1] < out.Top {
			out.Top = p[1]
		}
		if p[1] > out.Bottom {
			out.Bottom = p[1]
		}
	}
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// NearlyEqual reports whether all six components of m and other are equal
// within Epsilon.
func (m Matrix) NearlyEqual(other Matrix) bool {
	return ScalarsNearlyEqual(
		[]Scalar{m.A, m.B, m.C, m.D, m.E, m.F},
		[]Scalar{other.A, other.B, other.C, other.D, other.E, other.F},
	)
}
