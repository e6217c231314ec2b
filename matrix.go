package canvas2d

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform in DOM order:
//
//	| a  c  e |
//	| b  d  f |
//
// which maps a point as
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// A is scale-x, B skew-y, C skew-x, D scale-y, E translate-x and
// F translate-y, matching the six values of a Canvas transform.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// NewMatrix builds a matrix from the six DOM components.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale returns a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate returns a rotation matrix. Angle is in radians, clockwise in
// device space since the y axis points down.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns m ∘ o: the result applies o first, then m.
//
// This is the composition used by the Canvas transform operations:
//
//	ctx.Translate(10, 0) // T' = T.Multiply(Translate(10, 0))
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// PreMultiply returns o ∘ m: the result applies m first, then o.
func (m Matrix) PreMultiply(o Matrix) Matrix {
	return o.Multiply(m)
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyVector transforms (x, y) ignoring translation.
func (m Matrix) ApplyVector(x, y float64) (float64, float64) {
	return m.A*x + m.C*y, m.B*x + m.D*y
}

// Determinant returns ad - bc.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. The boolean is false when the
// matrix is singular or not finite.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsInvertible reports whether m has a finite, non-zero determinant.
func (m Matrix) IsInvertible() bool {
	_, ok := m.Invert()
	return ok
}

// IsFinite reports whether all six components are finite.
func (m Matrix) IsFinite() bool {
	for _, v := range m.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Values returns the components as [a, b, c, d, e, f].
func (m Matrix) Values() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// AverageScale returns the mean length of the transformed unit axes.
// Line widths and dash lengths given in user space are multiplied by it
// when the geometry has already been mapped to device space.
func (m Matrix) AverageScale() float64 {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	return (sx + sy) / 2
}

// ToAff3 converts m to the row-major form used by golang.org/x/image/draw.
func (m Matrix) ToAff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}
