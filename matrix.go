package pattern

import "math"

// Matrix is a 2D affine map stored as the top two rows of a 3x3 matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Patterns keep two of them, one per direction, so neither ColorAt nor
// BoundingBox has to invert anything.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the map that leaves every point in place.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns the map that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns the map that scales about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns the map that rotates about the origin by angle radians.
// With y pointing down, a positive angle turns +x toward +y.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m∘other: the result applies other first, then m.
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

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// singularTolerance bounds |det| relative to the size of the linear part.
// Comparing against the product of the column norms keeps uniformly tiny
// or huge scales invertible.
const singularTolerance = 1e-12

// Inverse returns the inverse map. The boolean is false when the linear
// part is singular, that is when it collapses the plane onto a line.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Determinant()
	norm := math.Hypot(m.A, m.D) * math.Hypot(m.B, m.E)
	if norm == 0 || math.Abs(det) <= singularTolerance*norm {
		return Matrix{}, false
	}
	return Matrix{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.C*m.E) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.C*m.D - m.A*m.F) / det,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
