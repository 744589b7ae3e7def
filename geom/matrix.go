package geom

import "github.com/chewxy/math32"

// Matrix is a 2-D affine transformation in float32 device units.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation creates a translation transformation.
func Translation(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scaling creates a scaling transformation.
func Scaling(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// Rotation creates a rotation transformation (angle in radians).
func Rotation(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m × o: o is applied first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// Translate returns m with a translation by (x, y) applied before it.
func (m Matrix) Translate(x, y float32) Matrix {
	return m.Multiply(Translation(x, y))
}

// TransformPoint transforms a point by the matrix.
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformRect returns the bounding box of r after transformation.
func (m Matrix) TransformRect(r RectF) RectF {
	if m.IsTranslation() {
		return r.Translate(m.C, m.F)
	}
	x0, y0 := m.TransformPoint(r.MinX, r.MinY)
	x1, y1 := m.TransformPoint(r.MaxX, r.MinY)
	x2, y2 := m.TransformPoint(r.MaxX, r.MaxY)
	x3, y3 := m.TransformPoint(r.MinX, r.MaxY)
	return RectF{
		MinX: min(x0, x1, x2, x3),
		MinY: min(y0, y1, y2, y3),
		MaxX: max(x0, x1, x2, x3),
		MaxY: max(y0, y1, y2, y3),
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math32.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if this is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned reports whether the matrix maps axis-aligned rectangles to
// axis-aligned rectangles (no rotation or skew).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}
