package geom

import "math"

// Matrix is a 2x3 affine transform in row-major order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero Matrix collapses every point to the origin; start from
// [Identity] or one of the constructors.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix { return Matrix{A: 1, C: x, E: 1, F: y} }

// Scale returns a scale about the origin.
func Scale(x, y float64) Matrix { return Matrix{A: x, E: y} }

// Rotate returns a rotation by angle radians, clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// skew returns a shear by the tangents of the degree angles x and y.
func skew(x, y float64) Matrix {
	return Matrix{A: 1, B: math.Tan(Radians(x)), D: math.Tan(Radians(y)), E: 1}
}

// Multiply returns m*n, the transform applying n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint maps a position through m.
func (m Matrix) TransformPoint(p Point) Point {
	return m.TransformVector(p).Add(Pt(m.C, m.F))
}

// TransformVector maps a displacement through the linear part of m.
func (m Matrix) TransformVector(v Point) Point {
	return Pt(m.A*v.X+m.B*v.Y, m.D*v.X+m.E*v.Y)
}

// Invert returns the inverse of m. A degenerate m, such as the matrix of a
// zero-scale object, inverts to the identity so that plane changes through
// it leave coordinates untouched.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	a, b, d, e := m.E/det, -m.B/det, -m.D/det, m.A/det
	return Matrix{
		A: a, B: b, C: -(a*m.C + b*m.F),
		D: d, E: e, F: -(d*m.C + e*m.F),
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool { return m == Identity() }

// PlaneChange returns the matrix that maps coordinates measured in the
// plane of from to the plane of to. Both arguments are total transforms,
// from an object's plane to the canvas.
func PlaneChange(from, to Matrix) Matrix {
	return to.Invert().Multiply(from)
}

// Transform is the decomposed placement of a scene object in its parent
// plane. Angles are in degrees and the translation is the object's center.
// The zero value has zero scale.
type Transform struct {
	TranslateX, TranslateY float64
	Angle                  float64
	ScaleX, ScaleY         float64
	SkewX, SkewY           float64
	FlipX, FlipY           bool
}

// DimensionsMatrix returns the scale, flip and skew part of t: everything
// that changes an object's size but not its orientation or place.
func (t Transform) DimensionsMatrix() Matrix {
	sx, sy := t.ScaleX, t.ScaleY
	if t.FlipX {
		sx = -sx
	}
	if t.FlipY {
		sy = -sy
	}
	m := Scale(sx, sy)
	if t.SkewX != 0 {
		m = m.Multiply(skew(t.SkewX, 0))
	}
	if t.SkewY != 0 {
		m = m.Multiply(skew(0, t.SkewY))
	}
	return m
}

// Compose builds translate * rotate * scale * skewX * skewY.
func Compose(t Transform) Matrix {
	return Translate(t.TranslateX, t.TranslateY).
		Multiply(Rotate(Radians(t.Angle))).
		Multiply(t.DimensionsMatrix())
}

// Decompose splits m into translation, rotation, scale and horizontal skew.
// SkewY is always 0 and flips end up in the scale signs, so that
// Compose(Decompose(m)) reproduces m.
func Decompose(m Matrix) Transform {
	t := Transform{
		TranslateX: m.C,
		TranslateY: m.F,
		Angle:      Degrees(math.Atan2(m.D, m.A)),
	}
	denom := m.A*m.A + m.D*m.D
	t.ScaleX = math.Sqrt(denom)
	if t.ScaleX != 0 {
		t.ScaleY = (m.A*m.E - m.B*m.D) / t.ScaleX
		t.SkewX = Degrees(math.Atan2(m.A*m.B+m.D*m.E, denom))
	}
	return t
}

// SizeAfterTransform returns the axis-aligned size of a w x h box centred
// on the origin once sent through the linear part of m.
func SizeAfterTransform(w, h float64, m Matrix) Point {
	hw, hh := w/2, h/2
	return BoundingBox([]Point{
		m.TransformVector(Pt(-hw, -hh)),
		m.TransformVector(Pt(hw, -hh)),
		m.TransformVector(Pt(hw, hh)),
		m.TransformVector(Pt(-hw, hh)),
	}).Size()
}
