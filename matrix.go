package drawlib

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Rotate creates a rotation matrix (angle in radians). With y pointing
// down, positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
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
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// LabelTransform maps the text box of a label into drawing coordinates.
// In box space the text occupies (0,0)-(w,h) with y down; the box is
// shifted by the alignment fractions, rotated by the label angle and moved
// to the anchor.
func LabelTransform(l TextLabel, w, h, halign, valign float64) Matrix {
	return Translate(l.X, l.Y).
		Multiply(Rotate(l.Angle)).
		Multiply(Translate(-w*halign, -h*valign))
}

// BoxTriangles splits the box (0,0)-(w,h), mapped by m, into two triangles
// along the diagonal from its top-right to its bottom-left corner.
func BoxTriangles(m Matrix, w, h float64) []Triangle {
	o := m.TransformPoint(Point{})
	pw := m.TransformPoint(Point{X: w})
	ph := m.TransformPoint(Point{Y: h})
	pwh := m.TransformPoint(Point{X: w, Y: h})
	return []Triangle{{o, pw, ph}, {ph, pw, pwh}}
}
