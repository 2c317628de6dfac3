package drawlib

// CurveFitter turns a sharp-cornered polyline into a smoothed bezier path,
// so text warped along it does not kink visibly at the vertices.
//
// A is the fraction of each segment given over to corner rounding at either
// end; B is the half-width of the relief around the corner control points.
type CurveFitter struct {
	A, B float64
}

// DefaultCurveFitter is the fitter used by FitBezierToPoints.
var DefaultCurveFitter = CurveFitter{A: 0.2, B: 0.05}

// FitBezierToPoints fits pts with DefaultCurveFitter.
func FitBezierToPoints(pts Contour) []CurveCmd {
	return DefaultCurveFitter.Fit(pts)
}

// Fit converts pts into a path of one MoveTo followed by cubic CurveTo
// commands. An empty input yields an empty path; a single point yields only
// the MoveTo.
func (f CurveFitter) Fit(pts Contour) []CurveCmd {
	if len(pts) == 0 {
		return []CurveCmd{}
	}
	a, b := f.A, f.B
	a2 := 1 - a

	out := make([]CurveCmd, 0, 2*len(pts))
	c := pts[0]
	out = append(out, MoveTo(c.X, c.Y))
	carry := c

	for _, pt := range pts[1:] {
		d := pt.Sub(c)
		c1 := c.Add(d.Mul(a))
		p1 := c.Add(d.Mul(a - b))
		p2 := c.Add(d.Mul(a + b))
		c2 := c.Add(d.Mul(a2))
		p3 := c.Add(d.Mul(a2 - b))

		out = append(out,
			CurveTo(carry.X, carry.Y, p1.X, p1.Y, c1.X, c1.Y),
			CurveTo(p2.X, p2.Y, p3.X, p3.Y, c2.X, c2.Y),
		)
		carry = c.Add(d.Mul(a2 + b))
		c = pt
	}

	if n := len(pts); n > 1 {
		end := pts[n-1]
		d := end.Sub(pts[n-2])
		ctrl := end.Sub(d.Mul(a))
		out = append(out, CurveTo(carry.X, carry.Y, ctrl.X, ctrl.Y, end.X, end.Y))
	}
	return out
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Flatten approximates the curve by n+1 evenly parameterized points,
// including both end points.
func (c CubicBez) Flatten(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	return pts
}
