package stroke

import (
	"math"

	"github.com/gogpu/drawlib"
)

// Point is a 2D point or vector.
type Point = drawlib.Point

// Cap specifies the shape of line endpoints.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// DefaultMiterLimit is the miter length to width ratio above which a miter
// join is drawn as a bevel.
const DefaultMiterLimit = 10.0

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// ParseCap maps a cap name to a Cap. Unrecognized names return CapButt and
// false.
func ParseCap(name string) (Cap, bool) {
	switch name {
	case drawlib.CapButt:
		return CapButt, true
	case drawlib.CapRound:
		return CapRound, true
	case drawlib.CapSquare:
		return CapSquare, true
	}
	return CapButt, false
}

// ParseJoin maps a join name to a Join. Unrecognized names return
// JoinMiter and false.
func ParseJoin(name string) (Join, bool) {
	switch name {
	case drawlib.JoinMiter:
		return JoinMiter, true
	case drawlib.JoinRound:
		return JoinRound, true
	case drawlib.JoinBevel:
		return JoinBevel, true
	}
	return JoinMiter, false
}

// FromLineProperties builds a stroke style from line properties. Unknown
// cap and join names keep the defaults.
func FromLineProperties(p drawlib.LineProperties) Style {
	c, _ := ParseCap(p.Cap)
	j, _ := ParseJoin(p.Join)
	return Style{Width: p.Width, Cap: c, Join: j, MiterLimit: DefaultMiterLimit}
}

// Expander converts polylines to filled outlines.
type Expander struct {
	style     Style
	tolerance float64

	forward  []Point
	backward []Point
	out      []drawlib.Contour

	startPt   Point
	startNorm Point
	startTan  Point
	lastPt    Point
	lastTan   Point
	lastNorm  Point

	joinThresh float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = DefaultMiterLimit
	}
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance sets the flattening tolerance for round joins and caps.
// Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand strokes the polyline and returns the outline rings. A polyline
// with fewer than two distinct points or a non-positive width yields nil.
func (e *Expander) Expand(line drawlib.Contour, closed bool) []drawlib.Contour {
	if e.style.Width <= 0 || len(line) < 2 {
		return nil
	}
	e.reset()

	e.startPt = line[0]
	e.lastPt = line[0]
	for _, p := range line[1:] {
		e.lineTo(p)
	}
	if len(e.forward) == 0 {
		return nil
	}
	if closed {
		e.lineTo(e.startPt)
		e.finishClosed()
	} else {
		e.finish()
	}
	return e.out
}

func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.out = nil
	e.startNorm, e.startTan = Point{}, Point{}
	e.lastTan, e.lastNorm = Point{}, Point{}
	e.joinThresh = 2.0 * e.tolerance / e.style.Width
}

func (e *Expander) lineTo(p Point) {
	if p == e.lastPt {
		return
	}
	tangent := p.Sub(e.lastPt)
	e.doJoin(tangent)
	e.lastTan = tangent

	norm := e.normal(tangent)
	e.forward = append(e.forward, p.Sub(norm))
	e.backward = append(e.backward, p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// normal returns the tangent's left normal scaled to half the stroke width.
func (e *Expander) normal(tan Point) Point {
	return perp(tan).Mul(0.5 * e.style.Width / tan.Length())
}

func (e *Expander) doJoin(tan Point) {
	norm := e.normal(tan)
	p0 := e.lastPt

	if len(e.forward) == 0 {
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = append(e.backward, p0.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := cross(ab, cd)
	dot := dot(ab, cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight continuation: connect both sides without a join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = append(e.backward, p0.Add(norm))
	case JoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		if 2*hypot < (hypot+dot)*e.style.MiterLimit*e.style.MiterLimit {
			e.miterPoint(p0, norm, ab, cd, cross)
		}
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = append(e.backward, p0.Add(norm))
	}
}

// miterPoint adds the outer miter tip on the side the path turns away from
// and routes the inner side through the vertex.
func (e *Expander) miterPoint(p0, norm, ab, cd Point, crossABCD float64) {
	lastNorm := e.normal(ab)
	switch {
	case crossABCD > 0:
		fpLast := p0.Sub(lastNorm)
		fpThis := p0.Sub(norm)
		h := cross(ab, fpThis.Sub(fpLast)) / crossABCD
		e.forward = append(e.forward, fpThis.Sub(cd.Mul(h)))
		e.backward = append(e.backward, p0)
	case crossABCD < 0:
		fpLast := p0.Add(lastNorm)
		fpThis := p0.Add(norm)
		h := cross(ab, fpThis.Sub(fpLast)) / crossABCD
		e.backward = append(e.backward, fpThis.Sub(cd.Mul(h)))
		e.forward = append(e.forward, p0)
	}
}

func (e *Expander) roundJoin(p0, norm Point, cross, dot float64) {
	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward = append(e.backward, p0.Add(norm))
		e.forward = e.arc(e.forward, p0, lastNorm.Mul(-1), angle)
	} else {
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = e.arc(e.backward, p0, lastNorm, angle)
	}
}

// arc appends the points of a circular arc around center, starting at
// center+radius and sweeping angle radians. The start point itself is not
// appended. The point halfway along the sweep is always a vertex, so caps
// reach their full extent.
func (e *Expander) arc(dst []Point, center, radius Point, angle float64) []Point {
	r := radius.Length()
	if r == 0 || angle == 0 {
		return dst
	}
	step := math.Pi / 2
	if e.tolerance < r {
		step = 2 * math.Acos(1-e.tolerance/r)
	}
	n := max(2, int(math.Ceil(math.Abs(angle)/step)))
	n += n % 2
	for i := 1; i <= n; i++ {
		dst = append(dst, center.Add(radius.Rotate(angle*float64(i)/float64(n))))
	}
	return dst
}

// finish closes an open polyline with caps into a single ring.
func (e *Expander) finish() {
	ring := make(drawlib.Contour, 0, len(e.forward)+len(e.backward)+16)
	ring = append(ring, e.forward...)
	ring = e.cap(ring, e.lastPt, e.lastNorm.Mul(-1), false)
	for i := len(e.backward) - 2; i >= 0; i-- {
		ring = append(ring, e.backward[i])
	}
	ring = e.cap(ring, e.startPt, e.startNorm, true)
	e.out = append(e.out, ring)
}

// finishClosed emits the two sides of a closed polyline as separate rings.
func (e *Expander) finishClosed() {
	e.doJoin(e.startTan)

	outer := make(drawlib.Contour, len(e.forward))
	copy(outer, e.forward)
	inner := make(drawlib.Contour, 0, len(e.backward))
	for i := len(e.backward) - 1; i >= 0; i-- {
		inner = append(inner, e.backward[i])
	}
	e.out = append(e.out, outer, inner)
}

// cap appends the cap around center. norm points from center to the side
// the ring is currently on. When closing, the ring's implicit closing edge
// completes the cap.
func (e *Expander) cap(ring drawlib.Contour, center, norm Point, closing bool) drawlib.Contour {
	switch e.style.Cap {
	case CapRound:
		ring = e.arc(ring, center, norm, math.Pi)
		if closing {
			ring = ring[:len(ring)-1]
		}
	case CapSquare:
		ext := perp(norm)
		ring = append(ring, center.Add(norm).Add(ext), center.Sub(norm).Add(ext))
		if !closing {
			ring = append(ring, center.Sub(norm))
		}
	default:
		if !closing {
			ring = append(ring, center.Sub(norm))
		}
	}
	return ring
}

// perp returns v rotated 90 degrees counter-clockwise.
func perp(v Point) Point { return Point{X: -v.Y, Y: v.X} }

func dot(a, b Point) float64 { return a.X*b.X + a.Y*b.Y }

func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }
