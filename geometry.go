package drawlib

import "slices"

// Contour is an ordered list of points. Whether it is open or closed is
// decided by how it is used: polygon rings are always closed, polylines are
// closed only when their LineProperties say so.
type Contour []Point

// Clone returns a deep copy of the contour. A nil contour stays nil.
func (c Contour) Clone() Contour {
	return slices.Clone(c)
}

// Translate shifts every point of the contour in place.
func (c Contour) Translate(tx, ty float64) {
	for i := range c {
		c[i].X += tx
		c[i].Y += ty
	}
}

// Bounds returns the axis-aligned bounding box of the contour as
// (minX, minY, maxX, maxY). An empty contour yields all zeros.
func (c Contour) Bounds() (minX, minY, maxX, maxY float64) {
	if len(c) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = c[0].X, c[0].Y
	maxX, maxY = minX, minY
	for _, p := range c[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// Rect returns the closed rectangular contour with corners (x0,y0) and (x1,y1).
func Rect(x0, y0, x1, y1 float64) Contour {
	return Contour{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Polygon is an outer boundary with zero or more holes. The filled region
// is the outer area minus the union of the holes. Holes are expected to be
// non-overlapping and to lie inside the outer contour.
type Polygon struct {
	Outer Contour
	Holes []Contour
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := Polygon{Outer: p.Outer.Clone()}
	if p.Holes != nil {
		out.Holes = make([]Contour, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Clone()
		}
	}
	return out
}

// Translate shifts the outer contour and every hole in place.
func (p Polygon) Translate(tx, ty float64) {
	p.Outer.Translate(tx, ty)
	for _, h := range p.Holes {
		h.Translate(tx, ty)
	}
}

// ClonePolygons deep-copies a polygon list.
func ClonePolygons(ps []Polygon) []Polygon {
	if ps == nil {
		return nil
	}
	out := make([]Polygon, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// CloneContours deep-copies a contour list.
func CloneContours(cs []Contour) []Contour {
	if cs == nil {
		return nil
	}
	out := make([]Contour, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Triangle is a triangle in drawing coordinates, used as bounding geometry
// for text hit-testing.
type Triangle [3]Point
