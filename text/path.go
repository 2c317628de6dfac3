package text

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/drawlib"
	"honnef.co/go/curve"
)

// measureAccuracy bounds the arc length error of each path segment.
const measureAccuracy = 1e-3

type span struct {
	seg    curve.PathSegment
	s, len float64 // arc length at start, segment length
}

// PathMeasure maps arc length along a path to positions and directions.
// Moves between subpaths do not count towards the length.
type PathMeasure struct {
	spans  []span
	length float64
}

// NewPathMeasure measures a path given as curve commands.
func NewPathMeasure(path []drawlib.CurveCmd) *PathMeasure {
	m := &PathMeasure{}
	for seg := range curve.Segments(slices.Values(curveElements(path))) {
		l := seg.Arclen(measureAccuracy)
		if l == 0 {
			continue
		}
		m.spans = append(m.spans, span{seg: seg, s: m.length, len: l})
		m.length += l
	}
	return m
}

// curveElements converts curve commands to absolute path elements.
func curveElements(path []drawlib.CurveCmd) []curve.PathElement {
	segs := drawlib.Flatten(path)
	out := make([]curve.PathElement, 0, len(segs))
	for _, seg := range segs {
		switch seg.Kind {
		case drawlib.SegmentMove:
			out = append(out, curve.MoveTo(cpt(seg.P[0])))
		case drawlib.SegmentLine:
			out = append(out, curve.LineTo(cpt(seg.P[0])))
		case drawlib.SegmentCubic:
			out = append(out, curve.CubicTo(cpt(seg.P[0]), cpt(seg.P[1]), cpt(seg.P[2])))
		}
	}
	return out
}

func cpt(p drawlib.Point) curve.Point { return curve.Point{X: p.X, Y: p.Y} }

// Length returns the arc length of the path.
func (m *PathMeasure) Length() float64 { return m.length }

// At returns the point at arc length s and the unit tangent there. Values
// of s before the start or past the end extend the first or last segment
// along its end tangent.
func (m *PathMeasure) At(s float64) (p, tangent drawlib.Point) {
	if len(m.spans) == 0 {
		return drawlib.Point{}, drawlib.Point{X: 1}
	}
	i := sort.Search(len(m.spans), func(i int) bool {
		return m.spans[i].s+m.spans[i].len > s
	})
	if i == len(m.spans) {
		i--
	}
	sp := m.spans[i]
	local := s - sp.s
	switch {
	case local <= 0:
		d, _ := sp.seg.Tangents()
		t := unit(d)
		return pt(sp.seg.P0).Add(t.Mul(local)), t
	case local >= sp.len:
		_, d := sp.seg.Tangents()
		t := unit(d)
		return pt(sp.seg.End()).Add(t.Mul(local - sp.len)), t
	}
	u := sp.seg.SolveForArclen(local, measureAccuracy)
	return pt(sp.seg.Eval(u)), tangentAt(sp.seg, u)
}

// tangentAt returns the unit tangent of seg at parameter u, read off the
// longer of the two subsegments split at u.
func tangentAt(seg curve.PathSegment, u float64) drawlib.Point {
	if u <= 0.5 {
		d, _ := seg.Subsegment(u, 1).Tangents()
		return unit(d)
	}
	_, d := seg.Subsegment(0, u).Tangents()
	return unit(d)
}

func unit(v curve.Vec2) drawlib.Point {
	h := v.Hypot()
	if h == 0 {
		return drawlib.Point{X: 1}
	}
	return drawlib.Point{X: v.X / h, Y: v.Y / h}
}

// Warp maps a layout point (x along the baseline, y below it) onto the
// path, starting at arc length offset.
func (m *PathMeasure) Warp(offset float64, q drawlib.Point) drawlib.Point {
	p, t := m.At(offset + q.X)
	normal := drawlib.Point{X: -t.Y, Y: t.X}
	return p.Add(normal.Mul(q.Y))
}

// PathText is text bent along a path.
type PathText struct {
	// Glyphs holds the warped outline contours of every glyph.
	Glyphs [][]drawlib.Contour
	// Triangles holds two triangles per glyph covering its warped box.
	Triangles  []drawlib.Triangle
	PathLength float64
	TextLength float64
}

// Contours returns the outline contours of all glyphs.
func (t *PathText) Contours() []drawlib.Contour {
	var out []drawlib.Contour
	for _, g := range t.Glyphs {
		out = append(out, g...)
	}
	return out
}

// ShapeAlongPath shapes str with the font and size of props and bends it
// along path, which serves as the baseline. HAlign positions the run along
// the path: 0 starts it at the beginning, 1 ends it at the end.
//
// It fails with ErrEmptyPath when the path has no length.
func (s *Shaper) ShapeAlongPath(str string, path []drawlib.CurveCmd, props drawlib.TextProperties) (*PathText, error) {
	m := NewPathMeasure(path)
	if m.Length() == 0 {
		return nil, ErrEmptyPath
	}
	sh, err := s.Shape(str, props.Font, props.FontSize)
	if err != nil {
		return nil, err
	}
	offset := (m.Length() - sh.Width) * props.HAlign

	out := &PathText{
		Glyphs:     make([][]drawlib.Contour, 0, len(sh.Glyphs)),
		Triangles:  make([]drawlib.Triangle, 0, 2*len(sh.Glyphs)),
		PathLength: m.Length(),
		TextLength: sh.Width,
	}
	for _, g := range sh.Glyphs {
		els, err := s.GlyphOutline(sh.Font, g.ID, sh.Size)
		if err != nil {
			return nil, fmt.Errorf("text: along path: %w", err)
		}
		contours := Flatten(slices.Values(TransformElements(els, drawlib.Translate(g.X, g.Y))))
		for _, c := range contours {
			for i := range c {
				c[i] = m.Warp(offset, c[i])
			}
		}
		out.Glyphs = append(out.Glyphs, contours)

		x0, x1 := g.X, g.X+g.Advance
		tl := m.Warp(offset, drawlib.Point{X: x0, Y: -sh.Ascent})
		tr := m.Warp(offset, drawlib.Point{X: x1, Y: -sh.Ascent})
		bl := m.Warp(offset, drawlib.Point{X: x0, Y: sh.Descent})
		br := m.Warp(offset, drawlib.Point{X: x1, Y: sh.Descent})
		out.Triangles = append(out.Triangles,
			drawlib.Triangle{tl, tr, bl},
			drawlib.Triangle{bl, tr, br},
		)
	}
	return out, nil
}
