package text

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/gogpu/drawlib"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
)

// FlattenTolerance is the maximum distance between a curve and the line
// segments approximating it, in pixels.
const FlattenTolerance = 0.2

// GlyphOutline returns the outline of glyph gid at size pixels per em, in
// glyph space: origin on the baseline at the pen position, y down.
// Glyphs without an outline (such as spaces) return nil. Outlines are
// cached; the returned slice must not be modified.
func (s *Shaper) GlyphOutline(f *Font, gid uint16, size float64) ([]curve.PathElement, error) {
	key := outlineKey{font: f, gid: gid, size: math.Float64bits(size)}
	return s.outlines.GetOrCreate(key, func() ([]curve.PathElement, error) {
		return s.loadOutline(f, gid, size)
	})
}

func (s *Shaper) loadOutline(f *Font, gid uint16, size float64) ([]curve.PathElement, error) {
	segs, err := f.sfnt.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, nil
		}
		return nil, fmt.Errorf("text: load glyph %d of %q: %w", gid, f.name, err)
	}
	out := make([]curve.PathElement, 0, len(segs)+4)
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out = append(out, curve.PathElement{Kind: curve.ClosePathKind})
			}
			out = append(out, curve.PathElement{Kind: curve.MoveToKind, P0: toCurve(seg.Args[0])})
			open = true
		case sfnt.SegmentOpLineTo:
			out = append(out, curve.PathElement{Kind: curve.LineToKind, P0: toCurve(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			out = append(out, curve.PathElement{
				Kind: curve.QuadToKind,
				P0:   toCurve(seg.Args[0]),
				P1:   toCurve(seg.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			out = append(out, curve.PathElement{
				Kind: curve.CubicToKind,
				P0:   toCurve(seg.Args[0]),
				P1:   toCurve(seg.Args[1]),
				P2:   toCurve(seg.Args[2]),
			})
		}
	}
	if open {
		out = append(out, curve.PathElement{Kind: curve.ClosePathKind})
	}
	return out, nil
}

// Outline returns the outline of the whole run in layout space.
func (s *Shaper) Outline(sh *Shaped) ([]curve.PathElement, error) {
	var out []curve.PathElement
	for _, g := range sh.Glyphs {
		els, err := s.GlyphOutline(sh.Font, g.ID, sh.Size)
		if err != nil {
			return nil, err
		}
		out = append(out, TransformElements(els, drawlib.Translate(g.X, sh.Ascent+g.Y))...)
	}
	return out, nil
}

func toCurve(p fixed.Point26_6) curve.Point {
	return curve.Point{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}

// TransformElements returns a copy of els with every point mapped by m.
func TransformElements(els []curve.PathElement, m drawlib.Matrix) []curve.PathElement {
	out := make([]curve.PathElement, len(els))
	for i, el := range els {
		out[i] = curve.PathElement{
			Kind: el.Kind,
			P0:   transformCurvePoint(m, el.P0),
			P1:   transformCurvePoint(m, el.P1),
			P2:   transformCurvePoint(m, el.P2),
		}
	}
	return out
}

func transformCurvePoint(m drawlib.Matrix, p curve.Point) curve.Point {
	q := m.TransformPoint(drawlib.Point{X: p.X, Y: p.Y})
	return curve.Point{X: q.X, Y: q.Y}
}

// Flatten approximates path elements by closed polygon contours, keeping
// every point within FlattenTolerance of the curves.
func Flatten(els iter.Seq[curve.PathElement]) []drawlib.Contour {
	var (
		out []drawlib.Contour
		cur drawlib.Contour
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for el := range curve.Flatten(els, FlattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			cur = drawlib.Contour{pt(el.P0)}
		case curve.LineToKind:
			cur = append(cur, pt(el.P0))
		case curve.ClosePathKind:
			flush()
		}
	}
	flush()
	return out
}

func pt(p curve.Point) drawlib.Point { return drawlib.Point{X: p.X, Y: p.Y} }

// StrokeOutline expands path elements stroked with the given width into
// filled contours. Joins are mitered and caps are butt, matching how
// glyph outlines are usually traced.
func StrokeOutline(els []curve.PathElement, width float64) []drawlib.Contour {
	if width <= 0 || len(els) == 0 {
		return nil
	}
	style := curve.Stroke{
		Width:      width,
		Join:       curve.MiterJoin,
		StartCap:   curve.ButtCap,
		EndCap:     curve.ButtCap,
		MiterLimit: 4,
	}
	stroked := curve.StrokePath(slices.Values(els), style, curve.StrokeOpts{}, FlattenTolerance)
	return Flatten(stroked)
}

// ContourElements converts closed polygon contours to path elements.
func ContourElements(cs []drawlib.Contour) []curve.PathElement {
	var out []curve.PathElement
	for _, c := range cs {
		if len(c) == 0 {
			continue
		}
		out = append(out, curve.PathElement{Kind: curve.MoveToKind, P0: curve.Point{X: c[0].X, Y: c[0].Y}})
		for _, p := range c[1:] {
			out = append(out, curve.PathElement{Kind: curve.LineToKind, P0: curve.Point{X: p.X, Y: p.Y}})
		}
		out = append(out, curve.PathElement{Kind: curve.ClosePathKind})
	}
	return out
}
