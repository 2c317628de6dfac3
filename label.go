package drawlib

import (
	"fmt"
	"slices"
)

// TextLabel is a straight text label anchored at (X, Y) and rotated by
// Angle radians about the anchor.
type TextLabel struct {
	Text  string
	X, Y  float64
	Angle float64
}

// Translate shifts the anchor.
func (l *TextLabel) Translate(tx, ty float64) {
	l.X += tx
	l.Y += ty
}

// CurveKind identifies a path command of a twisted label's baseline.
type CurveKind uint8

const (
	CurveMoveTo     CurveKind = iota // absolute move (x, y)
	CurveLineTo                      // absolute line (x, y)
	CurveRelLineTo                   // relative line (dx, dy)
	CurveCurveTo                     // absolute cubic (x1, y1, x2, y2, x3, y3)
	CurveRelCurveTo                  // relative cubic (dx1, dy1, dx2, dy2, dx3, dy3)
)

var curveKindNames = [...]string{
	CurveMoveTo:     "MoveTo",
	CurveLineTo:     "LineTo",
	CurveRelLineTo:  "RelLineTo",
	CurveCurveTo:    "CurveTo",
	CurveRelCurveTo: "RelCurveTo",
}

// String returns the string representation of a CurveKind.
func (k CurveKind) String() string {
	if int(k) < len(curveKindNames) {
		return curveKindNames[k]
	}
	return "Unknown"
}

// Arity returns the number of arguments commands of this kind carry.
func (k CurveKind) Arity() int {
	if k == CurveCurveTo || k == CurveRelCurveTo {
		return 6
	}
	return 2
}

// IsRelative reports whether the kind's arguments are offsets from the
// current point.
func (k CurveKind) IsRelative() bool {
	return k == CurveRelLineTo || k == CurveRelCurveTo
}

// CurveCmd is one command of a path: its kind and its arguments.
// Cubic kinds carry six arguments, all others carry two.
type CurveCmd struct {
	Kind CurveKind
	Args []float64
}

// MoveTo returns an absolute move command.
func MoveTo(x, y float64) CurveCmd {
	return CurveCmd{Kind: CurveMoveTo, Args: []float64{x, y}}
}

// LineTo returns an absolute line command.
func LineTo(x, y float64) CurveCmd {
	return CurveCmd{Kind: CurveLineTo, Args: []float64{x, y}}
}

// RelLineTo returns a relative line command.
func RelLineTo(dx, dy float64) CurveCmd {
	return CurveCmd{Kind: CurveRelLineTo, Args: []float64{dx, dy}}
}

// CurveTo returns an absolute cubic bezier command.
func CurveTo(x1, y1, x2, y2, x3, y3 float64) CurveCmd {
	return CurveCmd{Kind: CurveCurveTo, Args: []float64{x1, y1, x2, y2, x3, y3}}
}

// RelCurveTo returns a relative cubic bezier command.
func RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) CurveCmd {
	return CurveCmd{Kind: CurveRelCurveTo, Args: []float64{dx1, dy1, dx2, dy2, dx3, dy3}}
}

// NewCurveCmd builds a command from untyped input such as decoded data.
// It fails with ErrInvalidArgument when the argument count does not match
// the kind.
func NewCurveCmd(kind CurveKind, args ...float64) (CurveCmd, error) {
	if int(kind) >= len(curveKindNames) {
		return CurveCmd{}, fmt.Errorf("curve command: unknown kind %d: %w", kind, ErrInvalidArgument)
	}
	if len(args) != kind.Arity() {
		return CurveCmd{}, fmt.Errorf("curve command %s: got %d arguments, want %d: %w",
			kind, len(args), kind.Arity(), ErrInvalidArgument)
	}
	return CurveCmd{Kind: kind, Args: slices.Clone(args)}, nil
}

// Clone returns a deep copy of the command.
func (c CurveCmd) Clone() CurveCmd {
	return CurveCmd{Kind: c.Kind, Args: slices.Clone(c.Args)}
}

// Translate shifts every coordinate pair of an absolute command.
// Relative commands are left untouched.
func (c CurveCmd) Translate(tx, ty float64) {
	if c.Kind.IsRelative() {
		return
	}
	for i := 0; i+1 < len(c.Args); i += 2 {
		c.Args[i] += tx
		c.Args[i+1] += ty
	}
}

// TwistedTextLabel is text laid out along a path. The path is the text
// baseline.
type TwistedTextLabel struct {
	Text string
	Path []CurveCmd
}

// Clone returns a deep copy of the label.
func (l TwistedTextLabel) Clone() TwistedTextLabel {
	out := TwistedTextLabel{Text: l.Text}
	if l.Path != nil {
		out.Path = make([]CurveCmd, len(l.Path))
		for i, c := range l.Path {
			out.Path[i] = c.Clone()
		}
	}
	return out
}

// Translate shifts the absolute commands of the path.
func (l *TwistedTextLabel) Translate(tx, ty float64) {
	for _, c := range l.Path {
		c.Translate(tx, ty)
	}
}

// CloneTwistedLabels deep-copies a twisted label list.
func CloneTwistedLabels(ls []TwistedTextLabel) []TwistedTextLabel {
	if ls == nil {
		return nil
	}
	out := make([]TwistedTextLabel, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}

// CloneTextLabels copies a straight label list.
func CloneTextLabels(ls []TextLabel) []TextLabel {
	return slices.Clone(ls)
}

// Flatten resolves relative commands against the current point and returns
// the path as absolute segments: each subpath starts at a move and
// continues with lines or cubics. Commands with a malformed argument count
// are skipped. A path that does not start with a move begins at the origin.
func Flatten(path []CurveCmd) []PathSegment {
	var (
		out []PathSegment
		cur Point
	)
	for _, c := range path {
		if len(c.Args) != c.Kind.Arity() {
			continue
		}
		a := c.Args
		switch c.Kind {
		case CurveMoveTo:
			cur = Point{a[0], a[1]}
			out = append(out, PathSegment{Kind: SegmentMove, P: [3]Point{cur}})
		case CurveLineTo, CurveRelLineTo:
			p := Point{a[0], a[1]}
			if c.Kind == CurveRelLineTo {
				p = cur.Add(p)
			}
			out = append(out, PathSegment{Kind: SegmentLine, P: [3]Point{p}})
			cur = p
		case CurveCurveTo, CurveRelCurveTo:
			p1, p2, p3 := Point{a[0], a[1]}, Point{a[2], a[3]}, Point{a[4], a[5]}
			if c.Kind == CurveRelCurveTo {
				p1, p2, p3 = cur.Add(p1), cur.Add(p2), cur.Add(p3)
			}
			out = append(out, PathSegment{Kind: SegmentCubic, P: [3]Point{p1, p2, p3}})
			cur = p3
		}
	}
	return out
}

// SegmentKind identifies an absolute path segment.
type SegmentKind uint8

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentCubic
)

// PathSegment is an absolute path segment. Move and line segments use P[0];
// cubic segments use P[0] and P[1] as control points and P[2] as end point.
type PathSegment struct {
	Kind SegmentKind
	P    [3]Point
}
