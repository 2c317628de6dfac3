package drawlib

import "cmp"

// ShapeProperties describes how polygons are filled.
//
// An empty ImageID selects a solid fill with (R,G,B,A). A non-empty ImageID
// selects a repeating pattern from the named image resource, shifted by
// (TexX, TexY). If the resource cannot be resolved at draw time the shape is
// filled opaque red at alpha A.
type ShapeProperties struct {
	R, G, B, A float64
	ImageID    string
	TexX, TexY float64
}

// DefaultShapeProperties returns opaque white with no image.
func DefaultShapeProperties() ShapeProperties {
	return ShapeProperties{R: 1, G: 1, B: 1, A: 1}
}

// NewShapeProperties returns an opaque solid fill.
func NewShapeProperties(r, g, b float64) ShapeProperties {
	return ShapeProperties{R: r, G: g, B: b, A: 1}
}

// Compare orders shape properties field by field in declaration order.
// It returns -1, 0 or +1.
func (p ShapeProperties) Compare(o ShapeProperties) int {
	return cmpChain(
		cmp.Compare(p.R, o.R),
		cmp.Compare(p.G, o.G),
		cmp.Compare(p.B, o.B),
		cmp.Compare(p.A, o.A),
		cmp.Compare(p.ImageID, o.ImageID),
		cmp.Compare(p.TexX, o.TexX),
		cmp.Compare(p.TexY, o.TexY),
	)
}

// Less reports whether p orders before o.
func (p ShapeProperties) Less(o ShapeProperties) bool { return p.Compare(o) < 0 }

// Line join and cap names understood by backends. Any other value keeps the
// backend default (miter join, butt cap).
const (
	JoinMiter = "miter"
	JoinRound = "round"
	JoinBevel = "bevel"

	CapButt   = "butt"
	CapRound  = "round"
	CapSquare = "square"
)

// LineProperties describes how polylines are stroked.
type LineProperties struct {
	R, G, B, A float64
	Width      float64
	ClosedLoop bool
	Join       string
	Cap        string
}

// DefaultLineProperties returns an opaque white, 1 unit wide, open line
// with miter joins and butt caps.
func DefaultLineProperties() LineProperties {
	return LineProperties{R: 1, G: 1, B: 1, A: 1, Width: 1, Join: JoinMiter, Cap: CapButt}
}

// NewLineProperties returns an opaque line of the given color and width.
func NewLineProperties(r, g, b, width float64) LineProperties {
	p := DefaultLineProperties()
	p.R, p.G, p.B = r, g, b
	p.Width = width
	return p
}

// Compare orders line properties field by field in declaration order.
func (p LineProperties) Compare(o LineProperties) int {
	return cmpChain(
		cmp.Compare(p.R, o.R),
		cmp.Compare(p.G, o.G),
		cmp.Compare(p.B, o.B),
		cmp.Compare(p.A, o.A),
		cmp.Compare(p.Width, o.Width),
		cmpBool(p.ClosedLoop, o.ClosedLoop),
		cmp.Compare(p.Join, o.Join),
		cmp.Compare(p.Cap, o.Cap),
	)
}

// Less reports whether p orders before o.
func (p LineProperties) Less(o LineProperties) bool { return p.Compare(o) < 0 }

// TextProperties describes how text labels are drawn.
//
// HAlign and VAlign are fractions of the text box subtracted from the
// anchor: 0 anchors the left/top edge, 0.5 the center, 1 the right/bottom.
type TextProperties struct {
	FR, FG, FB, FA float64 // fill color
	LR, LG, LB, LA float64 // outline color
	Font           string
	FontSize       float64
	Outline        bool
	Fill           bool
	LineWidth      float64
	HAlign, VAlign float64
}

// DefaultTextProperties returns white 10pt "Sans" text, filled and not
// outlined.
func DefaultTextProperties() TextProperties {
	return TextProperties{
		FR: 1, FG: 1, FB: 1, FA: 1,
		LR: 1, LG: 1, LB: 1, LA: 1,
		Font:      "Sans",
		FontSize:  10,
		Fill:      true,
		LineWidth: 1,
	}
}

// NewTextProperties returns default text properties with both the fill and
// the outline set to the given opaque color.
func NewTextProperties(r, g, b float64) TextProperties {
	p := DefaultTextProperties()
	p.FR, p.FG, p.FB = r, g, b
	p.LR, p.LG, p.LB = r, g, b
	return p
}

// Compare orders text properties: fill color, outline color, font, font
// size, outline flag, fill flag, line width, vertical then horizontal
// alignment.
func (p TextProperties) Compare(o TextProperties) int {
	return cmpChain(
		cmp.Compare(p.FR, o.FR),
		cmp.Compare(p.FG, o.FG),
		cmp.Compare(p.FB, o.FB),
		cmp.Compare(p.FA, o.FA),
		cmp.Compare(p.LR, o.LR),
		cmp.Compare(p.LG, o.LG),
		cmp.Compare(p.LB, o.LB),
		cmp.Compare(p.LA, o.LA),
		cmp.Compare(p.Font, o.Font),
		cmp.Compare(p.FontSize, o.FontSize),
		cmpBool(p.Outline, o.Outline),
		cmpBool(p.Fill, o.Fill),
		cmp.Compare(p.LineWidth, o.LineWidth),
		cmp.Compare(p.VAlign, o.VAlign),
		cmp.Compare(p.HAlign, o.HAlign),
	)
}

// Less reports whether p orders before o.
func (p TextProperties) Less(o TextProperties) bool { return p.Compare(o) < 0 }

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// cmpChain returns the first non-zero comparison result.
func cmpChain(results ...int) int {
	for _, r := range results {
		if r != 0 {
			return r
		}
	}
	return 0
}
