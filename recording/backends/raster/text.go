package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"slices"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/text"
)

// DrawText draws each label with the font of props. The label's anchor is
// placed according to HAlign and VAlign, and the text is rotated about it
// by the label's angle. When Outline is set the glyph outlines are stroked
// with the line color first; when Fill is set they are filled with the
// fill color on top.
func (b *Backend) DrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) error {
	for _, l := range labels {
		if l.Text == "" {
			continue
		}
		sh, err := b.shaper.Shape(l.Text, props.Font, props.FontSize)
		if err != nil {
			return fmt.Errorf("raster: text %q: %w", l.Text, err)
		}
		els, err := b.shaper.Outline(sh)
		if err != nil {
			return fmt.Errorf("raster: text %q: %w", l.Text, err)
		}
		m := drawlib.LabelTransform(l, sh.Width, sh.Height(), props.HAlign, props.VAlign)
		els = text.TransformElements(els, m)

		if props.Outline {
			b.fillText(text.StrokeOutline(els, props.LineWidth), props.LR, props.LG, props.LB, props.LA)
		}
		if props.Fill {
			b.fillText(text.Flatten(slices.Values(els)), props.FR, props.FG, props.FB, props.FA)
		}
	}
	return nil
}

// DrawTwistedText draws each label along its path, which serves as the
// baseline. Labels whose path has no length are skipped.
func (b *Backend) DrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) error {
	for _, l := range labels {
		if l.Text == "" {
			continue
		}
		pt, err := b.shaper.ShapeAlongPath(l.Text, l.Path, props)
		if err != nil {
			if errors.Is(err, text.ErrEmptyPath) {
				drawlib.Logger().Debug("raster: skip text on empty path", "text", l.Text)
				continue
			}
			return fmt.Errorf("raster: text %q along path: %w", l.Text, err)
		}
		contours := pt.Contours()
		if props.Outline {
			stroked := text.StrokeOutline(text.ContourElements(contours), props.LineWidth)
			b.fillText(stroked, props.LR, props.LG, props.LB, props.LA)
		}
		if props.Fill {
			b.fillText(contours, props.FR, props.FG, props.FB, props.FA)
		}
	}
	return nil
}

func (b *Backend) fillText(contours []drawlib.Contour, r, g, bl, a float64) {
	if len(contours) == 0 {
		return
	}
	b.fillContours(b.img, b.clip, contours, image.NewUniform(rgba(r, g, bl, a)), draw.Over)
}

// TriangleBoundsText returns two triangles covering the logical box of
// label as DrawText would place it.
func (b *Backend) TriangleBoundsText(label drawlib.TextLabel, props drawlib.TextProperties) ([]drawlib.Triangle, error) {
	sh, err := b.shaper.Shape(label.Text, props.Font, props.FontSize)
	if err != nil {
		return nil, fmt.Errorf("raster: text bounds: %w", err)
	}
	m := drawlib.LabelTransform(label, sh.Width, sh.Height(), props.HAlign, props.VAlign)
	return drawlib.BoxTriangles(m, sh.Width, sh.Height()), nil
}

// TriangleBoundsTwistedText returns two triangles per glyph of label as
// DrawTwistedText would place them, with the path length and the advance
// width of the text. On failure the triangles are nil and both lengths
// are -1.
func (b *Backend) TriangleBoundsTwistedText(label drawlib.TwistedTextLabel, props drawlib.TextProperties) (
	[]drawlib.Triangle, float64, float64, error) {
	pt, err := b.shaper.ShapeAlongPath(label.Text, label.Path, props)
	if err != nil {
		return nil, -1, -1, fmt.Errorf("raster: text along path bounds: %w", err)
	}
	return pt.Triangles, pt.PathLength, pt.TextLength, nil
}
