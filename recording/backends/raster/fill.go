package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/internal/stroke"
)

// maxMaskPixels bounds the scratch mask size.
var maxMaskPixels int64 = 1 << 28

// DrawPolygons fills each polygon with the paint resolved from props.
// Polygons without holes are filled directly. Polygons with holes are
// first rendered into an alpha mask covering the drawable extents: the
// outer contour is filled opaque, then each hole is replaced with
// transparency in order. The paint is then composited through the mask.
//
// Nested or overlapping holes are not supported.
func (b *Backend) DrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) error {
	b.Save()
	defer b.Restore()

	for i, p := range polygons {
		if len(p.Outer) == 0 {
			continue
		}
		if len(p.Holes) == 0 {
			b.FillContour(p.Outer, b.ResolvePaintSource(props), draw.Over)
			continue
		}
		if err := b.fillWithHoles(p, props); err != nil {
			return fmt.Errorf("raster: polygon %d: %w", i, err)
		}
	}
	return nil
}

func (b *Backend) fillWithHoles(p drawlib.Polygon, props drawlib.ShapeProperties) error {
	x1, y1, x2, y2 := b.DrawableExtents()
	r := image.Rect(x1, y1, x2, y2)
	if r.Empty() {
		drawlib.Logger().Debug("raster: polygon with holes outside the clip", "clip", r)
		return nil
	}
	mask, err := b.scratchMask(r)
	if err != nil {
		return err
	}
	b.fillContours(mask, r, []drawlib.Contour{p.Outer}, image.Opaque, draw.Over)
	for _, h := range p.Holes {
		if len(h) == 0 {
			continue
		}
		b.fillContours(mask, r, []drawlib.Contour{h}, image.Transparent, draw.Src)
	}
	draw.DrawMask(b.img, b.clip, b.ResolvePaintSource(props), b.clip.Min, mask, b.clip.Min, draw.Over)
	return nil
}

// scratchMask returns a cleared alpha buffer covering r. The previous
// buffer is reused when it has the same size.
func (b *Backend) scratchMask(r image.Rectangle) (*image.Alpha, error) {
	if int64(r.Dx())*int64(r.Dy()) > maxMaskPixels {
		return nil, fmt.Errorf("raster: mask of %dx%d pixels: %w", r.Dx(), r.Dy(), drawlib.ErrAllocation)
	}
	if b.mask != nil && b.mask.Rect.Size() == r.Size() {
		b.mask.Rect = r
		clear(b.mask.Pix)
		return b.mask, nil
	}
	drawlib.Logger().Debug("raster: allocate mask", "width", r.Dx(), "height", r.Dy())
	b.mask = image.NewAlpha(r)
	return b.mask, nil
}

// coverage returns an alpha buffer covering r with unspecified content.
func (b *Backend) coverage(r image.Rectangle) *image.Alpha {
	if b.cov != nil && b.cov.Rect.Size() == r.Size() {
		b.cov.Rect = r
		return b.cov
	}
	b.cov = image.NewAlpha(r)
	return b.cov
}

// FillContour fills a closed contour with src inside the current clip.
// draw.Over blends src over the canvas by coverage. draw.Src replaces the
// covered pixels with src, leaving the rest of the canvas untouched.
func (b *Backend) FillContour(c drawlib.Contour, src image.Image, op draw.Op) {
	b.fillContours(b.img, b.clip, []drawlib.Contour{c}, src, op)
}

// StrokeContour strokes a polyline with the color, width, cap and join of
// props. Closed loops are joined at the start point.
func (b *Backend) StrokeContour(c drawlib.Contour, props drawlib.LineProperties) {
	rings := stroke.NewExpander(stroke.FromLineProperties(props)).Expand(c, props.ClosedLoop)
	if len(rings) == 0 {
		return
	}
	b.fillContours(b.img, b.clip, rings, image.NewUniform(rgba(props.R, props.G, props.B, props.A)), draw.Over)
}

// DrawLines strokes each polyline.
func (b *Backend) DrawLines(lines []drawlib.Contour, props drawlib.LineProperties) error {
	if _, ok := stroke.ParseCap(props.Cap); !ok && props.Cap != "" {
		drawlib.Logger().Debug("raster: unknown line cap, using butt", "cap", props.Cap)
	}
	if _, ok := stroke.ParseJoin(props.Join); !ok && props.Join != "" {
		drawlib.Logger().Debug("raster: unknown line join, using miter", "join", props.Join)
	}
	for _, l := range lines {
		b.StrokeContour(l, props)
	}
	return nil
}

// fillContours scan-converts contours, given in canvas coordinates, into
// the part r of dst. All contours are rasterized together with the
// non-zero rule.
func (b *Backend) fillContours(dst draw.Image, r image.Rectangle, contours []drawlib.Contour, src image.Image, op draw.Op) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	b.rasterize(r, contours)
	switch op {
	case draw.Src:
		cov := b.coverage(r)
		b.z.DrawOp = draw.Src
		b.z.Draw(cov, r, image.Opaque, image.Point{})
		replaceCovered(dst, r, src, cov)
	default:
		b.z.DrawOp = draw.Over
		b.z.Draw(dst, r, src, r.Min)
	}
}

func (b *Backend) rasterize(r image.Rectangle, contours []drawlib.Contour) {
	b.z.Reset(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, c := range contours {
		if len(c) < 2 {
			continue
		}
		b.z.MoveTo(float32(c[0].X-ox), float32(c[0].Y-oy))
		for _, p := range c[1:] {
			b.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		b.z.ClosePath()
	}
}

// replaceCovered sets each pixel of dst in r to src where cov is opaque,
// interpolating between dst and src where it is partial.
func replaceCovered(dst draw.Image, r image.Rectangle, src image.Image, cov *image.Alpha) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := uint32(cov.AlphaAt(x, y).A) * 0x101
			if c == 0 {
				continue
			}
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if c == 0xffff {
				dst.Set(x, y, color.RGBA64{R: uint16(sr), G: uint16(sg), B: uint16(sb), A: uint16(sa)})
				continue
			}
			dr, dg, db, da := dst.At(x, y).RGBA()
			k := 0xffff - c
			dst.Set(x, y, color.RGBA64{
				R: uint16((sr*c + dr*k) / 0xffff),
				G: uint16((sg*c + dg*k) / 0xffff),
				B: uint16((sb*c + db*k) / 0xffff),
				A: uint16((sa*c + da*k) / 0xffff),
			})
		}
	}
}
