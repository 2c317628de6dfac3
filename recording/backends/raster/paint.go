package raster

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/gogpu/drawlib"
)

// ResolvePaintSource returns the source image for a shape fill. An empty
// image id yields the shape's color. A loaded image id yields the image
// tiled across the plane and offset by (TexX, TexY). An id that is unknown
// or failed to load yields the fallback color at the shape's alpha.
func (b *Backend) ResolvePaintSource(props drawlib.ShapeProperties) image.Image {
	if props.ImageID == "" {
		return image.NewUniform(rgba(props.R, props.G, props.B, props.A))
	}
	res, ok := b.resources[props.ImageID]
	if ok && res.img != nil {
		return newTile(res.img, props.TexX, props.TexY)
	}
	reason := "not loaded"
	if ok && res.err != nil {
		reason = res.err.Error()
	}
	drawlib.Logger().Warn("raster: image resource unavailable, using fallback",
		"id", props.ImageID, "reason", reason)
	return image.NewUniform(rgba(b.fallback[0], b.fallback[1], b.fallback[2], props.A))
}

// rgba converts straight-alpha components in [0, 1] to a color.
func rgba(r, g, b, a float64) color.NRGBA64 {
	return color.NRGBA64{R: unit16(r), G: unit16(g), B: unit16(b), A: unit16(a)}
}

func unit16(v float64) uint16 {
	return uint16(math.Round(min(max(v, 0), 1) * 0xffff))
}

// tile repeats an image over the whole plane. The pixel shown at (x, y)
// is the image sampled at (x+off.X+fx, y+off.Y+fy), wrapped. Fractional
// offsets blend the four neighbouring image pixels bilinearly.
type tile struct {
	img    image.Image
	off    image.Point
	fx, fy float64
}

func newTile(img image.Image, texX, texY float64) *tile {
	ox, oy := math.Floor(texX), math.Floor(texY)
	return &tile{img: img, off: image.Pt(int(ox), int(oy)), fx: texX - ox, fy: texY - oy}
}

// tileBounds is large enough for any canvas while keeping rectangle
// arithmetic far from overflow.
var tileBounds = image.Rect(-1<<28, -1<<28, 1<<28, 1<<28)

func (t *tile) ColorModel() color.Model {
	if t.fx == 0 && t.fy == 0 {
		return t.img.ColorModel()
	}
	return color.RGBA64Model
}

func (t *tile) Bounds() image.Rectangle { return tileBounds }

func (t *tile) At(x, y int) color.Color {
	r := t.img.Bounds()
	if r.Empty() {
		return color.Transparent
	}
	x, y = x+t.off.X, y+t.off.Y
	if t.fx == 0 && t.fy == 0 {
		return t.pixel(r, x, y)
	}
	taps := [4]struct {
		dx, dy int
		w      float64
	}{
		{0, 0, (1 - t.fx) * (1 - t.fy)},
		{1, 0, t.fx * (1 - t.fy)},
		{0, 1, (1 - t.fx) * t.fy},
		{1, 1, t.fx * t.fy},
	}
	var cr, cg, cb, ca float64
	for _, tap := range taps {
		if tap.w == 0 {
			continue
		}
		pr, pg, pb, pa := t.pixel(r, x+tap.dx, y+tap.dy).RGBA()
		cr += tap.w * float64(pr)
		cg += tap.w * float64(pg)
		cb += tap.w * float64(pb)
		ca += tap.w * float64(pa)
	}
	a := uint16(math.Round(min(ca, 0xffff)))
	return color.RGBA64{
		R: min(uint16(math.Round(min(cr, 0xffff))), a),
		G: min(uint16(math.Round(min(cg, 0xffff))), a),
		B: min(uint16(math.Round(min(cb, 0xffff))), a),
		A: a,
	}
}

func (t *tile) pixel(r image.Rectangle, x, y int) color.Color {
	return t.img.At(r.Min.X+wrap(x, r.Dx()), r.Min.Y+wrap(y, r.Dy()))
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// parseHexColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa", with or
// without the leading '#'.
func parseHexColor(hex string) (color.NRGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	digit := func(s string) (uint8, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err == nil
	}
	var parts []string
	scale := uint8(1)
	switch len(hex) {
	case 3, 4:
		for i := range hex {
			parts = append(parts, hex[i:i+1])
		}
		scale = 17
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			parts = append(parts, hex[i:i+2])
		}
	default:
		return color.NRGBA{}, false
	}
	c := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		v, ok := digit(p)
		if !ok {
			return color.NRGBA{}, false
		}
		c[i] = v * scale
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, true
}
