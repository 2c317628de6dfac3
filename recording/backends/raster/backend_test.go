package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
)

func rgbaAt(b *Backend, x, y int) color.RGBA {
	return b.RGBA().RGBAAt(x, y)
}

func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	rd, err := recording.NewRenderer("raster", 40, 30)
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	b, ok := rd.(*Backend)
	if !ok {
		t.Fatal("renderer is not *raster.Backend")
	}
	if b.Width() != 40 || b.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", b.Width(), b.Height())
	}
}

func TestBackendNew(t *testing.T) {
	b := NewBackend(100, 50)

	bounds := b.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("Image bounds = %v, want 100x50", bounds)
	}
	x1, y1, x2, y2 := b.DrawableExtents()
	if x1 != 0 || y1 != 0 || x2 != 100 || y2 != 50 {
		t.Errorf("DrawableExtents() = %d,%d,%d,%d, want 0,0,100,50", x1, y1, x2, y2)
	}
	if got := rgbaAt(b, 10, 10); got.A != 0 {
		t.Errorf("new canvas pixel = %v, want transparent", got)
	}
}

func TestBackendPolygonWithHole(t *testing.T) {
	b := NewBackend(20, 20)
	poly := drawlib.Polygon{
		Outer: drawlib.Rect(0, 0, 10, 10),
		Holes: []drawlib.Contour{drawlib.Rect(3, 3, 7, 7)},
	}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, drawlib.NewShapeProperties(0, 0, 1)))

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgbaAt(b, 1, 1), "outer pixel")
	assert.Equal(t, uint8(0), rgbaAt(b, 5, 5).A, "hole pixel")
	assert.Equal(t, uint8(0), rgbaAt(b, 15, 15).A, "outside pixel")
}

func TestBackendPolygonHolesInOrder(t *testing.T) {
	b := NewBackend(30, 30)
	poly := drawlib.Polygon{
		Outer: drawlib.Rect(0, 0, 30, 30),
		Holes: []drawlib.Contour{
			drawlib.Rect(2, 2, 8, 8),
			drawlib.Rect(20, 20, 28, 28),
		},
	}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, drawlib.NewShapeProperties(1, 1, 1)))

	assert.Equal(t, uint8(0), rgbaAt(b, 4, 4).A)
	assert.Equal(t, uint8(0), rgbaAt(b, 24, 24).A)
	assert.Equal(t, uint8(255), rgbaAt(b, 14, 14).A)
}

func TestBackendPolygonWithoutHoles(t *testing.T) {
	b := NewBackend(20, 20)
	props := drawlib.NewShapeProperties(0, 1, 0)
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(5, 5, 15, 15)}}, props))

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgbaAt(b, 10, 10))
	assert.Equal(t, uint8(0), rgbaAt(b, 2, 2).A)
	assert.Nil(t, b.mask, "mask allocated for a polygon without holes")
}

func TestBackendEmptyPolygons(t *testing.T) {
	b := NewBackend(10, 10)
	require.NoError(t, b.DrawPolygons(nil, drawlib.DefaultShapeProperties()))
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{}}, drawlib.DefaultShapeProperties()))
	assert.Equal(t, uint8(0), rgbaAt(b, 5, 5).A)
}

func TestBackendMaskReuse(t *testing.T) {
	b := NewBackend(20, 20)
	poly := drawlib.Polygon{
		Outer: drawlib.Rect(0, 0, 10, 10),
		Holes: []drawlib.Contour{drawlib.Rect(3, 3, 7, 7)},
	}
	props := drawlib.DefaultShapeProperties()

	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, props))
	first := b.mask
	require.NotNil(t, first)

	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly, poly}, props))
	assert.Same(t, first, b.mask, "mask reallocated for same extents")

	b.SetClip(image.Rect(0, 0, 12, 12))
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, props))
	assert.NotSame(t, first, b.mask, "mask not reallocated for new extents")
	assert.Equal(t, image.Rect(0, 0, 12, 12), b.mask.Rect)
}

func TestBackendMaskAllocationFailure(t *testing.T) {
	saved := maxMaskPixels
	maxMaskPixels = 100
	t.Cleanup(func() { maxMaskPixels = saved })

	b := NewBackend(20, 20)
	poly := drawlib.Polygon{
		Outer: drawlib.Rect(0, 0, 10, 10),
		Holes: []drawlib.Contour{drawlib.Rect(3, 3, 7, 7)},
	}
	err := b.DrawPolygons([]drawlib.Polygon{poly}, drawlib.DefaultShapeProperties())
	assert.ErrorIs(t, err, drawlib.ErrAllocation)
	assert.Empty(t, b.stack, "saved state not restored")
	assert.Nil(t, b.mask)
}

func TestBackendHolesOutsideClip(t *testing.T) {
	b := NewBackend(40, 40, WithClip(image.Rect(100, 100, 120, 120)))
	poly := drawlib.Polygon{
		Outer: drawlib.Rect(0, 0, 10, 10),
		Holes: []drawlib.Contour{drawlib.Rect(3, 3, 7, 7)},
	}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, drawlib.DefaultShapeProperties()))
	for _, px := range b.RGBA().Pix {
		require.Zero(t, px, "canvas changed")
	}
	assert.Nil(t, b.mask)

	b.ResetClip()
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{poly}, drawlib.DefaultShapeProperties()))
	assert.Equal(t, uint8(255), rgbaAt(b, 1, 1).A)
	assert.Equal(t, uint8(0), rgbaAt(b, 5, 5).A)
}

func TestBackendClip(t *testing.T) {
	b := NewBackend(20, 20)
	b.Save()
	b.SetClip(image.Rect(0, 0, 5, 5))
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(0, 0, 10, 10)}}, drawlib.DefaultShapeProperties()))
	b.Restore()

	assert.Equal(t, uint8(255), rgbaAt(b, 2, 2).A)
	assert.Equal(t, uint8(0), rgbaAt(b, 7, 7).A)

	x1, y1, x2, y2 := b.DrawableExtents()
	assert.Equal(t, [4]int{0, 0, 20, 20}, [4]int{x1, y1, x2, y2})
}

func TestResolvePaintSource(t *testing.T) {
	b := NewBackend(4, 4)

	t.Run("solid", func(t *testing.T) {
		props := drawlib.ShapeProperties{R: 0, G: 0, B: 1, A: 1}
		r, g, bl, a := b.ResolvePaintSource(props).At(0, 0).RGBA()
		assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, bl, a})
	})

	t.Run("missing resource falls back to red", func(t *testing.T) {
		props := drawlib.ShapeProperties{R: 0, G: 1, B: 0, A: 1, ImageID: "missing"}
		r, g, bl, a := b.ResolvePaintSource(props).At(0, 0).RGBA()
		assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, bl, a})
	})

	t.Run("fallback keeps shape alpha", func(t *testing.T) {
		props := drawlib.ShapeProperties{R: 0, G: 1, B: 0, A: 0.5, ImageID: "missing"}
		c := color.NRGBA64Model.Convert(b.ResolvePaintSource(props).At(0, 0)).(color.NRGBA64)
		assert.Equal(t, uint16(0xffff), c.R)
		assert.Equal(t, uint16(0), c.G)
		assert.InDelta(t, 0x8000, int(c.A), 2)
	})
}

func TestBackendFallbackFill(t *testing.T) {
	b := NewBackend(10, 10)
	props := drawlib.ShapeProperties{R: 0, G: 1, B: 0, A: 1, ImageID: "nope"}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(0, 0, 10, 10)}}, props))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgbaAt(b, 5, 5))
}

func TestBackendFallbackColorOption(t *testing.T) {
	b := NewBackend(10, 10, WithFallbackColor(1, 0, 1))
	props := drawlib.ShapeProperties{A: 1, ImageID: "nope"}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(0, 0, 10, 10)}}, props))
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, rgbaAt(b, 5, 5))
}

func TestBackendTiledFill(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
	path := writePNG(t, "tile.png", src)

	b := NewBackend(8, 8)
	require.NoError(t, b.LoadImageResources(map[string]string{"tile": path}))
	w, h, ok := b.ImageResource("tile")
	require.True(t, ok)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	props := drawlib.ShapeProperties{A: 1, ImageID: "tile", TexX: 1}
	require.NoError(t, b.DrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(0, 0, 8, 8)}}, props))

	// Offset by one pixel: even columns show the second image pixel.
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgbaAt(b, 2, 3))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgbaAt(b, 3, 3))
}

func TestBackendTiledFillSubpixel(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	src.SetRGBA(1, 0, color.RGBA{255, 255, 255, 255})
	path := writePNG(t, "stripe.png", src)

	b := NewBackend(4, 4)
	require.NoError(t, b.LoadImageResources(map[string]string{"stripe": path}))

	tests := []struct {
		texX float64
		want uint8
	}{
		{0, 0},
		{0.25, 64},
		{0.5, 128},
		{-0.5, 128},
		{1, 255},
	}
	for _, tt := range tests {
		props := drawlib.ShapeProperties{A: 1, ImageID: "stripe", TexX: tt.texX}
		c := color.RGBAModel.Convert(b.ResolvePaintSource(props).At(0, 0)).(color.RGBA)
		assert.InDelta(t, tt.want, c.R, 1, "TexX %v", tt.texX)
		assert.Equal(t, uint8(255), c.A, "TexX %v", tt.texX)
	}
}

func TestBackendUnloadImageResources(t *testing.T) {
	path := writePNG(t, "one.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))

	b := NewBackend(4, 4)
	require.NoError(t, b.LoadImageResources(map[string]string{"one": path, "bad": "does-not-exist.png"}))

	_, _, ok := b.ImageResource("one")
	assert.True(t, ok)
	_, _, ok = b.ImageResource("bad")
	assert.False(t, ok, "failed load reported as valid")

	require.NoError(t, b.UnloadImageResources([]string{"one", "unknown"}))
	_, _, ok = b.ImageResource("one")
	assert.False(t, ok)
}

func TestBackendResourceDimensions(t *testing.T) {
	path := writePNG(t, "dim.png", image.NewRGBA(image.Rect(0, 0, 3, 2)))
	b := NewBackend(4, 4)

	w, h, err := b.ResourceDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	_, _, err = b.ResourceDimensions(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, drawlib.ErrResourceUnavailable)
}

func TestBackendDrawLines(t *testing.T) {
	b := NewBackend(20, 20)
	props := drawlib.NewLineProperties(0, 0, 0, 4)
	line := drawlib.Contour{{X: 2, Y: 10}, {X: 18, Y: 10}}
	require.NoError(t, b.DrawLines([]drawlib.Contour{line}, props))

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgbaAt(b, 10, 10))
	assert.Equal(t, uint8(0), rgbaAt(b, 10, 2).A)
	assert.Equal(t, uint8(0), rgbaAt(b, 0, 10).A, "butt cap extended the line")
}

func TestBackendDrawLinesSquareCap(t *testing.T) {
	b := NewBackend(20, 20)
	props := drawlib.NewLineProperties(0, 0, 0, 4)
	props.Cap = drawlib.CapSquare
	line := drawlib.Contour{{X: 4, Y: 10}, {X: 16, Y: 10}}
	require.NoError(t, b.DrawLines([]drawlib.Contour{line}, props))

	assert.Equal(t, uint8(255), rgbaAt(b, 2, 10).A, "square cap missing")
}

func TestBackendDrawClosedLoop(t *testing.T) {
	b := NewBackend(30, 30)
	props := drawlib.NewLineProperties(1, 1, 1, 2)
	props.ClosedLoop = true
	require.NoError(t, b.DrawLines([]drawlib.Contour{{{X: 5, Y: 5}, {X: 25, Y: 5}, {X: 25, Y: 25}, {X: 5, Y: 25}}}, props))

	assert.Equal(t, uint8(255), rgbaAt(b, 15, 5).A, "top edge")
	assert.Equal(t, uint8(255), rgbaAt(b, 5, 15).A, "closing edge")
	assert.Equal(t, uint8(0), rgbaAt(b, 15, 15).A, "interior filled")
}

func TestBackendTriangleBoundsText(t *testing.T) {
	b := NewBackend(200, 100)
	props := drawlib.DefaultTextProperties()
	props.FontSize = 20

	tris, err := b.TriangleBoundsText(drawlib.TextLabel{Text: "Hello", X: 10, Y: 20}, props)
	require.NoError(t, err)
	require.Len(t, tris, 2)

	sh, err := b.Shaper().Shape("Hello", props.Font, props.FontSize)
	require.NoError(t, err)
	assert.InDelta(t, 10, tris[0][0].X, 1e-9)
	assert.InDelta(t, 20, tris[0][0].Y, 1e-9)
	assert.InDelta(t, 10+sh.Width, tris[1][2].X, 1e-9)
	assert.InDelta(t, 20+sh.Height(), tris[1][2].Y, 1e-9)
	assert.Equal(t, tris[0][1], tris[1][1], "triangles do not share the diagonal")
	assert.Equal(t, tris[0][2], tris[1][0], "triangles do not share the diagonal")
}

func TestBackendTriangleBoundsTextCentered(t *testing.T) {
	b := NewBackend(200, 100)
	props := drawlib.DefaultTextProperties()
	props.HAlign, props.VAlign = 0.5, 0.5

	tris, err := b.TriangleBoundsText(drawlib.TextLabel{Text: "Mid", X: 100, Y: 50}, props)
	require.NoError(t, err)
	center := tris[0][0].Lerp(tris[1][2], 0.5)
	assert.InDelta(t, 100, center.X, 1e-9)
	assert.InDelta(t, 50, center.Y, 1e-9)
}

func TestBackendDrawText(t *testing.T) {
	b := NewBackend(120, 60)
	props := drawlib.NewTextProperties(0, 0, 0)
	props.FontSize = 24
	label := drawlib.TextLabel{Text: "Hi", X: 20, Y: 10}
	require.NoError(t, b.DrawText([]drawlib.TextLabel{label}, props))

	tris, err := b.TriangleBoundsText(label, props)
	require.NoError(t, err)
	box := image.Rectangle{
		Min: image.Pt(int(tris[0][0].X)-1, int(tris[0][0].Y)-1),
		Max: image.Pt(int(tris[1][2].X)+2, int(tris[1][2].Y)+2),
	}

	painted := 0
	img := b.RGBA()
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			painted++
			if !image.Pt(x, y).In(box) {
				t.Fatalf("pixel (%d,%d) painted outside text box %v", x, y, box)
			}
		}
	}
	assert.Positive(t, painted, "no text pixels painted")
}

func TestBackendDrawTextErrors(t *testing.T) {
	b := NewBackend(10, 10)
	props := drawlib.DefaultTextProperties()
	props.FontSize = 0
	err := b.DrawText([]drawlib.TextLabel{{Text: "x"}}, props)
	assert.Error(t, err)

	// Empty strings are skipped before shaping.
	assert.NoError(t, b.DrawText([]drawlib.TextLabel{{Text: ""}}, props))
}

func TestBackendTwistedText(t *testing.T) {
	b := NewBackend(200, 100)
	props := drawlib.NewTextProperties(0, 0, 0)
	props.FontSize = 16
	label := drawlib.TwistedTextLabel{
		Text: "abc",
		Path: []drawlib.CurveCmd{drawlib.MoveTo(10, 50), drawlib.LineTo(190, 50)},
	}

	tris, pathLen, textLen, err := b.TriangleBoundsTwistedText(label, props)
	require.NoError(t, err)
	assert.Len(t, tris, 6)
	assert.InDelta(t, 180, pathLen, 1e-9)
	assert.Positive(t, textLen)

	require.NoError(t, b.DrawTwistedText([]drawlib.TwistedTextLabel{label}, props))
	painted := 0
	img := b.RGBA()
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
}

func TestBackendTwistedTextEmptyPath(t *testing.T) {
	b := NewBackend(20, 20)
	label := drawlib.TwistedTextLabel{Text: "abc"}

	tris, pathLen, textLen, err := b.TriangleBoundsTwistedText(label, drawlib.DefaultTextProperties())
	assert.Error(t, err)
	assert.Nil(t, tris)
	assert.Equal(t, -1.0, pathLen)
	assert.Equal(t, -1.0, textLen)

	assert.NoError(t, b.DrawTwistedText([]drawlib.TwistedTextLabel{label}, drawlib.DefaultTextProperties()))
}

func TestBackendWriteTo(t *testing.T) {
	b := NewBackend(16, 16, WithBackground(color.White))

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	r, g, bl, a := img.At(3, 3).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, bl, a})
}

func TestBackendSaveToFile(t *testing.T) {
	b := NewBackend(8, 8)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, b.SavePNG(path))

	w, h, err := b.ResourceDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestRecordingPlayback(t *testing.T) {
	rd, err := recording.NewRenderer("raster", 40, 40)
	require.NoError(t, err)

	rec := recording.NewRecorder(recording.WithRenderer(rd))
	rec.AddDrawPolygons([]drawlib.Polygon{{
		Outer: drawlib.Rect(0, 0, 40, 40),
		Holes: []drawlib.Contour{drawlib.Rect(10, 10, 30, 30)},
	}}, drawlib.NewShapeProperties(0, 0, 1))
	rec.AddDrawLines([]drawlib.Contour{{{X: 0, Y: 20}, {X: 40, Y: 20}}}, drawlib.NewLineProperties(1, 0, 0, 2))
	rec.AddDrawText([]drawlib.TextLabel{{Text: "ok", X: 12, Y: 12}}, drawlib.DefaultTextProperties())
	rec.AddDrawTwistedText([]drawlib.TwistedTextLabel{{
		Text: "go",
		Path: drawlib.FitBezierToPoints(drawlib.Contour{{X: 2, Y: 38}, {X: 20, Y: 34}, {X: 38, Y: 38}}),
	}}, drawlib.DefaultTextProperties())
	rec.AddLoadImageResources(map[string]string{"missing": "missing.png"})
	rec.AddDrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(0, 0, 4, 4)}}, drawlib.ShapeProperties{A: 1, ImageID: "missing"})
	rec.AddUnloadImageResources([]string{"missing"})

	require.NoError(t, rec.Draw())

	img := rd.(recording.ImageRenderer).Image().(*image.RGBA)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1), "fallback fill")
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(35, 5), "outer fill")
	assert.Equal(t, uint8(0), img.RGBAAt(27, 14).A, "hole")
}

func TestRecorderQueriesViaBackend(t *testing.T) {
	rec := recording.NewRecorder(recording.WithRenderer(NewBackend(100, 100)))

	tris, err := rec.TriangleBoundsText(drawlib.TextLabel{Text: "q", X: 5, Y: 5}, drawlib.DefaultTextProperties())
	require.NoError(t, err)
	assert.Len(t, tris, 2)

	_, pathLen, textLen, err := rec.TriangleBoundsTwistedText(drawlib.TwistedTextLabel{Text: "q"}, drawlib.DefaultTextProperties())
	assert.Error(t, err)
	assert.Equal(t, -1.0, pathLen)
	assert.Equal(t, -1.0, textLen)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}, true},
		{"#0f08", color.NRGBA{0, 255, 0, 136}, true},
		{"102030", color.NRGBA{16, 32, 48, 255}, true},
		{"#10203040", color.NRGBA{16, 32, 48, 64}, true},
		{"#12", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseHexColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewBackendFromConfig(t *testing.T) {
	cfg := drawlib.DefaultConfig()
	cfg.Raster.Width, cfg.Raster.Height = 30, 20
	cfg.Raster.Background = "#000000"

	b, err := NewBackendFromConfig(&cfg)
	require.NoError(t, err)
	assert.Equal(t, 30, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgbaAt(b, 4, 4))

	cfg.Text.Fonts = map[string]string{"Broken": filepath.Join(t.TempDir(), "none.ttf")}
	_, err = NewBackendFromConfig(&cfg)
	assert.Error(t, err)
}
