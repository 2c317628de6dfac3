// Package raster provides a software renderer for the recording system.
// It draws recordings into an *image.RGBA using golang.org/x/image/vector
// for scan conversion.
//
// # Supported Features
//
//   - Polygons with holes, filled through an alpha mask
//   - Solid and tiled image fills, with a red fallback for missing images
//   - Stroked polylines with caps, joins and closed loops
//   - Straight text labels with rotation, alignment and outlines
//   - Text along paths
//   - Bounding triangles for text hit-testing
//   - Rectangular clipping with Save/Restore
//   - PNG output
//
// # Example
//
//	// Import to register the renderer
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
//	// Create via registry
//	rd, _ := recording.NewRenderer("raster", 800, 600)
//
//	// Or create directly
//	backend := raster.NewBackend(800, 600)
//
//	// Replay a recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
	"github.com/gogpu/drawlib/resource"
	"github.com/gogpu/drawlib/text"
)

func init() {
	recording.Register("raster", func(width, height int) recording.Renderer {
		return NewBackend(width, height)
	})
}

// Backend renders recordings to an RGBA image.
//
// A Backend owns its scratch mask and image-resource table and is not safe
// for concurrent use.
type Backend struct {
	img    *image.RGBA
	clip   image.Rectangle
	stack  []image.Rectangle
	z      *vector.Rasterizer
	mask   *image.Alpha
	cov    *image.Alpha
	shaper *text.Shaper
	loader *resource.Loader

	resources map[string]*imageResource
	fallback  [3]float64
}

// Ensure Backend implements all renderer capabilities.
var (
	_ recording.Renderer          = (*Backend)(nil)
	_ recording.PathTextRenderer  = (*Backend)(nil)
	_ recording.TextBounder       = (*Backend)(nil)
	_ recording.PathTextBounder   = (*Backend)(nil)
	_ recording.DimensionsQuerier = (*Backend)(nil)
	_ recording.WriterRenderer    = (*Backend)(nil)
	_ recording.FileRenderer      = (*Backend)(nil)
	_ recording.ImageRenderer     = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithShaper sets the text shaper. By default a shaper over the built-in
// fonts is used.
func WithShaper(s *text.Shaper) Option {
	return func(b *Backend) { b.shaper = s }
}

// WithLoader sets the image-resource loader.
func WithLoader(l *resource.Loader) Option {
	return func(b *Backend) { b.loader = l }
}

// WithFallbackColor sets the color used for fills whose image resource is
// missing. The shape's alpha is kept. The default is red.
func WithFallbackColor(r, g, bl float64) Option {
	return func(b *Backend) { b.fallback = [3]float64{r, g, bl} }
}

// WithClip sets the initial clip rectangle.
func WithClip(r image.Rectangle) Option {
	return func(b *Backend) { b.clip = r.Intersect(b.img.Bounds()) }
}

// WithBackground fills the canvas with c before anything is drawn.
func WithBackground(c color.Color) Option {
	return func(b *Backend) { b.Clear(c) }
}

// NewBackend creates a renderer drawing to a transparent width×height
// canvas.
func NewBackend(width, height int, opts ...Option) *Backend {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	b := &Backend{
		img:       img,
		clip:      img.Bounds(),
		z:         vector.NewRasterizer(0, 0),
		resources: make(map[string]*imageResource),
		fallback:  [3]float64{1, 0, 0},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.shaper == nil {
		b.shaper = text.NewShaper(nil)
	}
	if b.loader == nil {
		b.loader = resource.NewLoader("")
	}
	return b
}

// NewBackendFromConfig creates a renderer sized and configured by cfg.
// Fonts listed in cfg are registered with the shaper.
func NewBackendFromConfig(cfg *drawlib.Config, opts ...Option) (*Backend, error) {
	fonts := text.NewRegistry()
	for name, path := range cfg.Text.Fonts {
		if err := fonts.RegisterFile(name, path); err != nil {
			return nil, err
		}
	}
	if cfg.Text.DefaultFont != "" {
		fonts.SetDefault(cfg.Text.DefaultFont)
	}
	base := []Option{
		WithShaper(text.NewShaper(fonts)),
		WithLoader(resource.NewLoader(cfg.Resources.BaseDir)),
	}
	if bg, ok := parseHexColor(cfg.Raster.Background); ok {
		base = append(base, WithBackground(bg))
	}
	return NewBackend(cfg.Raster.Width, cfg.Raster.Height, append(base, opts...)...), nil
}

// Clear fills the whole canvas with c, ignoring the clip.
func (b *Backend) Clear(c color.Color) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Save pushes the current clip onto a stack.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.clip)
}

// Restore pops the clip saved by the matching Save. Unbalanced calls are
// ignored.
func (b *Backend) Restore() {
	if n := len(b.stack); n > 0 {
		b.clip = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// SetClip intersects the current clip with r.
func (b *Backend) SetClip(r image.Rectangle) {
	b.clip = b.clip.Intersect(r)
}

// ResetClip restores the clip to the whole canvas.
func (b *Backend) ResetClip() {
	b.clip = b.img.Bounds()
}

// DrawableExtents returns the current clip box.
func (b *Backend) DrawableExtents() (x1, y1, x2, y2 int) {
	return b.clip.Min.X, b.clip.Min.Y, b.clip.Max.X, b.clip.Max.Y
}

// Shaper returns the text shaper.
func (b *Backend) Shaper() *text.Shaper { return b.shaper }

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SavePNG is a convenience alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Image returns the rendered image. The image is live: later drawing
// operations modify it.
func (b *Backend) Image() image.Image {
	return b.img
}

// RGBA returns the canvas.
func (b *Backend) RGBA() *image.RGBA {
	return b.img
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.img.Rect.Dy()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
