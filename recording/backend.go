package recording

import (
	"image"
	"io"

	"github.com/gogpu/drawlib"
)

// Renderer is the interface that all rendering backends implement.
// A Recorder replays its commands against a Renderer in log order,
// dispatching each command to the matching method.
//
// Renderers are created via the registry using NewRenderer(name, w, h) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each renderer must:
//  1. Register in init() using recording.Register()
//  2. Own its transient state (clip, scratch buffers, resource table)
//  3. Leave that state as it found it after every call
//  4. Treat unknown image resources as a visible fallback, not an error
//
// Renderers are not required to be safe for concurrent use.
type Renderer interface {
	// DrawPolygons fills each polygon's outer contour minus its holes.
	DrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) error

	// DrawLines strokes each contour.
	DrawLines(lines []drawlib.Contour, props drawlib.LineProperties) error

	// DrawText draws straight text labels.
	DrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) error

	// LoadImageResources loads image files into the resource table,
	// keyed by id. Files that cannot be loaded are recorded as invalid.
	LoadImageResources(resources map[string]string) error

	// UnloadImageResources releases the resources with the given ids.
	UnloadImageResources(ids []string) error
}

// PathTextRenderer extends Renderer with drawing text along paths.
// Replaying a twisted text command against a renderer without this
// capability fails with drawlib.ErrUnimplemented.
type PathTextRenderer interface {
	Renderer

	// DrawTwistedText draws each label along its path.
	DrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) error
}

// TextBounder computes bounding triangles of straight text labels.
type TextBounder interface {
	// TriangleBoundsText returns two triangles covering the label's
	// rotated text box.
	TriangleBoundsText(label drawlib.TextLabel, props drawlib.TextProperties) ([]drawlib.Triangle, error)
}

// PathTextBounder computes bounding triangles of text along a path.
type PathTextBounder interface {
	// TriangleBoundsTwistedText returns two triangles per glyph, the arc
	// length of the path and the advance of the text.
	TriangleBoundsTwistedText(label drawlib.TwistedTextLabel, props drawlib.TextProperties) (
		tris []drawlib.Triangle, pathLen, textLen float64, err error)
}

// DimensionsQuerier reports the pixel size of an image file.
type DimensionsQuerier interface {
	ResourceDimensions(path string) (width, height int, err error)
}

// WriterRenderer extends Renderer with the ability to write output to an
// io.Writer.
type WriterRenderer interface {
	Renderer

	// WriteTo writes the rendered content to the given writer.
	WriteTo(w io.Writer) (int64, error)
}

// FileRenderer extends Renderer with the ability to save output directly to
// a file.
type FileRenderer interface {
	Renderer

	// SaveToFile saves the rendered content to a file at the given path.
	SaveToFile(path string) error
}

// ImageRenderer extends Renderer with access to the rendered pixels.
type ImageRenderer interface {
	Renderer

	// Image returns the rendered image.
	Image() image.Image
}
