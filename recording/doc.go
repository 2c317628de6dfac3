// Package recording captures 2D drawing operations as commands that can be
// replayed to any Renderer.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures drawing operations as deep-copied commands
//   - Recording: an immutable snapshot returned by Recorder.Finish
//   - Renderer: draws commands to a concrete target
//
// Renderers advertise optional abilities through additional interfaces:
// PathTextRenderer for text along paths, TextBounder and PathTextBounder
// for bounding triangles, DimensionsQuerier for image sizes, and
// WriterRenderer, FileRenderer and ImageRenderer for output.
//
// # Basic Usage
//
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
//	rd := recording.MustRenderer("raster", 800, 600)
//	rec := recording.NewRecorder(recording.WithRenderer(rd))
//
//	rec.AddDrawPolygons([]drawlib.Polygon{{Outer: drawlib.Rect(10, 10, 200, 150)}},
//	    drawlib.NewShapeProperties(0.2, 0.4, 0.8))
//	rec.AddDrawLines([]drawlib.Contour{{{0, 0}, {100, 100}}},
//	    drawlib.NewLineProperties(0, 0, 0, 2))
//
//	if err := rec.Draw(); err != nil {
//	    log.Fatal(err)
//	}
//	rd.(recording.FileRenderer).SaveToFile("out.png")
//
// # Errors
//
// Replay stops at the first failing command and returns a *PlaybackError
// that wraps the renderer's error. With WithContinueOnError every command
// runs and the failures are joined. Replaying text along a path to a
// renderer without PathTextRenderer fails with drawlib.ErrUnimplemented.
// Queries on a Recorder without a capable renderer fail with
// drawlib.ErrUnsupported.
package recording
