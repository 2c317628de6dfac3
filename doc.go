// Package drawlib provides a retained-mode 2D vector drawing model.
//
// # Overview
//
// Callers describe a scene as plain values (polygons with holes, polylines,
// text labels, text warped along a path) together with their visual
// properties. The recording package stores these values as an ordered list
// of commands which can later be replayed against a rendering backend.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/drawlib"
//	    "github.com/gogpu/drawlib/recording"
//	    "github.com/gogpu/drawlib/recording/backends/raster"
//	)
//
//	rec := recording.NewRecorder()
//	square := drawlib.Polygon{Outer: drawlib.Rect(0, 0, 10, 10)}
//	rec.AddDrawPolygons([]drawlib.Polygon{square}, drawlib.NewShapeProperties(0, 0, 1))
//
//	backend := raster.NewBackend(64, 64)
//	if err := rec.Playback(backend); err != nil {
//	    // handle error
//	}
//	backend.SavePNG("out.png")
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Value Semantics
//
// Every payload type has a Clone method producing a deep copy. Recorded
// commands own such copies, so mutating the caller's slices after recording
// has no effect on the stored commands.
package drawlib

// Version is the current version of the library.
const Version = "0.3.0"
