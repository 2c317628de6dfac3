// Package text shapes and outlines text for drawing backends.
//
// Shaping is done with HarfBuzz (go-text/typesetting) and glyph outlines
// and vertical metrics come from golang.org/x/image/font/sfnt. Font sizes
// are in pixels per em.
//
// # Layout Space
//
// A shaped run is laid out in a box whose top-left corner is the origin,
// with y pointing down. The baseline is at y = Ascent and the box is
// Width by Height (Ascent + Descent) pixels. Backends map this box into
// drawing coordinates with drawlib.LabelTransform.
//
// # Fonts
//
// A Registry maps family names to fonts. Three families are built in:
//   - "Sans": Go Regular
//   - "Mono": Go Mono
//   - "Serif": Latin Modern Roman
//
// Unknown names fall back to the registry's default family.
//
// # Text Along a Path
//
// ShapeAlongPath bends a shaped run along a path: the path is the
// baseline, and every outline point (x, y) of the run is moved to
// P(s0 + x) + y·N(s0 + x), where P is the point at arc length s on the
// path and N its unit normal.
package text
