// Package stroke converts stroked polylines into filled outlines.
//
// The expander follows the tiny-skia and kurbo stroking approach: two offset
// polylines are built on either side of the input, one at +width/2 and one
// at -width/2 along the segment normal. Joins connect consecutive segments
// on each side; caps connect the two sides at the ends of an open line.
//
// The output is a list of closed rings suitable for a non-zero winding
// rasterizer:
//   - An open polyline yields one ring: forward side, end cap, reversed
//     backward side, start cap.
//   - A closed polyline yields two rings of opposite orientation, so the
//     area enclosed by the inner side is not filled.
//
// Round joins and caps are flattened to line segments within the expander
// tolerance.
//
// # Usage
//
//	style := stroke.FromLineProperties(props)
//	rings := stroke.NewExpander(style).Expand(contour, props.ClosedLoop)
package stroke
