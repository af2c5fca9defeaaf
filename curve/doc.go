// Package curve provides the 2D geometry used by the outline tools: points,
// vectors, lines, quadratic and cubic Béziers, rectangles, and path segments.
//
// # Segments
//
// [PathSegment] acts as a tagged union over [Line], [QuadBez] and [CubicBez].
// Contours of a glyph are expressed as sequences of path segments, which is
// enough to compute their signed area ([SegmentsSignedArea]), their bounding
// box ([SegmentsBoundingBox]) and the [winding number] of a point
// ([SegmentsWinding]).
//
// # Splitting
//
// Lines and cubic Béziers can be split either at a parameter value ("rate")
// or where they cross an axis-aligned line ([Line.SplitAt],
// [Line.SplitAtRate], [CubicBez.SplitAt], [CubicBez.SplitAtRate]). Cubics
// are split with de Casteljau's algorithm. Splitting never rounds; callers
// that commit coordinates to a font round at that point.
//
// A split that cannot be performed reports a [*SplitError]; a rate outside of
// [0, 1] reports a [*RangeError].
//
// # Coordinates
//
// Font outlines use a y-up coordinate system. Positive signed area therefore
// means a counter-clockwise contour.
//
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
package curve
