package curve

import "iter"

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return "invalid"
	}
}

// PathSegment represents a segment of a contour. This type acts as a sort of
// tagged union representing all possible segments ([Line], [QuadBez], and
// [CubicBez]). Unused points are zero.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic("unreachable")
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic("unreachable")
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		panic("unreachable")
	}
}

// Start returns the first on-curve point.
func (seg PathSegment) Start() Point {
	return seg.P0
}

// End returns the last on-curve point.
func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic("unreachable")
	}
}

// Points returns the defining points of the segment, on-curve and off-curve,
// in order.
func (seg PathSegment) Points() []Point {
	switch seg.Kind {
	case LineKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic("unreachable")
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		panic("unreachable")
	}
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		panic("unreachable")
	}
}

// windingInner computes the winding contribution of a segment that is
// monotonic in y.
func (seg PathSegment) windingInner(pt Point) int {
	start := seg.Start()
	end := seg.End()
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch seg.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		}
		return 0
	case QuadKind:
		quad := seg.Quad()
		p1 := quad.P1
		if pt.X < min(start.X, end.X, p1.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X) {
			return sign
		}
		a := end.Y - 2.0*p1.Y + start.Y
		b := 2.0 * (p1.Y - start.Y)
		c := start.Y - pt.Y
		solution, n := SolveQuadratic(c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				if pt.X >= quad.Eval(t).X {
					return sign
				}
				return 0
			}
		}
		return 0
	case CubicKind:
		cubic := seg.Cubic()
		p1 := cubic.P1
		p2 := cubic.P2
		if pt.X < min(start.X, end.X, p1.X, p2.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X, p2.X) {
			return sign
		}
		d, c, b, a := cubicBezCoefficients(start.Y, p1.Y, p2.Y, end.Y)
		solution, n := SolveCubic(d-pt.Y, c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				if pt.X >= cubic.Eval(t).X {
					return sign
				}
				return 0
			}
		}
		return 0
	default:
		panic("unreachable")
	}
}

// Winding computes the winding number contribution of a single segment by
// casting a ray to the left and counting intersections.
func (seg PathSegment) Winding(pt Point) int {
	exs, n := ExtremaRanges(seg)
	var w int
	for _, ex := range exs[:n] {
		w += seg.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// SegmentsSignedArea returns the signed area of a closed sequence of
// segments. It is positive for counter-clockwise contours in y-up space.
func SegmentsSignedArea(seq iter.Seq[PathSegment]) float64 {
	var sum float64
	for s := range seq {
		sum += s.SignedArea()
	}
	return sum
}

// SegmentsBoundingBox returns the tight bounding box of a sequence of
// segments.
func SegmentsBoundingBox(seq iter.Seq[PathSegment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		sbbox := BoundingBox(s)
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}

// SegmentsWinding returns the winding number of pt with respect to a closed
// sequence of segments. Non-zero means pt is inside.
func SegmentsWinding(seq iter.Seq[PathSegment], pt Point) int {
	var sum int
	for s := range seq {
		sum += s.Winding(pt)
	}
	return sum
}
