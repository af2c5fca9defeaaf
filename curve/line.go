package curve

import "math"

// Line represents a line segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Slope returns the inclination of the line. Vertical lines have a slope of
// +Inf.
func (l Line) Slope() float64 {
	return l.P0.Slope(l.P1)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Lines are monotonic and have no interior extrema.
func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// Contains reports whether pt lies on the line segment, within tolerance.
func (l Line) Contains(pt Point, tolerance float64) bool {
	d := l.P1.Sub(l.P0)
	if math.Abs(d.Cross(pt.Sub(l.P0))) > tolerance*d.Hypot() {
		return false
	}
	return math.Abs(l.P0.Distance(pt)+pt.Distance(l.P1)-l.Length()) <= tolerance
}
