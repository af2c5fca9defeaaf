package curve

import (
	"fmt"
	"math"
)

// Axis selects which coordinate a split value refers to.
type Axis int

const (
	// AxisX splits where the segment crosses the vertical line x = value.
	AxisX Axis = iota + 1
	// AxisY splits where the segment crosses the horizontal line y = value.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// SplitError is returned when a segment cannot be split at the requested
// coordinate.
type SplitError struct {
	Kind  PathSegmentKind
	Axis  Axis
	Value float64
	// Reason describes why no split was possible.
	Reason string
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("cannot split %s at %s=%g: %s", e.Kind, e.Axis, e.Value, e.Reason)
}

// RangeError is returned for split rates outside of [0, 1].
type RangeError struct {
	Rate float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("split rate %g outside of [0, 1]", e.Rate)
}

func checkRate(rate float64) error {
	if !(rate >= 0 && rate <= 1) {
		return &RangeError{Rate: rate}
	}
	return nil
}

// SplitAtRate splits the line at parameter rate. Rates of 0 and 1 are
// allowed and produce a zero-length line on one side.
func (l Line) SplitAtRate(rate float64) (Line, Line, error) {
	if err := checkRate(rate); err != nil {
		return Line{}, Line{}, err
	}
	pm := l.Eval(rate)
	return Line{l.P0, pm}, Line{pm, l.P1}, nil
}

// SplitAt splits the line where it crosses the axis-aligned line at value.
// The crossing has to lie strictly between the end points.
func (l Line) SplitAt(value float64, axis Axis) (Line, Line, error) {
	c0, c1 := l.P0.Coord(axis), l.P1.Coord(axis)
	if c0 == c1 {
		return Line{}, Line{}, &SplitError{Kind: LineKind, Axis: axis, Value: value, Reason: "line is parallel to the split line"}
	}
	t := (value - c0) / (c1 - c0)
	if !(t > 0 && t < 1) {
		return Line{}, Line{}, &SplitError{Kind: LineKind, Axis: axis, Value: value, Reason: "no crossing inside the segment"}
	}
	pm := pin(l.Eval(t), value, axis)
	return Line{l.P0, pm}, Line{pm, l.P1}, nil
}

// pin sets the coordinate of pt on axis to value, removing the drift of
// evaluating the curve at a computed parameter.
func pin(pt Point, value float64, axis Axis) Point {
	switch axis {
	case AxisX:
		pt.X = value
	case AxisY:
		pt.Y = value
	}
	return pt
}

// SplitAtRate splits the cubic at parameter rate using de Casteljau's
// algorithm.
func (c CubicBez) SplitAtRate(rate float64) (CubicBez, CubicBez, error) {
	if err := checkRate(rate); err != nil {
		return CubicBez{}, CubicBez{}, err
	}
	a, b := c.Divide(rate)
	return a, b, nil
}

// SplitAt splits the cubic where it first crosses the axis-aligned line at
// value. If the curve crosses the line several times, the crossing with the
// smallest parameter is used.
func (c CubicBez) SplitAt(value float64, axis Axis) (CubicBez, CubicBez, error) {
	t, ok := c.solveAt(value, axis)
	if !ok {
		return CubicBez{}, CubicBez{}, &SplitError{Kind: CubicKind, Axis: axis, Value: value, Reason: "no crossing inside the segment"}
	}
	a, b := c.Divide(t)
	a.P3 = pin(a.P3, value, axis)
	b.P0 = a.P3
	return a, b, nil
}

// solveAt returns the smallest t in (0, 1) for which the curve's coordinate
// along axis equals value.
func (c CubicBez) solveAt(value float64, axis Axis) (float64, bool) {
	a0, a1, a2, a3 := cubicBezCoefficients(
		c.P0.Coord(axis), c.P1.Coord(axis), c.P2.Coord(axis), c.P3.Coord(axis))
	roots, n := SolveCubic(a0-value, a1, a2, a3)
	best := math.Inf(1)
	for _, t := range roots[:n] {
		if t > 0 && t < 1 && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	// The closed form loses precision on nearly linear curves; polish the
	// root with Newton steps.
	for range 2 {
		f := a0 - value + best*(a1+best*(a2+best*a3))
		df := a1 + best*(2*a2+best*3*a3)
		if df == 0 {
			break
		}
		next := best - f/df
		if !(next > 0 && next < 1) {
			break
		}
		best = next
	}
	return best, true
}

// SplitAtRate splits the segment at parameter rate. Only lines and cubics
// can be split; quadratic segments are raised to cubics first.
func (seg PathSegment) SplitAtRate(rate float64) (PathSegment, PathSegment, error) {
	switch seg.Kind {
	case LineKind:
		a, b, err := seg.Line().SplitAtRate(rate)
		return a.Seg(), b.Seg(), err
	case QuadKind, CubicKind:
		a, b, err := seg.Cubic().SplitAtRate(rate)
		return a.Seg(), b.Seg(), err
	default:
		panic("unreachable")
	}
}

// SplitAt splits the segment at the axis-aligned line at value.
func (seg PathSegment) SplitAt(value float64, axis Axis) (PathSegment, PathSegment, error) {
	switch seg.Kind {
	case LineKind:
		a, b, err := seg.Line().SplitAt(value, axis)
		return a.Seg(), b.Seg(), err
	case QuadKind, CubicKind:
		a, b, err := seg.Cubic().SplitAt(value, axis)
		return a.Seg(), b.Seg(), err
	default:
		panic("unreachable")
	}
}
