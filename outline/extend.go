package outline

import (
	"fmt"

	"github.com/Space0726/fwig/curve"
)

// LineError is returned when a linear function cannot be formed because
// the line is parallel to the requested variable's axis.
type LineError struct {
	A, B     curve.Point
	Variable curve.Axis
}

func (e *LineError) Error() string {
	return fmt.Sprintf("outline: line through %v and %v is not a function of %s", e.A, e.B, e.Variable)
}

// LinearFunction returns the line through a and b as a function of one
// coordinate. For [curve.AxisX] the function maps x to y; for
// [curve.AxisY] it maps y to x.
func LinearFunction(a, b curve.Point, variable curve.Axis) (func(float64) float64, error) {
	switch variable {
	case curve.AxisX:
		if a.X == b.X {
			return nil, &LineError{A: a, B: b, Variable: variable}
		}
		m := (b.Y - a.Y) / (b.X - a.X)
		return func(x float64) float64 { return a.Y + m*(x-a.X) }, nil
	case curve.AxisY:
		if a.Y == b.Y {
			return nil, &LineError{A: a, B: b, Variable: variable}
		}
		m := (b.X - a.X) / (b.Y - a.Y)
		return func(y float64) float64 { return a.X + m*(y-a.Y) }, nil
	default:
		panic(fmt.Sprintf("invalid axis %v", variable))
	}
}

// ExtendLine moves end along the line from start until its coordinate on
// axis equals value, and returns the new position. The glyph is marked as
// changed.
func ExtendLine(start, end *Point, value float64, axis curve.Axis) (curve.Point, error) {
	f, err := LinearFunction(start.Pt(), end.Pt(), axis)
	if err != nil {
		return curve.Point{}, err
	}
	var pt curve.Point
	switch axis {
	case curve.AxisX:
		pt = curve.Pt(value, f(value))
	case curve.AxisY:
		pt = curve.Pt(f(value), value)
	}
	end.Move(pt)
	if g := end.Glyph(); g != nil {
		g.SetChanged()
	}
	return pt, nil
}

// maxExtension is how far past its end point a curve is continued when
// looking for the target coordinate, in units of the curve's parameter.
const maxExtension = 2.5

// ExtendCurve continues the cubic described by points past its end point
// until it reaches value on axis, and moves the four points to describe the
// extended curve. It returns the new curve.
func ExtendCurve(points [4]*Point, value float64, axis curve.Axis) (curve.CubicBez, error) {
	extended := cubicOf(points).Subsegment(0, maxExtension)
	result, _, err := extended.SplitAt(value, axis)
	if err != nil {
		return curve.CubicBez{}, err
	}
	points[0].Move(result.P0)
	points[1].Move(result.P1)
	points[2].Move(result.P2)
	points[3].Move(result.P3)
	if g := points[3].Glyph(); g != nil {
		g.SetChanged()
	}
	return result, nil
}
