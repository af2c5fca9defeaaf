package outline

import (
	"fmt"

	"github.com/Space0726/fwig/curve"
)

// SegmentNotFoundError is returned when anchor points do not describe a
// segment of the contour, typically because the points are stale.
type SegmentNotFoundError struct {
	Start, End curve.Point
	Kind       curve.PathSegmentKind
}

func (e *SegmentNotFoundError) Error() string {
	return fmt.Sprintf("outline: no %s segment from %v to %v in contour", e.Kind, e.Start, e.End)
}

// findSegment returns the index of the on-curve point ending the segment
// described by anchors. The segment has to start at anchors[0] and, for
// cubics, be preceded by exactly two off-curve points.
func findSegment(c *Contour, anchors []*Point) (int, bool) {
	start, end := anchors[0], anchors[len(anchors)-1]
	offs := len(anchors) - 2
	for i, p := range c.points {
		if !p.OnCurve() || !p.Same(end) {
			continue
		}
		if offs == 2 && p.Kind != CurveKind {
			continue
		}
		ok := true
		for k := 1; k <= offs; k++ {
			if c.At(i-k).OnCurve() {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if s := c.At(i - offs - 1); s.OnCurve() && s.Same(start) {
			return i, true
		}
	}
	return 0, false
}

// InsertSplitPoint splices the result of a segment split into c.
//
// anchors are the points of the segment being split, in contour order: two
// points for a line or four for a cubic. first and second are the halves
// produced by the split, as returned by [curve.Line.SplitAt] and friends.
// For a cubic, the existing control points take the positions of second's
// controls, and first's controls and end point are inserted before them.
// For a line, a single line point at first's end is inserted.
//
// The contour's coordinates are rounded to integers and the glyph is
// marked as changed.
func InsertSplitPoint(c *Contour, anchors []*Point, first, second curve.PathSegment) error {
	var kind curve.PathSegmentKind
	switch len(anchors) {
	case 2:
		kind = curve.LineKind
	case 4:
		kind = curve.CubicKind
	default:
		return fmt.Errorf("outline: need 2 or 4 anchor points, got %d", len(anchors))
	}
	if first.Kind != kind || second.Kind != kind {
		return fmt.Errorf("outline: cannot splice %s halves into a %s segment", first.Kind, kind)
	}
	// Committed coordinates are integers, so the split point must not round
	// onto either end of the segment.
	split := first.End().Round()
	if split == anchors[0].Pt().Round() || split == anchors[len(anchors)-1].Pt().Round() {
		return &curve.SplitError{Kind: kind, Reason: "split point coincides with an end point"}
	}

	end, ok := findSegment(c, anchors)
	if !ok {
		return &SegmentNotFoundError{Start: anchors[0].Pt(), End: anchors[len(anchors)-1].Pt(), Kind: kind}
	}

	var insert []*Point
	var at int
	switch kind {
	case curve.LineKind:
		at = end
		insert = []*Point{NewPoint(first.P1.X, first.P1.Y, LineKind)}
	case curve.CubicKind:
		c1, c2 := c.At(end-2), c.At(end-1)
		c1.Move(second.P1)
		c2.Move(second.P2)
		at = c1.Index()
		split := NewPoint(first.P3.X, first.P3.Y, CurveKind)
		split.Smooth = true
		insert = []*Point{
			NewPoint(first.P1.X, first.P1.Y, OffCurveKind),
			NewPoint(first.P2.X, first.P2.Y, OffCurveKind),
			split,
		}
	}
	// Inserting at 0 would change the contour's start point; appending is
	// the same position in the cycle.
	if at == 0 {
		at = len(c.points)
	}
	for i, p := range insert {
		c.InsertPoint(at+i, p)
	}
	c.Round()
	if g := c.Glyph(); g != nil {
		g.SetChanged()
	}
	return nil
}

func cubicOf(anchors [4]*Point) curve.CubicBez {
	return curve.CubicBez{P0: anchors[0].Pt(), P1: anchors[1].Pt(), P2: anchors[2].Pt(), P3: anchors[3].Pt()}
}

func lineOf(anchors [2]*Point) curve.Line {
	return curve.Line{P0: anchors[0].Pt(), P1: anchors[1].Pt()}
}

// InsertCurvePointAt splits the cubic segment described by anchors where it
// crosses the axis-aligned line at value and inserts the split point.
func InsertCurvePointAt(c *Contour, anchors [4]*Point, value float64, axis curve.Axis) error {
	first, second, err := cubicOf(anchors).SplitAt(value, axis)
	if err != nil {
		return err
	}
	return InsertSplitPoint(c, anchors[:], first.Seg(), second.Seg())
}

// InsertCurvePointAtRate splits the cubic segment described by anchors at
// parameter rate and inserts the split point.
func InsertCurvePointAtRate(c *Contour, anchors [4]*Point, rate float64) error {
	first, second, err := cubicOf(anchors).SplitAtRate(rate)
	if err != nil {
		return err
	}
	return InsertSplitPoint(c, anchors[:], first.Seg(), second.Seg())
}

// InsertLinePointAt splits the line segment described by anchors where it
// crosses the axis-aligned line at value and inserts the split point.
func InsertLinePointAt(c *Contour, anchors [2]*Point, value float64, axis curve.Axis) error {
	first, second, err := lineOf(anchors).SplitAt(value, axis)
	if err != nil {
		return err
	}
	return InsertSplitPoint(c, anchors[:], first.Seg(), second.Seg())
}

// InsertLinePointAtRate splits the line segment described by anchors at
// parameter rate and inserts the split point.
func InsertLinePointAtRate(c *Contour, anchors [2]*Point, rate float64) error {
	first, second, err := lineOf(anchors).SplitAtRate(rate)
	if err != nil {
		return err
	}
	return InsertSplitPoint(c, anchors[:], first.Seg(), second.Seg())
}
