package outline

import (
	"slices"
	"testing"

	"github.com/Space0726/fwig/curve"
)

func TestPointKind(t *testing.T) {
	for _, k := range []PointKind{LineKind, CurveKind, QCurveKind, OffCurveKind} {
		got, err := ParsePointKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, k, got)
	}
	if _, err := ParsePointKind("move2"); err == nil {
		t.Error("expected an error")
	}
}

func TestContourOrientation(t *testing.T) {
	ccw := NewContour(linePoints(curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(100, 100), curve.Pt(0, 100))...)
	if ccw.Clockwise() {
		t.Error("counter-clockwise square reported clockwise")
	}
	cw := NewContour(linePoints(curve.Pt(0, 0), curve.Pt(0, 100), curve.Pt(100, 100), curve.Pt(100, 0))...)
	if !cw.Clockwise() {
		t.Error("clockwise square reported counter-clockwise")
	}
}

func TestContourSegments(t *testing.T) {
	c := NewContour(
		NewPoint(0, 0, LineKind),
		NewPoint(100, 0, LineKind),
		NewPoint(100, 50, OffCurveKind),
		NewPoint(50, 100, OffCurveKind),
		NewPoint(0, 100, CurveKind),
	)
	segs := slices.Collect(c.Segments())
	want := []curve.PathSegment{
		curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(100, 0)}.Seg(),
		curve.CubicBez{P0: curve.Pt(100, 0), P1: curve.Pt(100, 50), P2: curve.Pt(50, 100), P3: curve.Pt(0, 100)}.Seg(),
		curve.Line{P0: curve.Pt(0, 100), P1: curve.Pt(0, 0)}.Seg(),
	}
	diff(t, want, segs)

	diff(t, curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, c.ControlBox())
	bbox := c.BoundingBox()
	if bbox.X1 > 100 || bbox.Y1 > 100 || bbox.X1 < 99 || bbox.Y1 < 99 {
		t.Errorf("unexpected bounding box %v", bbox)
	}
}

func TestContourSegmentsStartOffCurve(t *testing.T) {
	c := NewContour(
		NewPoint(100, 50, OffCurveKind),
		NewPoint(50, 100, OffCurveKind),
		NewPoint(0, 100, CurveKind),
		NewPoint(0, 0, LineKind),
		NewPoint(100, 0, LineKind),
	)
	segs := slices.Collect(c.Segments())
	diff(t, 3, len(segs))
	diff(t, curve.CubicKind, segs[2].Kind)
	diff(t, curve.Pt(100, 0), segs[2].P0)
}

func TestContourSegmentsQuadratic(t *testing.T) {
	// Two consecutive off-curve points imply an on-curve point between them.
	c := NewContour(
		NewPoint(0, 0, LineKind),
		NewPoint(100, 0, OffCurveKind),
		NewPoint(100, 100, OffCurveKind),
		NewPoint(0, 100, QCurveKind),
	)
	segs := slices.Collect(c.Segments())
	want := []curve.PathSegment{
		curve.QuadBez{P0: curve.Pt(0, 0), P1: curve.Pt(100, 0), P2: curve.Pt(100, 50)}.Seg(),
		curve.QuadBez{P0: curve.Pt(100, 50), P1: curve.Pt(100, 100), P2: curve.Pt(0, 100)}.Seg(),
		curve.Line{P0: curve.Pt(0, 100), P1: curve.Pt(0, 0)}.Seg(),
	}
	diff(t, want, segs)

	allOff := NewContour(
		NewPoint(0, 0, OffCurveKind),
		NewPoint(100, 0, OffCurveKind),
		NewPoint(100, 100, OffCurveKind),
		NewPoint(0, 100, OffCurveKind),
	)
	segs = slices.Collect(allOff.Segments())
	diff(t, 4, len(segs))
	diff(t, curve.Pt(0, 50), segs[0].P0)
	if !allOff.PointInside(curve.Pt(50, 50)) {
		t.Error("center of implied-only contour reported outside")
	}
}

func TestContourPointInside(t *testing.T) {
	c := NewContour(linePoints(curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(100, 100), curve.Pt(0, 100))...)
	diff(t, true, c.PointInside(curve.Pt(50, 50)))
	diff(t, false, c.PointInside(curve.Pt(150, 50)))
	diff(t, false, c.PointInside(curve.Pt(50, -1)))
}

func TestContourEditing(t *testing.T) {
	pts := linePoints(curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(10, 10))
	c := NewContour(pts...)
	g := NewGlyph("a", c)

	diff(t, 0, c.Index())
	diff(t, 2, pts[2].Index())
	if pts[0].Glyph() != g {
		t.Error("point not attached to glyph")
	}
	if c.At(-1) != pts[2] || c.At(3) != pts[0] {
		t.Error("At does not wrap around")
	}

	extra := NewPoint(5, 5, LineKind)
	c.InsertPoint(1, extra)
	diff(t, 1, extra.Index())
	diff(t, 2, pts[1].Index())

	if !c.RemovePoint(extra) {
		t.Fatal("RemovePoint failed")
	}
	diff(t, -1, extra.Index())
	if c.RemovePoint(extra) {
		t.Error("removed a point twice")
	}

	pts[0].Move(curve.Pt(0.4, -0.6))
	c.Round()
	diff(t, curve.Pt(0, -1), pts[0].Pt())

	if NewContour().At(0) != nil {
		t.Error("At on an empty contour returned a point")
	}
	if c.PointInside(curve.Pt(50, 50)) {
		t.Error("point outside the control box reported inside")
	}

	if !g.RemoveContour(c) {
		t.Fatal("RemoveContour failed")
	}
	diff(t, -1, c.Index())
	diff(t, 0, len(g.Contours()))
	if g.RemoveContour(c) {
		t.Error("removed a contour twice")
	}
}
