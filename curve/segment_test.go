package curve

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func polygon(pts ...Point) iter.Seq[PathSegment] {
	var segs []PathSegment
	for i, pt := range pts {
		segs = append(segs, Line{pt, pts[(i+1)%len(pts)]}.Seg())
	}
	return slices.Values(segs)
}

func TestSegmentsSignedArea(t *testing.T) {
	ccw := polygon(Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50))
	diff(t, 5000.0, SegmentsSignedArea(ccw))

	cw := polygon(Pt(0, 0), Pt(0, 50), Pt(100, 50), Pt(100, 0))
	diff(t, -5000.0, SegmentsSignedArea(cw))
}

func TestSegmentsWinding(t *testing.T) {
	square := polygon(Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100))
	tests := []struct {
		pt     Point
		inside bool
	}{
		{Pt(50, 50), true},
		{Pt(1, 99), true},
		{Pt(-1, 50), false},
		{Pt(50, 101), false},
		{Pt(150, 50), false},
	}
	for _, tt := range tests {
		w := SegmentsWinding(square, tt.pt)
		if (w != 0) != tt.inside {
			t.Errorf("winding of %v = %d, want inside=%t", tt.pt, w, tt.inside)
		}
	}
}

func TestSegmentsWindingCurves(t *testing.T) {
	// A lens shape made of two cubics.
	segs := slices.Values([]PathSegment{
		CubicBez{Pt(0, 0), Pt(30, 60), Pt(70, 60), Pt(100, 0)}.Seg(),
		CubicBez{Pt(100, 0), Pt(70, -60), Pt(30, -60), Pt(0, 0)}.Seg(),
	})
	if w := SegmentsWinding(segs, Pt(50, 0)); w == 0 {
		t.Errorf("center of lens reported outside")
	}
	if w := SegmentsWinding(segs, Pt(50, 60)); w != 0 {
		t.Errorf("point above lens reported inside (winding %d)", w)
	}
	// Winding follows orientation.
	if a, w := SegmentsSignedArea(segs), SegmentsWinding(segs, Pt(50, 0)); (a > 0) != (w > 0) {
		t.Errorf("area %g and winding %d disagree in sign", a, w)
	}
}

func TestSegmentsBoundingBox(t *testing.T) {
	segs := slices.Values([]PathSegment{
		Line{Pt(0, 0), Pt(100, 0)}.Seg(),
		QuadBez{Pt(100, 0), Pt(50, 100), Pt(0, 0)}.Seg(),
	})
	diff(t, Rect{0, 0, 100, 50}, SegmentsBoundingBox(segs), cmpopts.EquateApprox(0, 1e-9))
}

func TestPathSegmentEnd(t *testing.T) {
	diff(t, Pt(1, 1), Line{Pt(0, 0), Pt(1, 1)}.Seg().End())
	diff(t, Pt(2, 2), QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 2)}.Seg().End())
	diff(t, Pt(3, 3), CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}.Seg().End())
}
