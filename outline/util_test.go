package outline

import (
	"testing"

	"github.com/Space0726/fwig/curve"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func linePoints(pts ...curve.Point) []*Point {
	out := make([]*Point, len(pts))
	for i, pt := range pts {
		out[i] = NewPoint(pt.X, pt.Y, LineKind)
	}
	return out
}

func positions(c *Contour) []curve.Point {
	var out []curve.Point
	for _, p := range c.Points() {
		out = append(out, p.Pt())
	}
	return out
}

func kinds(c *Contour) []PointKind {
	var out []PointKind
	for _, p := range c.Points() {
		out = append(out, p.Kind)
	}
	return out
}

type countingNotifier struct{ n int }

func (cn *countingNotifier) GlyphChanged(*Glyph) { cn.n++ }
