package attributing

import (
	"testing"

	"github.com/Space0726/fwig/outline"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pt returns a line point named with the given attribute text.
func pt(x, y float64, name string) *outline.Point {
	p := outline.NewPoint(x, y, outline.LineKind)
	p.Name = name
	return p
}

// pp returns a line point with the given pen pair.
func pp(x, y float64, penPair string) *outline.Point {
	return pt(x, y, "'penPair':'"+penPair+"'")
}

// rect returns a counter-clockwise rectangle starting at the lower left
// corner, with the given pen pairs in point order.
func rect(x0, y0, x1, y1 float64, pairs ...string) *outline.Contour {
	pairs = append(pairs, "", "", "", "")
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	var pts []*outline.Point
	for i, c := range corners {
		if pairs[i] == "" {
			pts = append(pts, pt(c[0], c[1], ""))
		} else {
			pts = append(pts, pp(c[0], c[1], pairs[i]))
		}
	}
	return outline.NewContour(pts...)
}

func names(g *outline.Glyph) [][]string {
	var out [][]string
	for _, c := range g.Contours() {
		var ns []string
		for _, p := range c.Points() {
			ns = append(ns, p.Name)
		}
		out = append(out, ns)
	}
	return out
}

func attrOf(t *testing.T, p *outline.Point, key string) string {
	t.Helper()
	v, _, err := p.GetAttr(key)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
