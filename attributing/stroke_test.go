package attributing

import (
	"errors"
	"testing"

	"github.com/Space0726/fwig/outline"
)

func strokeRect(x0 float64, lower, upper int) *outline.Contour {
	l, u := FormatPenPair(lower, 'l'), FormatPenPair(upper, 'l')
	lr, ur := FormatPenPair(lower, 'r'), FormatPenPair(upper, 'r')
	return rect(x0, 0, x0+20, 100, l, lr, ur, u)
}

func strokes(t *testing.T, c *outline.Contour) []string {
	t.Helper()
	var out []string
	for _, p := range c.Points() {
		out = append(out, attrOf(t, p, KeyStroke))
	}
	return out
}

func TestAddStrokeAttr(t *testing.T) {
	c := strokeRect(0, 2, 1)
	g := outline.NewGlyph("stroke", c)
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"end", "end", "begin", "begin"}, strokes(t, c))
	diff(t, "'penPair':'z1r','stroke':'begin'", c.At(2).Name)

	changes := g.Changes()
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, changes, g.Changes())
}

func TestAddStrokeAttrUnattributed(t *testing.T) {
	g := outline.NewGlyph("square", rect(0, 0, 100, 100))
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, 0, g.Changes())
	diff(t, [][]string{{"", "", "", ""}}, names(g))
}

func TestAddStrokeAttrTainted(t *testing.T) {
	c := strokeRect(0, 2, 1)
	for _, p := range c.Points()[:2] {
		if _, err := p.AddAttr(KeyDependX, "z7l"); err != nil {
			t.Fatal(err)
		}
	}
	g := outline.NewGlyph("stroke", c)
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"", "", "", ""}, strokes(t, c))

	if err := AddStrokeAttr(g, Options{PerContour: true}); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"", "", "begin", "begin"}, strokes(t, c))
}

func TestAddStrokeAttrPerContour(t *testing.T) {
	a, b := strokeRect(0, 2, 1), strokeRect(50, 4, 3)
	g := outline.NewGlyph("strokes", a, b)

	// Four candidates across the glyph are ambiguous.
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, 0, g.Changes())

	if err := AddStrokeAttr(g, Options{PerContour: true}); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"end", "end", "begin", "begin"}, strokes(t, a))
	diff(t, []string{"end", "end", "begin", "begin"}, strokes(t, b))
}

func TestAddStrokeAttrDouble(t *testing.T) {
	a, b := strokeRect(0, 2, 1), strokeRect(50, 4, 3)
	a.At(0).Name = "'penPair':'z2l','sound':'first','char':'1','double':'left'"
	b.At(0).Name = "'penPair':'z4l','sound':'first','char':'1','double':'right'"
	g := outline.NewGlyph("ssangkiyeok", a, b)
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"end", "end", "begin", "begin"}, strokes(t, a))
	diff(t, []string{"end", "end", "begin", "begin"}, strokes(t, b))
}

func TestAddStrokeAttrDoubleSingleJamo(t *testing.T) {
	// ㄱ is not split into halves even if the contours carry double.
	a, b := strokeRect(0, 2, 1), strokeRect(50, 4, 3)
	a.At(0).Name = "'penPair':'z2l','sound':'first','char':'0','double':'left'"
	b.At(0).Name = "'penPair':'z4l','sound':'first','char':'0','double':'right'"
	g := outline.NewGlyph("kiyeok", a, b)
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, 0, g.Changes())
}

func TestAddStrokeAttrStrict(t *testing.T) {
	c := rect(0, 0, 20, 100, "z2l", "z2r", "z1r")
	g := outline.NewGlyph("stroke", c)
	if err := AddStrokeAttr(g, Options{}); err != nil {
		t.Fatal(err)
	}
	diff(t, 0, g.Changes())

	var perr *PairError
	if err := AddStrokeAttr(g, Options{Strict: true}); !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *PairError", err)
	}
	diff(t, "1", perr.ID)
}
