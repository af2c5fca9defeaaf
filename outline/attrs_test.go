package outline

import (
	"errors"
	"testing"

	"github.com/Space0726/fwig/attr"
	"github.com/Space0726/fwig/curve"
)

func TestPointAttrs(t *testing.T) {
	pts := linePoints(curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(10, 10))
	g := NewGlyph("a", NewContour(pts...))
	g.Codec = attr.NewCodec(16)
	cn := &countingNotifier{}
	g.Notifier = cn
	p := pts[0]

	mustChange := func(want bool) func(bool, error) {
		return func(changed bool, err error) {
			t.Helper()
			if err != nil {
				t.Fatal(err)
			}
			if changed != want {
				t.Errorf("got changed = %t, want %t", changed, want)
			}
		}
	}

	mustChange(true)(p.PutAttr("stroke", "begin"))
	mustChange(true)(p.AddAttr("penPair", "z1l"))
	diff(t, "'stroke':'begin','penPair':'z1l'", p.Name)
	diff(t, 2, cn.n)

	// Writing what is already there is not a modification.
	mustChange(false)(p.PutAttr("stroke", "begin"))
	mustChange(false)(p.AddAttr("penPair", "z9r"))
	mustChange(false)(p.SetAttr("serif", "1"))
	diff(t, 2, cn.n)

	mustChange(true)(p.SetAttr("stroke", "end"))
	v, ok, err := p.GetAttr("stroke")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "end", v)
	diff(t, true, ok)

	mustChange(true)(p.DelAttr("stroke"))
	mustChange(false)(p.DelAttr("stroke"))
	diff(t, "'penPair':'z1l'", p.Name)
	diff(t, 4, cn.n)
	diff(t, 4, g.Changes())
	diff(t, false, p.HasAttr("stroke"))
	diff(t, true, p.HasAttr("penPair"))
}

func TestPointAttrsErrors(t *testing.T) {
	p := NewPoint(0, 0, LineKind)
	if _, err := p.PutAttr("it's", "x"); !errors.Is(err, attr.ErrQuote) {
		t.Errorf("got error %v, want ErrQuote", err)
	}
	if _, err := p.PutAttr("k", "'"); !errors.Is(err, attr.ErrQuote) {
		t.Errorf("got error %v, want ErrQuote", err)
	}

	p.Name = "'stroke':'begin"
	var perr *attr.ParseError
	if _, _, err := p.GetAttr("stroke"); !errors.As(err, &perr) {
		t.Errorf("got error %v, want *attr.ParseError", err)
	}
	if p.HasAttr("stroke") {
		t.Error("malformed name reports attributes")
	}
	if _, err := p.PutAttr("stroke", "end"); err == nil {
		t.Error("modified a malformed name")
	}
	diff(t, "'stroke':'begin", p.Name)
}

func TestDetachedPointAttrs(t *testing.T) {
	p := NewPoint(0, 0, LineKind)
	if _, err := p.PutAttr("sound", "first"); err != nil {
		t.Fatal(err)
	}
	diff(t, "'sound':'first'", p.Name)
}
