package attributing

import (
	"errors"
	"slices"
	"testing"

	"github.com/Space0726/fwig/outline"
)

func TestParsePenPair(t *testing.T) {
	tests := []struct {
		in   string
		id   string
		side byte
		ok   bool
	}{
		{"z1l", "1", 'l', true},
		{"z12r", "12", 'r', true},
		{"z1", "", 0, false},
		{"y1l", "", 0, false},
		{"z1x", "", 0, false},
		{"zl", "", 0, false},
		{"", "", 0, false},
	}
	for _, tt := range tests {
		id, side, err := ParsePenPair(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParsePenPair(%q) returned error %v", tt.in, err)
			continue
		}
		if id != tt.id || side != tt.side {
			t.Errorf("ParsePenPair(%q) = %q, %c, want %q, %c", tt.in, id, side, tt.id, tt.side)
		}
	}
	diff(t, "z7r", FormatPenPair(7, 'r'))
}

func TestBuildPenPairs(t *testing.T) {
	pts := []*outline.Point{pp(0, 0, "z1l"), pp(10, 0, "z2l"), pp(10, 10, "z2r"), pp(0, 10, "z1r")}
	idx, err := BuildPenPairs(pts, Strict)
	if err != nil {
		t.Fatal(err)
	}
	pairs := slices.Collect(idx.Pairs())
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	for i, want := range []struct {
		id          string
		left, right *outline.Point
	}{{"1", pts[0], pts[3]}, {"2", pts[1], pts[2]}} {
		pr := pairs[i]
		if pr.ID != want.id || pr.Left != want.left || pr.Right != want.right {
			t.Errorf("pair %d: got z%s (%v, %v)", i, pr.ID, pr.Left, pr.Right)
		}
	}
	if pr, ok := idx.PairOf(pts[2]); !ok || pr.ID != "2" {
		t.Errorf("PairOf(%v) = z%s, %t", pts[2], pr.ID, ok)
	}
	if _, ok := idx.Lookup("3"); ok {
		t.Error("found a pair that does not exist")
	}
	diff(t, 4, len(idx.Points()))
}

func TestBuildPenPairsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		pts  []*outline.Point
	}{
		{"single", []*outline.Point{pp(0, 0, "z1l"), pp(1, 0, "z2l"), pp(1, 1, "z2r")}},
		{"same side", []*outline.Point{pp(0, 0, "z1l"), pp(1, 0, "z1l")}},
		{"three", []*outline.Point{pp(0, 0, "z1l"), pp(1, 0, "z1r"), pp(2, 0, "z1r")}},
		{"malformed", []*outline.Point{pp(0, 0, "1l"), pp(1, 0, "z2l"), pp(1, 1, "z2r")}},
		{"bad name", []*outline.Point{pt(0, 0, "'penPair'"), pp(1, 0, "z2l"), pp(1, 1, "z2r")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildPenPairs(tt.pts, Strict); err == nil {
				t.Error("strict mode accepted incomplete pairs")
			}
			idx, err := BuildPenPairs(tt.pts, Lenient)
			if err != nil {
				t.Fatal(err)
			}
			_, complete := idx.Lookup("2")
			diff(t, tt.name != "same side" && tt.name != "three", complete)
		})
	}

	_, err := BuildPenPairs([]*outline.Point{pp(0, 0, "z1l"), pp(1, 0, "z1l")}, Strict)
	var perr *PairError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *PairError", err)
	}
	diff(t, "1", perr.ID)
	diff(t, 2, perr.Members)
}

func TestBuildPenPairsSkipsOffCurve(t *testing.T) {
	off := outline.NewPoint(5, 5, outline.OffCurveKind)
	off.Name = "'penPair':'z1r'"
	pts := []*outline.Point{pp(0, 0, "z1l"), off, pt(3, 3, "")}
	idx, err := BuildPenPairs(pts, Lenient)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, idx.Len())
	diff(t, 1, len(idx.Members("1")))
}
