package attributing

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/Space0726/fwig/outline"
)

var penPairRE = regexp.MustCompile(`^z(\d+)([lr])$`)

// ParsePenPair splits a pen pair value such as "z12l" into its identifier
// "12" and side 'l'.
func ParsePenPair(v string) (id string, side byte, err error) {
	m := penPairRE.FindStringSubmatch(v)
	if m == nil {
		return "", 0, &PairError{Value: v}
	}
	return m[1], m[2][0], nil
}

// FormatPenPair is the inverse of ParsePenPair.
func FormatPenPair(n int, side byte) string {
	return fmt.Sprintf("z%d%c", n, side)
}

// PairError describes a pen pair that is not made of exactly one left and
// one right point, or a malformed pen pair value.
type PairError struct {
	ID      string
	Members int
	// Value is set for malformed values.
	Value string
}

func (e *PairError) Error() string {
	if e.Value != "" || e.ID == "" {
		return fmt.Sprintf("attributing: malformed pen pair %q", e.Value)
	}
	return fmt.Sprintf("attributing: pen pair z%s has %d members, want one l and one r", e.ID, e.Members)
}

// PairMode selects how BuildPenPairs treats incomplete groups.
type PairMode int

const (
	// Lenient drops incomplete groups and malformed values.
	Lenient PairMode = iota
	// Strict reports them as *PairError.
	Strict
)

// Pair is a complete pen pair.
type Pair struct {
	ID          string
	Left, Right *outline.Point
}

// Has reports whether p is one of the pair's points.
func (pr Pair) Has(p *outline.Point) bool {
	return p == pr.Left || p == pr.Right
}

// MeanY returns the average height of the pair.
func (pr Pair) MeanY() float64 {
	return (pr.Left.Y + pr.Right.Y) / 2
}

// PenPairIndex groups points by pen pair identifier.
type PenPairIndex struct {
	order   []string
	members map[string][]*outline.Point
	pairs   map[string]Pair
	of      map[*outline.Point]string
	points  []*outline.Point
}

// BuildPenPairs indexes the on-curve points among points by their penPair
// attribute. Points without one are ignored.
func BuildPenPairs(points []*outline.Point, mode PairMode) (*PenPairIndex, error) {
	idx := &PenPairIndex{
		members: make(map[string][]*outline.Point),
		pairs:   make(map[string]Pair),
		of:      make(map[*outline.Point]string),
	}
	sides := make(map[*outline.Point]byte)
	for _, p := range points {
		if !p.OnCurve() {
			continue
		}
		v, ok, err := p.GetAttr(KeyPenPair)
		if err != nil {
			if mode == Strict {
				return nil, err
			}
			continue
		}
		if !ok {
			continue
		}
		id, side, err := ParsePenPair(v)
		if err != nil {
			if mode == Strict {
				return nil, err
			}
			continue
		}
		if _, seen := idx.members[id]; !seen {
			idx.order = append(idx.order, id)
		}
		idx.members[id] = append(idx.members[id], p)
		sides[p] = side
	}

	for _, id := range idx.order {
		ms := idx.members[id]
		var pr Pair
		if len(ms) == 2 && sides[ms[0]] != sides[ms[1]] {
			pr = Pair{ID: id}
			for _, p := range ms {
				if sides[p] == 'l' {
					pr.Left = p
				} else {
					pr.Right = p
				}
			}
		}
		if pr.Left == nil {
			if mode == Strict {
				return nil, &PairError{ID: id, Members: len(ms)}
			}
			continue
		}
		idx.pairs[id] = pr
		idx.of[pr.Left] = id
		idx.of[pr.Right] = id
	}
	for _, p := range points {
		if _, ok := idx.of[p]; ok {
			idx.points = append(idx.points, p)
		}
	}
	return idx, nil
}

// Pairs iterates over the complete pairs in the order their first point
// was seen.
func (idx *PenPairIndex) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, id := range idx.order {
			pr, ok := idx.pairs[id]
			if !ok {
				continue
			}
			if !yield(pr) {
				return
			}
		}
	}
}

// Len returns the number of complete pairs.
func (idx *PenPairIndex) Len() int { return len(idx.pairs) }

// Lookup returns the complete pair with the given identifier.
func (idx *PenPairIndex) Lookup(id string) (Pair, bool) {
	pr, ok := idx.pairs[id]
	return pr, ok
}

// PairOf returns the complete pair p belongs to.
func (idx *PenPairIndex) PairOf(p *outline.Point) (Pair, bool) {
	id, ok := idx.of[p]
	if !ok {
		return Pair{}, false
	}
	return idx.pairs[id], true
}

// Members returns all points carrying the identifier, including those of
// incomplete groups.
func (idx *PenPairIndex) Members(id string) []*outline.Point {
	return idx.members[id]
}

// Points returns the points of complete pairs in input order.
func (idx *PenPairIndex) Points() []*outline.Point {
	return idx.points
}

// GlyphPoints returns the on-curve points of g.
func GlyphPoints(g *outline.Glyph) []*outline.Point {
	return g.OnCurvePoints()
}

// ContourPoints returns the on-curve points of c.
func ContourPoints(c *outline.Contour) []*outline.Point {
	return c.OnCurvePoints()
}
