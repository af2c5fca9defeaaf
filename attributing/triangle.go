package attributing

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/Space0726/fwig/curve"
	"github.com/Space0726/fwig/outline"
)

// ErrNoBase is returned when an apex lacks the two higher points its
// triangle is resolved against.
var ErrNoBase = errors.New("attributing: apex has no opposite base")

// fanContourLen is the point count of a known fan shaped contour that has
// an even number of points but still needs resolving.
const fanContourLen = 12

// isTriangle reports whether c has an apex without a pen partner.
func isTriangle(c *outline.Contour) bool {
	return c.Len()%2 == 1 || c.Len() == fanContourLen
}

// apexes returns the indices of points higher than both neighbours.
func apexes(c *outline.Contour) []int {
	var out []int
	for i, p := range c.Points() {
		if c.At(i-1).Y < p.Y && p.Y > c.At(i+1).Y {
			out = append(out, i)
		}
	}
	return out
}

// rightLeft orders two points by x.
func rightLeft(a, b *outline.Point) (right, left *outline.Point) {
	if a.X > b.X {
		return a, b
	}
	return b, a
}

// oppositeBase returns the two points above the apex closest to it
// horizontally.
func oppositeBase(c *outline.Contour, apex *outline.Point) (right, left *outline.Point, err error) {
	var above []*outline.Point
	for _, p := range c.Points() {
		if p.Y > apex.Y {
			above = append(above, p)
		}
	}
	if len(above) < 2 {
		return nil, nil, fmt.Errorf("%w: point %d", ErrNoBase, apex.Index())
	}
	slices.SortStableFunc(above, func(a, b *outline.Point) int {
		return cmp.Compare(math.Abs(apex.X-a.X), math.Abs(apex.X-b.X))
	})
	right, left = rightLeft(above[0], above[1])
	return right, left, nil
}

// startPairNumber returns the first pen pair number for n new pairs of
// points: one past the highest in use, or, for unattributed glyphs, the
// number following the pairs the existing points would form.
func startPairNumber(c *outline.Contour, n int) (int, error) {
	var points []*outline.Point
	if g := c.Glyph(); g != nil {
		points = GlyphPoints(g)
	} else {
		points = ContourPoints(c)
	}
	ns, err := penPairNumbers(points)
	switch {
	case errors.Is(err, ErrNoPenPairs):
	case err != nil:
		return 0, err
	default:
		if m := slices.Max(ns); m > 0 {
			return m + 1, nil
		}
	}
	return (len(points)+n)/2 + 1 - 2*n, nil
}

// MakeTriangle resolves the apexes of c, points that have no pen partner
// because the stroke narrows to a tip. Each apex is doubled, and the two
// copies are moved along the neighbouring edges to the x positions of the
// two points above the apex, turning the tip into a flat edge whose points
// pair up with the points above.
//
// Contours with an even number of points are left alone, except for the
// 12 point fan shape. MakeTriangle returns the number of resolved apexes.
// An apex that cannot be resolved stops the process and is left as it was.
func MakeTriangle(c *outline.Contour, opts TriangleOptions) (int, error) {
	if !isTriangle(c) {
		return 0, nil
	}
	idxs := apexes(c)
	if len(idxs) == 0 {
		return 0, nil
	}
	number := 0
	if !opts.SkipPenPair {
		var err error
		if number, err = startPairNumber(c, len(idxs)); err != nil {
			return 0, err
		}
	}
	log := opts.logger()
	for k, i := range idxs {
		// Every resolved apex added a point before the later ones.
		i += k
		apex := c.At(i)
		tip := outline.NewPoint(apex.X, apex.Y, outline.LineKind)
		c.InsertPoint(i, tip)
		if err := resolveApex(c, i, number, opts); err != nil {
			c.RemovePoint(tip)
			log.WithField("point", i).WithError(err).Debug("cannot resolve apex")
			return k, err
		}
		number += 2
		if g := c.Glyph(); g != nil {
			g.SetChanged()
		}
	}
	return len(idxs), nil
}

// resolveApex moves the doubled apex at i and i+1 into place. Nothing is
// modified if it fails.
func resolveApex(c *outline.Contour, i, number int, opts TriangleOptions) error {
	tip, apex := c.At(i), c.At(i+1)
	right, left, err := oppositeBase(c, tip)
	if err != nil {
		return err
	}
	prevFn, err := outline.LinearFunction(c.At(i-1).Pt(), tip.Pt(), curve.AxisX)
	if err != nil {
		return err
	}
	nextFn, err := outline.LinearFunction(apex.Pt(), c.At(i+2).Pt(), curve.AxisX)
	if err != nil {
		return err
	}
	prevBase, nextBase := right, left
	if c.Clockwise() {
		prevBase, nextBase = left, right
	}

	if !opts.SkipPenPair {
		if err := addTrianglePairs(number, !opts.NoTwist,
			[2]*outline.Point{prevBase, apex},
			[2]*outline.Point{nextBase, tip},
		); err != nil {
			return err
		}
	}
	tip.Move(curve.Pt(prevBase.X, prevFn(prevBase.X)))
	apex.Move(curve.Pt(nextBase.X, nextFn(nextBase.X)))
	return nil
}

// addTrianglePairs names the pairs z<number>, z<number+1> and so on, the
// right point of each getting r and the left l. With twist, every second
// pair gets the opposite sides.
func addTrianglePairs(number int, twist bool, pairs ...[2]*outline.Point) error {
	for _, pr := range pairs {
		for _, p := range pr {
			if _, err := p.Attrs(); err != nil {
				return err
			}
		}
	}
	for k, pr := range pairs {
		right, left := rightLeft(pr[0], pr[1])
		rs, ls := byte('r'), byte('l')
		if twist && k%2 == 1 {
			rs, ls = ls, rs
		}
		if _, err := right.PutAttr(KeyPenPair, FormatPenPair(number+k, rs)); err != nil {
			return err
		}
		if _, err := left.PutAttr(KeyPenPair, FormatPenPair(number+k, ls)); err != nil {
			return err
		}
	}
	return nil
}
