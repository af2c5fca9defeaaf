package attributing

import (
	"strconv"

	"github.com/Space0726/fwig/curve"
	"github.com/Space0726/fwig/outline"
)

// maxSerifs is the number of serifs a glyph gets at most.
const maxSerifs = 2

func vertical(c *outline.Contour) bool {
	box := c.ControlBox()
	return box.Height() > box.Width()
}

// overlapVertical reports whether the contours overlapping c do so along a
// vertical line, or not at all. The overlap is sampled with the on-curve
// points of other contours that lie inside c.
func overlapVertical(g *outline.Glyph, c *outline.Contour) bool {
	var inside []*outline.Point
	for _, o := range g.Contours() {
		if o == c {
			continue
		}
		for _, p := range o.OnCurvePoints() {
			if c.PointInside(p.Pt()) {
				inside = append(inside, p)
			}
		}
	}
	switch len(inside) {
	case 0:
		return true
	case 1:
		return false
	default:
		return inside[0].X == inside[1].X
	}
}

// serifPoint returns the on-curve point of c closest to the top left corner
// of its control box.
func serifPoint(c *outline.Contour) *outline.Point {
	box := c.ControlBox()
	corner := curve.Pt(box.X0, box.Y1)
	var best *outline.Point
	for _, p := range c.OnCurvePoints() {
		if best == nil || p.Pt().DistanceSquared(corner) < best.Pt().DistanceSquared(corner) {
			best = p
		}
	}
	return best
}

// AddSerifAttr puts serif=1 and serif=2 on the top left points of the first
// two vertical contours of g that are not crossed sideways by another
// contour.
func AddSerifAttr(g *outline.Glyph, opts Options) error {
	log := opts.logger().WithField("glyph", g.Name)
	n := 0
	for _, c := range g.Contours() {
		if n == maxSerifs {
			break
		}
		if !vertical(c) {
			continue
		}
		if !overlapVertical(g, c) {
			log.WithField("contour", c.Index()).Debug("contour overlaps sideways")
			continue
		}
		p := serifPoint(c)
		if p == nil {
			continue
		}
		n++
		if _, err := p.AddAttr(KeySerif, strconv.Itoa(n)); err != nil {
			return err
		}
	}
	return nil
}

// AddElemAttr tags the first point of each contour with elem=stem, or with
// elem=branch if the contour reaches into another contour.
func AddElemAttr(g *outline.Glyph) error {
	contours := g.Contours()
	for _, c := range contours {
		if c.Len() == 0 {
			continue
		}
		elem := "stem"
		for _, p := range c.OnCurvePoints() {
			if insideOther(p, contours) {
				elem = "branch"
				break
			}
		}
		if _, err := c.At(0).AddAttr(KeyElem, elem); err != nil {
			return err
		}
	}
	return nil
}
