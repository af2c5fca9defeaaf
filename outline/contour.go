package outline

import (
	"iter"
	"slices"

	"github.com/Space0726/fwig/curve"
)

// Contour is a closed sequence of points. Indices wrap around.
type Contour struct {
	points []*Point
	glyph  *Glyph
}

// NewContour returns a contour owning points.
func NewContour(points ...*Point) *Contour {
	c := &Contour{}
	for _, p := range points {
		c.InsertPoint(len(c.points), p)
	}
	return c
}

// Points returns the points of c. The slice must not be modified.
func (c *Contour) Points() []*Point { return c.points }

// Len returns the number of points.
func (c *Contour) Len() int { return len(c.points) }

// At returns the point at index i, wrapping around in both directions. It
// returns nil for an empty contour.
func (c *Contour) At(i int) *Point {
	n := len(c.points)
	if n == 0 {
		return nil
	}
	return c.points[((i%n)+n)%n]
}

// OnCurvePoints returns the on-curve points in contour order.
func (c *Contour) OnCurvePoints() []*Point {
	var out []*Point
	for _, p := range c.points {
		if p.OnCurve() {
			out = append(out, p)
		}
	}
	return out
}

// Glyph returns the glyph c belongs to, or nil.
func (c *Contour) Glyph() *Glyph { return c.glyph }

// Index returns the position of c within its glyph, or -1.
func (c *Contour) Index() int {
	if c.glyph == nil {
		return -1
	}
	return slices.Index(c.glyph.contours, c)
}

// InsertPoint inserts p before index i. An index equal to Len appends.
func (c *Contour) InsertPoint(i int, p *Point) {
	p.contour = c
	c.points = slices.Insert(c.points, i, p)
}

// RemovePoint removes p from c. It reports whether p was part of c.
func (c *Contour) RemovePoint(p *Point) bool {
	i := slices.Index(c.points, p)
	if i < 0 {
		return false
	}
	c.points = slices.Delete(c.points, i, i+1)
	p.contour = nil
	return true
}

// Round rounds the coordinates of all points to integers.
func (c *Contour) Round() {
	for _, p := range c.points {
		p.Round()
	}
}

// Segments iterates over the segments of the closed contour, starting at
// the first on-curve point. Quadratic splines with several off-curve points
// are split at their implied on-curve points.
func (c *Contour) Segments() iter.Seq[curve.PathSegment] {
	return func(yield func(curve.PathSegment) bool) {
		n := len(c.points)
		start := slices.IndexFunc(c.points, (*Point).OnCurve)
		if n == 0 {
			return
		}
		if start < 0 {
			// All off-curve: a TrueType contour whose on-curve points are
			// all implied.
			for i := range n {
				ctrl := c.At(i).Pt()
				q := curve.QuadBez{
					P0: c.At(i - 1).Pt().Midpoint(ctrl),
					P1: ctrl,
					P2: ctrl.Midpoint(c.At(i + 1).Pt()),
				}
				if !yield(q.Seg()) {
					return
				}
			}
			return
		}

		prev := c.points[start].Pt()
		var offs []curve.Point
		emit := func(p *Point, end curve.Point) bool {
			var seg curve.PathSegment
			switch {
			case len(offs) == 0:
				seg = curve.Line{P0: prev, P1: end}.Seg()
			case p.Kind == CurveKind && len(offs) == 2:
				seg = curve.CubicBez{P0: prev, P1: offs[0], P2: offs[1], P3: end}.Seg()
			case p.Kind == CurveKind && len(offs) > 2:
				// Super-Béziers are not used in glyph sources; keep the
				// outer handles.
				seg = curve.CubicBez{P0: prev, P1: offs[0], P2: offs[len(offs)-1], P3: end}.Seg()
			default:
				for i := 0; i < len(offs)-1; i++ {
					implied := offs[i].Midpoint(offs[i+1])
					if !yield(curve.QuadBez{P0: prev, P1: offs[i], P2: implied}.Seg()) {
						return false
					}
					prev = implied
				}
				seg = curve.QuadBez{P0: prev, P1: offs[len(offs)-1], P2: end}.Seg()
			}
			prev = end
			offs = offs[:0]
			return yield(seg)
		}

		for k := 1; k <= n; k++ {
			p := c.points[(start+k)%n]
			if !p.OnCurve() {
				offs = append(offs, p.Pt())
				continue
			}
			if !emit(p, p.Pt()) {
				return
			}
		}
	}
}

// SignedArea returns the area enclosed by c, positive for counter-clockwise
// contours.
func (c *Contour) SignedArea() float64 {
	return curve.SegmentsSignedArea(c.Segments())
}

// Clockwise reports whether the contour runs clockwise in the y-up space of
// font units.
func (c *Contour) Clockwise() bool {
	return c.SignedArea() < 0
}

// BoundingBox returns the tight bounding box of the outline.
func (c *Contour) BoundingBox() curve.Rect {
	return curve.SegmentsBoundingBox(c.Segments())
}

// ControlBox returns the bounding box of all points, including off-curve
// points.
func (c *Contour) ControlBox() curve.Rect {
	pts := make([]curve.Point, len(c.points))
	for i, p := range c.points {
		pts[i] = p.Pt()
	}
	return curve.RectFromPoints(pts...)
}

// PointInside reports whether pt lies inside c under the non-zero winding
// rule.
func (c *Contour) PointInside(pt curve.Point) bool {
	if len(c.points) == 0 || !c.ControlBox().Contains(pt) {
		return false
	}
	return curve.SegmentsWinding(c.Segments(), pt) != 0
}
