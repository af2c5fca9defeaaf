package outline

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FromSFNT loads the outline of r from a compiled font in font units. The
// y axis is flipped to point up, as in glyph sources. Quadratic segments
// become qcurve points and cubic segments curve points.
func FromSFNT(f *sfnt.Font, buf *sfnt.Buffer, r rune) (*Glyph, error) {
	if buf == nil {
		buf = new(sfnt.Buffer)
	}
	idx, err := f.GlyphIndex(buf, r)
	if err != nil {
		return nil, fmt.Errorf("outline: glyph index of %U: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("outline: font has no glyph for %U", r)
	}
	name, err := f.GlyphName(buf, idx)
	if err != nil || name == "" {
		name = fmt.Sprintf("uni%04X", r)
	}

	// Loading at one pixel per em unit yields font units in 26.6 fixed point.
	ppem := fixed.I(int(f.UnitsPerEm()))
	segs, err := f.LoadGlyph(buf, idx, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("outline: load glyph for %U: %w", r, err)
	}

	g := NewGlyph(name)
	g.Unicodes = []rune{r}
	var c *Contour
	closeContour := func() {
		if c == nil {
			return
		}
		// The closing segment returns to the first point; fold its end
		// point into it.
		if n := c.Len(); n > 1 {
			first, last := c.points[0], c.points[n-1]
			if last.OnCurve() && first.Same(last) {
				first.Kind = last.Kind
				c.RemovePoint(last)
			}
		}
		if c.Len() > 0 {
			g.AppendContour(c)
		}
		c = nil
	}
	pt := func(p fixed.Point26_6, kind PointKind) *Point {
		return NewPoint(float64(p.X)/64, -float64(p.Y)/64, kind)
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			c = NewContour(pt(seg.Args[0], LineKind))
		case sfnt.SegmentOpLineTo:
			c.InsertPoint(c.Len(), pt(seg.Args[0], LineKind))
		case sfnt.SegmentOpQuadTo:
			c.InsertPoint(c.Len(), pt(seg.Args[0], OffCurveKind))
			c.InsertPoint(c.Len(), pt(seg.Args[1], QCurveKind))
		case sfnt.SegmentOpCubeTo:
			c.InsertPoint(c.Len(), pt(seg.Args[0], OffCurveKind))
			c.InsertPoint(c.Len(), pt(seg.Args[1], OffCurveKind))
			c.InsertPoint(c.Len(), pt(seg.Args[2], CurveKind))
		}
	}
	closeContour()
	return g, nil
}
