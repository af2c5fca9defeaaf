// Package outline is the in-memory glyph model the attribute tools operate
// on: glyphs made of closed contours made of points.
//
// Points keep a back reference to their contour and contours to their
// glyph, so that any change to a point's attributes can notify the glyph's
// [Notifier]. Glyphs are not safe for concurrent use.
package outline

import (
	"iter"
	"slices"

	"github.com/Space0726/fwig/attr"
)

// Notifier is informed whenever a glyph has been modified.
type Notifier interface {
	GlyphChanged(g *Glyph)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(g *Glyph)

func (f NotifierFunc) GlyphChanged(g *Glyph) { f(g) }

// Glyph is the outline of one character: an ordered list of contours.
type Glyph struct {
	Name     string
	Unicodes []rune
	// Notifier, if not nil, is called by SetChanged.
	Notifier Notifier
	// Codec, if not nil, is used to decode point names.
	Codec *attr.Codec

	contours []*Contour
	changes  int
}

// NewGlyph returns a glyph owning contours.
func NewGlyph(name string, contours ...*Contour) *Glyph {
	g := &Glyph{Name: name}
	for _, c := range contours {
		g.AppendContour(c)
	}
	return g
}

// Contours returns the contours of g. The slice must not be modified.
func (g *Glyph) Contours() []*Contour { return g.contours }

// AppendContour adds c to g.
func (g *Glyph) AppendContour(c *Contour) {
	c.glyph = g
	g.contours = append(g.contours, c)
}

// RemoveContour removes c from g. It reports whether c was part of g.
func (g *Glyph) RemoveContour(c *Contour) bool {
	i := slices.Index(g.contours, c)
	if i < 0 {
		return false
	}
	g.contours = slices.Delete(g.contours, i, i+1)
	c.glyph = nil
	return true
}

// Points iterates over the points of all contours in order.
func (g *Glyph) Points() iter.Seq[*Point] {
	return func(yield func(*Point) bool) {
		for _, c := range g.contours {
			for _, p := range c.points {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// OnCurvePoints returns the on-curve points of all contours in order.
func (g *Glyph) OnCurvePoints() []*Point {
	var out []*Point
	for p := range g.Points() {
		if p.OnCurve() {
			out = append(out, p)
		}
	}
	return out
}

// SetChanged records a modification and informs the notifier.
func (g *Glyph) SetChanged() {
	g.changes++
	if g.Notifier != nil {
		g.Notifier.GlyphChanged(g)
	}
}

// Changes returns the number of recorded modifications.
func (g *Glyph) Changes() int { return g.changes }

// Round rounds all point coordinates to integers.
func (g *Glyph) Round() {
	for _, c := range g.contours {
		c.Round()
	}
}
