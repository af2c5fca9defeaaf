package outline

import (
	"fmt"

	"github.com/Space0726/fwig/curve"
)

// PointKind is the segment type of a point, spelled as in UFO glyph files.
type PointKind int

const (
	// LineKind ends a straight segment.
	LineKind PointKind = iota + 1
	// CurveKind ends a cubic segment preceded by two off-curve points.
	CurveKind
	// QCurveKind ends a quadratic spline.
	QCurveKind
	// OffCurveKind is a control point.
	OffCurveKind
)

func (k PointKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case CurveKind:
		return "curve"
	case QCurveKind:
		return "qcurve"
	case OffCurveKind:
		return "offcurve"
	default:
		return fmt.Sprintf("PointKind(%d)", int(k))
	}
}

// OnCurve reports whether points of this kind lie on the outline.
func (k PointKind) OnCurve() bool {
	switch k {
	case LineKind, CurveKind, QCurveKind:
		return true
	case OffCurveKind:
		return false
	default:
		panic(fmt.Sprintf("invalid point kind %d", int(k)))
	}
}

// ParsePointKind parses the UFO spelling of a point type.
func ParsePointKind(s string) (PointKind, error) {
	switch s {
	case "line":
		return LineKind, nil
	case "curve":
		return CurveKind, nil
	case "qcurve":
		return QCurveKind, nil
	case "offcurve", "":
		return OffCurveKind, nil
	default:
		return 0, fmt.Errorf("outline: unknown point type %q", s)
	}
}

// Point is a point of a contour. Name holds the point's attributes in the
// format of package attr; use the attribute methods to modify it so that
// the glyph gets notified.
type Point struct {
	X, Y   float64
	Kind   PointKind
	Smooth bool
	Name   string

	contour *Contour
}

// NewPoint returns a detached point.
func NewPoint(x, y float64, kind PointKind) *Point {
	return &Point{X: x, Y: y, Kind: kind}
}

// Pt returns the position of p.
func (p *Point) Pt() curve.Point {
	return curve.Pt(p.X, p.Y)
}

// Move sets the position of p.
func (p *Point) Move(pt curve.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// Round rounds the position to integers.
func (p *Point) Round() {
	p.Move(p.Pt().Round())
}

func (p *Point) OnCurve() bool {
	return p.Kind.OnCurve()
}

// Contour returns the contour p belongs to, or nil.
func (p *Point) Contour() *Contour {
	return p.contour
}

// Glyph returns the glyph p belongs to, or nil.
func (p *Point) Glyph() *Glyph {
	if p.contour == nil {
		return nil
	}
	return p.contour.glyph
}

// Index returns the position of p within its contour, or -1 for detached
// points.
func (p *Point) Index() int {
	if p.contour == nil {
		return -1
	}
	for i, q := range p.contour.points {
		if q == p {
			return i
		}
	}
	return -1
}

// Same reports whether p and o have identical coordinates.
func (p *Point) Same(o *Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p *Point) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%s(%g, %g)", p.Kind, p.X, p.Y)
	}
	return fmt.Sprintf("%s(%g, %g) %s", p.Kind, p.X, p.Y, p.Name)
}
