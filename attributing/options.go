// Package attributing derives stroke attributes from glyph geometry and
// writes them into point names: pen pair dependencies, stroke begin and
// end, round corners, serifs, element and sound tags.
//
// Every classifier only adds attributes that are not present yet, so
// running it again on an attributed glyph changes nothing.
package attributing

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Attribute keys written and read by this package.
const (
	KeyPenPair  = "penPair"
	KeyDependX  = "dependX"
	KeyDependY  = "dependY"
	KeyStroke   = "stroke"
	KeyRound    = "round"
	KeySerif    = "serif"
	KeyElem     = "elem"
	KeySound    = "sound"
	KeyChar     = "char"
	KeyFormType = "formType"
	KeyDouble   = "double"
)

// DependThreshold is the coordinate difference below which the two points
// of a pen pair are considered aligned on that axis.
const DependThreshold = 5

// DefaultTolerance is used for geometric comparisons when
// [Options.Tolerance] is zero.
const DefaultTolerance = 1e-9

// Options configures the classifiers. The zero value is ready to use.
type Options struct {
	// Strict makes incomplete pen pairs an error instead of a reason to
	// skip the contour.
	Strict bool
	// PerContour makes AddStrokeAttr pick begin and end within each
	// contour instead of across the glyph.
	PerContour bool
	// Tolerance for collinearity and distance comparisons.
	Tolerance float64
	// Logger receives debug messages about skipped points and contours.
	Logger logrus.FieldLogger
}

func (o Options) tolerance() float64 {
	if o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func (o Options) pairMode() PairMode {
	if o.Strict {
		return Strict
	}
	return Lenient
}

// TriangleOptions configures MakeTriangle. The zero value adds pen pairs
// and alternates their sides.
type TriangleOptions struct {
	// SkipPenPair leaves the names of the moved points alone.
	SkipPenPair bool
	// NoTwist gives every new pair the same left/right assignment instead
	// of alternating it.
	NoTwist bool
	Options
}
