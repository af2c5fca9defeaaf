package attributing

import (
	"math"

	"github.com/Space0726/fwig/curve"
	"github.com/Space0726/fwig/outline"
	"github.com/sirupsen/logrus"
)

func pointFields(p *outline.Point) logrus.Fields {
	f := logrus.Fields{"point": p.Index()}
	if c := p.Contour(); c != nil {
		f["contour"] = c.Index()
	}
	return f
}

// between reports whether t lies on the segment from a to b, excluding the
// end points.
func between(a, b, t curve.Point, tol float64) bool {
	if t == a || t == b {
		return false
	}
	return curve.Line{P0: a, P1: b}.Contains(t, tol)
}

// crossing reports whether two pairs run in different directions: their
// slopes are negative reciprocals, or their product is undefined.
func crossing(p, q Pair, tol float64) bool {
	prod := p.Left.Pt().Slope(p.Right.Pt()) * q.Left.Pt().Slope(q.Right.Pt())
	return math.IsNaN(prod) || math.Abs(prod+1) <= tol
}

func findDependTarget(idx *PenPairIndex, pr Pair, tol float64) (*outline.Point, bool) {
	a, b := pr.Left.Pt(), pr.Right.Pt()
	for _, t := range idx.Points() {
		if pr.Has(t) {
			continue
		}
		tp, _ := idx.PairOf(t)
		if tp.ID == pr.ID {
			continue
		}
		if between(a, b, t.Pt(), tol) && crossing(pr, tp, tol) {
			return t, true
		}
	}
	return nil, false
}

// AddDependAttr tags pen pairs that lie across another pen pair's stroke
// with dependX or dependY, naming the pen pair they depend on. The axis is
// the one on which the pair's points are aligned.
//
// Points whose names cannot be read are skipped.
func AddDependAttr(g *outline.Glyph, opts Options) error {
	log := opts.logger().WithField("glyph", g.Name)
	tol := opts.tolerance()
	idx, err := BuildPenPairs(GlyphPoints(g), Lenient)
	if err != nil {
		return err
	}
	for _, c := range g.Contours() {
		for i, cur := range c.Points() {
			prev := c.At(i - 1)
			pr, ok := idx.PairOf(cur)
			if !ok || prev == cur || !pr.Has(prev) {
				continue
			}
			target, ok := findDependTarget(idx, pr, tol)
			if !ok {
				continue
			}
			var key string
			switch {
			case math.Abs(cur.X-prev.X) < DependThreshold:
				key = KeyDependX
			case math.Abs(cur.Y-prev.Y) < DependThreshold:
				key = KeyDependY
			default:
				continue
			}
			value, _, err := target.GetAttr(KeyPenPair)
			if err != nil {
				log.WithFields(pointFields(target)).WithError(err).Debug("skipping dependency target")
				continue
			}
			for _, p := range []*outline.Point{cur, prev} {
				if _, err := p.AddAttr(key, value); err != nil {
					log.WithFields(pointFields(p)).WithError(err).Debug("skipping point")
				}
			}
		}
	}
	return nil
}
