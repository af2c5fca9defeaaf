package attributing

import (
	"errors"
	"slices"
	"strconv"

	"github.com/Space0726/fwig/hangul"
	"github.com/Space0726/fwig/outline"
	"github.com/sirupsen/logrus"
)

// insideOther reports whether p lies inside any contour of contours other
// than its own.
func insideOther(p *outline.Point, contours []*outline.Contour) bool {
	for _, c := range contours {
		if c == p.Contour() {
			continue
		}
		if c.PointInside(p.Pt()) {
			return true
		}
	}
	return false
}

// adjacent reports whether the pair's points follow each other in their
// contour, including across the contour's start.
func adjacent(pr Pair) bool {
	c := pr.Left.Contour()
	if c == nil || c != pr.Right.Contour() {
		return false
	}
	d := pr.Left.Index() - pr.Right.Index()
	if d < 0 {
		d = -d
	}
	return d == 1 || d == c.Len()-1
}

func dependent(p *outline.Point) bool {
	return p.HasAttr(KeyDependX) || p.HasAttr(KeyDependY)
}

// untainted reports whether the pair can mark a stroke end: none of its
// points depends on another pair or lies inside a sibling contour.
func untainted(pr Pair, siblings []*outline.Contour) bool {
	for _, p := range []*outline.Point{pr.Left, pr.Right} {
		if dependent(p) || insideOther(p, siblings) {
			return false
		}
	}
	return true
}

// contourPairs returns the adjacent pen pairs of c. A contour with
// incomplete pairs yields an error.
func contourPairs(c *outline.Contour) ([]Pair, error) {
	idx, err := BuildPenPairs(ContourPoints(c), Strict)
	if err != nil {
		return nil, err
	}
	var out []Pair
	for pr := range idx.Pairs() {
		if adjacent(pr) {
			out = append(out, pr)
		}
	}
	return out, nil
}

// strokeGroups splits the contours of g into the groups begin and end are
// chosen in. Jamo drawn as two letters side by side, such as ㄲ, are split
// by their double attribute; every other glyph is a single group.
func strokeGroups(g *outline.Glyph, log logrus.FieldLogger) [][]*outline.Contour {
	contours := g.Contours()
	if len(contours) == 0 || contours[0].Len() == 0 {
		return nil
	}
	rep, err := contours[0].At(0).Attrs()
	if err != nil || !rep.Has(KeyDouble) {
		return [][]*outline.Contour{contours}
	}
	soundName, _ := rep.Get(KeySound)
	charName, _ := rep.Get(KeyChar)
	sound, err1 := hangul.ParseSound(soundName)
	char, err2 := strconv.Atoi(charName)
	if err := errors.Join(err1, err2); err != nil {
		log.WithError(err).Debug("cannot tell jamo of doubled glyph")
		return [][]*outline.Contour{contours}
	}
	if !hangul.SplitsIntoHalves(sound, char) {
		return [][]*outline.Contour{contours}
	}

	var order []string
	byDouble := make(map[string][]*outline.Contour)
	for _, c := range contours {
		if c.Len() == 0 {
			continue
		}
		v, ok, err := c.At(0).GetAttr(KeyDouble)
		if err != nil || !ok {
			continue
		}
		if _, seen := byDouble[v]; !seen {
			order = append(order, v)
		}
		byDouble[v] = append(byDouble[v], c)
	}
	groups := make([][]*outline.Contour, 0, len(order))
	for _, v := range order {
		groups = append(groups, byDouble[v])
	}
	return groups
}

// beginEnd orders two pairs by height.
func beginEnd(a, b Pair) (begin, end Pair) {
	if a.MeanY() > b.MeanY() {
		return a, b
	}
	return b, a
}

// AddStrokeAttr marks the pen pairs where strokes begin and end. Within each
// group of contours, the pen pairs whose points are adjacent, independent
// and not covered by a sibling contour are candidates; when there are
// exactly two, the higher one gets stroke=begin and the lower stroke=end.
//
// Glyphs of doubled jamo are grouped by the double attribute of each
// contour's first point, which relies on the sound and char attributes of
// the glyph's first point.
func AddStrokeAttr(g *outline.Glyph, opts Options) error {
	log := opts.logger().WithField("glyph", g.Name)
	for _, group := range strokeGroups(g, log) {
		var err error
		if opts.PerContour {
			err = strokeContours(group, opts, log)
		} else {
			err = strokeGroup(group, opts, log)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func markStroke(begin, end []Pair) error {
	marks := []struct {
		value string
		pairs []Pair
	}{{"begin", begin}, {"end", end}}
	for _, m := range marks {
		for _, pr := range m.pairs {
			for _, p := range []*outline.Point{pr.Left, pr.Right} {
				if _, err := p.AddAttr(KeyStroke, m.value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func strokeGroup(group []*outline.Contour, opts Options, log logrus.FieldLogger) error {
	var candidates []Pair
	for _, c := range group {
		pairs, err := contourPairs(c)
		if err != nil {
			if opts.Strict {
				return err
			}
			log.WithField("contour", c.Index()).WithError(err).Debug("skipping contour")
			continue
		}
		for _, pr := range pairs {
			if untainted(pr, group) {
				candidates = append(candidates, pr)
			}
		}
	}
	if len(candidates) != 2 {
		return nil
	}
	begin, end := beginEnd(candidates[0], candidates[1])
	return markStroke([]Pair{begin}, []Pair{end})
}

func strokeContours(group []*outline.Contour, opts Options, log logrus.FieldLogger) error {
	var begins, ends []Pair
	for _, c := range group {
		pairs, err := contourPairs(c)
		if err != nil {
			if opts.Strict {
				return err
			}
			log.WithField("contour", c.Index()).WithError(err).Debug("skipping contour")
			continue
		}
		if len(pairs) != 2 {
			continue
		}
		begin, end := beginEnd(pairs[0], pairs[1])
		if untainted(begin, group) {
			begins = append(begins, begin)
		}
		if untainted(end, group) {
			ends = append(ends, end)
		}
	}
	return markStroke(begins, ends)
}

// RoundPoints returns the pen pair points whose corners are drawn round.
//
// For pairs whose points are adjacent, every point not covered by another
// contour is round. For other pairs, each point is probed at four diagonal
// offsets; if one point has a single probe inside the outline and the other
// three, the first one is round.
func RoundPoints(g *outline.Glyph, opts Options) ([]*outline.Point, error) {
	idx, err := BuildPenPairs(GlyphPoints(g), opts.pairMode())
	if err != nil {
		return nil, err
	}
	contours := g.Contours()
	var out []*outline.Point
	for pr := range idx.Pairs() {
		if adjacent(pr) {
			for _, p := range []*outline.Point{pr.Left, pr.Right} {
				if !insideOther(p, contours) {
					out = append(out, p)
				}
			}
			continue
		}
		switch l, r := probeInside(pr.Left, contours), probeInside(pr.Right, contours); {
		case l == 1 && r == 3:
			out = append(out, pr.Left)
		case l == 3 && r == 1:
			out = append(out, pr.Right)
		}
	}
	return out, nil
}

const probeOffset = 2.5

// probeInside counts how many of the four diagonal neighbours of p lie
// inside any contour, p's own included.
func probeInside(p *outline.Point, contours []*outline.Contour) int {
	offsets := [4][2]float64{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
	n := 0
	for _, o := range offsets {
		pt := p.Pt()
		pt.X += o[0] * probeOffset
		pt.Y += o[1] * probeOffset
		if slices.ContainsFunc(contours, func(c *outline.Contour) bool { return c.PointInside(pt) }) {
			n++
		}
	}
	return n
}

// AddRoundAttr tags the points returned by RoundPoints with round=1.
func AddRoundAttr(g *outline.Glyph, opts Options) error {
	pts, err := RoundPoints(g, opts)
	if err != nil {
		return err
	}
	for _, p := range pts {
		if _, err := p.AddAttr(KeyRound, "1"); err != nil {
			return err
		}
	}
	return nil
}
