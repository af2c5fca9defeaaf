package attributing

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Space0726/fwig/outline"
)

// ErrNoPenPairs is returned when a glyph has no pen pair attributes.
var ErrNoPenPairs = errors.New("attributing: no pen pairs")

func penPairNumbers(points []*outline.Point) ([]int, error) {
	var out []int
	for _, p := range points {
		v, ok, err := p.GetAttr(KeyPenPair)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		id, _, err := ParsePenPair(v)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, &PairError{Value: v}
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, ErrNoPenPairs
	}
	return out, nil
}

// MaxPenPair returns the highest pen pair number among the on-curve points
// of g.
func MaxPenPair(g *outline.Glyph) (int, error) {
	ns, err := penPairNumbers(GlyphPoints(g))
	if err != nil {
		return 0, err
	}
	return slices.Max(ns), nil
}

// MinPenPair returns the lowest pen pair number among the on-curve points
// of g.
func MinPenPair(g *outline.Glyph) (int, error) {
	ns, err := penPairNumbers(GlyphPoints(g))
	if err != nil {
		return 0, err
	}
	return slices.Min(ns), nil
}

// ReorderPenPairs adds padding to the number of every pen pair valued
// attribute named by keys, penPair if none are given. Points lacking a key
// are left alone. All values are checked before any point is modified.
func ReorderPenPairs(g *outline.Glyph, padding int, keys ...string) error {
	if padding == 0 {
		return nil
	}
	if len(keys) == 0 {
		keys = []string{KeyPenPair}
	}
	type update struct {
		p          *outline.Point
		key, value string
	}
	var updates []update
	for _, p := range GlyphPoints(g) {
		for _, key := range keys {
			v, ok, err := p.GetAttr(key)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			id, side, err := ParsePenPair(v)
			if err != nil {
				return fmt.Errorf("%s of point %d: %w", key, p.Index(), err)
			}
			n, err := strconv.Atoi(id)
			if err != nil {
				return fmt.Errorf("%s of point %d: %w", key, p.Index(), &PairError{Value: v})
			}
			updates = append(updates, update{p, key, FormatPenPair(n+padding, side)})
		}
	}
	for _, u := range updates {
		if _, err := u.p.SetAttr(u.key, u.value); err != nil {
			return err
		}
	}
	return nil
}
