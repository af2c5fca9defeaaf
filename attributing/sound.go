package attributing

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/Space0726/fwig/hangul"
	"github.com/Space0726/fwig/outline"
)

func firstPoints(g *outline.Glyph) []*outline.Point {
	var out []*outline.Point
	for _, c := range g.Contours() {
		if c.Len() > 0 {
			out = append(out, c.At(0))
		}
	}
	return out
}

// AddSoundAttr records on the first point of every contour which part of a
// syllable the glyph draws. A different existing sound is replaced.
func AddSoundAttr(g *outline.Glyph, sound hangul.Sound) error {
	for _, p := range firstPoints(g) {
		if _, err := p.PutAttr(KeySound, sound.String()); err != nil {
			return err
		}
	}
	return nil
}

// AddCharAttrs tags the first point of every contour with the jamo index
// of the syllable at sound and the syllable's form type.
//
// For jamo drawn as two letters side by side, the contours of a glyph with
// two or four contours are also split into a left and a right half by their
// horizontal center.
func AddCharAttrs(g *outline.Glyph, syl hangul.Syllable, sound hangul.Sound) error {
	char := syl.Index(sound)
	formType := strconv.Itoa(syl.FormType())
	for _, p := range firstPoints(g) {
		if _, err := p.AddAttr(KeyChar, strconv.Itoa(char)); err != nil {
			return err
		}
		if _, err := p.AddAttr(KeyFormType, formType); err != nil {
			return err
		}
	}
	if !hangul.SplitsIntoHalves(sound, char) {
		return nil
	}
	contours := slices.Clone(g.Contours())
	if n := len(contours); n != 2 && n != 4 {
		return nil
	}
	slices.SortStableFunc(contours, func(a, b *outline.Contour) int {
		return cmp.Compare(a.ControlBox().Center().X, b.ControlBox().Center().X)
	})
	for i, c := range contours {
		if c.Len() == 0 {
			continue
		}
		half := "left"
		if i >= len(contours)/2 {
			half = "right"
		}
		if _, err := c.At(0).AddAttr(KeyDouble, half); err != nil {
			return err
		}
	}
	return nil
}
