// Package hangul decomposes precomposed Hangul syllables into their jamo
// and classifies them the way the stroke tagging tools need.
package hangul

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrNotHangul is returned for runes outside of the precomposed Hangul
// syllable block (U+AC00 through U+D7A3).
var ErrNotHangul = errors.New("hangul: not a precomposed syllable")

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3

	choseongBase  = 0x1100
	jungseongBase = 0x1161
	// Jongseong index 0 means "no final", so the base is one below the
	// first final jamo U+11A8.
	jongseongBase = 0x11A7
)

// Syllable holds the jamo indices of a precomposed syllable. Final is 0 for
// syllables without a final consonant.
type Syllable struct {
	Rune   rune
	First  int
	Middle int
	Final  int
}

// Decompose splits r into its jamo using canonical decomposition.
func Decompose(r rune) (Syllable, error) {
	if r < syllableBase || r > syllableLast {
		return Syllable{}, fmt.Errorf("%w: %U", ErrNotHangul, r)
	}
	s := Syllable{Rune: r}
	for i, j := range []rune(norm.NFD.String(string(r))) {
		switch i {
		case 0:
			s.First = int(j - choseongBase)
		case 1:
			s.Middle = int(j - jungseongBase)
		case 2:
			s.Final = int(j - jongseongBase)
		}
	}
	return s, nil
}

// Index returns the jamo index for the given sound.
func (s Syllable) Index(sound Sound) int {
	switch sound {
	case First:
		return s.First
	case Middle:
		return s.Middle
	case Final:
		return s.Final
	default:
		panic(fmt.Sprintf("invalid sound %d", sound))
	}
}

var (
	firstJamo = []string{
		"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ", "ㅆ",
		"ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
	middleJamo = []string{
		"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ", "ㅙ",
		"ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
	}
	// Consonant clusters are spelled as their two letters.
	finalJamo = []string{
		"", "ㄱ", "ㄲ", "ㄱㅅ", "ㄴ", "ㄴㅈ", "ㄴㅎ", "ㄷ", "ㄹ", "ㄹㄱ",
		"ㄹㅁ", "ㄹㅂ", "ㄹㅅ", "ㄹㅌ", "ㄹㅍ", "ㄹㅎ", "ㅁ", "ㅂ", "ㅂㅅ",
		"ㅅ", "ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
)

// Jamo returns the compatibility jamo of the syllable. final is empty when
// the syllable has no final consonant.
func (s Syllable) Jamo() (first, middle, final string) {
	return firstJamo[s.First], middleJamo[s.Middle], finalJamo[s.Final]
}

// JamoOf returns the jamo of one sound.
func (s Syllable) JamoOf(sound Sound) string {
	first, middle, final := s.Jamo()
	switch sound {
	case First:
		return first
	case Middle:
		return middle
	case Final:
		return final
	default:
		panic(fmt.Sprintf("invalid sound %d", sound))
	}
}

func (s Syllable) String() string {
	first, middle, final := s.Jamo()
	if final == "" {
		return fmt.Sprintf("%X: %s + %s", s.Rune, first, middle)
	}
	return fmt.Sprintf("%X: %s + %s + %s", s.Rune, first, middle, final)
}

type vowelShape int

const (
	vertical vowelShape = iota + 1
	horizontal
	compound
)

func (s Syllable) vowelShape() vowelShape {
	switch s.Middle {
	case 0, 1, 2, 3, 4, 5, 6, 7, 20:
		return vertical
	case 8, 12, 13, 17, 18:
		return horizontal
	case 9, 10, 11, 14, 15, 16, 19:
		return compound
	default:
		panic("unreachable")
	}
}

// FormType returns the layout class of the syllable, from 1 to 6. Odd
// types have no final consonant; 1/2 have a vertical vowel, 3/4 a
// horizontal vowel and 5/6 a compound vowel.
func (s Syllable) FormType() int {
	t := 2*int(s.vowelShape()) - 1
	if s.Final != 0 {
		t++
	}
	return t
}

// Sound is the position of a jamo within a syllable.
type Sound int

const (
	First Sound = iota + 1
	Middle
	Final
)

func (s Sound) String() string {
	switch s {
	case First:
		return "first"
	case Middle:
		return "middle"
	case Final:
		return "final"
	default:
		return fmt.Sprintf("Sound(%d)", int(s))
	}
}

// ParseSound parses the attribute spelling of a sound.
func ParseSound(s string) (Sound, error) {
	switch s {
	case "first":
		return First, nil
	case "middle":
		return Middle, nil
	case "final":
		return Final, nil
	default:
		return 0, fmt.Errorf("hangul: unknown sound %q", s)
	}
}

// SplitsIntoHalves reports whether the jamo with the given index is drawn as
// two separate letters side by side, such as ㄲ or the cluster ㄹㄱ.
func SplitsIntoHalves(sound Sound, index int) bool {
	switch sound {
	case First:
		// ㄲ, ㄸ
		return index == 1 || index == 4
	case Final:
		switch index {
		case 2, 3, 5, 6, 9, 10, 11, 12, 13, 14, 15, 18:
			return true
		}
		return false
	default:
		return false
	}
}
