package attr

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// ErrQuote is returned by [Valid] for keys or values containing a single
// quote, which the format cannot represent.
var ErrQuote = errors.New("attr: single quote in key or value")

// ParseError describes malformed attribute text.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("attr: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

type scanner struct {
	in  string
	pos int
}

func (sc *scanner) errorf(format string, args ...any) error {
	return &ParseError{Input: sc.in, Offset: sc.pos, Msg: fmt.Sprintf(format, args...)}
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.in) {
		switch sc.in[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) expect(c byte) error {
	sc.skipSpace()
	if sc.pos >= len(sc.in) {
		return sc.errorf("expected %q, found end of input", c)
	}
	if sc.in[sc.pos] != c {
		return sc.errorf("expected %q, found %q", c, sc.in[sc.pos])
	}
	sc.pos++
	return nil
}

func (sc *scanner) quoted() (string, error) {
	if err := sc.expect('\''); err != nil {
		return "", err
	}
	start := sc.pos
	end := strings.IndexByte(sc.in[start:], '\'')
	if end < 0 {
		sc.pos = start - 1
		return "", sc.errorf("unterminated string")
	}
	sc.pos = start + end + 1
	return sc.in[start : start+end], nil
}

// Decode parses attribute text. The empty string decodes to an empty set.
func Decode(raw string) (*Set, error) {
	s := &Set{}
	sc := &scanner{in: raw}
	sc.skipSpace()
	if sc.pos == len(raw) {
		return s, nil
	}
	for {
		key, err := sc.quoted()
		if err != nil {
			return nil, err
		}
		if err := sc.expect(':'); err != nil {
			return nil, err
		}
		value, err := sc.quoted()
		if err != nil {
			return nil, err
		}
		s.Put(key, value)

		sc.skipSpace()
		if sc.pos == len(raw) {
			return s, nil
		}
		if err := sc.expect(','); err != nil {
			return nil, err
		}
	}
}

// Encode formats s as attribute text. A nil or empty set encodes to the
// empty string.
func Encode(s *Set) string {
	if s == nil || s.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for k, v := range s.All() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\'')
		b.WriteString(k)
		b.WriteString("':'")
		b.WriteString(v)
		b.WriteByte('\'')
	}
	return b.String()
}

// Valid reports whether str can be used as a key or value.
func Valid(str string) error {
	if strings.IndexByte(str, '\'') >= 0 {
		return fmt.Errorf("%w: %q", ErrQuote, str)
	}
	return nil
}

// DefaultCacheSize is the number of decoded names a [Codec] keeps when
// created with a non-positive size.
const DefaultCacheSize = 1024

// Codec decodes attribute text, memoizing results. It is safe for
// concurrent use. Decoded sets are cloned on the way out, so callers may
// modify them freely.
type Codec struct {
	cache *lru.Cache
}

// NewCodec returns a Codec remembering up to size decoded names.
func NewCodec(size int) *Codec {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &Codec{cache: cache}
}

// Decode is like the package-level [Decode]. Malformed input is not cached.
func (c *Codec) Decode(raw string) (*Set, error) {
	if c == nil {
		return Decode(raw)
	}
	if v, ok := c.cache.Get(raw); ok {
		return v.(*Set).Clone(), nil
	}
	s, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	c.cache.Add(raw, s.Clone())
	return s, nil
}

// Len returns the number of cached entries.
func (c *Codec) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
