package outline

import (
	"fmt"

	"github.com/Space0726/fwig/attr"
)

func (p *Point) codec() *attr.Codec {
	if g := p.Glyph(); g != nil {
		return g.Codec
	}
	return nil
}

// Attrs decodes the attributes of p. The returned set is a copy.
func (p *Point) Attrs() (*attr.Set, error) {
	s, err := p.codec().Decode(p.Name)
	if err != nil {
		return nil, fmt.Errorf("point %v: %w", p.Pt(), err)
	}
	return s, nil
}

// GetAttr returns the value of the attribute key.
func (p *Point) GetAttr(key string) (string, bool, error) {
	s, err := p.Attrs()
	if err != nil {
		return "", false, err
	}
	v, ok := s.Get(key)
	return v, ok, nil
}

// HasAttr reports whether p carries the attribute key. Malformed names
// carry no attributes.
func (p *Point) HasAttr(key string) bool {
	_, ok, err := p.GetAttr(key)
	return err == nil && ok
}

// SetAttr changes the value of an existing attribute. It reports whether
// the point changed; absent keys are left alone.
func (p *Point) SetAttr(key, value string) (bool, error) {
	return p.updateAttrs(key, value, (*attr.Set).Set)
}

// AddAttr adds an attribute unless the key is already present. It reports
// whether the point changed.
func (p *Point) AddAttr(key, value string) (bool, error) {
	return p.updateAttrs(key, value, (*attr.Set).Add)
}

// PutAttr sets an attribute, adding it if necessary. It reports whether the
// point changed.
func (p *Point) PutAttr(key, value string) (bool, error) {
	return p.updateAttrs(key, value, func(s *attr.Set, key, value string) bool {
		if old, ok := s.Get(key); ok && old == value {
			return false
		}
		s.Put(key, value)
		return true
	})
}

// DelAttr removes an attribute. It reports whether the point changed.
func (p *Point) DelAttr(key string) (bool, error) {
	s, err := p.Attrs()
	if err != nil {
		return false, err
	}
	if !s.Delete(key) {
		return false, nil
	}
	p.commitAttrs(s)
	return true, nil
}

func (p *Point) updateAttrs(key, value string, update func(s *attr.Set, key, value string) bool) (bool, error) {
	if err := attr.Valid(key); err != nil {
		return false, err
	}
	if err := attr.Valid(value); err != nil {
		return false, err
	}
	s, err := p.Attrs()
	if err != nil {
		return false, err
	}
	if !update(s, key, value) {
		return false, nil
	}
	p.commitAttrs(s)
	return true, nil
}

// commitAttrs stores s in the point's name and then notifies the glyph.
func (p *Point) commitAttrs(s *attr.Set) {
	p.Name = attr.Encode(s)
	if g := p.Glyph(); g != nil {
		g.SetChanged()
	}
}
