package attr

import (
	"iter"
	"maps"
	"slices"
)

// Set is an ordered mapping from attribute keys to values. The zero value
// is an empty set ready to use.
type Set struct {
	keys []string
	vals map[string]string
}

// Len returns the number of attributes.
func (s *Set) Len() int { return len(s.keys) }

// Get returns the value of key.
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.vals[key]
	return ok
}

// Set changes the value of an existing key. It reports whether the set was
// modified; absent keys are left alone.
func (s *Set) Set(key, value string) bool {
	old, ok := s.vals[key]
	if !ok || old == value {
		return false
	}
	s.vals[key] = value
	return true
}

// Add adds key if it is not present yet. It reports whether the set was
// modified.
func (s *Set) Add(key, value string) bool {
	if s.Has(key) {
		return false
	}
	s.Put(key, value)
	return true
}

// Put sets key to value, appending it if it is new.
func (s *Set) Put(key, value string) {
	if s.vals == nil {
		s.vals = make(map[string]string)
	}
	if _, ok := s.vals[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.vals[key] = value
}

// Delete removes key. It reports whether the key was present.
func (s *Set) Delete(key string) bool {
	if !s.Has(key) {
		return false
	}
	delete(s.vals, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

// Keys returns the keys in order.
func (s *Set) Keys() []string {
	return slices.Clone(s.keys)
}

// All iterates over the attributes in order.
func (s *Set) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.keys {
			if !yield(k, s.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	return &Set{keys: slices.Clone(s.keys), vals: maps.Clone(s.vals)}
}

// Equal reports whether both sets hold the same attributes in the same
// order.
func (s *Set) Equal(o *Set) bool {
	if !slices.Equal(s.keys, o.keys) {
		return false
	}
	for _, k := range s.keys {
		if s.vals[k] != o.vals[k] {
			return false
		}
	}
	return true
}

// String returns the encoded form of s.
func (s *Set) String() string {
	return Encode(s)
}
