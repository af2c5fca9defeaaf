// Package attr implements the point-name attribute format.
//
// Points in a glyph carry their metadata packed into their name as a list of
// single-quoted key/value pairs:
//
//	'penPair':'z1l','dependX':'z2r','stroke':'begin'
//
// An empty name is an empty attribute set. Keys and values are arbitrary
// strings that do not contain a single quote. Whitespace around tokens,
// colons and commas is ignored when decoding; [Encode] never emits any.
//
// Decoding preserves key order so that encoding a decoded set reproduces the
// canonical input. When a key appears more than once, the last value wins
// and the key keeps the position of its first occurrence.
package attr
