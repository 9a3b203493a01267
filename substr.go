// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import "fmt"

// SubString is a zero-copy window over a backing string. It never copies the
// underlying bytes: SubSlice, Extend and Shorten all return new SubString
// values that share the same backing string, only offset and length change.
//
// The zero value is not a valid SubString; use New, NewAt or NewRange.
type SubString struct {
	backing string
	offset  int
	length  int
}

// New returns a SubString spanning the whole of s.
func New(s string) SubString {
	return SubString{backing: s, offset: 0, length: len(s)}
}

// NewAt returns a SubString spanning s[offset:].
func NewAt(s string, offset int) (SubString, error) {
	return NewRange(s, offset, len(s)-offset)
}

// NewRange returns a SubString spanning s[offset : offset+length].
func NewRange(s string, offset, length int) (SubString, error) {
	if offset < 0 {
		return SubString{}, &ArgumentError{Field: "offset", Value: offset, Reason: "must be non-negative"}
	}
	if length < 0 {
		return SubString{}, &ArgumentError{Field: "length", Value: length, Reason: "must be non-negative"}
	}
	if offset+length > len(s) {
		return SubString{}, &ArgumentError{Field: "offset+length", Value: offset + length, Reason: fmt.Sprintf("exceeds backing string length %d", len(s))}
	}
	return SubString{backing: s, offset: offset, length: length}, nil
}

// Len returns the number of bytes in the slice.
func (s SubString) Len() int {
	return s.length
}

// Empty reports whether the slice has zero length.
func (s SubString) Empty() bool {
	return s.length == 0
}

// CharAt returns the byte at position i within the slice. It panics if i is
// out of range: the caller (always internal to this package) is responsible
// for keeping i within [0, Len()).
func (s SubString) CharAt(i int) byte {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("internal error: SubString.CharAt index %d out of range [0,%d)", i, s.length))
	}
	return s.backing[s.offset+i]
}

// String returns the slice contents as a Go string. This performs no copy
// beyond what Go's string-slicing already does internally.
func (s SubString) String() string {
	return s.backing[s.offset : s.offset+s.length]
}

// SubSlice returns the window s[start:end], sharing the same backing string.
func (s SubString) SubSlice(start, end int) (SubString, error) {
	if start < 0 {
		return SubString{}, &ArgumentError{Field: "start", Value: start, Reason: "must be non-negative"}
	}
	if end < start {
		return SubString{}, &ArgumentError{Field: "end", Value: end, Reason: "must not be before start"}
	}
	if end > s.length {
		return SubString{}, &ArgumentError{Field: "end", Value: end, Reason: fmt.Sprintf("exceeds slice length %d", s.length)}
	}
	if start == 0 && end == s.length {
		return s, nil
	}
	return SubString{backing: s.backing, offset: s.offset + start, length: end - start}, nil
}

// Extend returns a SubString one byte longer than s, sharing the same
// backing string, provided the next byte in the backing string equals c.
// This is the contract by which the construction algorithm reasons about
// the active-point string without ever copying it.
func (s SubString) Extend(c byte) (SubString, error) {
	if s.offset+s.length >= len(s.backing) {
		return SubString{}, &ArgumentError{Field: "c", Value: c, Reason: "no next byte in the backing string to extend into"}
	}
	next := s.backing[s.offset+s.length]
	if next != c {
		return SubString{}, &ArgumentError{Field: "c", Value: c, Reason: fmt.Sprintf("backing string's next byte %q does not match", next)}
	}
	return SubString{backing: s.backing, offset: s.offset, length: s.length + 1}, nil
}

// Shorten returns a SubString with its length reduced by k, clamped at zero.
// It panics if k is negative: this is an internal algorithm precondition,
// never triggered by caller input.
func (s SubString) Shorten(k int) SubString {
	if k < 0 {
		panic(fmt.Sprintf("internal error: SubString.Shorten called with negative k=%d", k))
	}
	length := s.length - k
	if length < 0 {
		length = 0
	}
	return SubString{backing: s.backing, offset: s.offset, length: length}
}

// StartsWith reports whether s starts with prefix. If n is provided, only
// the first n bytes of prefix are compared (n must be <= prefix.Len()); this
// lets callers compare a full edge label against only a portion of it
// without slicing first. Two slices that share the same backing string and
// offset are provably equal as prefixes of one another up to the shorter
// length, so that case is fast-pathed.
func (s SubString) StartsWith(prefix SubString, n ...int) bool {
	cmpLen := prefix.length
	if len(n) > 0 {
		cmpLen = n[0]
	}
	if cmpLen > s.length || cmpLen > prefix.length {
		return false
	}
	if s.backing == prefix.backing && s.offset == prefix.offset {
		return true
	}
	for i := 0; i < cmpLen; i++ {
		if s.backing[s.offset+i] != prefix.backing[prefix.offset+i] {
			return false
		}
	}
	return true
}
