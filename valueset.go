// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

// smallSetThreshold is the number of distinct values a node holds as a plain
// slice before switching to a map-backed representation. Most internal
// nodes hold very few distinct values; a handful of high-fan-in nodes (e.g.
// single common characters) reach high cardinality and benefit from O(1)
// membership tests.
const smallSetThreshold = 16

// valueBag is a deduplicating, order-insensitive bag of values, growing
// through distinct representations as its size increases: nil, singleton,
// small slice, map. Equality for deduplication is Go's built-in == on T,
// which gives value equality for value types and reference identity for
// pointer/interface types, resolved by the language rather than a custom
// comparator.
type valueBag[T comparable] struct {
	single T
	slice  []T
	set    map[T]struct{}
	n      int // number of distinct values held; also disambiguates the n==1 cases
}

// contains reports whether v is already present in the bag.
func (b *valueBag[T]) contains(v T) bool {
	switch {
	case b.n == 0:
		return false
	case b.set != nil:
		_, ok := b.set[v]
		return ok
	case b.slice != nil:
		for _, x := range b.slice {
			if x == v {
				return true
			}
		}
		return false
	default:
		return b.n == 1 && b.single == v
	}
}

// add appends v to the bag if not already present, returning true if it was
// newly added.
func (b *valueBag[T]) add(v T) bool {
	if b.contains(v) {
		return false
	}
	switch {
	case b.n == 0:
		b.single = v
	case b.n == 1:
		b.slice = make([]T, 0, 4)
		b.slice = append(b.slice, b.single, v)
	case b.set != nil:
		b.set[v] = struct{}{}
	case b.n < smallSetThreshold:
		b.slice = append(b.slice, v)
	default:
		b.set = make(map[T]struct{}, b.n+1)
		for _, x := range b.slice {
			b.set[x] = struct{}{}
		}
		b.slice = nil
		b.set[v] = struct{}{}
	}
	b.n++
	return true
}

// len returns the number of distinct values held.
func (b *valueBag[T]) len() int {
	return b.n
}

// each calls fn for every distinct value in the bag, in unspecified order.
// Iteration stops early if fn returns false.
func (b *valueBag[T]) each(fn func(T) bool) bool {
	switch {
	case b.n == 0:
		return true
	case b.set != nil:
		for v := range b.set {
			if !fn(v) {
				return false
			}
		}
		return true
	case b.slice != nil:
		for _, v := range b.slice {
			if !fn(v) {
				return false
			}
		}
		return true
	default:
		return fn(b.single)
	}
}

// appendTo appends every distinct value held to dst and returns the result.
func (b *valueBag[T]) appendTo(dst []T) []T {
	b.each(func(v T) bool {
		dst = append(dst, v)
		return true
	})
	return dst
}
