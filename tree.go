// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import (
	"io"
	"log/slog"
)

// Tree is a generalized suffix tree over value type T. It supports
// on-line construction via Insert and answers substring-containment
// queries in time proportional to the query length, not the size of the
// index.
//
// Tree is not safe for concurrent use: Insert must run serially with
// respect to every other method. Callers needing external synchronization
// can wrap a Tree in a SyncedTree (see concurrent.go).
type Tree[T comparable] struct {
	root *node[T]
	log  *slog.Logger

	// activeLeaf is the transient cursor used during a single Insert call
	// to link newly created leaves along suffix links as they are
	// discovered. It is reset to root at the start of every Insert and
	// meaningless between calls.
	activeLeaf *node[T]
}

// New constructs an empty generalized suffix tree over value type T.
func New[T comparable](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		root: newRoot[T](),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt.apply(t)
	}
	t.activeLeaf = t.root
	return t
}

// Insert adds key/value to the tree, extending the on-line construction by
// one key. Re-inserting the same (key, value) pair performs the same
// structural work as any insertion but leaves the externally observable
// result set unchanged, since AddRef is idempotent per node (see node.go).
//
// Insert is the only mutator; it must not run concurrently with itself or
// with any read method on the same Tree.
func (t *Tree[T]) Insert(key string, value T) {
	t.log.Debug("insert", "key", key)
	t.activeLeaf = t.root

	s := t.root
	text := New(key).Shorten(len(key)) // slice(key, 0, 0): empty window at offset 0

	for i := 0; i < len(key); i++ {
		rest, err := NewAt(key, i)
		if err != nil {
			panic("internal error: NewAt failed on a valid in-range offset during Insert")
		}
		s, text = t.update(s, text, key[i], rest, value)
	}

	if t.activeLeaf != t.root && t.activeLeaf != s && t.activeLeaf.suffixLink == nil {
		t.activeLeaf.suffixLink = s
	}
}

// update is the inner loop of Ukkonen's algorithm, extended to propagate
// value through testAndSplit/AddRef instead of merely inserting a single
// string.
func (t *Tree[T]) update(s *node[T], text SubString, c byte, rest SubString, value T) (*node[T], SubString) {
	k, err := text.Extend(c)
	if err != nil {
		panic("internal error: update's text.Extend(c) precondition violated")
	}
	oldRoot := t.root

	endpoint, r := t.testAndSplit(s, text, c, rest, value)

	for !endpoint {
		var leaf *node[T]
		if tmp := r.getEdge(c); tmp != nil {
			// A descendant already exists here, populated by an earlier,
			// independent key insertion -- this is the genuine departure
			// from single-string Ukkonen that makes the algorithm
			// "generalized".
			leaf = tmp
		} else {
			leaf = newLeaf[T](rest)
			leaf.AddRef(value)
			r.addEdge(leaf)
		}

		if t.activeLeaf != t.root {
			t.activeLeaf.suffixLink = leaf
		}
		t.activeLeaf = leaf

		if oldRoot != t.root {
			oldRoot.suffixLink = r
		}
		oldRoot = r

		if s.suffixLink == nil {
			// s is the root: move past the special "bottom" state by
			// dropping the first code unit of k instead of following a
			// suffix link.
			k = t.dropFirst(k)
			s = t.root
		} else {
			last := k.CharAt(k.Len() - 1)
			var sub SubString
			s, sub = t.canonize(s.suffixLink, k.Shorten(1))
			extended, err := sub.Extend(last)
			if err != nil {
				panic("internal error: canonized suffix failed to extend by k's last code unit")
			}
			k = extended
		}

		endpoint, r = t.testAndSplit(s, k.Shorten(1), c, rest, value)
	}

	if oldRoot != t.root {
		oldRoot.suffixLink = r
	}

	return t.canonize(s, k)
}

// dropFirst returns k with its first code unit removed, keeping the same
// trailing boundary, by re-slicing from the backing string. k.Shorten only
// trims from the tail, so advancing "past" a code unit at the front
// requires re-deriving the window from k's own offset+1.
func (t *Tree[T]) dropFirst(k SubString) SubString {
	if k.Len() == 0 {
		return k
	}
	out, err := k.SubSlice(1, k.Len())
	if err != nil {
		panic("internal error: k.SubSlice(1, Len) failed on a non-empty SubString")
	}
	return out
}

// testAndSplit implements Ukkonen's endpoint test, extended to call AddRef
// when the suffix already exists in the tree (that is how value
// propagation is kicked off for suffixes that were created by an earlier
// key).
func (t *Tree[T]) testAndSplit(s *node[T], search SubString, c byte, rest SubString, value T) (endpoint bool, r *node[T]) {
	sPrime, searchPrime := t.canonize(s, search)

	if !searchPrime.Empty() {
		g := sPrime.getEdge(searchPrime.CharAt(0))
		if g == nil {
			panic("internal error: testAndSplit Case A reached with no edge for the canonized search string")
		}
		if g.label.CharAt(searchPrime.Len()) == c {
			return true, sPrime
		}
		return false, t.splitEdge(sPrime, g, searchPrime.Len())
	}

	e := sPrime.getEdge(rest.CharAt(0))
	if e == nil {
		return false, sPrime
	}
	if e.label.StartsWith(rest) {
		if e.label.Len() == rest.Len() {
			e.AddRef(value)
			return true, sPrime
		}
		rPrime := t.splitEdge(sPrime, e, rest.Len())
		rPrime.AddRef(value)
		return false, sPrime
	}
	return true, sPrime
}

// canonize walks the active point down the tree until no proper edge label
// is fully consumed by input, returning the fixpoint (s', remainder).
func (t *Tree[T]) canonize(s *node[T], input SubString) (*node[T], SubString) {
	if input.Empty() {
		return s, input
	}
	for {
		e := s.getEdge(input.CharAt(0))
		if e == nil || !input.StartsWith(e.label, min(input.Len(), e.label.Len())) || input.Len() < e.label.Len() {
			return s, input
		}
		var err error
		input, err = input.SubSlice(e.label.Len(), input.Len())
		if err != nil {
			panic("internal error: canonize's SubSlice failed after confirming the edge label fully fits")
		}
		s = e
		if input.Empty() {
			return s, input
		}
	}
}

// splitEdge splits the edge from parent to edge.dest at offset
// firstPartLength code units, inserting a new intermediate node. It
// returns the new intermediate node. Preconditions (edge is reachable from
// parent by its first code unit, and firstPartLength is a strict prefix of
// the full label) are asserted with a panic, never a recoverable error:
// a violation here means the construction algorithm itself is broken.
func (t *Tree[T]) splitEdge(parent *node[T], edge *node[T], firstPartLength int) *node[T] {
	if firstPartLength >= edge.label.Len() {
		panic("internal error: splitEdge called with firstPartLength not a strict prefix of the edge label")
	}
	if parent.getEdge(edge.label.CharAt(0)) != edge {
		panic("internal error: splitEdge called with an edge that is not reachable from parent")
	}
	first, err := edge.label.SubSlice(0, firstPartLength)
	if err != nil {
		panic("internal error: splitEdge failed to slice the first part of the label")
	}
	second, err := edge.label.SubSlice(firstPartLength, edge.label.Len())
	if err != nil {
		panic("internal error: splitEdge failed to slice the second part of the label")
	}

	t.log.Debug("split edge", "label", edge.label.String(), "at", firstPartLength)

	intermediate := newLeaf[T](first)
	parent.updateEdge(intermediate)

	edge.label = second
	intermediate.addEdge(edge)

	return intermediate
}
