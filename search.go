// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

// Search returns every value whose key contains query as a substring. The
// empty query matches nothing (P3). Search runs in time proportional to
// len(query) plus the size of the result, not the size of the index.
func (t *Tree[T]) Search(query string) []T {
	var out []T
	t.SearchFunc(query, func(batch []T) bool {
		out = append(out, batch...)
		return true
	})
	return out
}

// SearchFunc is the streaming variant of Search: sink is invoked one or
// more times with subsets of the result whose union is the full result
// set, and may return false to stop the search early. SearchFunc never
// invokes sink for an empty or non-matching query.
func (t *Tree[T]) SearchFunc(query string, sink func(batch []T) bool) {
	if query == "" {
		return
	}

	current := t.root
	w := New(query)

	for !w.Empty() {
		e := current.getEdge(w.CharAt(0))
		if e == nil {
			return
		}

		n := min(w.Len(), e.label.Len())
		if !e.label.StartsWith(w, n) {
			return
		}

		current = e

		if n == w.Len() {
			current.readValues(dedupSink(sink))
			return
		}

		rest, err := w.SubSlice(n, w.Len())
		if err != nil {
			panic("internal error: SearchFunc's SubSlice failed after a confirmed partial match")
		}
		w = rest
	}
}

// EnumerateAll returns every value stored in the tree, i.e. the union of
// every key's values.
func (t *Tree[T]) EnumerateAll() []T {
	var out []T
	t.EnumerateAllFunc(func(batch []T) bool {
		out = append(out, batch...)
		return true
	})
	return out
}

// EnumerateAllFunc is the streaming variant of EnumerateAll.
func (t *Tree[T]) EnumerateAllFunc(sink func(batch []T) bool) {
	t.root.readValues(dedupSink(sink))
}

// dedupSink wraps a batch sink so that readValues, which visits a node's own
// values and then its descendants' without regard to whether the same value
// was already recorded higher up the tree, reports each value at most once.
// A value legitimately ends up stored at both a node and one of its tree
// descendants: AddRef propagates along suffix links, an entirely different
// chain than parent/child tree edges, so the two recordings don't see each
// other at write time. Deduplication therefore has to happen here, at read
// time, same as the source algorithm's node.getData() folding results into a
// Set instead of a list.
func dedupSink[T comparable](sink func(batch []T) bool) func(T) bool {
	seen := make(map[T]struct{})
	return func(v T) bool {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
		return sink([]T{v})
	}
}
