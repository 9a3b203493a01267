// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import "strings"

// EnumerateCommon finds every distinct path label of an explicit tree node
// that is at least minLength code units long and appears in at least
// minKeys distinct inserted keys, and calls visitor once per such label with
// the set of values whose keys contain it. Substrings that end partway along
// an edge are not reported, even when they are long and shared enough.
// visitor may return false to stop the traversal early.
//
// EnumerateCommon returns an ArgumentError if minLength or minKeys is not
// positive; it performs no traversal in that case.
func (t *Tree[T]) EnumerateCommon(minLength, minKeys int, visitor func(substring string, values []T) bool) error {
	if minLength <= 0 {
		return &ArgumentError{Field: "minLength", Value: minLength, Reason: "must be positive", err: ErrNonPositiveMinLength}
	}
	if minKeys <= 0 {
		return &ArgumentError{Field: "minKeys", Value: minKeys, Reason: "must be positive", err: ErrNonPositiveMinKeys}
	}

	seen := make(map[string]struct{})
	var label strings.Builder
	t.mine(t.root, &label, minLength, minKeys, seen, visitor)
	return nil
}

// mine performs a depth-first traversal: at each node it first recurses into
// the children, folding their results into the set of values reachable from
// the node (memoized
// per node within this one call, since every node is visited exactly
// once), then emits that set to visitor when it is large and deep enough and
// has not been emitted before under the same label.
// It returns the node's own reachable-value set so the parent can fold it
// into its own, and false if the visitor asked to stop.
func (t *Tree[T]) mine(n *node[T], label *strings.Builder, minLength, minKeys int, seen map[string]struct{}, visitor func(string, []T) bool) ([]T, bool) {
	var reachable []T
	reachable = n.values.appendTo(reachable)

	for _, child := range n.children {
		label.WriteString(child.label.String())
		childValues, ok := t.mine(child, label, minLength, minKeys, seen, visitor)
		prev := label.String()[:label.Len()-child.label.Len()]
		label.Reset()
		label.WriteString(prev)
		if !ok {
			return nil, false
		}
		reachable = appendUnique(reachable, childValues)
	}

	if label.Len() >= minLength && len(reachable) >= minKeys {
		s := label.String()
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			if !visitor(s, reachable) {
				return reachable, false
			}
		}
	}

	return reachable, true
}

// appendUnique appends every element of add not already present in dst.
// Mining trees are shallow enough (bounded by the longest inserted key)
// that an O(n*m) merge is cheaper in practice than building a set per
// call; values bags themselves already dedup via valueBag.
func appendUnique[T comparable](dst, add []T) []T {
	for _, v := range add {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
