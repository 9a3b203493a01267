// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import (
	"fmt"
	"strings"
)

// Statistics returns a human-readable summary of the tree's current shape:
// node and leaf counts, the number of distinct values stored, and the
// deepest root-to-leaf path. Its exact format is unspecified and may
// change between releases; it exists for debugging and ad-hoc inspection,
// not for parsing.
func (t *Tree[T]) Statistics() string {
	nodes, leaves, maxDepth := t.nodeAndLeafCount()
	distinct := len(t.EnumerateAll())

	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes=%d leaves=%d maxDepth=%d distinctValues=%d", nodes, leaves, maxDepth, distinct)
	return sb.String()
}

// nodeAndLeafCount walks the tree once, counting every node (the root and
// the leaves included) and, separately, the leaves, and tracking the
// deepest path in code units.
func (t *Tree[T]) nodeAndLeafCount() (nodes, leaves, maxDepth int) {
	var walk func(n *node[T], depth int)
	walk = func(n *node[T], depth int) {
		nodes++
		if depth > maxDepth {
			maxDepth = depth
		}
		if n.isLeaf() && !n.isRoot {
			leaves++
		}
		for _, c := range n.children {
			walk(c, depth+c.label.Len())
		}
	}
	walk(t.root, 0)
	return
}
