// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_GetEdge_AddEdge(t *testing.T) {
	n := newLeaf[int](New(""))
	assert.Nil(t, n.getEdge('a'))

	child := newLeaf[int](New("abc"))
	n.addEdge(child)
	assert.Same(t, child, n.getEdge('a'))
	assert.Nil(t, n.getEdge('b'))

	other := newLeaf[int](New("xyz"))
	n.addEdge(other)
	assert.Same(t, other, n.getEdge('x'))
	assert.Same(t, child, n.getEdge('a'))
}

func TestNode_AddEdge_DuplicateFirstByte_Panics(t *testing.T) {
	n := newLeaf[int](New(""))
	n.addEdge(newLeaf[int](New("abc")))
	assert.Panics(t, func() {
		n.addEdge(newLeaf[int](New("aXY")))
	})
}

func TestNode_AddEdge_KeepsChildKeysSorted(t *testing.T) {
	n := newLeaf[int](New(""))
	for _, s := range []string{"z", "a", "m", "b"} {
		n.addEdge(newLeaf[int](New(s)))
	}
	require.Len(t, n.childKeys, 4)
	for i := 1; i < len(n.childKeys); i++ {
		assert.Less(t, n.childKeys[i-1], n.childKeys[i])
	}
}

func TestNode_GetEdge_LinearAndBinaryAgree(t *testing.T) {
	n := newLeaf[int](New(""))
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789"
	for i := 0; i < len(alphabet); i++ {
		n.addEdge(newLeaf[int](New(string(alphabet[i]))))
	}
	require.Greater(t, len(n.childKeys), smallFanoutThreshold)
	for i := 0; i < len(alphabet); i++ {
		got := n.getEdge(alphabet[i])
		require.NotNil(t, got)
		assert.Equal(t, string(alphabet[i]), got.label.String())
	}
	assert.Nil(t, n.getEdge('!'))
}

func TestNode_UpdateEdge(t *testing.T) {
	n := newLeaf[int](New(""))
	original := newLeaf[int](New("abc"))
	n.addEdge(original)

	replacement := newLeaf[int](New("a"))
	n.updateEdge(replacement)
	assert.Same(t, replacement, n.getEdge('a'))
}

func TestNode_UpdateEdge_MissingPanics(t *testing.T) {
	n := newLeaf[int](New(""))
	assert.Panics(t, func() {
		n.updateEdge(newLeaf[int](New("a")))
	})
}

func TestNode_RootAbsorbsValues(t *testing.T) {
	root := newRoot[int]()
	assert.True(t, root.Contains(42), "root is the conceptual universe")
	root.AddRef(42)
	assert.Equal(t, 0, root.values.len(), "AddRef on root is a no-op")
}

func TestNode_AddRef_PropagatesAlongSuffixLinks(t *testing.T) {
	grandparent := newLeaf[int](New("a"))
	parent := newLeaf[int](New("ca"))
	leaf := newLeaf[int](New("aca"))
	leaf.suffixLink = parent
	parent.suffixLink = grandparent
	grandparent.suffixLink = newRoot[int]()

	leaf.AddRef(7)

	assert.True(t, leaf.Contains(7))
	assert.True(t, parent.Contains(7))
	assert.True(t, grandparent.Contains(7))
}

func TestNode_AddRef_StopsAtNodeAlreadyContaining(t *testing.T) {
	grandparent := newLeaf[int](New("a"))
	parent := newLeaf[int](New("ca"))
	leaf := newLeaf[int](New("aca"))
	leaf.suffixLink = parent
	parent.suffixLink = grandparent

	parent.values.add(7) // pre-populate parent only
	leaf.AddRef(7)

	assert.True(t, leaf.Contains(7))
	assert.True(t, parent.Contains(7))
	// grandparent was never visited because parent already contained 7.
	assert.False(t, grandparent.Contains(7))
}

func TestNode_AddRef_Idempotent(t *testing.T) {
	n := newLeaf[int](New("a"))
	n.AddRef(1)
	n.AddRef(1)
	n.AddRef(1)
	assert.Equal(t, 1, n.values.len())
}

func TestNode_ReadValues_CollectsDescendants(t *testing.T) {
	root := newLeaf[int](New(""))
	child := newLeaf[int](New("a"))
	grandchild := newLeaf[int](New("b"))
	root.addEdge(child)
	child.addEdge(grandchild)

	root.values.add(1)
	child.values.add(2)
	grandchild.values.add(3)

	var got []int
	root.readValues(func(v int) bool {
		got = append(got, v)
		return true
	})

	assertSameInts(t, []int{1, 2, 3}, got)
}

func TestNode_ReadValues_StopsEarly(t *testing.T) {
	root := newLeaf[int](New(""))
	child := newLeaf[int](New("a"))
	root.addEdge(child)
	root.values.add(1)
	child.values.add(2)

	var got []int
	root.readValues(func(v int) bool {
		got = append(got, v)
		return false
	})
	assert.Len(t, got, 1)
}

func assertSameInts(t *testing.T, want, got []int) {
	t.Helper()
	assert.ElementsMatch(t, want, got)
}
