// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

// Index is the minimal contract a substring index exposes: insertion,
// substring search, full enumeration, and a human-readable summary. Both
// *Tree[T] and *SyncedTree[T] satisfy it, which lets callers compose
// against either an unsynchronized or a lock-guarded implementation
// without depending on the concrete type.
type Index[T comparable] interface {
	Insert(key string, value T)
	Search(query string) []T
	EnumerateAll() []T
	Statistics() string
}

var (
	_ Index[int] = (*Tree[int])(nil)
	_ Index[int] = (*SyncedTree[int])(nil)
)
