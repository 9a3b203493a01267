// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import "sync"

// SyncedTree decorates a Tree with a sync.RWMutex, satisfying Index for
// callers that need external mutual exclusion without hand-rolling it
// themselves: Insert takes the write lock, every read method takes the
// read lock.
//
// The underlying Tree itself carries no locking of its own: SyncedTree is
// an opt-in wrapper, not a change to the core's concurrency model.
type SyncedTree[T comparable] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

// NewSynced wraps a freshly constructed Tree in a SyncedTree.
func NewSynced[T comparable](opts ...Option[T]) *SyncedTree[T] {
	return &SyncedTree[T]{tree: New(opts...)}
}

// Insert acquires the write lock and delegates to the underlying Tree.
func (s *SyncedTree[T]) Insert(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Insert(key, value)
}

// Search acquires the read lock and delegates to the underlying Tree.
func (s *SyncedTree[T]) Search(query string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Search(query)
}

// SearchFunc acquires the read lock for the duration of the streaming
// search, including every sink invocation. sink must not call back into
// the same SyncedTree, or it will deadlock.
func (s *SyncedTree[T]) SearchFunc(query string, sink func(batch []T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.SearchFunc(query, sink)
}

// EnumerateAll acquires the read lock and delegates to the underlying Tree.
func (s *SyncedTree[T]) EnumerateAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.EnumerateAll()
}

// EnumerateCommon acquires the read lock for the duration of the mining
// traversal, including every visitor invocation.
func (s *SyncedTree[T]) EnumerateCommon(minLength, minKeys int, visitor func(substring string, values []T) bool) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.EnumerateCommon(minLength, minKeys, visitor)
}

// Statistics acquires the read lock and delegates to the underlying Tree.
func (s *SyncedTree[T]) Statistics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Statistics()
}
