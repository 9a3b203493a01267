// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

// Package suffixtree implements a generalized suffix tree: an in-memory
// index that, given a set of (key, value) insertions, answers substring-
// containment queries in time proportional to the query length rather
// than the size of the index.
//
// Construction is on-line, following Ukkonen's algorithm extended to
// accept arbitrarily many independent keys: each Insert call extends the
// tree by one key without rebuilding it, and every implicit substring of
// every inserted key carries the set of values whose keys contain it.
//
// A Tree is not safe for concurrent use; see SyncedTree for a lock-guarded
// decorator.
package suffixtree
