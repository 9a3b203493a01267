// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

// Package slicesutil holds small slice comparison helpers shared by this
// module's tests, where search and enumeration results are sets with no
// observable order.
package slicesutil

// EqualUnsorted reports whether two slices contain the same elements,
// regardless of order. Duplicates are accounted for: [1, 1, 2] is not
// equal to [1, 2, 2]. Returns true if both slices are empty.
//
// Runs in O(n²) time, but the slices under test are the result sets of a
// single Search/EnumerateCommon call and stay small in practice. A
// hash-based O(n) approach was considered, but for small slices the cost
// of populating a map outweighs the quadratic comparison cost.
func EqualUnsorted[S ~[]E, E comparable](s1, s2 S) bool {
	if len(s1) != len(s2) {
		return false
	}

	matched := make([]bool, len(s2))

outer:
	for _, a := range s1 {
		for i, b := range s2 {
			if !matched[i] && a == b {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
