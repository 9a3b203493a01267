// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by EnumerateCommon. Wrapped by ArgumentError so
// callers can still match with errors.Is.
var (
	ErrNonPositiveMinLength = errors.New("min length must be positive")
	ErrNonPositiveMinKeys   = errors.New("min keys must be positive")
)

// ArgumentError reports a caller-observable, recoverable precondition
// failure. It leaves the tree unmodified. ArgumentError is returned by
// SubString construction, Extend, and EnumerateCommon; it is never used for
// internal invariant breaches, which panic instead (see node.go and tree.go).
type ArgumentError struct {
	Field  string
	Value  any
	Reason string
	err    error // optional sentinel this error wraps, for errors.Is
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("suffixtree: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.err
}
