// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import "log/slog"

// Option configures a Tree at construction time. See New.
type Option[T comparable] interface {
	apply(*Tree[T])
}

type optionFunc[T comparable] func(*Tree[T])

func (f optionFunc[T]) apply(t *Tree[T]) {
	f(t)
}

// WithLogger attaches a structured logger to the tree. The tree logs
// construction events (the start of each Insert and each edge split) at
// slog.LevelDebug; nothing is logged at a higher level during normal
// operation, since there is no request/response lifecycle to report on.
// By default, a Tree logs nowhere.
func WithLogger[T comparable](handler slog.Handler) Option[T] {
	return optionFunc[T](func(t *Tree[T]) {
		if handler != nil {
			t.log = slog.New(handler)
		}
	})
}
