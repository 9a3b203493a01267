// Copyright 2026 The generalized-suffix-tree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubString_New(t *testing.T) {
	s := New("cacao")
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "cacao", s.String())
	assert.False(t, s.Empty())
}

func TestSubString_NewRange(t *testing.T) {
	cases := []struct {
		name    string
		s       string
		offset  int
		length  int
		wantErr bool
	}{
		{name: "full range", s: "cacao", offset: 0, length: 5},
		{name: "mid range", s: "cacao", offset: 1, length: 2, wantErr: false},
		{name: "negative offset", s: "cacao", offset: -1, length: 2, wantErr: true},
		{name: "negative length", s: "cacao", offset: 0, length: -1, wantErr: true},
		{name: "out of bounds", s: "cacao", offset: 3, length: 10, wantErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewRange(tt.s, tt.offset, tt.length)
			if tt.wantErr {
				require.Error(t, err)
				var argErr *ArgumentError
				require.ErrorAs(t, err, &argErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.s[tt.offset:tt.offset+tt.length], sub.String())
		})
	}
}

func TestSubString_CharAt(t *testing.T) {
	s := New("cacao")
	assert.Equal(t, byte('c'), s.CharAt(0))
	assert.Equal(t, byte('o'), s.CharAt(4))
	assert.Panics(t, func() { s.CharAt(5) })
	assert.Panics(t, func() { s.CharAt(-1) })
}

func TestSubString_SubSlice(t *testing.T) {
	s := New("cacao")

	sub, err := s.SubSlice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "ac", sub.String())

	full, err := s.SubSlice(0, 5)
	require.NoError(t, err)
	assert.Equal(t, s, full, "SubSlice(0, Len()) returns the identical slice")

	_, err = s.SubSlice(-1, 2)
	require.Error(t, err)

	_, err = s.SubSlice(3, 1)
	require.Error(t, err)

	_, err = s.SubSlice(0, 6)
	require.Error(t, err)
}

func TestSubString_Extend(t *testing.T) {
	s, err := NewRange("cacao", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "ca", s.String())

	extended, err := s.Extend('c')
	require.NoError(t, err)
	assert.Equal(t, "cac", extended.String())

	_, err = s.Extend('x')
	require.Error(t, err)

	atEnd, err := NewRange("cacao", 0, 5)
	require.NoError(t, err)
	_, err = atEnd.Extend('z')
	require.Error(t, err, "no next byte to extend into")
}

func TestSubString_Shorten(t *testing.T) {
	s := New("cacao")
	assert.Equal(t, "caca", s.Shorten(1).String())
	assert.Equal(t, "", s.Shorten(10).String(), "clamped at zero")
	assert.Panics(t, func() { s.Shorten(-1) })
}

func TestSubString_StartsWith(t *testing.T) {
	s := New("cacao")
	prefix, err := NewRange("cacao", 0, 2)
	require.NoError(t, err)
	assert.True(t, s.StartsWith(prefix))

	notPrefix, err := NewRange("cacao", 1, 2)
	require.NoError(t, err)
	assert.False(t, s.StartsWith(notPrefix))

	longer, err := NewRange("cacao", 0, 5)
	require.NoError(t, err)
	assert.False(t, prefix.StartsWith(longer), "prefix is shorter than longer")

	assert.True(t, s.StartsWith(prefix, 2))
	assert.True(t, s.StartsWith(prefix, 1))
}

func TestSubString_StartsWith_IdentityFastPath(t *testing.T) {
	backing := "cacaocacao"
	a, err := NewRange(backing, 0, 5)
	require.NoError(t, err)
	b, err := NewRange(backing, 0, 3)
	require.NoError(t, err)
	assert.True(t, a.StartsWith(b))
}
