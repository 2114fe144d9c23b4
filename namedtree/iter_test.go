// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	tree := New[string]()
	tree.Insert(mpn("/b"), sp("b"), false)
	tree.Insert(mpn("/a/y"), sp("ay"), false)
	tree.Insert(mpn("/a/x"), sp("ax"), false)

	var names []string
	for name, val := range tree.All() {
		require.NotNil(t, val)
		names = append(names, name.String())
	}

	// pre-order, component order, path node /a skipped
	require.Equal(t, []string{"/a/x", "/a/y", "/b"}, names)
}

func TestAllEarlyExit(t *testing.T) {
	tree := New[string]()
	tree.Insert(mpn("/a"), sp("a"), false)
	tree.Insert(mpn("/b"), sp("b"), false)
	tree.Insert(mpn("/c"), sp("c"), false)

	var count int
	for range tree.All() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestAllMatchesFindAllFrom(t *testing.T) {
	tree := New[int]()
	for i, s := range []string{"/a", "/a/b/c", "/d", "/d/e", "/f"} {
		v := i
		tree.Insert(mpn(s), &v, false)
	}

	var fromIter []Entry[int]
	for name, val := range tree.All() {
		fromIter = append(fromIter, Entry[int]{Name: name, Value: val})
	}

	require.Equal(t, tree.FindAllFrom(mpn("/")), fromIter)
}
