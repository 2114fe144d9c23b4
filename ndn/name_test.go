// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package ndn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseNameRoot(t *testing.T) {
	for _, s := range []string{"", "/"} {
		n, err := ParseName(s)
		require.NoError(t, err)
		require.Equal(t, 0, n.Len())
		require.Equal(t, "/", n.String())
	}
}

func TestParseNameRoundTrip(t *testing.T) {
	tests := []string{
		"/a",
		"/a/b/c",
		"/hello-world/f_o.o/~x",
		"/32=metadata/v1",
		"/1=%01%02%03",
	}

	for _, s := range tests {
		n, err := ParseName(s)
		require.NoError(t, err, s)
		require.Equal(t, s, n.String(), s)
	}
}

func TestParseNameEscaping(t *testing.T) {
	n, err := ParseName("/a%2Fb/%20")
	require.NoError(t, err)
	require.Equal(t, 2, n.Len())
	require.Equal(t, []byte("a/b"), n.At(0).Val)
	require.Equal(t, []byte(" "), n.At(1).Val)

	// escaping is not ambiguous, the round trip restores the escapes
	require.Equal(t, "/a%2Fb/%20", n.String())
}

func TestParseNameErrors(t *testing.T) {
	for _, s := range []string{
		"/a//b",
		"/a/%zz",
		"/a/%2",
		"/x=b",
		"/99999999999=b",
	} {
		_, err := ParseName(s)
		require.ErrorIs(t, err, ErrInvalidComponent, s)
	}
}

func TestComponentCanonicalOrder(t *testing.T) {
	// type number wins over value, value length wins over value bytes
	ordered := []Component{
		NewComponent(TypeImplicitSha256Digest, []byte("zzzz")),
		GenericComponent("a"),
		GenericComponent("b"),
		GenericComponent("aa"),
		GenericComponent("ab"),
		GenericComponent("aaa"),
		NewComponent(TypeKeyword, []byte("a")),
	}

	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Compare(ordered[j])
			switch {
			case i < j:
				require.Negative(t, got, "%v < %v", ordered[i], ordered[j])
			case i > j:
				require.Positive(t, got, "%v > %v", ordered[i], ordered[j])
			default:
				require.Zero(t, got)
			}
		}
	}
}

func TestNameAt(t *testing.T) {
	n := MustParseName("/a/b/c")

	require.Equal(t, GenericComponent("a"), n.At(0))
	require.Equal(t, GenericComponent("c"), n.At(2))
	require.Equal(t, GenericComponent("c"), n.At(-1))
	require.Equal(t, GenericComponent("a"), n.At(-3))

	require.Panics(t, func() { n.At(3) })
	require.Panics(t, func() { n.At(-4) })
}

func TestNamePrefix(t *testing.T) {
	n := MustParseName("/a/b/c")

	require.Equal(t, "/a/b", n.Prefix(2).String())
	require.Equal(t, "/a/b", n.Prefix(-1).String())
	require.Equal(t, "/", n.Prefix(0).String())
	require.Equal(t, "/", n.Prefix(-3).String())
	require.Equal(t, "/a/b/c", n.Prefix(5).String())
}

func TestNameAppendDoesNotMutate(t *testing.T) {
	n := MustParseName("/a")
	p := n.Append(GenericComponent("b"), GenericComponent("c"))

	require.Equal(t, "/a", n.String())
	require.Equal(t, "/a/b/c", p.String())

	// appending to a prefix of p must not clobber p
	q := p.Prefix(-1).Append(GenericComponent("x"))
	require.Equal(t, "/a/b/c", p.String())
	require.Equal(t, "/a/b/x", q.String())
}

func TestNameCompareAndPrefixOf(t *testing.T) {
	a := MustParseName("/a")
	ab := MustParseName("/a/b")
	ac := MustParseName("/a/c")

	require.Negative(t, a.Compare(ab)) // prefix orders first
	require.Positive(t, ab.Compare(a))
	require.Negative(t, ab.Compare(ac))
	require.Zero(t, ab.Compare(ab.Clone()))

	require.True(t, a.IsPrefixOf(ab))
	require.True(t, ab.IsPrefixOf(ab))
	require.False(t, ab.IsPrefixOf(a))
	require.False(t, ac.IsPrefixOf(ab))
	require.True(t, Name{}.IsPrefixOf(ac))
}

func TestNameKeyDistinct(t *testing.T) {
	names := []Name{
		{},
		MustParseName("/a"),
		MustParseName("/a/b"),
		MustParseName("/ab"),
		MustParseName("/32=a/b"),
		MustParseName("/a/32=b"),
		// same flat bytes, different component split
		MustParseName("/abc"),
		MustParseName("/ab/c"),
		MustParseName("/a/bc"),
	}

	seen := map[string]Name{}
	for _, n := range names {
		key := n.Key()
		prev, dup := seen[key]
		require.False(t, dup, "key collision between %v and %v", prev, n)
		seen[key] = n
	}

	require.Empty(t, Name{}.Key())
}

func TestNameTextMarshaling(t *testing.T) {
	n := MustParseName("/a/32=meta/%00")

	text, err := n.MarshalText()
	require.NoError(t, err)

	var back Name
	require.NoError(t, back.UnmarshalText(text))

	if diff := cmp.Diff(n, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
