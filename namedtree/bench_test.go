// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// benchNames returns n deterministic names over a small component alphabet,
// so prefixes overlap and the tree gets a realistic shape.
func benchNames(n int) []ndn.Name {
	prng := rand.New(rand.NewSource(42))

	names := make([]ndn.Name, 0, n)
	for range n {
		depth := 1 + prng.Intn(6)

		name := ndn.Name{}
		for range depth {
			name = name.Append(ndn.GenericComponent(fmt.Sprintf("c%02d", prng.Intn(16))))
		}
		names = append(names, name)
	}

	return names
}

func benchTree(b *testing.B, names []ndn.Name) *Tree[int] {
	b.Helper()

	tree := New[int]()
	for i, name := range names {
		v := i
		tree.Insert(name, &v, true)
	}

	return tree
}

func BenchmarkInsert(b *testing.B) {
	names := benchNames(10_000)
	v := 0

	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(names[i%len(names)], &v, true)
	}
}

func BenchmarkFind(b *testing.B) {
	names := benchNames(10_000)
	tree := benchTree(b, names)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find(names[i%len(names)])
	}
}

func BenchmarkFindLastUntil(b *testing.B) {
	names := benchNames(10_000)
	tree := benchTree(b, names)

	probe := ndn.GenericComponent("zz")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.FindLastUntil(names[i%len(names)].Append(probe))
	}
}

func BenchmarkFindAllFrom(b *testing.B) {
	names := benchNames(10_000)
	tree := benchTree(b, names)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.FindAllFrom(names[i%len(names)].Prefix(1))
	}
}
