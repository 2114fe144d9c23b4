// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"iter"

	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// All returns an iterator over all populated entries of the tree, in
// pre-order with children visited in ascending component order.
//
// The iteration order is the same as the one of [Tree.FindAllFrom] on the
// root name, but entries are yielded lazily and the iteration can stop
// early.
//
// The tree must not be mutated during the iteration.
func (t *Tree[V]) All() iter.Seq2[ndn.Name, *V] {
	return func(yield func(ndn.Name, *V) bool) {
		stack := []*node[V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.hasValue() && !yield(n.name, n.value) {
				return
			}

			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i].node)
			}
		}
	}
}
