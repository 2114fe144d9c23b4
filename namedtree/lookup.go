// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// Entry pairs a full name with the value handle stored under it.
type Entry[V any] struct {
	Name  ndn.Name
	Value *V
}

// FindLastUntil is the longest-prefix match: it walks from the root along
// name, one component per step, as far as matching children exist, and
// returns the deepest name reached together with the value of the closest
// ancestor (inclusive) that holds one.
//
// On an empty tree the result is the root name and a nil value.
func (t *Tree[V]) FindLastUntil(name ndn.Name) (ndn.Name, *V) {
	n := t.root
	value := n.value

	for i := range name.Len() {
		kid := n.getChild(name.At(i))
		if kid == nil {
			break
		}
		if kid.hasValue() {
			value = kid.value
		}
		n = kid
	}

	return n.name, value
}

// FindAllUntil walks the same path as [Tree.FindLastUntil] but collects an
// entry for every visited node holding a value, the root included, in
// root-to-deepest order. Value-less path nodes are skipped.
func (t *Tree[V]) FindAllUntil(name ndn.Name) []Entry[V] {
	var entries []Entry[V]

	n := t.root
	if n.hasValue() {
		entries = append(entries, Entry[V]{Name: n.name, Value: n.value})
	}

	for i := range name.Len() {
		kid := n.getChild(name.At(i))
		if kid == nil {
			break
		}
		if kid.hasValue() {
			entries = append(entries, Entry[V]{Name: kid.name, Value: kid.value})
		}
		n = kid
	}

	return entries
}

// FindFirstFrom returns the first value at or below name along a single
// descent path. If the node at name holds a value, that value wins.
// Otherwise the walk takes the leftmost child at every level, or the
// rightmost child for the first step if rightmost is set, until a value is
// found or the path runs out of children.
//
// This is a directed single-path probe by design, not a subtree search:
// sibling branches are never inspected. Callers that need the extremal
// populated entry of a whole subtree must enumerate with
// [Tree.FindAllFrom].
//
// If name is not a registered node, or the probe finds nothing, ok is
// false.
func (t *Tree[V]) FindFirstFrom(name ndn.Name, rightmost bool) (match ndn.Name, value *V, ok bool) {
	n, found := t.nodes[name.Key()]
	if !found {
		return match, nil, false
	}

	if n.hasValue() {
		return n.name, n.value, true
	}

	if rightmost {
		n = n.rightmostChild()
	} else {
		n = n.leftmostChild()
	}

	for n != nil {
		if n.hasValue() {
			return n.name, n.value, true
		}
		n = n.leftmostChild()
	}

	return match, nil, false
}

// FindAllFrom returns an entry for every value-bearing node in the subtree
// rooted at name, name itself included. The traversal is pre-order with
// children visited in ascending component order, so the result is
// deterministic. If name is not a registered node the result is nil.
func (t *Tree[V]) FindAllFrom(name ndn.Name) []Entry[V] {
	n, found := t.nodes[name.Key()]
	if !found {
		return nil
	}

	var entries []Entry[V]

	stack := []*node[V]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.hasValue() {
			entries = append(entries, Entry[V]{Name: n.name, Value: n.value})
		}

		// push in reverse component order, so the pop order is pre-order
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i].node)
		}
	}

	return entries
}
