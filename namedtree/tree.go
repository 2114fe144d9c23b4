// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

// Package namedtree provides a hierarchical-name-indexed tree mapping
// variable-length component-delimited names to payloads of type V.
//
// It is the lookup core of a named-data cache or forwarding component:
// a content store, a PIT or a FIB keep their entries in such a tree and
// drive admission and eviction from outside.
//
// The tree supports exact match, longest-prefix match, ancestor-chain and
// subtree enumeration, and value-preserving pruning: structural path nodes
// are created on demand during insert and destroyed as soon as no value and
// no descendant needs them, so storage stays proportional to the number of
// active entries.
//
// Besides the parent/child structure the tree keeps a direct index from
// full name to node, so exact lookups cost one map access instead of a
// walk. Index bookkeeping is entirely the tree's business: nodes never
// touch the index, and every mutation keeps the two views consistent
// within the same call.
//
// The tree is not synchronized. It assumes a single writer and no
// concurrent readers during mutation, matching its use from a single
// forwarder thread; anything else needs external mutual exclusion by the
// owning subsystem.
package namedtree

import (
	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// Tree is a name-indexed tree with payload V.
//
// Use [New] to create one, the zero value is not ready to use.
//
// Values are handed out as shared *V handles: a handle returned from a
// query stays valid after the entry is later removed or replaced, the tree
// never mutates a payload behind a returned handle, it only swaps its own
// reference.
type Tree[V any] struct {
	root *node[V]

	// direct index, full name key -> node, for O(1) exact lookup.
	// Maintained eagerly: nodes are registered on creation and dropped in
	// the same step that detaches them, so an index entry never outlives
	// its node.
	nodes map[string]*node[V]

	// number of nodes currently holding a value, the logical cache size
	populated int
}

// New returns an empty tree. The root node always exists, is always
// registered in the index and is never pruned.
func New[V any]() *Tree[V] {
	t := &Tree[V]{
		root:  &node[V]{name: ndn.Name{}},
		nodes: make(map[string]*node[V]),
	}
	t.nodes[t.root.name.Key()] = t.root

	return t
}

// Size returns the number of registered nodes, including value-less path
// nodes and the root.
func (t *Tree[V]) Size() int {
	return len(t.nodes)
}

// PopulatedCount returns the number of nodes currently holding a value.
func (t *Tree[V]) PopulatedCount() int {
	return t.populated
}

// Find returns the value stored exactly at name, or nil if name is not in
// the tree or is a pure path node.
func (t *Tree[V]) Find(name ndn.Name) *V {
	if n, ok := t.nodes[name.Key()]; ok {
		return n.value
	}
	return nil
}

// Insert stores value at name, creating missing path nodes on the way.
//
// A node without a value accepts the first value unconditionally. An
// existing value is only overwritten when replace is true, otherwise
// Insert is a no-op.
//
// A nil value is a documented no-op: "holds an empty value" is
// indistinguishable from "holds no value", so nothing is created and the
// populated count is untouched.
func (t *Tree[V]) Insert(name ndn.Name, value *V, replace bool) {
	if value == nil {
		return
	}

	if n, ok := t.nodes[name.Key()]; ok {
		if !n.hasValue() {
			n.value = value
			t.populated++
		} else if replace {
			n.value = value
		}
		return
	}

	// walk down from the root, create missing path segments and register
	// every new node under its full name
	n := t.root
	for i := range name.Len() {
		kid, created := n.createChildIfAbsent(name.At(i))
		if created {
			t.nodes[name.Prefix(i+1).Key()] = kid
		}
		n = kid
	}

	n.value = value
	t.populated++
}

// Remove clears the value stored exactly at name and prunes all path nodes
// left without value and children. Removing an absent or already value-less
// name is a no-op. Values in the subtree below name are untouched.
func (t *Tree[V]) Remove(name ndn.Name) {
	n, ok := t.nodes[name.Key()]
	if !ok || !n.hasValue() {
		return
	}

	n.value = nil
	t.populated--

	t.prune(n)
}

// prune walks upward from n and destroys nodes while they are invalid:
// not the root, no children, no value. Index removal and detachment happen
// in the same step, so the index never holds a destroyed node.
func (t *Tree[V]) prune(n *node[V]) {
	for !n.isValid() {
		parent := n.parent

		delete(t.nodes, n.name.Key())
		parent.detachChild(n.name.At(-1))

		n = parent
	}
}

// RemovePrefix removes every value in the subtree rooted at name,
// including name itself, and prunes the emptied structure. Unknown names
// are a no-op. RemovePrefix on the root name clears the whole tree.
func (t *Tree[V]) RemovePrefix(name ndn.Name) {
	n, ok := t.nodes[name.Key()]
	if !ok {
		return
	}

	// drop the whole subtree from the index and the populated count
	t.unregister(n)

	if n.parent == nil {
		// subtree root is the tree root, it stays
		n.value = nil
		n.children = nil
		return
	}

	parent := n.parent
	parent.detachChild(n.name.At(-1))

	// the parent may have lost its last reason to exist
	t.prune(parent)
}

// unregister removes n and all its descendants from the index and adjusts
// the populated count, without touching the parent structure.
func (t *Tree[V]) unregister(n *node[V]) {
	stack := []*node[V]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// the tree root stays registered, everything else is dropped
		if n.parent != nil {
			delete(t.nodes, n.name.Key())
		}
		if n.hasValue() {
			t.populated--
		}

		for _, c := range n.children {
			stack = append(stack, c.node)
		}
	}
}

// Clone returns a structural deep copy of the tree. The copy shares the
// value handles with the original: payloads are not duplicated, both trees
// point at the same *V until one of them replaces its reference.
func (t *Tree[V]) Clone() *Tree[V] {
	c := &Tree[V]{
		nodes:     make(map[string]*node[V], len(t.nodes)),
		populated: t.populated,
	}
	c.root = c.cloneRec(t.root)

	return c
}

// cloneRec copies n and its subtree, registering every copy in the clone's
// index on the way down.
func (c *Tree[V]) cloneRec(n *node[V]) *node[V] {
	m := &node[V]{
		name:  n.name,
		value: n.value,
	}
	c.nodes[m.name.Key()] = m

	for _, kid := range n.children {
		m.attachChild(c.cloneRec(kid.node))
	}

	return m
}
