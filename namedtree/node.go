// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"slices"

	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// node is a vertex of the name tree.
//
// A node owns its children, keyed and ordered by the last name component of
// each child. The parent link is a non-owning back-reference, nil only for
// the root, used for upward pruning and nothing else.
//
// Validity invariant: a node is valid iff it is the root, or has at least
// one child, or holds a value. Invalid nodes are transient, they only exist
// inside the pruning loop of [Tree.Remove] and never survive it.
type node[V any] struct {
	// full path from the root, immutable after creation
	name ndn.Name

	parent *node[V]

	// children in ascending component order, binary searched
	children []child[V]

	// the stored payload, nil if the node is a pure path node
	value *V
}

// child pairs the last name component of a child node with the node itself,
// so lookups compare single components instead of full names.
type child[V any] struct {
	comp ndn.Component
	node *node[V]
}

// cmpChild is the ordering of the children slice.
func cmpChild[V any](c child[V], comp ndn.Component) int {
	return c.comp.Compare(comp)
}

// getChild returns the child for comp, or nil if there is none.
func (n *node[V]) getChild(comp ndn.Component) *node[V] {
	if i, ok := slices.BinarySearchFunc(n.children, comp, cmpChild); ok {
		return n.children[i].node
	}
	return nil
}

// leftmostChild returns the child with the smallest component,
// or nil if the node has no children.
func (n *node[V]) leftmostChild() *node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0].node
}

// rightmostChild returns the child with the greatest component,
// or nil if the node has no children.
func (n *node[V]) rightmostChild() *node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1].node
}

// createChildIfAbsent returns the child for comp, creating and attaching it
// first if it does not exist. The second return value reports whether a new
// node was created, the caller is responsible for registering new nodes in
// the tree index.
func (n *node[V]) createChildIfAbsent(comp ndn.Component) (*node[V], bool) {
	i, ok := slices.BinarySearchFunc(n.children, comp, cmpChild)
	if ok {
		return n.children[i].node, false
	}

	kid := &node[V]{
		name:   n.name.Append(comp),
		parent: n,
	}
	n.children = slices.Insert(n.children, i, child[V]{comp: comp, node: kid})

	return kid, true
}

// attachChild grafts an externally constructed node as a child.
// It fails if kid's name minus its last component is not n's name, or if a
// child with the same last component already exists.
func (n *node[V]) attachChild(kid *node[V]) bool {
	if kid.name.Len() == 0 || !kid.name.Prefix(-1).Equal(n.name) {
		return false
	}

	comp := kid.name.At(-1)
	i, ok := slices.BinarySearchFunc(n.children, comp, cmpChild)
	if ok {
		return false
	}

	kid.parent = n
	n.children = slices.Insert(n.children, i, child[V]{comp: comp, node: kid})

	return true
}

// detachChild removes the child for comp and drops ownership of it.
// Unknown components are ignored.
func (n *node[V]) detachChild(comp ndn.Component) {
	if i, ok := slices.BinarySearchFunc(n.children, comp, cmpChild); ok {
		n.children[i].node.parent = nil
		n.children = slices.Delete(n.children, i, i+1)
	}
}

func (n *node[V]) hasChildren() bool {
	return len(n.children) > 0
}

func (n *node[V]) hasValue() bool {
	return n.value != nil
}

// isValid reports the validity invariant, see the type comment.
func (n *node[V]) isValid() bool {
	return n.parent == nil || n.hasChildren() || n.hasValue()
}
