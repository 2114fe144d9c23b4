// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"encoding/json"

	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

// ListElement is one node of the nested dump produced by [Tree.DumpList].
// Children are an array, not a map, because the component order matters.
type ListElement[V any] struct {
	Name     ndn.Name         `json:"name"`
	Value    *V               `json:"value,omitempty"`
	Children []ListElement[V] `json:"children,omitempty"`
}

// MarshalJSON dumps the whole tree as a nested list rooted at "/",
// just a wrapper for [Tree.DumpList].
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList dumps the tree into a nested list of elements, one per
// registered node, children in ascending component order. The returned
// element is the root node.
func (t *Tree[V]) DumpList() ListElement[V] {
	return t.root.dumpListRec()
}

func (n *node[V]) dumpListRec() ListElement[V] {
	element := ListElement[V]{
		Name:  n.name,
		Value: n.value,
	}

	if len(n.children) > 0 {
		element.Children = make([]ListElement[V], 0, len(n.children))
		for _, kid := range n.children {
			element.Children = append(element.Children, kid.node.dumpListRec())
		}
	}

	return element
}
