// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

package namedtree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the registered names as
// string, just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the registered names to w.
// Nodes are printed in component order, value-bearing nodes with their
// default formatted payload, pure path nodes with the name alone.
//
//	▼
//	├─ /a (A)
//	│  ├─ /a/b (B)
//	│  └─ /a/c
//	│     └─ /a/c/d (D)
//	└─ /e (E)
func (t *Tree[V]) Fprint(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("namedtree: nil writer")
	}

	if t.root.hasValue() {
		if _, err := fmt.Fprintf(w, "▼ (%v)\n", *t.root.value); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprint(w, "▼\n"); err != nil {
			return err
		}
	}

	return t.root.fprintRec(w, "")
}

// fprintRec prints the children of n, indented with pad, and recurses.
func (n *node[V]) fprintRec(w io.Writer, pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, kid := range n.children {
		// treat last kid special
		if i == len(n.children)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		var err error
		if kid.node.hasValue() {
			_, err = fmt.Fprintf(w, "%s%s (%v)\n", pad+glyphe, kid.node.name, *kid.node.value)
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", pad+glyphe, kid.node.name)
		}
		if err != nil {
			return err
		}

		if err := kid.node.fprintRec(w, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}
