// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

// Package ndn provides the hierarchical Name and Component value types
// consumed by the tree structures in this repository.
//
// A Name is an ordered sequence of TLV-typed components, e.g. /a/b/c.
// Components are compared in NDN canonical order: first by type number,
// then by value length, then lexicographically by value bytes.
//
// Names are immutable by convention: all operations return new values and
// never mutate the receiver.
package ndn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Well-known component type numbers from the NDN packet format.
const (
	TypeImplicitSha256Digest   uint32 = 0x01
	TypeParametersSha256Digest uint32 = 0x02
	TypeGeneric                uint32 = 0x08
	TypeKeyword                uint32 = 0x20
)

// ErrInvalidComponent is wrapped by all component and name parse errors.
var ErrInvalidComponent = errors.New("invalid name component")

// Component is a single atomic segment of a Name.
type Component struct {
	Typ uint32
	Val []byte
}

// NewComponent returns a component with the given type number and value.
// The value bytes are copied.
func NewComponent(typ uint32, val []byte) Component {
	c := Component{Typ: typ, Val: make([]byte, len(val))}
	copy(c.Val, val)
	return c
}

// GenericComponent returns a GenericNameComponent with the given value.
func GenericComponent(val string) Component {
	return Component{Typ: TypeGeneric, Val: []byte(val)}
}

// ParseComponent parses the URI form of a single component.
//
// The form is [<type>=]<escaped-value>, where <type> is a decimal TLV type
// number and defaults to GenericNameComponent. Bytes outside the unreserved
// URI set are percent-escaped.
func ParseComponent(s string) (Component, error) {
	typ := TypeGeneric

	if eq := strings.IndexByte(s, '='); eq >= 0 {
		num, err := strconv.ParseUint(s[:eq], 10, 32)
		if err != nil {
			return Component{}, fmt.Errorf("%w: bad type number %q", ErrInvalidComponent, s[:eq])
		}
		typ = uint32(num)
		s = s[eq+1:]
	}

	val, err := unescape(s)
	if err != nil {
		return Component{}, err
	}

	return Component{Typ: typ, Val: val}, nil
}

// Compare returns an integer comparing two components in NDN canonical
// order: type number, then value length, then value bytes.
func (c Component) Compare(o Component) int {
	switch {
	case c.Typ != o.Typ:
		if c.Typ < o.Typ {
			return -1
		}
		return 1
	case len(c.Val) != len(o.Val):
		if len(c.Val) < len(o.Val) {
			return -1
		}
		return 1
	default:
		return strings.Compare(string(c.Val), string(o.Val))
	}
}

// Equal reports whether two components have the same type and value.
func (c Component) Equal(o Component) bool {
	return c.Compare(o) == 0
}

// String returns the URI form of the component.
func (c Component) String() string {
	w := new(strings.Builder)

	if c.Typ != TypeGeneric {
		w.WriteString(strconv.FormatUint(uint64(c.Typ), 10))
		w.WriteByte('=')
	}

	escape(w, c.Val)
	return w.String()
}

// Name is an ordered sequence of components forming a hierarchical key.
// The empty Name is the root name, printed as "/".
type Name []Component

// ParseName parses the URI form of a name, e.g. "/a/b/c".
// Both "" and "/" parse to the root name.
func ParseName(s string) (Name, error) {
	s = strings.Trim(s, "/")
	if s == "" {
		return Name{}, nil
	}

	segs := strings.Split(s, "/")
	n := make(Name, 0, len(segs))
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment", ErrInvalidComponent)
		}

		c, err := ParseComponent(seg)
		if err != nil {
			return nil, err
		}
		n = append(n, c)
	}

	return n, nil
}

// MustParseName is like ParseName but panics on error.
// Intended for tests and hardcoded names.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Len returns the number of components.
func (n Name) Len() int {
	return len(n)
}

// At returns the component at index i.
// Negative indices count from the end, so At(-1) is the last component.
// At panics if the index is out of range, like a slice access.
func (n Name) At(i int) Component {
	if i < 0 {
		i += len(n)
	}
	return n[i]
}

// Prefix returns the name truncated to its first k components.
// Negative k counts from the end, so Prefix(-1) drops the last component.
// k beyond the length returns the whole name.
func (n Name) Prefix(k int) Name {
	if k < 0 {
		k += len(n)
	}
	switch {
	case k <= 0:
		return Name{}
	case k >= len(n):
		return n
	}
	return n[:k:k]
}

// Append returns a new name with the given components appended.
// The receiver is not modified.
func (n Name) Append(comps ...Component) Name {
	out := make(Name, 0, len(n)+len(comps))
	out = append(out, n...)
	return append(out, comps...)
}

// Clone returns a copy of the name with its own backing array.
func (n Name) Clone() Name {
	out := make(Name, len(n))
	copy(out, n)
	return out
}

// Compare returns an integer comparing two names component-wise in
// canonical order. A proper prefix orders before any of its extensions.
func (n Name) Compare(o Name) int {
	for i := range min(len(n), len(o)) {
		if c := n[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(n) < len(o):
		return -1
	case len(n) > len(o):
		return 1
	}
	return 0
}

// Equal reports whether two names are component-wise equal.
func (n Name) Equal(o Name) bool {
	return len(n) == len(o) && n.Compare(o) == 0
}

// IsPrefixOf reports whether n is a (non-strict) prefix of o.
func (n Name) IsPrefixOf(o Name) bool {
	if len(n) > len(o) {
		return false
	}
	return n.Equal(o.Prefix(len(n)))
}

// String returns the URI form of the name, "/" for the root name.
func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}

	w := new(strings.Builder)
	for _, c := range n {
		w.WriteByte('/')
		w.WriteString(c.String())
	}
	return w.String()
}

// MarshalText implements [encoding.TextMarshaler] using the URI form.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using the URI form.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Key returns the canonical TLV encoding of the name as a string, suitable
// as a map key. Distinct names always have distinct keys, the root name has
// the empty key.
func (n Name) Key() string {
	var b []byte
	for _, c := range n {
		b = appendVarNum(b, uint64(c.Typ))
		b = appendVarNum(b, uint64(len(c.Val)))
		b = append(b, c.Val...)
	}
	return string(b)
}

// appendVarNum appends v in the variable-size TLV number encoding.
func appendVarNum(b []byte, v uint64) []byte {
	switch {
	case v < 253:
		return append(b, byte(v))
	case v <= 0xffff:
		return binary.BigEndian.AppendUint16(append(b, 253), uint16(v))
	case v <= 0xffff_ffff:
		return binary.BigEndian.AppendUint32(append(b, 254), uint32(v))
	default:
		return binary.BigEndian.AppendUint64(append(b, 255), v)
	}
}

// unreserved URI characters, everything else is percent-escaped.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '.', b == '_', b == '~':
		return true
	}
	return false
}

const hexDigits = "0123456789ABCDEF"

func escape(w *strings.Builder, val []byte) {
	for _, b := range val {
		if isUnreserved(b) {
			w.WriteByte(b)
			continue
		}
		w.WriteByte('%')
		w.WriteByte(hexDigits[b>>4])
		w.WriteByte(hexDigits[b&0xf])
	}
}

func unescape(s string) ([]byte, error) {
	val := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			val = append(val, s[i])
			continue
		}
		if i+2 >= len(s) {
			return nil, fmt.Errorf("%w: truncated escape in %q", ErrInvalidComponent, s)
		}

		hi := unhex(s[i+1])
		lo := unhex(s[i+2])
		if hi < 0 || lo < 0 {
			return nil, fmt.Errorf("%w: bad escape in %q", ErrInvalidComponent, s)
		}

		val = append(val, byte(hi<<4|lo))
		i += 2
	}
	return val, nil
}

func unhex(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
