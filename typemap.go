// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingKey reports a [TypeMap.Get] against a tag the map does not hold.
// The panic raised by Get wraps this sentinel.
var ErrMissingKey = errors.New("pend: type map key missing")

// TypeMap is an immutable map from type [Tag] to value. Every mutating
// operation returns a new map and leaves the receiver untouched, so a TypeMap
// may be shared freely. The zero value is the empty map.
//
// Iteration and [TypeMap.String] follow insertion order. Overwriting a tag
// keeps its original position.
type TypeMap struct {
	entries []binding
}

type binding struct {
	tag   Tag
	value Erased
}

// TypeMapOf returns a map holding a under the tag of A.
func TypeMapOf[A any](a A) TypeMap {
	return TypeMap{entries: []binding{{tag: TagOf[A](), value: a}}}
}

// TypeMapOf2 returns a map holding a and b under the tags of A and B.
func TypeMapOf2[A, B any](a A, b B) TypeMap {
	return With(TypeMapOf(a), b)
}

// TypeMapOf3 returns a map holding a, b and c under the tags of A, B and C.
func TypeMapOf3[A, B, C any](a A, b B, c C) TypeMap {
	return With(TypeMapOf2(a, b), c)
}

// With returns m extended with v under the tag of T.
func With[T any](m TypeMap, v T) TypeMap {
	return m.Add(TagOf[T](), v)
}

// Add returns m extended with value under tag. An existing binding for the
// exact tag is overwritten in place; new tags append.
func (m TypeMap) Add(tag Tag, value Erased) TypeMap {
	entries := make([]binding, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	for i := range entries {
		if entries[i].tag == tag {
			entries[i].value = value
			return TypeMap{entries: entries}
		}
	}
	return TypeMap{entries: append(entries, binding{tag: tag, value: value})}
}

// Union returns the combined map. On tag conflict the value from other wins.
func (m TypeMap) Union(other TypeMap) TypeMap {
	out := m
	for _, b := range other.entries {
		out = out.Add(b.tag, b.value)
	}
	return out
}

// Lookup returns the value bound to tag. An exact binding wins; failing that,
// the first binding in insertion order whose tag is a declared subtype of the
// requested tag is returned, so a map holding a concrete type answers lookups
// against an interface tag.
func (m TypeMap) Lookup(tag Tag) (Erased, bool) {
	for _, b := range m.entries {
		if b.tag == tag {
			return b.value, true
		}
	}
	for _, b := range m.entries {
		if b.tag.SubtypeOf(tag) {
			return b.value, true
		}
	}
	return nil, false
}

// Has reports whether Lookup would succeed for tag.
func (m TypeMap) Has(tag Tag) bool {
	_, ok := m.Lookup(tag)
	return ok
}

// Get returns the value bound to tag and panics with an error wrapping
// [ErrMissingKey] when the map has no binding for it.
func (m TypeMap) Get(tag Tag) Erased {
	v, ok := m.Lookup(tag)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrMissingKey, tag))
	}
	return v
}

// GetAs returns the value bound to the tag of T, recovered as a T.
// It panics like [TypeMap.Get] when the binding is missing.
func GetAs[T any](m TypeMap) T {
	return assignAs[T](m.Get(TagOf[T]()))
}

// Size returns the number of bindings.
func (m TypeMap) Size() int { return len(m.entries) }

// IsEmpty reports whether the map has no bindings.
func (m TypeMap) IsEmpty() bool { return len(m.entries) == 0 }

// String renders the bindings in insertion order, for logs and tests.
func (m TypeMap) String() string {
	var sb strings.Builder
	sb.WriteString("TypeMap{")
	for i, b := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.tag.String())
		sb.WriteString(" -> ")
		fmt.Fprintf(&sb, "%v", b.value)
	}
	sb.WriteString("}")
	return sb.String()
}
