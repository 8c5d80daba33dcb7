// SPDX-License-Identifier: Apache-2.0

// Package eip712 implements EIP-712 typed structured data hashing: the
// domain separator, the dependency-sorted type string, hashStruct, and the
// final 0x1901-prefixed signing hash (spec.md §4.5). Values are exchanged
// as map[string]interface{} (the JSON interchange shape a wallet's
// eth_signTypedData_v4 payload actually uses), not this module's closed
// abi.Type value representation - EIP-712 messages arrive as arbitrary
// user-supplied JSON, not ABI call data.
package eip712

import (
	"sort"
	"strings"
)

// TypeMember is one named, typed field of an EIP-712 struct type.
type TypeMember struct {
	Name string
	Type string
}

// Type is the ordered member list of a single named struct type.
type Type []*TypeMember

// TypeSet is the full collection of named struct types referenced by a
// typed data payload, keyed by name.
type TypeSet map[string]Type

// EIP712Domain is the reserved name of the domain separator's own struct
// type.
const EIP712Domain = "EIP712Domain"

// Encode renders a single type member as "type name".
func (tm *TypeMember) Encode() string {
	return tm.Type + " " + tm.Name
}

// Encode renders a struct type as "name(type1 name1,type2 name2,...)".
func (t Type) Encode(name string) string {
	buf := new(strings.Builder)
	buf.WriteString(name)
	buf.WriteByte('(')
	for i, tm := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(tm.Encode())
	}
	buf.WriteByte(')')
	return buf.String()
}

// Encode renders the full dependency-sorted type string for primaryType:
// the primary type's own encoding first, followed by every struct type it
// transitively references, sorted ascending by name (EIP-712 §"Definition
// of encodeType").
func (ts TypeSet) Encode(primaryType string) string {
	buf := new(strings.Builder)
	buf.WriteString(ts[primaryType].Encode(primaryType))

	deps := make(TypeSet)
	addNestedTypes(primaryType, ts, deps)
	delete(deps, primaryType)

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		buf.WriteString(ts[name].Encode(name))
	}
	return buf.String()
}

// addNestedTypes walks typeName's members collecting every struct type
// transitively referenced (including typeName itself) into deps.
func addNestedTypes(typeName string, allTypes TypeSet, deps TypeSet) {
	base := typeName
	if i := strings.IndexByte(base, '['); i >= 0 {
		base = base[:i]
	}
	t, ok := allTypes[base]
	if !ok {
		return
	}
	if _, already := deps[base]; already {
		return
	}
	deps[base] = t
	for _, tm := range t {
		addNestedTypes(tm.Type, allTypes, deps)
	}
}

// isStructType reports whether typeName (with any array suffix stripped)
// names an entry in types.
func isStructType(typeName string, types TypeSet) bool {
	base := typeName
	if i := strings.IndexByte(base, '['); i >= 0 {
		base = base[:i]
	}
	_, ok := types[base]
	return ok
}
