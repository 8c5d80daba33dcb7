// SPDX-License-Identifier: Apache-2.0

// Package abi implements the canonical Solidity ABI type system, the
// head/tail encoder and decoder built on top of it, and the
// Function/Event/Error descriptors that bind a name and types to a
// 4-byte selector (or 32-byte topic).
package abi

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Kind is the closed tag of the ABI type sum. Every algorithm in this
// package switches on Kind rather than using dynamic dispatch; a Kind that a
// switch does not list falls through to that switch's default branch.
type Kind int

const (
	KindAddress Kind = iota
	KindBool
	KindInt
	KindUint
	KindFixedBytes
	KindBytes
	KindString
	KindArray
	KindFixedArray
	KindTuple
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFixedBytes:
		return "fixedBytes"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindFixedArray:
		return "fixedArray"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Field is one named component of a Tuple or Struct type.
type Field struct {
	Name string
	Type *Type
}

// Type is the closed representation of a canonical Solidity ABI type
// described in spec.md §3. It is immutable once constructed; the
// memoization fields below are published exactly once (sync.Once) so a
// *Type can be shared and read concurrently after construction.
type Type struct {
	kind Kind

	bits     uint16 // Int/UInt bit width, or FixedBytes length in bytes
	elem     *Type  // Array/FixedArray element type
	arrayLen uint64 // FixedArray length
	fields   []Field
	name     string // Struct name only

	memo struct {
		once      sync.Once
		dynamic   bool
		headWidth int
		sig       string
	}
}

func (t *Type) Kind() Kind          { return t.kind }
func (t *Type) Bits() uint16        { return t.bits }
func (t *Type) Elem() *Type         { return t.elem }
func (t *Type) ArrayLen() uint64    { return t.arrayLen }
func (t *Type) Fields() []Field     { return t.fields }
func (t *Type) StructName() string  { return t.name }
func (t *Type) IsElementary() bool  { return t.kind <= KindString }
func (t *Type) IsComposite() bool   { return !t.IsElementary() }

func NewAddress() *Type { return &Type{kind: KindAddress} }
func NewBool() *Type    { return &Type{kind: KindBool} }

func NewInt(bits uint16) (*Type, error) {
	if err := validateIntWidth(bits); err != nil {
		return nil, err
	}
	return &Type{kind: KindInt, bits: bits}, nil
}

func NewUint(bits uint16) (*Type, error) {
	if err := validateIntWidth(bits); err != nil {
		return nil, err
	}
	return &Type{kind: KindUint, bits: bits}, nil
}

func validateIntWidth(bits uint16) error {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return ethtypes.NewTypedError(ethtypes.ErrInvalidIntBitWidth,
			i18n.NewError(context.Background(), evmmsgs.MsgInvalidIntBitWidth, bits))
	}
	return nil
}

func NewFixedBytes(n uint16) (*Type, error) {
	if n < 1 || n > 32 {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidFixedBytesLength,
			i18n.NewError(context.Background(), evmmsgs.MsgFixedBytesSuffixRange, n))
	}
	return &Type{kind: KindFixedBytes, bits: n}, nil
}

func NewBytes() *Type  { return &Type{kind: KindBytes} }
func NewString() *Type { return &Type{kind: KindString} }

func NewArray(elem *Type) *Type {
	return &Type{kind: KindArray, elem: elem}
}

func NewFixedArray(length uint64, elem *Type) *Type {
	return &Type{kind: KindFixedArray, elem: elem, arrayLen: length}
}

// NewTuple builds an unnamed positional tuple - equivalent to a Struct with
// no name, fields may be unnamed (Field.Name == "").
func NewTuple(elems ...*Type) *Type {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Type: e}
	}
	return &Type{kind: KindTuple, fields: fields}
}

// NewStruct builds a named tuple. Equality is by (name, field types in
// order) per spec.md §3 - field names do not participate in Equal().
func NewStruct(name string, fields ...Field) *Type {
	return &Type{kind: KindStruct, name: name, fields: append([]Field(nil), fields...)}
}

// Equal compares two types structurally. For Struct, equality is by
// (name, field types in order), independent of field names or any
// provenance metadata (e.g. internalType strings carried by the JSON ABI
// model in abi.go).
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindInt, KindUint:
		return t.bits == o.bits
	case KindFixedBytes:
		return t.bits == o.bits
	case KindArray:
		return t.elem.Equal(o.elem)
	case KindFixedArray:
		return t.arrayLen == o.arrayLen && t.elem.Equal(o.elem)
	case KindTuple:
		return fieldTypesEqual(t.fields, o.fields)
	case KindStruct:
		return t.name == o.name && fieldTypesEqual(t.fields, o.fields)
	default:
		return true
	}
}

func fieldTypesEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Type.Equal(b[i].Type) {
			return false
		}
	}
	return true
}

// Signature renders the canonical ABI signature string for the type:
// elementary types render as their ABI name, arrays per §3, and both Tuple
// and Struct render as "(...)" with struct names erased - this is the
// rendering used inside a function/event signature.
func (t *Type) Signature() string {
	t.memo.once.Do(t.computeMemo)
	return t.memo.sig
}

// IsDynamic reports whether the type's encoded length depends on the value
// (spec.md §3 "Dynamic-ness rule"). Memoized write-once per Type.
func (t *Type) IsDynamic() bool {
	t.memo.once.Do(t.computeMemo)
	return t.memo.dynamic
}

// HeadWidth returns the number of bytes this type occupies in the head
// region of an encoded group: 32 for dynamic types and all elementary
// types, or the concatenation of component head widths for a static
// Tuple/Struct/FixedArray.
func (t *Type) HeadWidth() int {
	t.memo.once.Do(t.computeMemo)
	return t.memo.headWidth
}

func (t *Type) computeMemo() {
	t.memo.dynamic = t.computeDynamic()
	t.memo.headWidth = t.computeHeadWidth()
	t.memo.sig = t.computeSignature()
}

func (t *Type) computeDynamic() bool {
	switch t.kind {
	case KindBytes, KindString:
		return true
	case KindArray:
		return true
	case KindFixedArray:
		return t.elem.IsDynamic()
	case KindTuple, KindStruct:
		for _, f := range t.fields {
			if f.Type.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (t *Type) computeHeadWidth() int {
	if t.memo.dynamic {
		return 32
	}
	switch t.kind {
	case KindFixedArray:
		return t.elem.HeadWidth() * int(t.arrayLen)
	case KindTuple, KindStruct:
		total := 0
		for _, f := range t.fields {
			total += f.Type.HeadWidth()
		}
		return total
	default:
		return 32
	}
}

func (t *Type) computeSignature() string {
	switch t.kind {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("int%d", t.bits)
	case KindUint:
		return fmt.Sprintf("uint%d", t.bits)
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.bits)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return t.elem.Signature() + "[]"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.elem.Signature(), t.arrayLen)
	case KindTuple, KindStruct:
		parts := make([]string, len(t.fields))
		for i, f := range t.fields {
			parts[i] = f.Type.Signature()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return ""
	}
}

func (t *Type) String() string { return t.Signature() }
