// SPDX-License-Identifier: Apache-2.0

// Package abi additionally exposes the JSON wire model ("ABI" the way solc
// or Etherscan emit it) that callers actually start from: parse a JSON
// array of entries, then convert the ones you need into the closed
// Function/Event/Error descriptors.
package abi

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// EntryType is the "type" discriminator of a JSON ABI entry.
type EntryType string

const (
	EntryFunction    EntryType = "function"
	EntryConstructor EntryType = "constructor"
	EntryReceive     EntryType = "receive"
	EntryFallback    EntryType = "fallback"
	EntryEvent       EntryType = "event"
	EntryError       EntryType = "error"
)

type StateMutability string

const (
	StatePure       StateMutability = "pure"
	StateView       StateMutability = "view"
	StatePayable    StateMutability = "payable"
	StateNonPayable StateMutability = "nonpayable"
)

// Parameter is one JSON-encoded input/output/event field. Composite types
// ("tuple", "tuple[]", ...) carry their component list in Components rather
// than in the Type string itself, mirroring solc's compiler output.
type Parameter struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	InternalType string       `json:"internalType,omitempty"`
	Components   []*Parameter `json:"components,omitempty"`
	Indexed      bool         `json:"indexed,omitempty"`
}

// ABI is a JSON array of entries, the top level unit solc/Etherscan emit.
type ABI []*Entry

// Entry is a single function, event, or error definition.
type Entry struct {
	Type            EntryType       `json:"type,omitempty"`
	Name            string          `json:"name,omitempty"`
	Anonymous       bool            `json:"anonymous,omitempty"`
	StateMutability StateMutability `json:"stateMutability,omitempty"`
	Inputs          []*Parameter    `json:"inputs"`
	Outputs         []*Parameter    `json:"outputs,omitempty"`
}

func (e *Entry) IsFunction() bool {
	switch e.Type {
	case EntryFunction, EntryConstructor, EntryReceive, EntryFallback, "":
		return true
	default:
		return false
	}
}

// Functions returns every function-like entry keyed by name.
func (a ABI) Functions() map[string]*Entry {
	m := make(map[string]*Entry)
	for _, e := range a {
		if e.Name != "" && e.IsFunction() {
			m[e.Name] = e
		}
	}
	return m
}

// Events returns every event entry keyed by name.
func (a ABI) Events() map[string]*Entry {
	m := make(map[string]*Entry)
	for _, e := range a {
		if e.Name != "" && e.Type == EntryEvent {
			m[e.Name] = e
		}
	}
	return m
}

// Errors returns every custom error entry keyed by name.
func (a ABI) Errors() map[string]*Entry {
	m := make(map[string]*Entry)
	for _, e := range a {
		if e.Name != "" && e.Type == EntryError {
			m[e.Name] = e
		}
	}
	return m
}

// typeOf converts a Parameter (and its Components, recursively) into the
// closed Type sum. Array/fixed-array suffixes on a "tuple..." type string
// are parsed the same way parse.go does for elementary types.
func (p *Parameter) typeOf(ctx context.Context) (*Type, error) {
	base := p.Type
	var lengths []int
	for strings.HasSuffix(base, "]") {
		open := strings.LastIndexByte(base, '[')
		if open < 0 {
			return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString,
				i18n.NewError(ctx, evmmsgs.MsgInvalidTypeString, p.Type))
		}
		digits := base[open+1 : len(base)-1]
		base = base[:open]
		if digits == "" {
			lengths = append(lengths, -1)
		} else {
			n, err := parseUintSuffix(ctx, p.Type, digits)
			if err != nil {
				return nil, err
			}
			lengths = append(lengths, int(n))
		}
	}

	var t *Type
	if base == "tuple" {
		fields := make([]Field, len(p.Components))
		for i, c := range p.Components {
			ct, err := c.typeOf(ctx)
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: c.Name, Type: ct}
		}
		if name, ok := structNameFromInternalType(p.InternalType); ok {
			t = NewStruct(name, fields...)
		} else {
			t = NewTuple(typesOf(fields)...)
		}
	} else {
		var err error
		t, err = Parse(base)
		if err != nil {
			return nil, err
		}
	}

	for i := len(lengths) - 1; i >= 0; i-- {
		if lengths[i] < 0 {
			t = NewArray(t)
		} else {
			t = NewFixedArray(uint64(lengths[i]), t)
		}
	}
	return t, nil
}

func typesOf(fields []Field) []*Type {
	out := make([]*Type, len(fields))
	for i, f := range fields {
		out[i] = f.Type
	}
	return out
}

// structNameFromInternalType recovers a struct name from solc's
// "struct Contract.Name" / "struct Name" internalType convention, which is
// the only place the JSON ABI model carries this information - the
// canonical type string itself erases it.
func structNameFromInternalType(internalType string) (string, bool) {
	const prefix = "struct "
	if !strings.HasPrefix(internalType, prefix) {
		return "", false
	}
	name := internalType[len(prefix):]
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// fieldsOf converts a Parameter list (an Entry's Inputs/Outputs, positional
// and ordered) into Fields for a Function/Event/Error descriptor.
func fieldsOf(ctx context.Context, params []*Parameter) ([]Field, error) {
	fields := make([]Field, len(params))
	for i, p := range params {
		t, err := p.typeOf(ctx)
		if err != nil {
			return nil, err
		}
		fields[i] = Field{Name: p.Name, Type: t}
	}
	return fields, nil
}

// AsFunction converts a function-like entry into a Function descriptor.
func (e *Entry) AsFunction() (*Function, error) {
	return e.AsFunctionCtx(context.Background())
}

func (e *Entry) AsFunctionCtx(ctx context.Context) (*Function, error) {
	inputs, err := fieldsOf(ctx, e.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := fieldsOf(ctx, e.Outputs)
	if err != nil {
		return nil, err
	}
	return &Function{Name: e.Name, Inputs: inputs, Outputs: outputs, StateMutability: e.StateMutability}, nil
}

// AsEvent converts an event entry into an Event descriptor.
func (e *Entry) AsEvent() (*Event, error) {
	return e.AsEventCtx(context.Background())
}

func (e *Entry) AsEventCtx(ctx context.Context) (*Event, error) {
	fields, err := fieldsOf(ctx, e.Inputs)
	if err != nil {
		return nil, err
	}
	indexed := make([]bool, len(e.Inputs))
	for i, p := range e.Inputs {
		indexed[i] = p.Indexed
	}
	return &Event{Name: e.Name, Inputs: fields, Indexed: indexed, Anonymous: e.Anonymous}, nil
}

// AsError converts a custom error entry into an Error descriptor.
func (e *Entry) AsError() (*Error, error) {
	return e.AsErrorCtx(context.Background())
}

func (e *Entry) AsErrorCtx(ctx context.Context) (*Error, error) {
	fields, err := fieldsOf(ctx, e.Inputs)
	if err != nil {
		return nil, err
	}
	return &Error{Name: e.Name, Inputs: fields}, nil
}

// ParseABI unmarshals a JSON ABI array.
func ParseABI(data []byte) (ABI, error) {
	var a ABI
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}
