// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Event is the closed descriptor for a contract event (spec.md §4.4).
// Indexed is parallel to Inputs: Indexed[i] reports whether Inputs[i] is
// carried in a log topic rather than the log's data segment.
type Event struct {
	Name      string
	Inputs    []Field
	Indexed   []bool
	Anonymous bool
}

// Signature renders the canonical "name(type1,type2)" string used to derive
// topic0, over every input regardless of indexed-ness.
func (e *Event) Signature() string {
	return e.Name + tupleSignature(e.Inputs)
}

// Topic0 returns keccak256(Signature()), the first log topic for any
// non-anonymous event.
func (e *Event) Topic0() [32]byte {
	return ethtypes.Keccak256([]byte(e.Signature()))
}

func (e *Event) indexedFields() []Field {
	var out []Field
	for i, f := range e.Inputs {
		if e.Indexed[i] {
			out = append(out, f)
		}
	}
	return out
}

func (e *Event) dataFields() []Field {
	var out []Field
	for i, f := range e.Inputs {
		if !e.Indexed[i] {
			out = append(out, f)
		}
	}
	return out
}

// isReferenceType reports whether t is one that cannot be packed into a
// single 32-byte topic word directly - Solidity instead indexes
// keccak256(tailEncode(value)) for these (the "Open Question" preimage
// decision, see DESIGN.md and the open-question decisions in SPEC_FULL.md §10).
func isReferenceType(t *Type) bool {
	switch t.Kind() {
	case KindBytes, KindString, KindArray, KindFixedArray, KindTuple, KindStruct:
		return true
	default:
		return false
	}
}

// EncodeTopics computes the log topics for the event given a full,
// positional set of input values (indexed and non-indexed interleaved in
// declaration order, matching Inputs). Topic[0] is topic0 unless Anonymous.
// Indexed reference-typed arguments (bytes/string/array/tuple/struct)
// produce a one-way hash: the original value cannot be recovered from the
// topic, only compared against.
func (e *Event) EncodeTopics(values []interface{}) ([][32]byte, error) {
	return e.EncodeTopicsCtx(context.Background(), values)
}

func (e *Event) EncodeTopicsCtx(ctx context.Context, values []interface{}) ([][32]byte, error) {
	if len(values) != len(e.Inputs) {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgWrongOutputCount, len(e.Inputs), e.Name, len(values)))
	}
	var topics [][32]byte
	if !e.Anonymous {
		topics = append(topics, e.Topic0())
	}
	for i, f := range e.Inputs {
		if !e.Indexed[i] {
			continue
		}
		var topic [32]byte
		if isReferenceType(f.Type) {
			head, tail, err := encodeComponent(ctx, f.Name, f.Type, values[i])
			if err != nil {
				return nil, err
			}
			topic = ethtypes.Keccak256(append(head, tail...))
		} else {
			head, _, err := encodeComponent(ctx, f.Name, f.Type, values[i])
			if err != nil {
				return nil, err
			}
			copy(topic[:], head)
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// DecodeLog decodes a log's topics and data into a full, positional value
// list matching Inputs. Indexed reference-typed arguments come back as the
// raw 32-byte topic hash ([]byte), since the original value is not
// recoverable from a one-way hash.
func (e *Event) DecodeLog(topics [][]byte, data []byte) ([]interface{}, error) {
	return e.DecodeLogCtx(context.Background(), topics, data)
}

func (e *Event) DecodeLogCtx(ctx context.Context, topics [][]byte, data []byte) ([]interface{}, error) {
	topicIdx := 0
	if !e.Anonymous {
		topicIdx = 1 // skip topic0
	}

	dataFields := e.dataFields()
	dataValues, err := DecodeTupleCtx(ctx, inputTypes(dataFields), data)
	if err != nil {
		return nil, err
	}

	out := make([]interface{}, len(e.Inputs))
	dataPos := 0
	for i, f := range e.Inputs {
		if !e.Indexed[i] {
			out[i] = dataValues[dataPos]
			dataPos++
			continue
		}
		if topicIdx >= len(topics) {
			return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
				i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytes, f.Name, topicIdx, len(topics), topicIdx+1))
		}
		topic := topics[topicIdx]
		topicIdx++
		if isReferenceType(f.Type) {
			out[i] = append([]byte(nil), topic...)
			continue
		}
		v, _, err := decodeComponent(ctx, f.Name, topic, 0, 0, f.Type)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
