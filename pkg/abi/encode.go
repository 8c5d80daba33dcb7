// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"
	"math/big"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Encode serializes value according to t using the canonical Solidity
// head/tail layout (spec.md §4.3): static components are written in place in
// the head, dynamic components leave a 32-byte offset in the head and append
// their content to the tail. Values are plain Go types - ethtypes.Address for
// KindAddress, bool, *big.Int for KindInt/KindUint, []byte for
// KindFixedBytes/KindBytes, string for KindString, and []interface{}
// (positional, unnamed) for KindArray/KindFixedArray/KindTuple/KindStruct.
func Encode(t *Type, value interface{}) ([]byte, error) {
	return EncodeCtx(context.Background(), t, value)
}

func EncodeCtx(ctx context.Context, t *Type, value interface{}) ([]byte, error) {
	out, err := encodeSequence(ctx, "$", []*Type{t}, []interface{}{value})
	if err != nil {
		return nil, err
	}
	log.L(ctx).Tracef("Encoded %s (%T): %x", t.Signature(), value, out)
	return out, nil
}

// EncodeTuple is the encoding entry point for a parameter list (function
// inputs/outputs, or an event's non-indexed data): it flattens to a single
// head/tail block the same way a top-level tuple would, but without wrapping
// in an extra offset word - matching how the EVM ABI lays out call data.
func EncodeTuple(fields []*Type, values []interface{}) ([]byte, error) {
	return EncodeTupleCtx(context.Background(), fields, values)
}

func EncodeTupleCtx(ctx context.Context, fields []*Type, values []interface{}) ([]byte, error) {
	if len(values) != len(fields) {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgWrongOutputCount, len(fields), "$", len(values)))
	}
	return encodeSequence(ctx, "$", fields, values)
}

// encodeComponent returns the head bytes (the fixed-width region written in
// place; nil for a dynamic type) and the tail bytes (appended after all head
// words of the enclosing sequence). For a dynamic type the caller writes the
// 32-byte offset word into the head once every sibling's tail length is
// known (see encodeSequence).
func encodeComponent(ctx context.Context, desc string, t *Type, value interface{}) (head, tail []byte, err error) {
	switch t.Kind() {
	case KindAddress:
		addr, ok := value.(ethtypes.Address)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "ethtypes.Address", value)
		}
		word := make([]byte, 32)
		copy(word[12:], addr[:])
		return word, nil, nil

	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "bool", value)
		}
		word := make([]byte, 32)
		if b {
			word[31] = 1
		}
		return word, nil, nil

	case KindInt:
		i, ok := asBigInt(value)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "*big.Int", value)
		}
		if !fitsSignedBits(i, t.Bits()) {
			return nil, nil, ethtypes.NewTypedError(ethtypes.ErrNumericOverflow,
				i18n.NewError(ctx, evmmsgs.MsgNumericOverflow, t.Bits(), t.Signature(), i.String()))
		}
		return encodeTwosComplement256(i), nil, nil

	case KindUint:
		i, ok := asBigInt(value)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "*big.Int", value)
		}
		if i.Sign() < 0 || i.BitLen() > int(t.Bits()) {
			return nil, nil, ethtypes.NewTypedError(ethtypes.ErrNumericOverflow,
				i18n.NewError(ctx, evmmsgs.MsgNumericOverflow, t.Bits(), t.Signature(), i.String()))
		}
		word := make([]byte, 32)
		i.FillBytes(word)
		return word, nil, nil

	case KindFixedBytes:
		b, ok := value.([]byte)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "[]byte", value)
		}
		n := int(t.Bits())
		if len(b) != n {
			return nil, nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
				i18n.NewError(ctx, evmmsgs.MsgInvalidFixedBytesLen, n, t.Signature(), len(b)))
		}
		word := make([]byte, 32)
		copy(word, b)
		return word, nil, nil

	case KindBytes:
		b, ok := value.([]byte)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "[]byte", value)
		}
		return nil, encodeDynamicBytes(b), nil

	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "string", value)
		}
		return nil, encodeDynamicBytes([]byte(s)), nil

	case KindFixedArray:
		elems, ok := value.([]interface{})
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "[]interface{}", value)
		}
		if uint64(len(elems)) != t.ArrayLen() {
			return nil, nil, ethtypes.NewTypedError(ethtypes.ErrInvalidFixedArrayLength,
				i18n.NewError(ctx, evmmsgs.MsgInvalidFixedArrayLen, t.ArrayLen(), t.Signature(), len(elems)))
		}
		fields := make([]*Type, len(elems))
		for i := range elems {
			fields[i] = t.Elem()
		}
		seq, err := encodeSequence(ctx, desc, fields, elems)
		if err != nil {
			return nil, nil, err
		}
		if t.IsDynamic() {
			return nil, seq, nil
		}
		return seq, nil, nil

	case KindArray:
		elems, ok := value.([]interface{})
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "[]interface{}", value)
		}
		fields := make([]*Type, len(elems))
		for i := range elems {
			fields[i] = t.Elem()
		}
		seq, err := encodeSequence(ctx, desc, fields, elems)
		if err != nil {
			return nil, nil, err
		}
		lenWord := make([]byte, 32)
		new(big.Int).SetUint64(uint64(len(elems))).FillBytes(lenWord)
		return nil, append(lenWord, seq...), nil

	case KindTuple, KindStruct:
		elems, ok := value.([]interface{})
		if !ok {
			return nil, nil, wrongValueType(ctx, desc, "[]interface{}", value)
		}
		if len(elems) != len(t.Fields()) {
			return nil, nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
				i18n.NewError(ctx, evmmsgs.MsgWrongOutputCount, len(t.Fields()), desc, len(elems)))
		}
		fields := make([]*Type, len(t.Fields()))
		for i, f := range t.Fields() {
			fields[i] = f.Type
		}
		seq, err := encodeSequence(ctx, desc, fields, elems)
		if err != nil {
			return nil, nil, err
		}
		if t.IsDynamic() {
			return nil, seq, nil
		}
		return seq, nil, nil

	default:
		return nil, nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgWrongValueType, "supported ABI type", desc, t.Kind()))
	}
}

// encodeSequence lays out fields/values as a self-contained head/tail block:
// one head word (or HeadWidth() bytes) per field, with dynamic fields
// replaced by an offset into the tail that follows every head word.
func encodeSequence(ctx context.Context, desc string, fields []*Type, values []interface{}) ([]byte, error) {
	heads := make([][]byte, len(fields))
	tails := make([][]byte, len(fields))
	headWidth := 0
	for _, f := range fields {
		headWidth += f.HeadWidth()
	}

	for i, f := range fields {
		h, t, err := encodeComponent(ctx, desc, f, values[i])
		if err != nil {
			return nil, err
		}
		heads[i] = h
		tails[i] = t
	}

	out := make([]byte, 0, headWidth+sumLens(tails))
	tailOffset := headWidth
	for i, f := range fields {
		if f.IsDynamic() {
			word := make([]byte, 32)
			new(big.Int).SetUint64(uint64(tailOffset)).FillBytes(word)
			out = append(out, word...)
			tailOffset += len(tails[i])
		} else {
			out = append(out, heads[i]...)
		}
	}
	for _, tail := range tails {
		out = append(out, tail...)
	}
	return out, nil
}

func sumLens(bs [][]byte) int {
	total := 0
	for _, b := range bs {
		total += len(b)
	}
	return total
}

func encodeDynamicBytes(value []byte) []byte {
	dataLen := 32 + (len(value)/32)*32
	if len(value)%32 != 0 {
		dataLen += 32
	}
	data := make([]byte, dataLen)
	new(big.Int).SetUint64(uint64(len(value))).FillBytes(data[0:32])
	copy(data[32:], value)
	return data
}

func wrongValueType(ctx context.Context, desc, want string, got interface{}) error {
	return ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
		i18n.NewError(ctx, evmmsgs.MsgWrongValueType, want, desc, got))
}

func asBigInt(value interface{}) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, true
	case big.Int:
		return &v, true
	default:
		return nil, false
	}
}
