// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"
	"math/big"
	"unicode/utf8"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Decode parses a head/tail encoded block back into a value of t, using the
// same plain-Go-type representation as Encode.
func Decode(t *Type, block []byte) (interface{}, error) {
	return DecodeCtx(context.Background(), t, block)
}

func DecodeCtx(ctx context.Context, t *Type, block []byte) (interface{}, error) {
	v, _, err := decodeComponent(ctx, "$", block, 0, 0, t)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Tracef("Decoded %s: %T", t.Signature(), v)
	return v, nil
}

// DecodeTuple parses a sequence of fields out of block (function
// inputs/outputs or event data), the inverse of EncodeTuple.
func DecodeTuple(fields []*Type, block []byte) ([]interface{}, error) {
	return DecodeTupleCtx(context.Background(), fields, block)
}

func DecodeTupleCtx(ctx context.Context, fields []*Type, block []byte) ([]interface{}, error) {
	return decodeSequence(ctx, "$", block, 0, 0, fields)
}

// decodeComponent mirrors encodeComponent: it reads a single field out of
// block at headPosition (relative to headStart, the start of the enclosing
// head/tail block), returning the number of head bytes consumed so the
// caller can advance to the next sibling.
func decodeComponent(ctx context.Context, desc string, block []byte, headStart, headPosition int, t *Type) (interface{}, int, error) {
	switch t.Kind() {
	case KindAddress:
		word, err := readWord(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		var addr ethtypes.Address
		copy(addr[:], word[12:])
		return addr, 32, nil

	case KindBool:
		word, err := readWord(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range word[:31] {
			if b != 0 {
				return nil, 0, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
					i18n.NewError(ctx, evmmsgs.MsgInvalidBoolEncoding, desc, ethtypes.EncodeHex(word, true)))
			}
		}
		switch word[31] {
		case 0:
			return false, 32, nil
		case 1:
			return true, 32, nil
		default:
			return nil, 0, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
				i18n.NewError(ctx, evmmsgs.MsgInvalidBoolEncoding, desc, ethtypes.EncodeHex(word, true)))
		}

	case KindInt:
		word, err := readWord(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		i := decodeTwosComplement256(word)
		if !fitsSignedBits(i, t.Bits()) {
			return nil, 0, ethtypes.NewTypedError(ethtypes.ErrNumericOverflow,
				i18n.NewError(ctx, evmmsgs.MsgNumericOverflow, t.Bits(), t.Signature(), i.String()))
		}
		return i, 32, nil

	case KindUint:
		word, err := readWord(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		i := new(big.Int).SetBytes(word)
		if i.BitLen() > int(t.Bits()) {
			return nil, 0, ethtypes.NewTypedError(ethtypes.ErrNumericOverflow,
				i18n.NewError(ctx, evmmsgs.MsgNumericOverflow, t.Bits(), t.Signature(), i.String()))
		}
		return i, 32, nil

	case KindFixedBytes:
		word, err := readWord(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		n := int(t.Bits())
		b := make([]byte, n)
		copy(b, word[:n])
		return b, 32, nil

	case KindBytes, KindString:
		b, err := decodeDynamicBytes(ctx, desc, block, headStart, headPosition)
		if err != nil {
			return nil, 0, err
		}
		if t.Kind() == KindString {
			if !utf8.Valid(b) {
				return nil, 0, ethtypes.NewTypedError(ethtypes.ErrInvalidUtf8,
					i18n.NewError(ctx, evmmsgs.MsgInvalidUTF8, desc))
			}
			return string(b), 32, nil
		}
		return b, 32, nil

	case KindFixedArray:
		n := int(t.ArrayLen())
		fields := make([]*Type, n)
		for i := range fields {
			fields[i] = t.Elem()
		}
		if t.IsDynamic() {
			offset, err := readLength(ctx, desc, block, headPosition)
			if err != nil {
				return nil, 0, err
			}
			vals, err := decodeSequence(ctx, desc, block, headStart+offset, headStart+offset, fields)
			if err != nil {
				return nil, 0, err
			}
			return vals, 32, nil
		}
		vals, headBytes, err := decodeSequenceHead(ctx, desc, block, headStart, headPosition, fields)
		if err != nil {
			return nil, 0, err
		}
		return vals, headBytes, nil

	case KindArray:
		offset, err := readLength(ctx, desc, block, headPosition)
		if err != nil {
			return nil, 0, err
		}
		dataOffset := headStart + offset
		n, err := readLength(ctx, desc, block, dataOffset)
		if err != nil {
			return nil, 0, err
		}
		dataOffset += 32
		fields := make([]*Type, n)
		for i := range fields {
			fields[i] = t.Elem()
		}
		vals, err := decodeSequence(ctx, desc, block, dataOffset, dataOffset, fields)
		if err != nil {
			return nil, 0, err
		}
		return vals, 32, nil

	case KindTuple, KindStruct:
		fields := make([]*Type, len(t.Fields()))
		for i, f := range t.Fields() {
			fields[i] = f.Type
		}
		if t.IsDynamic() {
			offset, err := readLength(ctx, desc, block, headPosition)
			if err != nil {
				return nil, 0, err
			}
			vals, err := decodeSequence(ctx, desc, block, headStart+offset, headStart+offset, fields)
			if err != nil {
				return nil, 0, err
			}
			return vals, 32, nil
		}
		vals, headBytes, err := decodeSequenceHead(ctx, desc, block, headStart, headPosition, fields)
		if err != nil {
			return nil, 0, err
		}
		return vals, headBytes, nil

	default:
		return nil, 0, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgWrongValueType, "supported ABI type", desc, t.Kind()))
	}
}

// decodeSequence decodes a full field list living at its own head/tail
// block starting at headStart, returning one value per field.
func decodeSequence(ctx context.Context, desc string, block []byte, headStart, headPosition int, fields []*Type) ([]interface{}, error) {
	vals, _, err := decodeSequenceHead(ctx, desc, block, headStart, headPosition, fields)
	return vals, err
}

func decodeSequenceHead(ctx context.Context, desc string, block []byte, headStart, headPosition int, fields []*Type) ([]interface{}, int, error) {
	vals := make([]interface{}, len(fields))
	pos := headPosition
	totalHeadBytes := 0
	for i, f := range fields {
		v, headBytes, err := decodeComponent(ctx, desc, block, headStart, pos, f)
		if err != nil {
			return nil, 0, err
		}
		vals[i] = v
		pos += headBytes
		totalHeadBytes += headBytes
	}
	return vals, totalHeadBytes, nil
}

func readWord(ctx context.Context, desc string, block []byte, offset int) ([]byte, error) {
	if offset < 0 || offset+32 > len(block) {
		have := len(block) - offset
		if have < 0 {
			have = 0
		}
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytes, desc, offset, have, 32))
	}
	return block[offset : offset+32], nil
}

func readLength(ctx context.Context, desc string, block []byte, offset int) (int, error) {
	word, err := readWord(ctx, desc, block, offset)
	if err != nil {
		return 0, err
	}
	n := new(big.Int).SetBytes(word)
	if n.BitLen() > 32 || uint64(n.Int64()) > uint64(len(block)) {
		return 0, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgAllocationTooLarge, desc, n.String(), len(block)))
	}
	return int(n.Int64()), nil
}

func decodeDynamicBytes(ctx context.Context, desc string, block []byte, headStart, headPosition int) ([]byte, error) {
	offset, err := readLength(ctx, desc, block, headPosition)
	if err != nil {
		return nil, err
	}
	dataOffset := headStart + offset
	n, err := readLength(ctx, desc, block, dataOffset)
	if err != nil {
		return nil, err
	}
	dataOffset += 32
	if dataOffset+n > len(block) {
		have := len(block) - dataOffset
		if have < 0 {
			have = 0
		}
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytes, desc, dataOffset, have, n))
	}
	b := make([]byte, n)
	copy(b, block[dataOffset:dataOffset+n])
	return b, nil
}
