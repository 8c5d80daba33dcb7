// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"context"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const maxInt32 = int64(1)<<31 - 1

// Decode decodes the single RLP element at the start of data, returning the
// position of the first byte following it. Decoding a truncated or
// malformed prefix returns an ethtypes.TypedError tagged ErrInvalidRLP.
func Decode(data []byte) (Node, int, error) {
	return DecodeCtx(context.Background(), data)
}

func DecodeCtx(ctx context.Context, data []byte) (Node, int, error) {
	nodes, pos, err := decodeSequence(ctx, data, 1)
	if err != nil {
		return Node{}, -1, err
	}
	if len(nodes) == 0 {
		return Node{}, pos, nil
	}
	return nodes[0], pos, nil
}

// decodeSequence decodes up to limit sibling elements starting at position
// 0 of data (limit<0 means decode until data is exhausted); it is the
// workhorse both Decode and list-payload recursion share.
func decodeSequence(ctx context.Context, data []byte, limit int) ([]Node, int, error) {
	nodes := make([]Node, 0)
	pos := 0
	for pos < len(data) && (limit < 0 || len(nodes) < limit) {
		prefix := data[pos]
		switch {
		case prefix < shortString:
			nodes = append(nodes, Node{Bytes: []byte{data[pos]}})
			pos++

		case prefix == shortString:
			nodes = append(nodes, Node{Bytes: []byte{}})
			pos++

		case prefix <= longString:
			strLen := int(prefix - shortString)
			pos++
			b, err := sliceN(ctx, data, pos, strLen, "string")
			if err != nil {
				return nil, -1, err
			}
			nodes = append(nodes, Node{Bytes: b})
			pos += strLen

		case prefix < shortList:
			strLen, newPos, err := decodeLength(ctx, data, pos, longString, "string")
			if err != nil {
				return nil, -1, err
			}
			pos = newPos
			b, err := sliceN(ctx, data, pos, strLen, "string")
			if err != nil {
				return nil, -1, err
			}
			nodes = append(nodes, Node{Bytes: b})
			pos += strLen

		case prefix <= longList:
			listLen := int(prefix - shortList)
			pos++
			payload, err := sliceN(ctx, data, pos, listLen, "list")
			if err != nil {
				return nil, -1, err
			}
			children, _, err := decodeSequence(ctx, payload, -1)
			if err != nil {
				return nil, -1, err
			}
			nodes = append(nodes, Node{IsList: true, Items: children})
			pos += listLen

		default:
			listLen, newPos, err := decodeLength(ctx, data, pos, longList, "list")
			if err != nil {
				return nil, -1, err
			}
			pos = newPos
			payload, err := sliceN(ctx, data, pos, listLen, "list")
			if err != nil {
				return nil, -1, err
			}
			children, _, err := decodeSequence(ctx, payload, -1)
			if err != nil {
				return nil, -1, err
			}
			nodes = append(nodes, Node{IsList: true, Items: children})
			pos += listLen
		}
	}
	return nodes, pos, nil
}

func decodeLength(ctx context.Context, data []byte, pos int, longOffset byte, what string) (length, newPos int, err error) {
	lenOfLen := int(data[pos] - longOffset)
	pos++
	lenBytes, err := sliceN(ctx, data, pos, lenOfLen, what+" length")
	if err != nil {
		return -1, -1, err
	}
	pos += lenOfLen
	length, err = bigEndianToInt(ctx, lenBytes)
	if err != nil {
		return -1, -1, err
	}
	return length, pos, nil
}

func sliceN(ctx context.Context, data []byte, pos, n int, what string) ([]byte, error) {
	remaining := len(data) - pos
	if remaining < 0 {
		remaining = 0
	}
	if n < 0 || n > remaining {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidRLP,
			i18n.NewError(ctx, evmmsgs.MsgRLPLengthMismatch, what, pos, n, remaining))
	}
	return data[pos : pos+n], nil
}

func bigEndianToInt(ctx context.Context, b []byte) (int, error) {
	var v int64
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	if v < 0 || v > maxInt32 {
		return -1, ethtypes.NewTypedError(ethtypes.ErrInvalidRLP, i18n.NewError(ctx, evmmsgs.MsgRLPTooManyBytes))
	}
	return int(v), nil
}
