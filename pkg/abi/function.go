// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Function is the closed descriptor for a contract function: a name bound
// to an ordered input/output type list, from which the 4-byte selector and
// the call-data/return-data codecs are derived (spec.md §4.4).
type Function struct {
	Name            string
	Inputs          []Field
	Outputs         []Field
	StateMutability StateMutability
}

// Signature renders the canonical "name(type1,type2)" signature used to
// derive the selector - struct names are erased, matching Type.Signature.
func (f *Function) Signature() string {
	return f.Name + tupleSignature(f.Inputs)
}

func tupleSignature(fields []Field) string {
	sig := "("
	for i, fld := range fields {
		if i > 0 {
			sig += ","
		}
		sig += fld.Type.Signature()
	}
	return sig + ")"
}

// Selector returns the first 4 bytes of keccak256(Signature()).
func (f *Function) Selector() [4]byte {
	digest := ethtypes.Keccak256([]byte(f.Signature()))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

func inputTypes(fields []Field) []*Type {
	out := make([]*Type, len(fields))
	for i, f := range fields {
		out[i] = f.Type
	}
	return out
}

// EncodeCall serializes values according to Inputs, prefixed with the
// 4-byte selector - ready to send as EVM call data.
func (f *Function) EncodeCall(values []interface{}) ([]byte, error) {
	return f.EncodeCallCtx(context.Background(), values)
}

func (f *Function) EncodeCallCtx(ctx context.Context, values []interface{}) ([]byte, error) {
	body, err := EncodeTupleCtx(ctx, inputTypes(f.Inputs), values)
	if err != nil {
		return nil, err
	}
	sel := f.Selector()
	out := make([]byte, 4+len(body))
	copy(out, sel[:])
	copy(out[4:], body)
	return out, nil
}

// DecodeCall verifies the selector prefix of data and decodes the remainder
// against Inputs.
func (f *Function) DecodeCall(data []byte) ([]interface{}, error) {
	return f.DecodeCallCtx(context.Background(), data)
}

func (f *Function) DecodeCallCtx(ctx context.Context, data []byte) ([]interface{}, error) {
	if len(data) < 4 {
		return nil, ethtypes.NewTypedError(ethtypes.ErrSelectorMismatch,
			i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytesSelector))
	}
	sel := f.Selector()
	if !bytesEqual(sel[:], data[:4]) {
		return nil, ethtypes.NewTypedError(ethtypes.ErrSelectorMismatch,
			i18n.NewError(ctx, evmmsgs.MsgSelectorMismatch, f.Signature(), ethtypes.EncodeHex(sel[:], true), ethtypes.EncodeHex(data[:4], true)))
	}
	return DecodeTupleCtx(ctx, inputTypes(f.Inputs), data[4:])
}

// DecodeResponse decodes a function's raw return data against Outputs (no
// selector prefix - the EVM does not return one).
func (f *Function) DecodeResponse(data []byte) ([]interface{}, error) {
	return f.DecodeResponseCtx(context.Background(), data)
}

func (f *Function) DecodeResponseCtx(ctx context.Context, data []byte) ([]interface{}, error) {
	return DecodeTupleCtx(ctx, inputTypes(f.Outputs), data)
}

// EncodeResponse is the inverse of DecodeResponse, for callers that stub or
// test a contract's return path.
func (f *Function) EncodeResponse(values []interface{}) ([]byte, error) {
	return f.EncodeResponseCtx(context.Background(), values)
}

func (f *Function) EncodeResponseCtx(ctx context.Context, values []interface{}) ([]byte, error) {
	return EncodeTupleCtx(ctx, inputTypes(f.Outputs), values)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
