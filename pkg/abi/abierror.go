// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Error is the closed descriptor for a Solidity custom error
// ("error InsufficientBalance(uint256 available, uint256 required)"),
// which reverts using the same 4-byte-selector-plus-ABI-encoded-arguments
// layout as a function call (spec.md §4.4).
type Error struct {
	Name   string
	Inputs []Field
}

func (e *Error) Signature() string { return e.Name + tupleSignature(e.Inputs) }

func (e *Error) Selector() [4]byte {
	digest := ethtypes.Keccak256([]byte(e.Signature()))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

// EncodeError serializes values according to Inputs, prefixed with the
// error's selector - the layout of EVM revert data.
func (e *Error) EncodeError(values []interface{}) ([]byte, error) {
	return e.EncodeErrorCtx(context.Background(), values)
}

func (e *Error) EncodeErrorCtx(ctx context.Context, values []interface{}) ([]byte, error) {
	body, err := EncodeTupleCtx(ctx, inputTypes(e.Inputs), values)
	if err != nil {
		return nil, err
	}
	sel := e.Selector()
	out := make([]byte, 4+len(body))
	copy(out, sel[:])
	copy(out[4:], body)
	return out, nil
}

// DecodeError verifies the selector prefix of data and decodes the
// remainder against Inputs.
func (e *Error) DecodeError(data []byte) ([]interface{}, error) {
	return e.DecodeErrorCtx(context.Background(), data)
}

func (e *Error) DecodeErrorCtx(ctx context.Context, data []byte) ([]interface{}, error) {
	if len(data) < 4 {
		return nil, ethtypes.NewTypedError(ethtypes.ErrSelectorMismatch,
			i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytesSelector))
	}
	sel := e.Selector()
	if !bytesEqual(sel[:], data[:4]) {
		return nil, ethtypes.NewTypedError(ethtypes.ErrSelectorMismatch,
			i18n.NewError(ctx, evmmsgs.MsgSelectorMismatch, e.Signature(), ethtypes.EncodeHex(sel[:], true), ethtypes.EncodeHex(data[:4], true)))
	}
	return DecodeTupleCtx(ctx, inputTypes(e.Inputs), data[4:])
}

// Dispatcher matches revert data against a registered set of custom errors
// by selector - the pattern a client needs to turn an opaque revert payload
// back into a named error plus its decoded arguments.
type Dispatcher struct {
	bySelector map[[4]byte]*Error
}

// NewDispatcher indexes errs by selector. A selector collision (vanishingly
// unlikely for distinct signatures, but possible for hand-crafted ABIs)
// keeps the first entry registered.
func NewDispatcher(errs []*Error) *Dispatcher {
	d := &Dispatcher{bySelector: make(map[[4]byte]*Error, len(errs))}
	for _, e := range errs {
		sel := e.Selector()
		if _, exists := d.bySelector[sel]; !exists {
			d.bySelector[sel] = e
		}
	}
	return d
}

// Decode looks up the custom error matching data's selector and decodes its
// arguments.
func (d *Dispatcher) Decode(data []byte) (*Error, []interface{}, error) {
	return d.DecodeCtx(context.Background(), data)
}

func (d *Dispatcher) DecodeCtx(ctx context.Context, data []byte) (*Error, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, ethtypes.NewTypedError(ethtypes.ErrSelectorMismatch,
			i18n.NewError(ctx, evmmsgs.MsgNotEnoughBytesSelector))
	}
	var sel [4]byte
	copy(sel[:], data[:4])
	e, ok := d.bySelector[sel]
	if !ok {
		return nil, nil, ethtypes.NewTypedError(ethtypes.ErrUnknownFunctionOrError,
			i18n.NewError(ctx, evmmsgs.MsgUnknownSelector, "errors", ethtypes.EncodeHex(sel[:], true)))
	}
	values, err := e.DecodeErrorCtx(ctx, data)
	if err != nil {
		return nil, nil, err
	}
	return e, values, nil
}
