// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"
	"math/big"
	"testing"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferJSON = `[
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "recipient", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"type": "event",
		"name": "Transfer",
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true},
			{"name": "value", "type": "uint256", "indexed": false}
		]
	},
	{
		"type": "error",
		"name": "InsufficientBalance",
		"inputs": [
			{"name": "available", "type": "uint256"},
			{"name": "required", "type": "uint256"}
		]
	}
]`

func TestParseABIAndConvert(t *testing.T) {
	a, err := ParseABI([]byte(transferJSON))
	require.NoError(t, err)

	fns := a.Functions()
	entry, ok := fns["transfer"]
	require.True(t, ok)
	f, err := entry.AsFunction()
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", f.Signature())

	events := a.Events()
	evEntry, ok := events["Transfer"]
	require.True(t, ok)
	ev, err := evEntry.AsEvent()
	require.NoError(t, err)
	assert.Equal(t, "Transfer(address,address,uint256)", ev.Signature())
	assert.Equal(t, []bool{true, true, false}, ev.Indexed)

	errs := a.Errors()
	errEntry, ok := errs["InsufficientBalance"]
	require.True(t, ok)
	abiErr, err := errEntry.AsError()
	require.NoError(t, err)
	assert.Equal(t, "InsufficientBalance(uint256,uint256)", abiErr.Signature())
}

func TestParameterTupleWithInternalType(t *testing.T) {
	p := &Parameter{
		Name:         "person",
		Type:         "tuple",
		InternalType: "struct Mail.Person",
		Components: []*Parameter{
			{Name: "wallet", Type: "address"},
			{Name: "name", Type: "string"},
		},
	}
	ty, err := p.typeOf(context.Background())
	require.NoError(t, err)
	assert.Equal(t, KindStruct, ty.Kind())
	assert.Equal(t, "Person", ty.StructName())
	assert.Equal(t, "(address,string)", ty.Signature())
}

func TestParameterTupleArray(t *testing.T) {
	p := &Parameter{
		Type: "tuple[2]",
		Components: []*Parameter{
			{Name: "x", Type: "uint256"},
		},
	}
	ty, err := p.typeOf(context.Background())
	require.NoError(t, err)
	require.Equal(t, KindFixedArray, ty.Kind())
	assert.Equal(t, uint64(2), ty.ArrayLen())
	assert.Equal(t, KindTuple, ty.Elem().Kind())
}

func TestFunctionEndToEndFromJSON(t *testing.T) {
	a, err := ParseABI([]byte(transferJSON))
	require.NoError(t, err)
	f, err := a.Functions()["transfer"].AsFunction()
	require.NoError(t, err)

	to := ethtypes.MustNewAddress("0x03706ff580119b130e7d26c5e816913123c24d89")
	data, err := f.EncodeCall([]interface{}{to, big.NewInt(1000000000000000000)})
	require.NoError(t, err)

	decoded, err := f.DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, to, decoded[0])
	assert.Equal(t, big.NewInt(1000000000000000000), decoded[1])
}
