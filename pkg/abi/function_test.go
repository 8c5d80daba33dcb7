// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"math/big"
	"testing"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapFunction(t *testing.T) *Function {
	u256, err := NewUint(256)
	require.NoError(t, err)
	return &Function{
		Name: "swapExactTokensForTokens",
		Inputs: []Field{
			{Name: "amountIn", Type: u256},
			{Name: "amountOutMin", Type: u256},
			{Name: "path", Type: NewArray(NewAddress())},
			{Name: "to", Type: NewAddress()},
			{Name: "deadline", Type: u256},
		},
	}
}

func TestFunctionSelector(t *testing.T) {
	f := swapFunction(t)
	assert.Equal(t, "swapExactTokensForTokens(uint256,uint256,address[],address,uint256)", f.Signature())
	sel := f.Selector()
	assert.Equal(t, "38ed1739", ethtypes.EncodeHex(sel[:], false))
}

func TestFunctionEncodeDecodeCallRoundTrip(t *testing.T) {
	f := swapFunction(t)
	addr1 := ethtypes.MustNewAddress("0x03706ff580119b130e7d26c5e816913123c24d89")
	addr2 := ethtypes.MustNewAddress("0x0000000000000000000000000000000000dead")
	values := []interface{}{
		big.NewInt(1000),
		big.NewInt(1),
		[]interface{}{addr1, addr2},
		addr1,
		big.NewInt(1700000000),
	}
	data, err := f.EncodeCall(values)
	require.NoError(t, err)

	sel := f.Selector()
	assert.Equal(t, sel[:], data[:4])

	decoded, err := f.DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestFunctionDecodeCallWrongSelector(t *testing.T) {
	f := swapFunction(t)
	data := make([]byte, 36)
	_, err := f.DecodeCall(data)
	require.Error(t, err)
}

func TestFunctionDecodeCallShort(t *testing.T) {
	f := swapFunction(t)
	_, err := f.DecodeCall([]byte{0x01, 0x02})
	require.Error(t, err)
}
