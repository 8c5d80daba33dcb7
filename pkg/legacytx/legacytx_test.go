// SPDX-License-Identifier: Apache-2.0

package legacytx

import (
	"math/big"
	"testing"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/go-evmkit/abicore/pkg/rlp"
	"github.com/go-evmkit/abicore/pkg/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTx() *Transaction {
	to := ethtypes.MustNewAddress("0x04465e5f44e13b08f984c3f15f3436090e2a181d")
	return &Transaction{
		Nonce:    9,
		GasPrice: big.NewInt(20000000000),
		GasLimit: 21000,
		To:       &to,
		Value:    big.NewInt(1000000000000000000),
		Data:     nil,
	}
}

func TestSignAndRecoverRoundTrip(t *testing.T) {
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	tx := sampleTx()
	const chainID = 1

	sig, err := Sign(tx, chainID, kp)
	require.NoError(t, err)

	addr, err := RecoverSigner(tx, chainID, sig)
	require.NoError(t, err)
	assert.Equal(t, kp.Address, addr)
}

func TestEncodeDecodesAsNineFieldList(t *testing.T) {
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	tx := sampleTx()
	sig, err := Sign(tx, 1, kp)
	require.NoError(t, err)

	encoded := Encode(tx, sig)
	node, pos, err := rlp.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), pos)
	require.True(t, node.IsList)
	assert.Len(t, node.Items, 9)
}

func TestSigningHashDependsOnChainID(t *testing.T) {
	tx := sampleTx()
	h1 := tx.SigningHash(1)
	h2 := tx.SigningHash(1001)
	assert.NotEqual(t, h1, h2)
}

func TestContractCreationHasEmptyTo(t *testing.T) {
	tx := sampleTx()
	tx.To = nil
	// Must not panic, and must differ from the non-creation hash.
	h1 := tx.SigningHash(1)
	h2 := sampleTx().SigningHash(1)
	assert.NotEqual(t, h1, h2)
}
