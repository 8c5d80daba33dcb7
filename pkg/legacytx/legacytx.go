// SPDX-License-Identifier: Apache-2.0

// Package legacytx glues pkg/rlp and pkg/secp256k1 together to build and
// sign a pre-EIP-2718 ("legacy") Ethereum transaction under EIP-155. It
// exists to make a legacy-transaction signing round trip concretely
// testable against the core's keccak256 implementation; nothing in
// pkg/abi or pkg/eip712 depends on it.
package legacytx

import (
	"math/big"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/go-evmkit/abicore/pkg/rlp"
	"github.com/go-evmkit/abicore/pkg/secp256k1"
)

// Transaction holds the 6 fields a legacy transaction signs over. To is nil
// for a contract-creation transaction.
type Transaction struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *ethtypes.Address
	Value    *big.Int
	Data     []byte
}

func (tx *Transaction) fieldBytes() [][]byte {
	to := []byte{}
	if tx.To != nil {
		to = tx.To[:]
	}
	return [][]byte{
		rlp.EncodeUint64(tx.Nonce),
		rlp.EncodeBigInt(tx.GasPrice),
		rlp.EncodeUint64(tx.GasLimit),
		rlp.EncodeBytes(to),
		rlp.EncodeBigInt(tx.Value),
		rlp.EncodeBytes(tx.Data),
	}
}

// SigningHash computes keccak256 of the RLP-encoded 9-field EIP-155
// preimage: the 6 transaction fields followed by the (chainId, 0, 0)
// trailer that binds the signature to a chain.
func (tx *Transaction) SigningHash(chainID int64) [32]byte {
	fields := tx.fieldBytes()
	fields = append(fields,
		rlp.EncodeBigInt(big.NewInt(chainID)),
		rlp.EncodeBytes(nil),
		rlp.EncodeBytes(nil),
	)
	return ethtypes.Keccak256(rlp.EncodeList(fields...))
}

// Sign signs tx for chainID with kp, returning an EIP-155-encoded
// signature (V = 2*chainID+35/36).
func Sign(tx *Transaction, chainID int64, kp *secp256k1.KeyPair) (*secp256k1.Signature, error) {
	hash := tx.SigningHash(chainID)
	sig, err := kp.SignHash(hash)
	if err != nil {
		return nil, err
	}
	sig.ApplyEIP155(chainID)
	return sig, nil
}

// Encode RLP-encodes the final signed transaction: the 6 transaction
// fields followed by the signature's v, r, s.
func Encode(tx *Transaction, sig *secp256k1.Signature) []byte {
	fields := tx.fieldBytes()
	fields = append(fields,
		rlp.EncodeBigInt(sig.V),
		rlp.EncodeBigInt(sig.R),
		rlp.EncodeBigInt(sig.S),
	)
	return rlp.EncodeList(fields...)
}

// RecoverSigner recovers the address that produced sig over tx's signing
// hash for chainID. The same chainID is used to decode an EIP-155 encoded
// sig.V; a V that does not match chainID fails with ErrInvalidSignature.
func RecoverSigner(tx *Transaction, chainID int64, sig *secp256k1.Signature) (ethtypes.Address, error) {
	hash := tx.SigningHash(chainID)
	return secp256k1.RecoverFromHash(hash, sig, chainID)
}
