// SPDX-License-Identifier: Apache-2.0

// Package secp256k1 wraps secp256k1 key handling and ECDSA signing behind
// the plain-Go-value conventions used throughout this module: signatures are
// *big.Int values and private keys go in and out as []byte. KeyPair itself
// still exposes the btcec key types in its PrivateKey/PublicKey fields.
package secp256k1

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const PrivateKeyLength = 32

// KeyPair is a parsed secp256k1 key together with the Ethereum address
// derived from its public key (keccak256 of the uncompressed public key,
// last 20 bytes).
type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    ethtypes.Address
}

// NewKeyPair parses a 32 byte private key and derives its address.
func NewKeyPair(privateKey []byte) (*KeyPair, error) {
	return NewKeyPairCtx(context.Background(), privateKey)
}

func NewKeyPairCtx(ctx context.Context, privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != PrivateKeyLength {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidPrivateKey,
			i18n.NewError(ctx, evmmsgs.MsgInvalidPrivateKey,
				"expected 32 bytes"))
	}
	key, pub := btcec.PrivKeyFromBytes(privateKey)
	return &KeyPair{
		PrivateKey: key,
		PublicKey:  pub,
		Address:    addressFromPublicKey(pub),
	}, nil
}

// GenerateKeyPair creates a new random key pair.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	pub := key.PubKey()
	return &KeyPair{
		PrivateKey: key,
		PublicKey:  pub,
		Address:    addressFromPublicKey(pub),
	}, nil
}

func addressFromPublicKey(pub *btcec.PublicKey) ethtypes.Address {
	// SerializeUncompressed is 0x04 || X || Y; the leading 0x04 marker byte
	// is not part of the hashed material.
	uncompressed := pub.SerializeUncompressed()[1:]
	hash := ethtypes.Keccak256(uncompressed)
	var addr ethtypes.Address
	copy(addr[:], hash[12:32])
	return addr
}

// PrivateKeyBytes returns the 32 byte big-endian encoding of the private
// scalar.
func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.PrivateKey.Serialize()
}
