// SPDX-License-Identifier: Apache-2.0

package secp256k1

import (
	"context"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Signature is an Ethereum recoverable ECDSA signature. V is the legacy
// 27/28 value as SignHash produces it, or the EIP-155 chain-ID encoded value
// once ApplyEIP155 has rewritten it.
type Signature struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// SignHash produces a recoverable signature over a 32 byte digest that the
// caller has already hashed (e.g. keccak256 of an RLP-encoded transaction or
// an EIP-712 signing hash). V is the legacy 27/28 parity; callers that need
// EIP-155 encoding apply ApplyEIP155 afterwards.
func (k *KeyPair) SignHash(hash [32]byte) (*Signature, error) {
	return k.SignHashCtx(context.Background(), hash)
}

func (k *KeyPair) SignHashCtx(ctx context.Context, hash [32]byte) (*Signature, error) {
	if k == nil || k.PrivateKey == nil {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidPrivateKey,
			i18n.NewError(ctx, evmmsgs.MsgInvalidPrivateKey, "nil key pair"))
	}
	compact := ecdsa.SignCompact(k.PrivateKey, hash[:], false)
	// SignCompact's first byte is 27+recoveryID (+4 if compressed, which we
	// did not request), followed by the 32 byte R and 32 byte S values.
	return &Signature{
		V: big.NewInt(int64(compact[0])),
		R: new(big.Int).SetBytes(compact[1:33]),
		S: new(big.Int).SetBytes(compact[33:65]),
	}, nil
}

// ApplyEIP155 rewrites V from its legacy 27/28 form into the EIP-155 form
// (2*chainID+35 or +36), binding the signature to a specific chain.
func (s *Signature) ApplyEIP155(chainID int64) {
	base := s.V.Int64() - 27
	s.V = big.NewInt(2*chainID + 35 + base)
}

// legacyV recovers the original 27/28 parity from either a raw legacy V or
// an EIP-155 encoded one.
func legacyV(ctx context.Context, v *big.Int, chainID int64) (byte, error) {
	iv := v.Int64()
	var out int64
	switch {
	case iv == 0 || iv == 1:
		out = iv + 27
	case iv == 27 || iv == 28:
		out = iv
	default:
		out = iv - 35 - chainID*2 + 27
	}
	if out != 27 && out != 28 {
		return 0, ethtypes.NewTypedError(ethtypes.ErrInvalidSignature,
			i18n.NewError(ctx, evmmsgs.MsgInvalidSignature, "V value out of range for chain"))
	}
	return byte(out), nil
}

// RecoverFromHash recovers the Ethereum address that produced sig over
// hash, given the chain ID used for any EIP-155 V encoding (pass 0 for a
// raw, un-encoded legacy V).
func RecoverFromHash(hash [32]byte, sig *Signature, chainID int64) (ethtypes.Address, error) {
	return RecoverFromHashCtx(context.Background(), hash, sig, chainID)
}

func RecoverFromHashCtx(ctx context.Context, hash [32]byte, sig *Signature, chainID int64) (ethtypes.Address, error) {
	var addr ethtypes.Address
	v, err := legacyV(ctx, sig.V, chainID)
	if err != nil {
		return addr, err
	}
	compact := make([]byte, 65)
	compact[0] = v
	sig.R.FillBytes(compact[1:33])
	sig.S.FillBytes(compact[33:65])
	pub, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return addr, ethtypes.NewTypedError(ethtypes.ErrRecoveryFailed,
			i18n.NewError(ctx, evmmsgs.MsgRecoveryFailed, err.Error()))
	}
	return addressFromPublicKey(pub), nil
}
