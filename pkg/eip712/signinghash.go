// SPDX-License-Identifier: Apache-2.0

package eip712

import (
	"context"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// TypedData is the payload shape a wallet's eth_signTypedData_v4 call
// actually receives: a type set, the name of the primary (message) type,
// the domain, and the message itself - both domain and message as raw
// JSON-interchange maps (spec.md §4.5 "map interchange for JSON interop").
type TypedData struct {
	Types       TypeSet                `json:"types"`
	PrimaryType string                 `json:"primaryType"`
	Domain      map[string]interface{} `json:"domain"`
	Message     map[string]interface{} `json:"message"`
}

// SigningHash computes the final EIP-712 digest:
// keccak256(0x1901 || domainSeparator || hashStruct(primaryType, message)).
// If PrimaryType is itself "EIP712Domain" (spec.md §8 scenario 1), the
// message hash is omitted and only the domain separator is signed.
func (td *TypedData) SigningHash() ([32]byte, error) {
	return td.SigningHashCtx(context.Background())
}

func (td *TypedData) SigningHashCtx(ctx context.Context) ([32]byte, error) {
	types := td.Types
	if types == nil {
		types = make(TypeSet)
	}
	if _, ok := types[EIP712Domain]; !ok {
		types = cloneTypeSet(types)
		types[EIP712Domain] = deriveDomainType(td.Domain)
	} else if err := validateDomainType(ctx, types[EIP712Domain]); err != nil {
		return [32]byte{}, err
	}

	domainHash, err := HashStructCtx(ctx, EIP712Domain, td.Domain, types)
	if err != nil {
		return [32]byte{}, err
	}

	preimage := make([]byte, 0, 2+32+32)
	preimage = append(preimage, 0x19, 0x01)
	preimage = append(preimage, domainHash[:]...)

	if td.PrimaryType != EIP712Domain {
		messageHash, err := HashStructCtx(ctx, td.PrimaryType, td.Message, types)
		if err != nil {
			return [32]byte{}, err
		}
		preimage = append(preimage, messageHash[:]...)
	}

	signingHash := ethtypes.Keccak256(preimage)
	log.L(ctx).Tracef("Signing hash for primaryType=%s: %x", td.PrimaryType, signingHash)
	return signingHash, nil
}

func cloneTypeSet(ts TypeSet) TypeSet {
	out := make(TypeSet, len(ts)+1)
	for k, v := range ts {
		out[k] = v
	}
	return out
}
