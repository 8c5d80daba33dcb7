// SPDX-License-Identifier: Apache-2.0

package eip712

import (
	"context"
	"math/big"
	"sync"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// domainFieldOrder is the fixed member order EIP-712 requires for the
// EIP712Domain struct type - whichever subset of these fields a domain
// actually supplies, they must appear in this order.
var domainFieldOrder = []string{"name", "version", "chainId", "verifyingContract", "salt"}

var domainFieldTypes = map[string]string{
	"name":              "string",
	"version":           "string",
	"chainId":           "uint256",
	"verifyingContract": "address",
	"salt":              "bytes32",
}

// Domain is a convenience, strongly-typed builder for the common case (all
// five standard fields, in order). Fields left at their zero value are
// omitted from the derived EIP712Domain type, per EIP-712's "only include
// the fields you use" convention. Separator is memoized per Domain instance
// with sync.Once, so a shared *Domain is safe to hash concurrently
// (spec.md §5 "write-once publication").
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract *ethtypes.Address
	Salt              *[32]byte

	once sync.Once
	sep  [32]byte
	err  error
}

// Map renders the domain as the map[string]interface{} interchange value
// HashStruct expects, omitting any field left at its zero value.
func (d *Domain) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if d.Name != "" {
		m["name"] = d.Name
	}
	if d.Version != "" {
		m["version"] = d.Version
	}
	if d.ChainID != nil {
		m["chainId"] = d.ChainID
	}
	if d.VerifyingContract != nil {
		m["verifyingContract"] = *d.VerifyingContract
	}
	if d.Salt != nil {
		m["salt"] = d.Salt[:]
	}
	return m
}

// Type derives the EIP712Domain struct type from whichever fields are
// present, in the fixed domainFieldOrder.
func (d *Domain) Type() Type {
	present := d.Map()
	return deriveDomainType(present)
}

func deriveDomainType(domain map[string]interface{}) Type {
	var t Type
	for _, name := range domainFieldOrder {
		if _, ok := domain[name]; ok {
			t = append(t, &TypeMember{Name: name, Type: domainFieldTypes[name]})
		}
	}
	return t
}

// validateDomainType checks that an explicitly supplied EIP712Domain type
// (rather than one this package derived itself) respects the fixed field
// order EIP-712 requires.
func validateDomainType(ctx context.Context, t Type) error {
	lastIdx := -1
	for _, tm := range t {
		idx := -1
		for i, name := range domainFieldOrder {
			if name == tm.Name {
				idx = i
				break
			}
		}
		if idx < 0 || idx <= lastIdx {
			return ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
				i18n.NewError(ctx, evmmsgs.MsgDomainFieldOrder, tm.Name))
		}
		lastIdx = idx
	}
	return nil
}

// Separator returns hashStruct(EIP712Domain, d.Map()), computed once and
// cached for the lifetime of this Domain value.
func (d *Domain) Separator() ([32]byte, error) {
	return d.SeparatorCtx(context.Background())
}

func (d *Domain) SeparatorCtx(ctx context.Context) ([32]byte, error) {
	d.once.Do(func() {
		types := TypeSet{EIP712Domain: d.Type()}
		d.sep, d.err = HashStructCtx(ctx, EIP712Domain, d.Map(), types)
	})
	return d.sep, d.err
}
