// SPDX-License-Identifier: Apache-2.0

package eip712

import (
	"testing"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personMailTypes() TypeSet {
	return TypeSet{
		"Mail": Type{
			{Name: "from", Type: "Person"},
			{Name: "to", Type: "Person"},
			{Name: "contents", Type: "string"},
		},
		"Person": Type{
			{Name: "wallet", Type: "address"},
			{Name: "name", Type: "string"},
		},
	}
}

func TestHashStructDeterministic(t *testing.T) {
	types := personMailTypes()
	msg := map[string]interface{}{
		"from": map[string]interface{}{
			"wallet": "0x03706ff580119b130e7d26c5e816913123c24d89",
			"name":   "Cow",
		},
		"to": map[string]interface{}{
			"wallet": "0x0000000000000000000000000000000000dead",
			"name":   "Bob",
		},
		"contents": "Hello, Bob!",
	}
	h1, err := HashStruct("Mail", msg, types)
	require.NoError(t, err)
	h2, err := HashStruct("Mail", msg, types)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, [32]byte{}, h1)
}

func TestHashStructNilSubStruct(t *testing.T) {
	types := personMailTypes()
	msg := map[string]interface{}{
		"from":     nil,
		"to":       nil,
		"contents": "",
	}
	_, err := HashStruct("Mail", msg, types)
	require.NoError(t, err)
}

func TestHashStructArrayOfStruct(t *testing.T) {
	types := TypeSet{
		"Group": Type{
			{Name: "members", Type: "Person[]"},
		},
		"Person": Type{
			{Name: "wallet", Type: "address"},
		},
	}
	msg := map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{"wallet": "0x03706ff580119b130e7d26c5e816913123c24d89"},
			map[string]interface{}{"wallet": "0x0000000000000000000000000000000000dead"},
		},
	}
	h, err := HashStruct("Group", msg, types)
	require.NoError(t, err)
	assert.NotEqual(t, [32]byte{}, h)
}

func TestHashStructWrongFixedArrayLen(t *testing.T) {
	types := TypeSet{
		"Group": Type{{Name: "members", Type: "Person[2]"}},
		"Person": Type{
			{Name: "wallet", Type: "address"},
		},
	}
	msg := map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{"wallet": "0x03706ff580119b130e7d26c5e816913123c24d89"},
		},
	}
	_, err := HashStruct("Group", msg, types)
	require.Error(t, err)
}

func TestHashStructCoercesAddressValue(t *testing.T) {
	types := TypeSet{"Person": Type{{Name: "wallet", Type: "address"}}}
	addr := ethtypes.MustNewAddress("0x03706ff580119b130e7d26c5e816913123c24d89")
	h1, err := HashStruct("Person", map[string]interface{}{"wallet": addr}, types)
	require.NoError(t, err)
	h2, err := HashStruct("Person", map[string]interface{}{"wallet": addr.String()}, types)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
