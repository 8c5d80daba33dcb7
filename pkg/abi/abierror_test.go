// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorEncodeDecodeRoundTrip(t *testing.T) {
	u256, _ := NewUint(256)
	e := &Error{
		Name:   "InsufficientBalance",
		Inputs: []Field{{Name: "available", Type: u256}, {Name: "required", Type: u256}},
	}
	values := []interface{}{big.NewInt(10), big.NewInt(100)}
	data, err := e.EncodeError(values)
	require.NoError(t, err)

	decoded, err := e.DecodeError(data)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDispatcherDecode(t *testing.T) {
	u256, _ := NewUint(256)
	insufficient := &Error{Name: "InsufficientBalance", Inputs: []Field{{Name: "available", Type: u256}}}
	unauthorized := &Error{Name: "Unauthorized"}
	d := NewDispatcher([]*Error{insufficient, unauthorized})

	data, err := insufficient.EncodeError([]interface{}{big.NewInt(5)})
	require.NoError(t, err)

	matched, values, err := d.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "InsufficientBalance", matched.Name)
	assert.Equal(t, []interface{}{big.NewInt(5)}, values)
}

func TestDispatcherUnknownSelector(t *testing.T) {
	d := NewDispatcher(nil)
	_, _, err := d.Decode([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}
