// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureElementary(t *testing.T) {
	assert.Equal(t, "address", NewAddress().Signature())
	assert.Equal(t, "bool", NewBool().Signature())
	u256, err := NewUint(256)
	require.NoError(t, err)
	assert.Equal(t, "uint256", u256.Signature())
	i8, err := NewInt(8)
	require.NoError(t, err)
	assert.Equal(t, "int8", i8.Signature())
	fb, err := NewFixedBytes(32)
	require.NoError(t, err)
	assert.Equal(t, "bytes32", fb.Signature())
}

func TestSignatureComposite(t *testing.T) {
	u256, _ := NewUint(256)
	arr := NewArray(u256)
	assert.Equal(t, "uint256[]", arr.Signature())

	fixed := NewFixedArray(3, NewAddress())
	assert.Equal(t, "address[3]", fixed.Signature())

	tup := NewTuple(NewAddress(), u256)
	assert.Equal(t, "(address,uint256)", tup.Signature())

	// Struct names are erased from the canonical signature.
	st := NewStruct("Person", Field{Name: "wallet", Type: NewAddress()}, Field{Name: "name", Type: NewString()})
	assert.Equal(t, "(address,string)", st.Signature())
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, NewAddress().IsDynamic())
	assert.True(t, NewString().IsDynamic())
	assert.True(t, NewBytes().IsDynamic())
	assert.True(t, NewArray(NewAddress()).IsDynamic())
	assert.False(t, NewFixedArray(2, NewAddress()).IsDynamic())
	assert.True(t, NewFixedArray(2, NewString()).IsDynamic())
	assert.False(t, NewTuple(NewAddress(), NewBool()).IsDynamic())
	assert.True(t, NewTuple(NewAddress(), NewString()).IsDynamic())
}

func TestHeadWidth(t *testing.T) {
	assert.Equal(t, 32, NewAddress().HeadWidth())
	assert.Equal(t, 32, NewString().HeadWidth())
	assert.Equal(t, 64, NewFixedArray(2, NewAddress()).HeadWidth())
	assert.Equal(t, 32, NewFixedArray(2, NewString()).HeadWidth())
	assert.Equal(t, 64, NewTuple(NewAddress(), NewBool()).HeadWidth())
}

func TestEqual(t *testing.T) {
	u256a, _ := NewUint(256)
	u256b, _ := NewUint(256)
	assert.True(t, u256a.Equal(u256b))

	stA := NewStruct("Foo", Field{Name: "a", Type: NewAddress()})
	stB := NewStruct("Foo", Field{Name: "different name", Type: NewAddress()})
	assert.True(t, stA.Equal(stB), "field names do not affect Equal")

	stC := NewStruct("Bar", Field{Name: "a", Type: NewAddress()})
	assert.False(t, stA.Equal(stC), "struct name does affect Equal")
}

func TestInvalidIntBitWidth(t *testing.T) {
	_, err := NewUint(7)
	require.Error(t, err)
	_, err = NewUint(0)
	require.Error(t, err)
	_, err = NewInt(264)
	require.Error(t, err)
}

func TestInvalidFixedBytesLength(t *testing.T) {
	_, err := NewFixedBytes(0)
	require.Error(t, err)
	_, err = NewFixedBytes(33)
	require.Error(t, err)
}
