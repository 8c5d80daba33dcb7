// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeBytesSingleByteOptimization(t *testing.T) {
	assert.Equal(t, []byte{0x00}, EncodeBytes([]byte{0x00}))
	assert.Equal(t, []byte{0x7f}, EncodeBytes([]byte{0x7f}))
}

func TestEncodeBytesShortString(t *testing.T) {
	assert.Equal(t, []byte{0x80}, EncodeBytes(nil))
	assert.Equal(t, []byte{0x83, 'd', 'o', 'g'}, EncodeBytes([]byte("dog")))
	// 0x80 alone still needs the length prefix, since 0x80 > 0x7f.
	assert.Equal(t, []byte{0x81, 0x80}, EncodeBytes([]byte{0x80}))
}

func TestEncodeBytesLongString(t *testing.T) {
	in := make([]byte, 56)
	for i := range in {
		in[i] = 'a'
	}
	out := EncodeBytes(in)
	assert.Equal(t, byte(0xb8), out[0])
	assert.Equal(t, byte(56), out[1])
	assert.Equal(t, in, out[2:])
}

func TestEncodeListEmpty(t *testing.T) {
	assert.Equal(t, []byte{0xc0}, EncodeList())
}

func TestEncodeListOfStrings(t *testing.T) {
	// ["cat", "dog"]
	out := EncodeList(EncodeBytes([]byte("cat")), EncodeBytes([]byte("dog")))
	assert.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, out)
}

func TestEncodeUint64(t *testing.T) {
	assert.Equal(t, []byte{0x80}, EncodeUint64(0))
	assert.Equal(t, []byte{0x0f}, EncodeUint64(15))
	assert.Equal(t, []byte{0x82, 0x04, 0x00}, EncodeUint64(1024))
}

func TestEncodeBigInt(t *testing.T) {
	assert.Equal(t, []byte{0x80}, EncodeBigInt(nil))
	assert.Equal(t, []byte{0x80}, EncodeBigInt(big.NewInt(0)))
	assert.Equal(t, []byte{0x09}, EncodeBigInt(big.NewInt(9)))
}
