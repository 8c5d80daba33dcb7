// SPDX-License-Identifier: Apache-2.0

package ethtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, b := range [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	} {
		encoded := EncodeHex(b, true)
		decoded, err := DecodeHex(encoded)
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
	}
}

func TestDecodeHexCasePrefix(t *testing.T) {
	lower, err := DecodeHex("0xdeadbeef")
	require.NoError(t, err)
	upper, err := DecodeHex("0XDEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, lower)

	noPrefix, err := DecodeHex("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, lower, noPrefix)
}

func TestDecodeHexEmpty(t *testing.T) {
	for _, s := range []string{"", "0x", "0X"} {
		b, err := DecodeHex(s)
		require.NoError(t, err)
		assert.Empty(t, b)
	}
}

func TestDecodeHexOddLength(t *testing.T) {
	b, err := DecodeHex("0xabc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, b)
}

func TestDecodeHexInvalid(t *testing.T) {
	_, err := DecodeHex("0xzz")
	assert.ErrorContains(t, err, "EV10001")
}

func TestDecodeHexLenient(t *testing.T) {
	b := DecodeHexLenient("0xzzbeef")
	// body "zzbeef" is even length -> pairs: zz, be, ef
	assert.Equal(t, []byte{0xff, 0xbe, 0xef}, b)
}

func TestEncodeHexLowercase(t *testing.T) {
	assert.Equal(t, "0xdeadbeef", EncodeHex([]byte{0xde, 0xad, 0xbe, 0xef}, true))
	assert.Equal(t, "deadbeef", EncodeHex([]byte{0xde, 0xad, 0xbe, 0xef}, false))
}
