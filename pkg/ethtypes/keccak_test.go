// SPDX-License-Identifier: Apache-2.0

package ethtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeccak256EmptyInput(t *testing.T) {
	digest := Keccak256()
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", EncodeHex(digest[:], false))
}

func TestKeccak256KnownVector(t *testing.T) {
	digest := Keccak256([]byte("abc"))
	assert.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45", EncodeHex(digest[:], false))
}

func TestKeccak256MultiPartEqualsConcat(t *testing.T) {
	a := Keccak256([]byte("hello"), []byte("world"))
	b := Keccak256([]byte("helloworld"))
	assert.Equal(t, a, b)
}

func TestKeccak256FunctionSelector(t *testing.T) {
	digest := Keccak256([]byte("swapExactTokensForTokens(uint256,uint256,address[],address,uint256)"))
	assert.Equal(t, "38ed1739", EncodeHex(digest[:4], false))
}
