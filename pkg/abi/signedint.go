// SPDX-License-Identifier: Apache-2.0

package abi

import "math/big"

var (
	singleBit            = big.NewInt(1)
	oneMoreThanMaxUint256 = new(big.Int).Lsh(singleBit, 256)
	fullBits256           = new(big.Int).Sub(oneMoreThanMaxUint256, big.NewInt(1))
	oneThen255Zeros       = new(big.Int).Lsh(singleBit, 255)
)

// encodeTwosComplement256 renders i as a 32-byte two's-complement word. Go
// has no native two's-complement byte serialization, so this ANDs against
// the all-ones 256-bit mask to fold a negative value into its unsigned
// bit pattern before writing it out.
func encodeTwosComplement256(i *big.Int) []byte {
	tc := new(big.Int).And(i, fullBits256)
	b := make([]byte, 32)
	return tc.FillBytes(b)
}

// decodeTwosComplement256 parses a 32-byte two's-complement word back into a
// signed *big.Int.
func decodeTwosComplement256(b []byte) *big.Int {
	i := new(big.Int).SetBytes(b)
	if i.Cmp(oneThen255Zeros) < 0 {
		return i
	}
	i.Sub(i, oneMoreThanMaxUint256)
	return i
}

// fitsSignedBits reports whether i fits in a two's-complement integer of the
// given bit width.
func fitsSignedBits(i *big.Int, bits uint16) bool {
	limit := new(big.Int).Lsh(singleBit, uint(bits-1))
	neg := new(big.Int).Neg(limit)
	return i.Cmp(neg) >= 0 && i.Cmp(limit) < 0
}
