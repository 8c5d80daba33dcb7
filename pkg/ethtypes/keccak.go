// SPDX-License-Identifier: Apache-2.0

package ethtypes

import "golang.org/x/crypto/sha3"

// Keccak256 returns the 32-byte legacy Keccak-256 digest of b (the variant
// used throughout the EVM - NOT the later NIST SHA3-256 standard, which
// changed the padding). Pure and deterministic; safe to call concurrently.
func Keccak256(b ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, part := range b {
		h.Write(part)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Keccak256Bytes is a convenience wrapper returning a freshly allocated
// slice rather than a fixed-size array, for callers that want to pass the
// digest on without copying out of an array (e.g. as a HexBytes).
func Keccak256Bytes(b ...[]byte) []byte {
	digest := Keccak256(b...)
	return digest[:]
}
