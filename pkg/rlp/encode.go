// SPDX-License-Identifier: Apache-2.0

package rlp

import "math/big"

const (
	shortString byte = 0x80
	shortList   byte = 0xc0
	longString  byte = 0xb7
	longList    byte = 0xf7
	// shortToLong is (longList-shortList) == (longString-shortString); adding
	// it to either short offset gives the corresponding long offset.
	shortToLong byte = 0x37
)

// EncodeBytes encodes a single byte string per the RLP string rules: a bare
// single byte in [0x00,0x7f] is sent as itself, a string up to 55 bytes gets
// a one-byte length prefix, longer strings get a length-of-length prefix.
func EncodeBytes(in []byte) []byte {
	if len(in) == 1 && in[0] <= 0x7f {
		return []byte{in[0]}
	}
	return encodeWithOffset(in, shortString)
}

// EncodeList wraps the already RLP-encoded items into a single list element.
func EncodeList(items ...[]byte) []byte {
	payload := make([]byte, 0)
	for _, item := range items {
		payload = append(payload, item...)
	}
	return encodeWithOffset(payload, shortList)
}

func encodeWithOffset(payload []byte, shortOffset byte) []byte {
	if len(payload) <= 55 {
		out := make([]byte, len(payload)+1)
		out[0] = shortOffset + byte(len(payload))
		copy(out[1:], payload)
		return out
	}
	lenBytes := minimalBigEndian(int64(len(payload)))
	out := make([]byte, 1+len(lenBytes)+len(payload))
	out[0] = shortOffset + shortToLong + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], payload)
	return out
}

// EncodeUint64 RLP-encodes v as a big-endian byte string with no leading
// zero bytes (the canonical encoding required for transaction fields such
// as nonce and gas price).
func EncodeUint64(v uint64) []byte {
	return EncodeBytes(minimalBigEndian(int64(v)))
}

// EncodeBigInt RLP-encodes i as a big-endian byte string, or the empty
// string for nil/zero (the canonical encoding used by the `r`/`s`/`v`
// signature fields and token amounts).
func EncodeBigInt(i *big.Int) []byte {
	if i == nil || i.Sign() == 0 {
		return EncodeBytes(nil)
	}
	return EncodeBytes(i.Bytes())
}

func minimalBigEndian(v int64) []byte {
	full := [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
	for i := 0; i < len(full); i++ {
		if full[i] != 0x00 {
			return full[i:]
		}
	}
	return []byte{}
}
