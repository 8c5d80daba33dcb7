// SPDX-License-Identifier: Apache-2.0

package ethtypes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Address is a 20-byte Ethereum account/contract identifier.
type Address [20]byte

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.SetString(s)
}

// SetString parses a 20-byte address from a hex string, with or without an
// "0x"/"0X" prefix, case insensitively (no checksum validation is
// performed - EIP-55 casing is cosmetic, not part of the wire encoding).
func (a *Address) SetString(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return fmt.Errorf("bad address: %w", err)
	}
	if len(b) != 20 {
		return fmt.Errorf("bad address - must be 20 bytes (len=%d)", len(b))
	}
	copy(a[:], b)
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ChecksumString())
}

// String renders the address with a plain lowercase "0x" prefix.
func (a Address) String() string {
	return "0x" + EncodeHex(a[:], false)
}

// ChecksumString renders the address per EIP-55: mixed-case hex, where each
// hex digit is upper-cased iff the corresponding nibble of
// keccak256(lowercase hex) is >= 8.
func (a Address) ChecksumString() string {
	hexAddr := EncodeHex(a[:], false)
	hash := Keccak256([]byte(hexAddr))
	hexHash := EncodeHex(hash[:], false)

	buf := strings.Builder{}
	buf.WriteString("0x")
	for i := 0; i < 40; i++ {
		digit, _ := strconv.ParseInt(string(hexHash[i]), 16, 64)
		if digit >= 8 {
			buf.WriteRune(unicode.ToUpper(rune(hexAddr[i])))
		} else {
			buf.WriteRune(unicode.ToLower(rune(hexAddr[i])))
		}
	}
	return buf.String()
}

// Bytes returns the 20 raw bytes of the address.
func (a Address) Bytes() []byte {
	return a[:]
}

func NewAddress(s string) (Address, error) {
	var a Address
	return a, a.SetString(s)
}

func MustNewAddress(s string) Address {
	a, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != 20 {
		return a, fmt.Errorf("bad address - must be 20 bytes (len=%d)", len(b))
	}
	copy(a[:], b)
	return a, nil
}
