// SPDX-License-Identifier: Apache-2.0

// Package ethtypes provides the Keccak-256 primitive and the hex codec that
// the ABI and EIP-712 packages build on, along with a handful of
// JSON-friendly wire types (Address, HexBytes, HexInteger) used at the edges
// of those packages.
package ethtypes

import (
	"context"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// EncodeHex renders b as lowercase hex, optionally with a leading "0x".
func EncodeHex(b []byte, withPrefix bool) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 0, len(b)*2+2)
	if withPrefix {
		buf = append(buf, '0', 'x')
	}
	for _, c := range b {
		buf = append(buf, digits[c>>4], digits[c&0x0f])
	}
	return string(buf)
}

// DecodeHex parses s, tolerating an optional "0x"/"0X" prefix and an
// odd-length body (treated as if a leading "0" nibble were present). Fails
// with evmmsgs.MsgInvalidHex on any character outside [0-9a-fA-F].
func DecodeHex(s string) ([]byte, error) {
	return DecodeHexCtx(context.Background(), s)
}

func DecodeHexCtx(ctx context.Context, s string) ([]byte, error) {
	body := s
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		body = s[2:]
	}
	if len(body)%2 != 0 {
		body = "0" + body
	}
	out := make([]byte, len(body)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexNibble(body[2*i])
		lo, ok2 := hexNibble(body[2*i+1])
		if !ok1 || !ok2 {
			return nil, NewTypedError(ErrInvalidHex, i18n.NewError(ctx, evmmsgs.MsgInvalidHex, s, "invalid hex digit"))
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// DecodeHexLenient behaves like DecodeHex, except any byte pair containing
// an invalid nibble is substituted with 0xff instead of failing. It exists
// only for diagnostic rendering (e.g. dumping a corrupt payload for a log
// message) and must never be used by the codec.
func DecodeHexLenient(s string) []byte {
	body := s
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		body = s[2:]
	}
	if len(body)%2 != 0 {
		body = "0" + body
	}
	out := make([]byte, len(body)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexNibble(body[2*i])
		lo, ok2 := hexNibble(body[2*i+1])
		if !ok1 || !ok2 {
			out[i] = 0xff
			continue
		}
		out[i] = hi<<4 | lo
	}
	return out
}
