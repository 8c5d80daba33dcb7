// SPDX-License-Identifier: Apache-2.0

package evmmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

var ffe = i18n.FFE

//revive:disable
var (
	MsgInvalidHex             = ffe("EV10001", "Invalid hex string '%s': %s")
	MsgInvalidTypeString      = ffe("EV10030", "Invalid type string '%s'")
	MsgUnsupportedABIType     = ffe("EV10002", "Unsupported type '%s' in type string '%s'")
	MsgUnsupportedABISuffix   = ffe("EV10003", "Unsupported suffix '%s' in type string '%s' (%s)")
	MsgMissingABISuffix       = ffe("EV10004", "Missing required suffix in type string '%s' (%s)")
	MsgInvalidABISuffix       = ffe("EV10005", "Invalid suffix in type string '%s' (%s)")
	MsgInvalidABIArraySpec    = ffe("EV10006", "Invalid array specifier in type string '%s'")
	MsgInvalidFixedArrayLen   = ffe("EV10007", "Expected %d elements for fixed array type '%s', got %d")
	MsgInvalidFixedBytesLen   = ffe("EV10008", "Expected %d bytes for type '%s', got %d")
	MsgInvalidIntBitWidth     = ffe("EV10009", "Bit width %d is not a multiple of 8 in range [8,256]")
	MsgFixedBytesSuffixRange  = ffe("EV10029", "bytes<N> suffix %d is out of range [1,32]")
	MsgNumericOverflow        = ffe("EV10010", "Value does not fit in %d bits for type '%s': %s")
	MsgNotEnoughBytes         = ffe("EV10011", "Not enough bytes remaining to decode '%s' at offset %d (have %d, need %d)")
	MsgInvalidOffset          = ffe("EV10012", "Offset %d for '%s' is out of range of the %d byte block, or not 32-byte aligned")
	MsgInvalidBoolEncoding    = ffe("EV10013", "Invalid bool encoding for '%s': expected 0x00...00 or 0x00...01, got %s")
	MsgInvalidUTF8            = ffe("EV10014", "String value for '%s' is not valid UTF-8")
	MsgTrailingBytes          = ffe("EV10015", "Unexpected %d non-zero trailing bytes after decoding '%s'")
	MsgSelectorMismatch       = ffe("EV10016", "Selector mismatch for '%s': expected %s, got %s")
	MsgNotEnoughBytesSelector = ffe("EV10017", "Not enough bytes to contain a 4 byte function selector")
	MsgUnknownSelector        = ffe("EV10018", "No entry in '%s' matches selector %s")
	MsgCycleInStruct          = ffe("EV10019", "Struct '%s' is cyclic: %s")
	MsgWrongOutputCount       = ffe("EV10020", "Expected %d output values for '%s', got %d")
	MsgTupleMustBeNamed       = ffe("EV10021", "Raw tuple type cannot be used at the EIP-712 boundary for '%s' - it must be a named struct")
	MsgEIP712TypeNotFound     = ffe("EV10022", "EIP-712 type '%s' is not defined in the type set")
	MsgEIP712ValueNotMap      = ffe("EV10023", "Expected a value map for '%s', got %T")
	MsgEIP712ValueNotArray    = ffe("EV10024", "Expected an array value for type '%s', got %T")
	MsgEIP712ArrayLenMismatch = ffe("EV10025", "Expected %d elements for fixed array type '%s', got %d")
	MsgWrongValueType         = ffe("EV10026", "Expected a %s value for '%s', got %T")
	MsgDomainFieldOrder       = ffe("EV10027", "Domain field '%s' was supplied out of the fixed order name,version,chainId,verifyingContract,salt")
	MsgAllocationTooLarge     = ffe("EV10028", "Declared length/offset for '%s' would require %d bytes, larger than the %d byte input buffer")
	MsgRLPLengthMismatch      = ffe("EV10031", "RLP length mismatch decoding %s at position %d (declared length %d, %d bytes remaining)")
	MsgRLPTooManyBytes        = ffe("EV10032", "RLP length-of-length field decodes to more than 2^32-1 bytes")
	MsgInvalidPrivateKey      = ffe("EV10033", "Invalid private key: %s")
	MsgInvalidSignature       = ffe("EV10034", "Invalid signature: %s")
	MsgRecoveryFailed         = ffe("EV10035", "Failed to recover public key from signature: %s")
)
