// SPDX-License-Identifier: Apache-2.0

package ethtypes

// ErrorKind is the closed failure taxonomy shared by every package in this
// module (spec.md §7). Callers that need to branch on failure mode (e.g.
// retry with different data vs. give up) should use errors.As to recover a
// *TypedError and switch on its Kind, rather than string-matching on the
// (localized) error message.
type ErrorKind string

const (
	ErrInvalidTypeString       ErrorKind = "InvalidTypeString"
	ErrInvalidFixedBytesLength ErrorKind = "InvalidFixedBytesLength"
	ErrInvalidIntBitWidth      ErrorKind = "InvalidIntBitWidth"
	ErrCycleInStruct           ErrorKind = "CycleInStruct"
	ErrNumericOverflow         ErrorKind = "NumericOverflow"
	ErrInvalidFixedArrayLength ErrorKind = "InvalidFixedArrayLength"
	ErrInvalidEncoding         ErrorKind = "InvalidEncoding"
	ErrInvalidUtf8             ErrorKind = "InvalidUtf8"
	ErrSelectorMismatch        ErrorKind = "SelectorMismatch"
	ErrUnknownFunctionOrError  ErrorKind = "UnknownFunctionOrError"
	ErrInvalidHex              ErrorKind = "InvalidHex"
	ErrInvalidRLP              ErrorKind = "InvalidRLP"
	ErrInvalidPrivateKey       ErrorKind = "InvalidPrivateKey"
	ErrInvalidSignature        ErrorKind = "InvalidSignature"
	ErrRecoveryFailed          ErrorKind = "RecoveryFailed"
)

// TypedError tags an underlying (i18n-coded, human readable) error with one
// of the closed ErrorKind values above. It is always recoverable: the
// caller decides whether to retry with different data (spec.md §4.3
// "Failure modes").
type TypedError struct {
	Kind  ErrorKind
	Cause error
}

func (e *TypedError) Error() string { return e.Cause.Error() }
func (e *TypedError) Unwrap() error { return e.Cause }

// NewTypedError wraps cause, tagging it with kind.
func NewTypedError(kind ErrorKind, cause error) error {
	return &TypedError{Kind: kind, Cause: cause}
}
