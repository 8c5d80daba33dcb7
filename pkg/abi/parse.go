// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"
	"strconv"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Parse parses a canonical ABI type string (e.g. "uint256", "bytes32[]",
// "(uint256,address)[3]") into a Type. Tuples parsed this way are always
// unnamed (KindTuple) - there is no struct-name information in the grammar
// itself; callers that have internalType metadata (the JSON ABI model in
// abi.go) attach the struct name afterwards.
func Parse(s string) (*Type, error) {
	return ParseCtx(context.Background(), s)
}

func ParseCtx(ctx context.Context, s string) (*Type, error) {
	p := &typeParser{ctx: ctx, src: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString, i18n.NewError(ctx, evmmsgs.MsgInvalidTypeString, s))
	}
	return t, nil
}

type typeParser struct {
	ctx context.Context
	src string
	pos int
}

func (p *typeParser) fail(msgKey i18n.MessageKey, args ...interface{}) error {
	return ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString, i18n.NewError(p.ctx, msgKey, args...))
}

func (p *typeParser) parseType() (*Type, error) {
	var base *Type
	var err error
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		base, err = p.parseTuple()
	} else {
		base, err = p.parseElementary()
	}
	if err != nil {
		return nil, err
	}
	return p.parseArraySuffixes(base)
}

func (p *typeParser) parseTuple() (*Type, error) {
	p.pos++ // consume '('
	var elems []*Type
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		p.pos++
		return NewTuple(), nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		if p.pos >= len(p.src) {
			return nil, p.fail(evmmsgs.MsgInvalidTypeString, p.src)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			continue
		case ')':
			p.pos++
			return NewTuple(elems...), nil
		default:
			return nil, p.fail(evmmsgs.MsgInvalidTypeString, p.src)
		}
	}
}

func (p *typeParser) parseElementary() (*Type, error) {
	start := p.pos
	for p.pos < len(p.src) && isLower(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]

	suffixStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '[' && p.src[p.pos] != ',' && p.src[p.pos] != ')' {
		p.pos++
	}
	suffix := p.src[suffixStart:p.pos]

	switch name {
	case "address":
		if suffix != "" {
			return nil, p.fail(evmmsgs.MsgUnsupportedABISuffix, suffix, p.src, name)
		}
		return NewAddress(), nil
	case "bool":
		if suffix != "" {
			return nil, p.fail(evmmsgs.MsgUnsupportedABISuffix, suffix, p.src, name)
		}
		return NewBool(), nil
	case "string":
		if suffix != "" {
			return nil, p.fail(evmmsgs.MsgUnsupportedABISuffix, suffix, p.src, name)
		}
		return NewString(), nil
	case "bytes":
		if suffix == "" {
			return NewBytes(), nil
		}
		n, err := parseUintSuffix(p.ctx, p.src, suffix)
		if err != nil {
			return nil, err
		}
		return NewFixedBytes(uint16(n))
	case "int", "uint":
		if suffix == "" {
			suffix = "256"
		}
		bits, err := parseUintSuffix(p.ctx, p.src, suffix)
		if err != nil {
			return nil, err
		}
		if name == "int" {
			return NewInt(uint16(bits))
		}
		return NewUint(uint16(bits))
	default:
		return nil, p.fail(evmmsgs.MsgUnsupportedABIType, name, p.src)
	}
}

func (p *typeParser) parseArraySuffixes(base *Type) (*Type, error) {
	t := base
	// Array dimensions nearest the element bind first, so we must collect
	// all of them and apply them innermost-out.
	var lengths []int // -1 == variable length
	for p.pos < len(p.src) && p.src[p.pos] == '[' {
		p.pos++
		digitsStart := p.pos
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		digits := p.src[digitsStart:p.pos]
		if p.pos >= len(p.src) || p.src[p.pos] != ']' {
			return nil, p.fail(evmmsgs.MsgInvalidABIArraySpec, p.src)
		}
		p.pos++
		if digits == "" {
			lengths = append(lengths, -1)
		} else {
			n, err := strconv.ParseUint(digits, 10, 32)
			if err != nil {
				return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString, i18n.WrapError(p.ctx, err, evmmsgs.MsgInvalidABIArraySpec, p.src))
			}
			lengths = append(lengths, int(n))
		}
	}
	for _, n := range lengths {
		if n < 0 {
			t = NewArray(t)
		} else {
			t = NewFixedArray(uint64(n), t)
		}
	}
	return t, nil
}

func parseUintSuffix(ctx context.Context, typeString, suffix string) (uint64, error) {
	n, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil {
		return 0, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString, i18n.WrapError(ctx, err, evmmsgs.MsgInvalidABISuffix, typeString, suffix))
	}
	return n, nil
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
