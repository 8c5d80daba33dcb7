// SPDX-License-Identifier: Apache-2.0

package eip712

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/abi"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// HashStruct computes keccak256(typeHash || encodeData(value)) for typeName,
// per EIP-712's hashStruct definition. A nil value (the struct field was
// omitted from the message) hashes as a single zero bytes32 word, per the
// EIP-712 v4 "missing struct" convention.
func HashStruct(typeName string, value map[string]interface{}, types TypeSet) ([32]byte, error) {
	return HashStructCtx(context.Background(), typeName, value, types)
}

func HashStructCtx(ctx context.Context, typeName string, value map[string]interface{}, types TypeSet) ([32]byte, error) {
	encoded, err := encodeData(ctx, typeName, value, types, typeName)
	if err != nil {
		return [32]byte{}, err
	}
	if encoded == nil {
		return [32]byte{}, nil
	}
	result := ethtypes.Keccak256(encoded)
	log.L(ctx).Tracef("hashStruct(%s): %x", typeName, result)
	return result, nil
}

func encodeData(ctx context.Context, typeName string, value interface{}, types TypeSet, breadcrumbs string) ([]byte, error) {
	t, ok := types[typeName]
	if !ok {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString,
			i18n.NewError(ctx, evmmsgs.MsgEIP712TypeNotFound, typeName))
	}
	if value == nil {
		return nil, nil
	}
	vMap, ok := value.(map[string]interface{})
	if !ok {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgEIP712ValueNotMap, breadcrumbs, value))
	}
	if vMap == nil {
		return nil, nil
	}

	typeString := types.Encode(typeName)
	typeHash := ethtypes.Keccak256([]byte(typeString))
	log.L(ctx).Tracef("encodeType(%s): %s", typeName, typeString)
	out := append([]byte(nil), typeHash[:]...)
	for _, tm := range t {
		b, err := encodeElement(ctx, tm.Type, vMap[tm.Name], types, breadcrumbs+"."+tm.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// encodeElement computes the 32-byte "atom" a single typed value
// contributes to its enclosing struct's data encoding: a value word for
// elementary types, keccak256(value) for dynamic bytes/string, a recursive
// hashStruct for struct-typed fields, and the concatenation-then-hash for
// array-typed fields.
func encodeElement(ctx context.Context, typeName string, value interface{}, types TypeSet, breadcrumbs string) ([]byte, error) {
	if strings.HasSuffix(typeName, "]") {
		return hashArray(ctx, typeName, value, types, breadcrumbs)
	}
	if isStructType(typeName, types) {
		vMap, _ := value.(map[string]interface{})
		h, err := HashStructCtx(ctx, typeName, vMap, types)
		if err != nil {
			return nil, err
		}
		return h[:], nil
	}

	ty, err := abi.Parse(typeName)
	if err != nil {
		return nil, err
	}
	switch ty.Kind() {
	case abi.KindAddress:
		addr, err := coerceAddress(ctx, breadcrumbs, value)
		if err != nil {
			return nil, err
		}
		return abi.EncodeCtx(ctx, ty, addr)
	case abi.KindBool:
		b, err := coerceBool(ctx, breadcrumbs, value)
		if err != nil {
			return nil, err
		}
		return abi.EncodeCtx(ctx, ty, b)
	case abi.KindInt, abi.KindUint:
		i, err := coerceBigInt(ctx, breadcrumbs, value)
		if err != nil {
			return nil, err
		}
		return abi.EncodeCtx(ctx, ty, i)
	case abi.KindFixedBytes:
		b, err := coerceBytes(ctx, breadcrumbs, value)
		if err != nil {
			return nil, err
		}
		return abi.EncodeCtx(ctx, ty, b)
	case abi.KindBytes:
		b, err := coerceBytes(ctx, breadcrumbs, value)
		if err != nil {
			return nil, err
		}
		digest := ethtypes.Keccak256(b)
		return digest[:], nil
	case abi.KindString:
		s, ok := value.(string)
		if !ok {
			return nil, wrongValueType(ctx, breadcrumbs, "string", value)
		}
		digest := ethtypes.Keccak256([]byte(s))
		return digest[:], nil
	default:
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString,
			i18n.NewError(ctx, evmmsgs.MsgInvalidTypeString, typeName))
	}
}

func hashArray(ctx context.Context, typeName string, value interface{}, types TypeSet, breadcrumbs string) ([]byte, error) {
	open := strings.LastIndexByte(typeName, '[')
	elemType := typeName[:open]
	dimStr := typeName[open+1 : len(typeName)-1]

	elems, ok := value.([]interface{})
	if !ok {
		return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
			i18n.NewError(ctx, evmmsgs.MsgEIP712ValueNotArray, typeName, value))
	}
	if dimStr != "" {
		dim, err := strconv.Atoi(dimStr)
		if err != nil {
			return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidTypeString,
				i18n.NewError(ctx, evmmsgs.MsgInvalidTypeString, typeName))
		}
		if len(elems) != dim {
			return nil, ethtypes.NewTypedError(ethtypes.ErrInvalidFixedArrayLength,
				i18n.NewError(ctx, evmmsgs.MsgEIP712ArrayLenMismatch, dim, typeName, len(elems)))
		}
	}

	var out []byte
	for i, elem := range elems {
		b, err := encodeElement(ctx, elemType, elem, types, breadcrumbs+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	digest := ethtypes.Keccak256(out)
	return digest[:], nil
}

func wrongValueType(ctx context.Context, breadcrumbs, want string, got interface{}) error {
	return ethtypes.NewTypedError(ethtypes.ErrInvalidEncoding,
		i18n.NewError(ctx, evmmsgs.MsgWrongValueType, want, breadcrumbs, got))
}

func coerceAddress(ctx context.Context, breadcrumbs string, value interface{}) (ethtypes.Address, error) {
	switch v := value.(type) {
	case ethtypes.Address:
		return v, nil
	case string:
		var a ethtypes.Address
		if err := a.SetString(v); err != nil {
			return a, wrongValueType(ctx, breadcrumbs, "address", value)
		}
		return a, nil
	default:
		return ethtypes.Address{}, wrongValueType(ctx, breadcrumbs, "address", value)
	}
}

func coerceBool(ctx context.Context, breadcrumbs string, value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, wrongValueType(ctx, breadcrumbs, "bool", value)
		}
		return b, nil
	default:
		return false, wrongValueType(ctx, breadcrumbs, "bool", value)
	}
}

func coerceBigInt(ctx context.Context, breadcrumbs string, value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case float64:
		return big.NewInt(int64(v)), nil
	case string:
		i := new(big.Int)
		base := 10
		s := v
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			base = 16
			s = s[2:]
		}
		if _, ok := i.SetString(s, base); !ok {
			return nil, wrongValueType(ctx, breadcrumbs, "integer", value)
		}
		return i, nil
	default:
		return nil, wrongValueType(ctx, breadcrumbs, "integer", value)
	}
}

func coerceBytes(ctx context.Context, breadcrumbs string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case ethtypes.HexBytes:
		return v, nil
	case string:
		return ethtypes.DecodeHexCtx(ctx, v)
	default:
		return nil, wrongValueType(ctx, breadcrumbs, "bytes", value)
	}
}
