// SPDX-License-Identifier: Apache-2.0

package ethtypes

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// HexInteger is a non-negative integer that marshals to JSON as a "0x" hex
// string, and unmarshals flexibly from a hex string, a base-10 string, or a
// JSON number (used for chain IDs and similar large-number interchange at
// the EIP-712 map-interchange boundary).
type HexInteger big.Int

func (h *HexInteger) String() string {
	return "0x" + (*big.Int)(h).Text(16)
}

func (h HexInteger) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, h.String())), nil
}

func (h *HexInteger) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch vt := v.(type) {
	case float64:
		if vt < 0 {
			return fmt.Errorf("negative values are not supported: %v", vt)
		}
		*h = HexInteger(*big.NewInt(int64(vt)))
		return nil
	case string:
		bi, ok := new(big.Int).SetString(vt, 0)
		if !ok {
			return fmt.Errorf("unable to parse integer: %s", vt)
		}
		if bi.Sign() < 0 {
			return fmt.Errorf("negative values are not supported: %s", vt)
		}
		*h = HexInteger(*bi)
		return nil
	default:
		return fmt.Errorf("unable to parse integer from type %T", v)
	}
}

func (h *HexInteger) BigInt() *big.Int {
	if h == nil {
		return new(big.Int)
	}
	return (*big.Int)(h)
}

func NewHexInteger64(v int64) *HexInteger {
	return (*HexInteger)(big.NewInt(v))
}
