// SPDX-License-Identifier: Apache-2.0

package ethtypes

import (
	"encoding/json"
	"fmt"
)

// HexBytes is a byte string that marshals/unmarshals to JSON as a
// "0x"-prefixed lowercase hex string, and parses either case with or
// without the prefix.
type HexBytes []byte

func (h *HexBytes) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, err := DecodeHex(s)
	if err != nil {
		return fmt.Errorf("bad hex bytes: %w", err)
	}
	*h = decoded
	return nil
}

func (h HexBytes) String() string {
	return EncodeHex(h, true)
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
