// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"context"
	"strings"

	"github.com/go-evmkit/abicore/internal/evmmsgs"
	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// CheckCycles walks t looking for a Struct that (directly, or indirectly
// through Array/FixedArray/Tuple/Struct) contains itself by name. The
// "currently visiting" set is threaded through the recursion as a plain
// parameter rather than carried in mutable shared state, so CheckCycles is
// itself safe to call concurrently on shared, already-built Type values.
func CheckCycles(t *Type) error {
	return checkCyclesCtx(context.Background(), t, nil)
}

func CheckCyclesCtx(ctx context.Context, t *Type) error {
	return checkCyclesCtx(ctx, t, nil)
}

func checkCyclesCtx(ctx context.Context, t *Type, path []string) error {
	if t == nil {
		return nil
	}
	switch t.kind {
	case KindArray, KindFixedArray:
		return checkCyclesCtx(ctx, t.elem, path)
	case KindTuple:
		for _, f := range t.fields {
			if err := checkCyclesCtx(ctx, f.Type, path); err != nil {
				return err
			}
		}
		return nil
	case KindStruct:
		for _, seen := range path {
			if seen == t.name {
				return ethtypes.NewTypedError(ethtypes.ErrCycleInStruct,
					i18n.NewError(ctx, evmmsgs.MsgCycleInStruct, t.name, strings.Join(append(path, t.name), "->")))
			}
		}
		nextPath := append(append([]string(nil), path...), t.name)
		for _, f := range t.fields {
			if err := checkCyclesCtx(ctx, f.Type, nextPath); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
