package keeper

import (
	"context"
	"math"

	"fanbase/x/fanbase/types"
)

// nextLaunchID peeks the id the next launch token would receive. The nonce is
// only advanced by the caller once every dependent write has succeeded.
func (k Keeper) nextLaunchID(ctx context.Context) (uint64, error) {
	last, err := k.LaunchIssuanceNonce.Peek(ctx)
	if err != nil {
		return 0, err
	}
	if last == math.MaxUint64 {
		return 0, types.ErrLaunchTokensOverflow
	}
	return last + 1, nil
}

// nextTokenID is nextLaunchID for the token namespace. Launch tokens and
// tokens draw from separate counters.
func (k Keeper) nextTokenID(ctx context.Context) (uint64, error) {
	last, err := k.IssuanceNonce.Peek(ctx)
	if err != nil {
		return 0, err
	}
	if last == math.MaxUint64 {
		return 0, types.ErrTokensOverflow
	}
	return last + 1, nil
}
