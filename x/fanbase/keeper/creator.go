package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"fanbase/x/fanbase/types"
)

// CreateCreator registers creatorID and appends it to owner's creator index.
func (k Keeper) CreateCreator(ctx context.Context, creatorID, owner string) error {
	taken, err := k.Creators.Has(ctx, creatorID)
	if err != nil {
		return err
	}
	if taken {
		return errorsmod.Wrapf(types.ErrCreatorAccountTaken, "creator %q", creatorID)
	}

	ids, err := k.creatorIndex(ctx, owner)
	if err != nil {
		return err
	}
	if err := ids.TryPush(creatorID); err != nil {
		return errorsmod.Wrapf(types.ErrMaxCreatorAccountsReached, "account holds %d creators", ids.Len())
	}

	if err := saveIndex(ctx, k.CreatorIdsByAccount, owner, ids); err != nil {
		return err
	}
	if err := k.Creators.Set(ctx, creatorID, types.NewCreator(creatorID, owner)); err != nil {
		return err
	}

	k.Logger(ctx).Info("created creator", "creator", creatorID, "owner", owner)
	return nil
}

// DisconnectOrRemoveCreator detaches creatorID from owner. The record is only
// deleted when no launch token references it; otherwise it is kept with no
// owner so templates never point at a missing creator. Reports whether the
// record was removed.
func (k Keeper) DisconnectOrRemoveCreator(ctx context.Context, creatorID, owner string) (bool, error) {
	creator, err := k.getCreator(ctx, creatorID)
	if err != nil {
		return false, err
	}
	if creator.Owner != owner {
		return false, types.ErrNotOwner
	}

	launches, err := k.launchIndex(ctx, creatorID)
	if err != nil {
		return false, err
	}
	ids, err := k.creatorIndex(ctx, owner)
	if err != nil {
		return false, err
	}
	ids.SwapRemove(creatorID)

	removed := launches.Len() == 0
	if removed {
		if err := k.Creators.Remove(ctx, creatorID); err != nil {
			return false, err
		}
	} else {
		creator.Disconnect()
		if err := k.Creators.Set(ctx, creatorID, creator); err != nil {
			return false, err
		}
	}
	if err := saveIndex(ctx, k.CreatorIdsByAccount, owner, ids); err != nil {
		return false, err
	}

	k.Logger(ctx).Info("dropped creator", "creator", creatorID, "owner", owner, "removed", removed)
	return removed, nil
}

// CreatorOwner returns the account controlling creatorID. ok is false when the
// creator does not exist or has been disconnected.
func (k Keeper) CreatorOwner(ctx context.Context, creatorID string) (string, bool, error) {
	creator, err := k.Creators.Get(ctx, creatorID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return creator.Owner, creator.IsConnected(), nil
}

func (k Keeper) getCreator(ctx context.Context, creatorID string) (types.Creator, error) {
	creator, err := k.Creators.Get(ctx, creatorID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Creator{}, errorsmod.Wrapf(types.ErrNotOwner, "creator %q not found", creatorID)
		}
		return types.Creator{}, err
	}
	return creator, nil
}

func (k Keeper) ensureAccountOwnsCreator(ctx context.Context, account, creatorID string) error {
	owner, ok, err := k.CreatorOwner(ctx, creatorID)
	if err != nil {
		return err
	}
	if !ok || owner != account {
		return types.ErrNotOwner
	}
	return nil
}
