package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"fanbase/x/fanbase/types"
)

// MintLaunchToken creates a launch token for creatorID and returns its id.
// Ownership of the creator is the caller's responsibility.
func (k Keeper) MintLaunchToken(ctx context.Context, creatorID string, price sdkmath.Int, metadata types.LaunchTokenMetadata) (uint64, error) {
	id, err := k.nextLaunchID(ctx)
	if err != nil {
		return 0, err
	}

	ids, err := k.launchIndex(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	if err := ids.TryPush(id); err != nil {
		return 0, errorsmod.Wrapf(types.ErrMaxLaunchTokensReached, "creator %q holds %d launch tokens", creatorID, ids.Len())
	}

	if err := saveIndex(ctx, k.LaunchIdsByCreator, creatorID, ids); err != nil {
		return 0, err
	}
	if err := k.LaunchTokens.Set(ctx, id, types.NewLaunchToken(id, creatorID, price, metadata)); err != nil {
		return 0, err
	}
	if err := k.LaunchIssuanceNonce.Set(ctx, id); err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("minted launch token", "launch_id", id, "creator", creatorID, "supply", metadata.Supply)
	return id, nil
}

// IssueToken issues one token of launchID to receiver and returns the new
// token id.
func (k Keeper) IssueToken(ctx context.Context, launchID uint64, receiver string) (uint64, error) {
	launch, err := k.GetLaunchToken(ctx, launchID)
	if err != nil {
		return 0, err
	}
	if launch.SoldOut() {
		return 0, errorsmod.Wrapf(types.ErrTokenSoldOut, "launch token %d issued %d of %d", launchID, launch.Issued, launch.TotalSupply())
	}

	id, err := k.nextTokenID(ctx)
	if err != nil {
		return 0, err
	}

	ids, err := k.tokenIndex(ctx, receiver)
	if err != nil {
		return 0, err
	}
	if err := ids.TryPush(id); err != nil {
		return 0, errorsmod.Wrapf(types.ErrMaxTokensReached, "account holds %d tokens", ids.Len())
	}

	if err := saveIndex(ctx, k.TokenIdsByAccount, receiver, ids); err != nil {
		return 0, err
	}
	if err := k.Tokens.Set(ctx, id, types.NewToken(receiver, id, launch)); err != nil {
		return 0, err
	}
	launch.BumpIssued()
	if err := k.LaunchTokens.Set(ctx, launchID, launch); err != nil {
		return 0, err
	}
	if err := k.IssuanceNonce.Set(ctx, id); err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("issued token", "token_id", id, "launch_id", launchID, "receiver", receiver)
	return id, nil
}

// SetLaunchPrice overwrites the first-hand price of launchID. Ownership of the
// launch token is the caller's responsibility.
func (k Keeper) SetLaunchPrice(ctx context.Context, launchID uint64, price sdkmath.Int) error {
	launch, err := k.GetLaunchToken(ctx, launchID)
	if err != nil {
		return err
	}
	launch.Price = price
	return k.LaunchTokens.Set(ctx, launchID, launch)
}

// LaunchTokenOwner resolves the account currently behind launchID's creator.
// ok is false when the launch token is unknown or its creator is disconnected.
func (k Keeper) LaunchTokenOwner(ctx context.Context, launchID uint64) (string, bool, error) {
	launch, err := k.LaunchTokens.Get(ctx, launchID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return k.CreatorOwner(ctx, launch.Creator)
}

func (k Keeper) GetLaunchToken(ctx context.Context, launchID uint64) (types.LaunchToken, error) {
	launch, err := k.LaunchTokens.Get(ctx, launchID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.LaunchToken{}, errorsmod.Wrapf(types.ErrTokenNotFound, "launch token %d", launchID)
		}
		return types.LaunchToken{}, err
	}
	return launch, nil
}

func (k Keeper) ensureCreatorOwnsLaunchToken(ctx context.Context, creatorID string, launchID uint64) error {
	launch, err := k.GetLaunchToken(ctx, launchID)
	if err != nil {
		return err
	}
	if launch.Creator != creatorID {
		return types.ErrNotOwner
	}
	return nil
}
