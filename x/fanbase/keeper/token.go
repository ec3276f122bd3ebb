package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"fanbase/x/fanbase/types"
)

// TransferToken moves tokenID from one account index to another and updates
// the token owner. The receiving index is appended to before the sending index
// is shrunk, so a full receiver leaves both untouched. Moving a token to a new
// owner clears its listing. When from equals to the token keeps its owner and
// listing and only its index membership is re-asserted.
func (k Keeper) TransferToken(ctx context.Context, tokenID uint64, from, to string) error {
	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return err
	}

	if from == to {
		ids, err := k.tokenIndex(ctx, to)
		if err != nil {
			return err
		}
		if ids.Contains(tokenID) {
			return nil
		}
		if err := ids.TryPush(tokenID); err != nil {
			return errorsmod.Wrapf(types.ErrMaxTokensReached, "account holds %d tokens", ids.Len())
		}
		return saveIndex(ctx, k.TokenIdsByAccount, to, ids)
	}

	toIDs, err := k.tokenIndex(ctx, to)
	if err != nil {
		return err
	}
	if err := toIDs.TryPush(tokenID); err != nil {
		return errorsmod.Wrapf(types.ErrMaxTokensReached, "account holds %d tokens", toIDs.Len())
	}
	fromIDs, err := k.tokenIndex(ctx, from)
	if err != nil {
		return err
	}
	fromIDs.SwapRemove(tokenID)

	if err := saveIndex(ctx, k.TokenIdsByAccount, to, toIDs); err != nil {
		return err
	}
	if err := saveIndex(ctx, k.TokenIdsByAccount, from, fromIDs); err != nil {
		return err
	}

	token.Owner = to
	token.Price = nil
	if err := k.Tokens.Set(ctx, tokenID, token); err != nil {
		return err
	}

	k.Logger(ctx).Info("transferred token", "token_id", tokenID, "from", from, "to", to)
	return nil
}

// SetTokenPrice overwrites the listing price of tokenID. A nil price unlists
// the token.
func (k Keeper) SetTokenPrice(ctx context.Context, tokenID uint64, price *sdkmath.Int) error {
	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return err
	}
	if price != nil {
		p := *price
		token.Price = &p
	} else {
		token.Price = nil
	}
	return k.Tokens.Set(ctx, tokenID, token)
}

// BurnToken destroys tokenID. The launch token it came from records the
// destruction and permanently loses one unit of issuable supply.
func (k Keeper) BurnToken(ctx context.Context, tokenID uint64) error {
	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return err
	}

	// Tokens are only created from an existing launch token and launch tokens
	// are never deleted, so a miss here is a corrupted store.
	launch, err := k.LaunchTokens.Get(ctx, token.LaunchId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return errorsmod.Wrapf(sdkerrors.ErrLogic, "token %d references missing launch token %d", tokenID, token.LaunchId)
		}
		return err
	}

	ids, err := k.tokenIndex(ctx, token.Owner)
	if err != nil {
		return err
	}
	ids.SwapRemove(tokenID)
	if err := saveIndex(ctx, k.TokenIdsByAccount, token.Owner, ids); err != nil {
		return err
	}
	if err := k.Tokens.Remove(ctx, tokenID); err != nil {
		return err
	}

	launch.BumpDestroyedAndDecreaseSupply()
	if err := k.LaunchTokens.Set(ctx, launch.Id, launch); err != nil {
		return err
	}

	k.Logger(ctx).Info("burned token", "token_id", tokenID, "launch_id", launch.Id, "owner", token.Owner)
	return nil
}

// TokenOwner returns the owner of tokenID; ok is false when it does not exist.
func (k Keeper) TokenOwner(ctx context.Context, tokenID uint64) (string, bool, error) {
	token, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return token.Owner, true, nil
}

// TokenPrice returns the listing price of tokenID; ok is false when the token
// does not exist or is not listed.
func (k Keeper) TokenPrice(ctx context.Context, tokenID uint64) (sdkmath.Int, bool, error) {
	token, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.Int{}, false, nil
		}
		return sdkmath.Int{}, false, err
	}
	if token.Price == nil {
		return sdkmath.Int{}, false, nil
	}
	return *token.Price, true, nil
}

func (k Keeper) GetToken(ctx context.Context, tokenID uint64) (types.Token, error) {
	token, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Token{}, errorsmod.Wrapf(types.ErrTokenNotFound, "token %d", tokenID)
		}
		return types.Token{}, err
	}
	return token, nil
}

// ensureAccountOwnsToken returns the token when account owns it, checking
// existence before ownership.
func (k Keeper) ensureAccountOwnsToken(ctx context.Context, account string, tokenID uint64) (types.Token, error) {
	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return types.Token{}, err
	}
	if token.Owner != account {
		return types.Token{}, types.ErrNotOwner
	}
	return token, nil
}
