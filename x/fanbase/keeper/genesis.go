package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"fanbase/x/fanbase/types"
)

// InitGenesis loads the records and nonces of genState. Owners are stored in
// canonical address form. Per-account and per-creator indices are rebuilt
// from the records and must fit the configured capacities.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.canonicalizeOwners(&genState); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, c := range genState.Creators {
		if err := k.Creators.Set(ctx, c.Id, c); err != nil {
			return err
		}
		if !c.IsConnected() {
			continue
		}
		ids, err := k.creatorIndex(ctx, c.Owner)
		if err != nil {
			return err
		}
		if err := ids.TryPush(c.Id); err != nil {
			return errorsmod.Wrapf(types.ErrMaxCreatorAccountsReached, "genesis account %s", c.Owner)
		}
		if err := saveIndex(ctx, k.CreatorIdsByAccount, c.Owner, ids); err != nil {
			return err
		}
	}

	for _, lt := range genState.LaunchTokens {
		if err := k.LaunchTokens.Set(ctx, lt.Id, lt); err != nil {
			return err
		}
		ids, err := k.launchIndex(ctx, lt.Creator)
		if err != nil {
			return err
		}
		if err := ids.TryPush(lt.Id); err != nil {
			return errorsmod.Wrapf(types.ErrMaxLaunchTokensReached, "genesis creator %q", lt.Creator)
		}
		if err := saveIndex(ctx, k.LaunchIdsByCreator, lt.Creator, ids); err != nil {
			return err
		}
	}

	for _, t := range genState.Tokens {
		if err := k.Tokens.Set(ctx, t.Id, t); err != nil {
			return err
		}
		ids, err := k.tokenIndex(ctx, t.Owner)
		if err != nil {
			return err
		}
		if err := ids.TryPush(t.Id); err != nil {
			return errorsmod.Wrapf(types.ErrMaxTokensReached, "genesis account %s", t.Owner)
		}
		if err := saveIndex(ctx, k.TokenIdsByAccount, t.Owner, ids); err != nil {
			return err
		}
	}

	if err := k.LaunchIssuanceNonce.Set(ctx, genState.LaunchIssuanceNonce); err != nil {
		return err
	}
	return k.IssuanceNonce.Set(ctx, genState.IssuanceNonce)
}

// canonicalizeOwners rewrites every creator and token owner of gs in place.
// The record slices are copied first so the caller's state is untouched.
func (k Keeper) canonicalizeOwners(gs *types.GenesisState) error {
	creators := make([]types.Creator, len(gs.Creators))
	for i, c := range gs.Creators {
		if c.IsConnected() {
			owner, _, err := k.canonicalAccount(c.Owner)
			if err != nil {
				return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "genesis creator %q owner %s: %s", c.Id, c.Owner, err)
			}
			c.Owner = owner
		}
		creators[i] = c
	}

	tokens := make([]types.Token, len(gs.Tokens))
	for i, t := range gs.Tokens {
		owner, _, err := k.canonicalAccount(t.Owner)
		if err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "genesis token %d owner %s: %s", t.Id, t.Owner, err)
		}
		t.Owner = owner
		tokens[i] = t
	}

	gs.Creators, gs.Tokens = creators, tokens
	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	if err := k.Creators.Walk(ctx, nil, func(_ string, val types.Creator) (stop bool, err error) {
		genesis.Creators = append(genesis.Creators, val)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.LaunchTokens.Walk(ctx, nil, func(_ uint64, val types.LaunchToken) (stop bool, err error) {
		genesis.LaunchTokens = append(genesis.LaunchTokens, val)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.Tokens.Walk(ctx, nil, func(_ uint64, val types.Token) (stop bool, err error) {
		genesis.Tokens = append(genesis.Tokens, val)
		return false, nil
	}); err != nil {
		return nil, err
	}

	var err error
	if genesis.LaunchIssuanceNonce, err = k.LaunchIssuanceNonce.Peek(ctx); err != nil {
		return nil, err
	}
	if genesis.IssuanceNonce, err = k.IssuanceNonce.Peek(ctx); err != nil {
		return nil, err
	}
	return genesis, nil
}
