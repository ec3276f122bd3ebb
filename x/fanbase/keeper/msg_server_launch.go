package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fanbase/x/fanbase/types"
)

func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var launchID uint64
	if err := m.branch(ctx, func(ctx context.Context) error {
		if err := m.ensureAccountOwnsCreator(ctx, account, msg.CreatorId); err != nil {
			return err
		}
		launchID, err = m.MintLaunchToken(ctx, msg.CreatorId, msg.Price, msg.Metadata)
		return err
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenCreated,
		sdk.NewAttribute(types.AttributeKeyCreator, msg.CreatorId),
		idAttr(types.AttributeKeyLaunchId, launchID),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
	)
	return &types.MsgMintResponse{LaunchId: launchID}, nil
}

// authorizeLaunch checks, in order, that launchID exists, that account controls
// creatorID and that creatorID minted launchID.
func (m msgServer) authorizeLaunch(ctx context.Context, account, creatorID string, launchID uint64) error {
	if _, err := m.GetLaunchToken(ctx, launchID); err != nil {
		return err
	}
	if err := m.ensureAccountOwnsCreator(ctx, account, creatorID); err != nil {
		return err
	}
	return m.ensureCreatorOwnsLaunchToken(ctx, creatorID, launchID)
}

func (m msgServer) LaunchGift(ctx context.Context, msg *types.MsgLaunchGift) (*types.MsgLaunchGiftResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	receiver, _, err := m.account("receiver", msg.Receiver)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var tokenID uint64
	if err := m.branch(ctx, func(ctx context.Context) error {
		if err := m.authorizeLaunch(ctx, account, msg.CreatorId, msg.LaunchId); err != nil {
			return err
		}
		tokenID, err = m.IssueToken(ctx, msg.LaunchId, receiver)
		return err
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenInitialCollection,
		idAttr(types.AttributeKeyLaunchId, msg.LaunchId),
		idAttr(types.AttributeKeyTokenId, tokenID),
		sdk.NewAttribute(types.AttributeKeyFrom, msg.CreatorId),
		sdk.NewAttribute(types.AttributeKeyTo, receiver),
	)
	return &types.MsgLaunchGiftResponse{TokenId: tokenID}, nil
}

// LaunchBuy issues a token to the signer and pays the creator's current owner.
// Every check, including the balance check, runs before the token is issued.
func (m msgServer) LaunchBuy(ctx context.Context, msg *types.MsgLaunchBuy) (*types.MsgLaunchBuyResponse, error) {
	buyer, buyerAddr, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	params := m.GetParams(ctx)
	var tokenID uint64
	if err := m.branch(ctx, func(ctx context.Context) error {
		launch, err := m.GetLaunchToken(ctx, msg.LaunchId)
		if err != nil {
			return err
		}
		owner, ok, err := m.LaunchTokenOwner(ctx, msg.LaunchId)
		if err != nil {
			return err
		}
		if !ok {
			return errorsmod.Wrapf(types.ErrTokenUnavailable, "creator %q is disconnected", launch.Creator)
		}
		_, ownerAddr, err := m.account("owner", owner)
		if err != nil {
			return err
		}
		if launch.SoldOut() {
			return errorsmod.Wrapf(types.ErrTokenSoldOut, "launch token %d", msg.LaunchId)
		}
		if msg.Bid.LT(launch.Price) {
			return errorsmod.Wrapf(types.ErrBidPriceTooLow, "bid %s < price %s", msg.Bid, launch.Price)
		}
		if err := m.ensureFunds(ctx, params, buyerAddr, msg.Bid); err != nil {
			return err
		}

		tokenID, err = m.IssueToken(ctx, msg.LaunchId, buyer)
		if err != nil {
			return err
		}
		return m.settle(ctx, params, buyerAddr, ownerAddr, msg.Bid)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenInitialCollection,
		idAttr(types.AttributeKeyLaunchId, msg.LaunchId),
		idAttr(types.AttributeKeyTokenId, tokenID),
		sdk.NewAttribute(types.AttributeKeyTo, buyer),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Bid.String()),
	)
	return &types.MsgLaunchBuyResponse{TokenId: tokenID}, nil
}

func (m msgServer) SetLaunchPrice(ctx context.Context, msg *types.MsgSetLaunchPrice) (*types.MsgSetLaunchPriceResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		if err := m.authorizeLaunch(ctx, account, msg.CreatorId, msg.LaunchId); err != nil {
			return err
		}
		return m.Keeper.SetLaunchPrice(ctx, msg.LaunchId, msg.Price)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenLaunchPriceUpdated,
		idAttr(types.AttributeKeyLaunchId, msg.LaunchId),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
	)
	return &types.MsgSetLaunchPriceResponse{}, nil
}
