package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fanbase/x/fanbase/types"
)

// Buy purchases a listed token from its current owner. The token changes hands
// and the bid is paid to the previous owner within one branch.
func (m msgServer) Buy(ctx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	buyer, buyerAddr, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	params := m.GetParams(ctx)
	var seller string
	if err := m.branch(ctx, func(ctx context.Context) error {
		token, err := m.GetToken(ctx, msg.TokenId)
		if err != nil {
			return err
		}
		if !token.Listed() {
			return errorsmod.Wrapf(types.ErrTokenNotForSale, "token %d", msg.TokenId)
		}
		if token.Owner == buyer {
			return types.ErrTransferToSelf
		}
		if msg.Bid.LT(*token.Price) {
			return errorsmod.Wrapf(types.ErrBidPriceTooLow, "bid %s < price %s", msg.Bid, token.Price)
		}
		if err := m.ensureFunds(ctx, params, buyerAddr, msg.Bid); err != nil {
			return err
		}
		_, sellerAddr, err := m.account("owner", token.Owner)
		if err != nil {
			return err
		}

		seller = token.Owner
		if err := m.TransferToken(ctx, msg.TokenId, token.Owner, buyer); err != nil {
			return err
		}
		return m.settle(ctx, params, buyerAddr, sellerAddr, msg.Bid)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenTransferred,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyFrom, seller),
		sdk.NewAttribute(types.AttributeKeyTo, buyer),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Bid.String()),
	)
	return &types.MsgBuyResponse{}, nil
}

// Transfer re-asserts the signer's ownership bookkeeping for a token it
// already owns. Ownership and listing are unchanged.
func (m msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		if _, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId); err != nil {
			return err
		}
		return m.TransferToken(ctx, msg.TokenId, account, account)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenTransferred,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyFrom, account),
		sdk.NewAttribute(types.AttributeKeyTo, account),
	)
	return &types.MsgTransferResponse{}, nil
}

// SendToken gives a token to another account without payment.
func (m msgServer) SendToken(ctx context.Context, msg *types.MsgSendToken) (*types.MsgSendTokenResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	recipient, _, err := m.account("recipient", msg.Recipient)
	if err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		if _, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId); err != nil {
			return err
		}
		if recipient == account {
			return types.ErrTransferToSelf
		}
		return m.TransferToken(ctx, msg.TokenId, account, recipient)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenTransferred,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyFrom, account),
		sdk.NewAttribute(types.AttributeKeyTo, recipient),
	)
	return &types.MsgSendTokenResponse{}, nil
}

func (m msgServer) List(ctx context.Context, msg *types.MsgList) (*types.MsgListResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		token, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId)
		if err != nil {
			return err
		}
		if token.Listed() {
			return errorsmod.Wrapf(types.ErrTokenAlreadyListed, "token %d", msg.TokenId)
		}
		return m.SetTokenPrice(ctx, msg.TokenId, &msg.Price)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenListed,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
	)
	return &types.MsgListResponse{}, nil
}

func (m msgServer) Unlist(ctx context.Context, msg *types.MsgUnlist) (*types.MsgUnlistResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		token, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId)
		if err != nil {
			return err
		}
		if !token.Listed() {
			return errorsmod.Wrapf(types.ErrTokenNotListed, "token %d", msg.TokenId)
		}
		return m.SetTokenPrice(ctx, msg.TokenId, nil)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenUnlisted, idAttr(types.AttributeKeyTokenId, msg.TokenId))
	return &types.MsgUnlistResponse{}, nil
}

func (m msgServer) SetPrice(ctx context.Context, msg *types.MsgSetPrice) (*types.MsgSetPriceResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		token, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId)
		if err != nil {
			return err
		}
		if !token.Listed() {
			return errorsmod.Wrapf(types.ErrTokenNotListed, "token %d", msg.TokenId)
		}
		return m.SetTokenPrice(ctx, msg.TokenId, &msg.Price)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenPriceUpdated,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
	)
	return &types.MsgSetPriceResponse{}, nil
}

func (m msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		if _, err := m.ensureAccountOwnsToken(ctx, account, msg.TokenId); err != nil {
			return err
		}
		return m.BurnToken(ctx, msg.TokenId)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeTokenDestroyed,
		idAttr(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeyAccount, account),
	)
	return &types.MsgBurnResponse{}, nil
}
