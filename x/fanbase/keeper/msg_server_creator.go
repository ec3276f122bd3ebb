package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"fanbase/x/fanbase/types"
)

func (m msgServer) CreateAccount(ctx context.Context, msg *types.MsgCreateAccount) (*types.MsgCreateAccountResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.branch(ctx, func(ctx context.Context) error {
		return m.CreateCreator(ctx, msg.CreatorId, account)
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeNewCreator,
		sdk.NewAttribute(types.AttributeKeyCreator, msg.CreatorId),
		sdk.NewAttribute(types.AttributeKeyAccount, account),
	)
	return &types.MsgCreateAccountResponse{}, nil
}

func (m msgServer) DropAccount(ctx context.Context, msg *types.MsgDropAccount) (*types.MsgDropAccountResponse, error) {
	account, _, err := m.account("creator", msg.Creator)
	if err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var removed bool
	if err := m.branch(ctx, func(ctx context.Context) error {
		removed, err = m.DisconnectOrRemoveCreator(ctx, msg.CreatorId, account)
		return err
	}); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeDroppedCreator,
		sdk.NewAttribute(types.AttributeKeyCreator, msg.CreatorId),
		sdk.NewAttribute(types.AttributeKeyAccount, account),
		sdk.NewAttribute(types.AttributeKeyRemoved, strconv.FormatBool(removed)),
	)
	return &types.MsgDropAccountResponse{Removed: removed}, nil
}
