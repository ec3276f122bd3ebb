package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"fanbase/x/fanbase/types"
)

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := m.assertAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := msg.Params.ValidateUpgrade(m.GetParams(ctx)); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	if err := m.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	m.emit(ctx, types.EventTypeParamsUpdated)
	return &types.MsgUpdateParamsResponse{}, nil
}
