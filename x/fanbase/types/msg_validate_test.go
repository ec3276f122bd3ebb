package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

func TestMsgValidateBasic(t *testing.T) {
	meta := types.LaunchTokenMetadata{Name: "pass", Supply: 1}

	testCases := []struct {
		name string
		msg  interface{ ValidateBasic() error }
		err  error
	}{
		{"create_ok", types.NewMsgCreateAccount("fan1x", "band"), nil},
		{"create_bad_id", types.NewMsgCreateAccount("fan1x", "Band"), types.ErrInvalidCreatorId},
		{"mint_ok", types.NewMsgMint("fan1x", "band", sdkmath.ZeroInt(), meta), nil},
		{"mint_zero_supply", types.NewMsgMint("fan1x", "band", sdkmath.OneInt(), types.LaunchTokenMetadata{}), types.ErrZeroSupply},
		{"mint_negative_price", types.NewMsgMint("fan1x", "band", sdkmath.NewInt(-1), meta), sdkerrors.ErrInvalidRequest},
		{"mint_nil_price", types.NewMsgMint("fan1x", "band", sdkmath.Int{}, meta), sdkerrors.ErrInvalidRequest},
		{"launch_buy_free", types.NewMsgLaunchBuy("fan1x", 1, sdkmath.ZeroInt()), nil},
		{"buy_negative", types.NewMsgBuy("fan1x", 1, sdkmath.NewInt(-3)), sdkerrors.ErrInvalidRequest},
		{"list_ok", types.NewMsgList("fan1x", 1, sdkmath.OneInt()), nil},
		{"list_zero", types.NewMsgList("fan1x", 1, sdkmath.ZeroInt()), types.ErrZeroPrice},
		{"set_price_zero", types.NewMsgSetPrice("fan1x", 1, sdkmath.ZeroInt()), types.ErrZeroPrice},
		{"set_launch_price_zero", types.NewMsgSetLaunchPrice("fan1x", "band", 1, sdkmath.ZeroInt()), nil},
		{"gift_bad_id", types.NewMsgLaunchGift("fan1x", "", 1, "fan1y"), types.ErrInvalidCreatorId},
		{"update_params", &types.MsgUpdateParams{Authority: "fan1x", Params: types.Params{}}, sdkerrors.ErrInvalidRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}
